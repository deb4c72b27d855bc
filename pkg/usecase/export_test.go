package usecase

// Export unexported functions for testing
var (
	ViewBranchForTest = viewBranch
)
