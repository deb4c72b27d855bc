package catalog

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"os"
	"sort"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/crossbranch/pkg/domain/types"
	"github.com/m-mizutani/crossbranch/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

// maxManifestSize caps how much of a manifest is read.
const maxManifestSize = 8 << 20

// Source loads the raw manifest document.
type Source interface {
	Load(ctx context.Context) ([]byte, error)
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewSource picks a Source by the scheme of rawURL: https:// (or http://),
// gs://bucket/object or file:///path.
func NewSource(ctx context.Context, rawURL string, httpClient HTTPClient) (Source, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid manifest URL", goerr.V("url", rawURL))
	}

	switch u.Scheme {
	case "https", "http":
		if httpClient == nil {
			httpClient = http.DefaultClient
		}
		return &HTTPSource{client: httpClient, url: rawURL}, nil

	case "gs":
		object := strings.TrimPrefix(u.Path, "/")
		if u.Host == "" || object == "" {
			return nil, goerr.Wrap(types.ErrInvalidOption, "manifest URL must be gs://bucket/object", goerr.V("url", rawURL))
		}
		client, err := storage.NewClient(ctx)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create Cloud Storage client")
		}
		return &GCSSource{client: client, bucket: u.Host, object: object}, nil

	case "file":
		return FileSource(u.Path), nil
	}

	return nil, goerr.Wrap(types.ErrInvalidOption, "unsupported manifest URL scheme", goerr.V("url", rawURL))
}

type HTTPSource struct {
	client HTTPClient
	url    string
}

func NewHTTPSource(client HTTPClient, url string) *HTTPSource {
	return &HTTPSource{client: client, url: url}
}

func (x *HTTPSource) Load(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, x.url, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create manifest request", goerr.V("url", x.url))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := x.client.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch manifest", goerr.V("url", x.url))
	}
	defer safe.DrainAndClose(ctx, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, goerr.New("unexpected manifest response",
			goerr.V("url", x.url),
			goerr.V("status", resp.StatusCode),
		)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxManifestSize))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read manifest", goerr.V("url", x.url))
	}
	return data, nil
}

type GCSSource struct {
	client *storage.Client
	bucket string
	object string
}

func (x *GCSSource) Load(ctx context.Context) ([]byte, error) {
	r, err := x.client.Bucket(x.bucket).Object(x.object).NewReader(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open manifest object",
			goerr.V("bucket", x.bucket),
			goerr.V("object", x.object),
		)
	}
	defer safe.Close(ctx, r)

	data, err := io.ReadAll(io.LimitReader(r, maxManifestSize))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read manifest object",
			goerr.V("bucket", x.bucket),
			goerr.V("object", x.object),
		)
	}
	return data, nil
}

type FileSource string

func (x FileSource) Load(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(string(x))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read manifest file", goerr.V("path", string(x)))
	}
	return data, nil
}

// ParseManifest returns the top-level keys of a JSON object in sorted order.
// Values are ignored.
func ParseManifest(data []byte) ([]types.RepoName, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, goerr.Wrap(err, "manifest is not a JSON object")
	}

	repos := make([]types.RepoName, 0, len(doc))
	for name := range doc {
		if name == "" {
			continue
		}
		repos = append(repos, types.RepoName(name))
	}
	sort.Slice(repos, func(i, j int) bool { return repos[i] < repos[j] })
	return repos, nil
}
