package server

import (
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/crossbranch/pkg/domain/interfaces"
	"github.com/m-mizutani/crossbranch/pkg/domain/types"
	"github.com/m-mizutani/crossbranch/pkg/utils/errutil"
	"github.com/m-mizutani/crossbranch/pkg/utils/logging"
)

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is not from user input
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

type config struct {
	webhookSecret types.WebhookSecret
	triggerSecret types.WebhookSecret
}

type Option func(*config)

func WithWebhookSecret(secret types.WebhookSecret) Option {
	return func(cfg *config) {
		cfg.webhookSecret = secret
	}
}

// WithTriggerSecret sets the key of the HMAC that signs POST /pr/create.
func WithTriggerSecret(secret types.WebhookSecret) Option {
	return func(cfg *config) {
		cfg.triggerSecret = secret
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{}
	for _, opt := range options {
		opt(cfg)
	}
	if cfg.webhookSecret == "" {
		logging.Default().Warn("webhook secret is not set, signatures of GitHub deliveries are not verified")
	}
	if cfg.triggerSecret == "" {
		logging.Default().Warn("trigger secret is not set, pull request triggers are rejected")
	}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte(`{"status":"ok"}`))
	})
	r.Route("/webhook", func(r chi.Router) {
		r.Post("/github", func(w http.ResponseWriter, r *http.Request) {
			// Validate and parse the delivery synchronously
			event, err := parseGitHubEvent(r, cfg.webhookSecret)
			if err != nil {
				errutil.HandleError(r.Context(), "fail to parse GitHub webhook", err)
				safeWrite(w, webhookErrorStatus(err), []byte(`{"status":"error","message":"invalid delivery"}`))
				return
			}

			if event == nil {
				safeWrite(w, http.StatusOK, []byte(`{"status":"ok","message":"event ignored"}`))
				return
			}

			kind, _ := event.Kind()
			if !uc.NoteWebhookDelivery(kind, event.Branch) {
				logging.From(r.Context()).Info("duplicate delivery dropped",
					slog.Any("kind", kind),
					slog.Any("branch", event.Branch),
				)
				safeWrite(w, http.StatusOK, []byte(`{"status":"ok","message":"duplicate delivery"}`))
				return
			}

			// The request context is cancelled once the response is sent
			bgCtx := DetachContext(r.Context())
			go runPullRequestEvent(bgCtx, uc, event)

			safeWrite(w, http.StatusAccepted, []byte(`{"status":"accepted"}`))
		})
	})

	r.Route("/pr", func(r chi.Router) {
		r.Post("/create", handlePullRequestTrigger(uc, cfg.triggerSecret))
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
