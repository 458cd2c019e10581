package http

import (
	"context"
	"net/http"
	"time"

	"github.com/groupproof/groupproof/internal/api/http/limiter"
	"github.com/groupproof/groupproof/internal/app"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

// Service serves registry reads and analytics.
//
//go:generate mockgen -destination mock/service.go -package mock github.com/groupproof/groupproof/internal/api/http Service
type Service interface {
	TotalProjects(ctx context.Context) (int, error)
	AllProjects(ctx context.Context, offset, limit int) ([]app.Project, error)
	Project(ctx context.Context, id string) (app.Project, error)
	ProjectAnalytics(ctx context.Context, id string) (app.AnalyticsSummary, error)
	Commits(ctx context.Context, id string, offset, limit int) ([]app.Commit, error)
	CommitCount(ctx context.Context, id string) (int, error)
	Contributors(ctx context.Context, id string) ([]app.Contributor, error)
	UserProjects(ctx context.Context, address string) ([]app.Project, error)
	IsCommitRecorded(ctx context.Context, id string, hash string) (bool, error)
}

// NewMux creates router for app's http server.
// clientLimiter is optional; without it requests are not rate limited.
func NewMux(service Service, clientLimiter *limiter.ClientLimiter, timeout time.Duration, l logrus.FieldLogger) http.Handler {
	timeoutMiddleware := NewTimeoutMiddleware(timeout)

	m := http.NewServeMux()
	m.HandleFunc("GET /api/health", NewHealthHandler(time.Now))
	m.HandleFunc("GET /api/projects", timeoutMiddleware(NewProjectsHandler(service, l)))
	m.HandleFunc("GET /api/projects/{projectId}", timeoutMiddleware(NewProjectHandler(service, l)))
	m.HandleFunc("GET /api/projects/{projectId}/analytics", timeoutMiddleware(NewAnalyticsHandler(service, l)))
	m.HandleFunc("GET /api/projects/{projectId}/commits", timeoutMiddleware(NewCommitsHandler(service, l)))
	m.HandleFunc("GET /api/projects/{projectId}/commits/{commitHash}", timeoutMiddleware(NewCommitRecordedHandler(service, l)))
	m.HandleFunc("GET /api/projects/{projectId}/contributors", timeoutMiddleware(NewContributorsHandler(service, l)))
	m.HandleFunc("GET /api/users/{address}/projects", timeoutMiddleware(NewUserProjectsHandler(service, l)))
	m.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		writeFailure(w, http.StatusNotFound, "Not found")
	})

	var h http.Handler = m
	if clientLimiter != nil {
		h = NewRateLimitMiddleware(clientLimiter)(h)
	}
	h = NewRequestLogMiddleware(l)(h)
	h = cors.AllowAll().Handler(h)

	return h
}
