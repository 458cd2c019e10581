package http

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/groupproof/groupproof/internal/app"
	"github.com/sirupsen/logrus"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100

	errPageOutOfRange = app.InvalidRequestError("Page is out of range")
)

type healthResponse struct {
	Success   bool   `json:"success"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// NewHealthHandler creates handlerfunc reporting service liveness. It doesn't touch the chain.
func NewHealthHandler(now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, healthResponse{
			Success:   true,
			Status:    "healthy",
			Timestamp: now().UTC().Format(time.RFC3339),
		})
	}
}

// NewProjectsHandler creates handlerfunc returning a page of projects.
func NewProjectsHandler(service Service, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, limit, offset, err := getPagination(r)
		if err != nil {
			writeError(w, r, l, err)
			return
		}

		total, err := service.TotalProjects(r.Context())
		if err != nil {
			writeError(w, r, l, err)
			return
		}
		projects, err := service.AllProjects(r.Context(), offset, limit)
		if err != nil {
			writeError(w, r, l, err)
			return
		}

		writeData(w, projects, newPagination(page, limit, total))
	}
}

// NewProjectHandler creates handlerfunc returning a single project.
func NewProjectHandler(service Service, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := app.ParseProjectID(r.PathValue("projectId"))
		if err != nil {
			writeError(w, r, l, err)
			return
		}

		project, err := service.Project(r.Context(), id)
		if err != nil {
			writeError(w, r, l, err)
			return
		}

		writeData(w, project, nil)
	}
}

// NewAnalyticsHandler creates handlerfunc returning project analytics.
func NewAnalyticsHandler(service Service, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := app.ParseProjectID(r.PathValue("projectId"))
		if err != nil {
			writeError(w, r, l, err)
			return
		}

		summary, err := service.ProjectAnalytics(r.Context(), id)
		if err != nil {
			writeError(w, r, l, err)
			return
		}

		writeData(w, summary, nil)
	}
}

// NewCommitsHandler creates handlerfunc returning a page of project commits.
// Pagination total is the live commit count.
func NewCommitsHandler(service Service, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := app.ParseProjectID(r.PathValue("projectId"))
		if err != nil {
			writeError(w, r, l, err)
			return
		}
		page, limit, offset, err := getPagination(r)
		if err != nil {
			writeError(w, r, l, err)
			return
		}

		total, err := service.CommitCount(r.Context(), id)
		if err != nil {
			writeError(w, r, l, err)
			return
		}
		commits, err := service.Commits(r.Context(), id, offset, limit)
		if err != nil {
			writeError(w, r, l, err)
			return
		}

		writeData(w, commits, newPagination(page, limit, total))
	}
}

// NewCommitRecordedHandler creates handlerfunc checking whether a commit is recorded.
func NewCommitRecordedHandler(service Service, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := app.ParseProjectID(r.PathValue("projectId"))
		if err != nil {
			writeError(w, r, l, err)
			return
		}
		hash, err := app.ParseCommitHash(r.PathValue("commitHash"))
		if err != nil {
			writeError(w, r, l, err)
			return
		}

		recorded, err := service.IsCommitRecorded(r.Context(), id, hash)
		if err != nil {
			writeError(w, r, l, err)
			return
		}

		writeData(w, commitRecordedResponse{Recorded: recorded}, nil)
	}
}

// NewContributorsHandler creates handlerfunc returning project contributors with stats.
func NewContributorsHandler(service Service, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := app.ParseProjectID(r.PathValue("projectId"))
		if err != nil {
			writeError(w, r, l, err)
			return
		}

		contributors, err := service.Contributors(r.Context(), id)
		if err != nil {
			writeError(w, r, l, err)
			return
		}

		writeData(w, contributors, nil)
	}
}

// NewUserProjectsHandler creates handlerfunc returning projects of an address.
func NewUserProjectsHandler(service Service, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		address, err := app.ParseAddress(r.PathValue("address"))
		if err != nil {
			writeError(w, r, l, err)
			return
		}

		projects, err := service.UserProjects(r.Context(), address)
		if err != nil {
			writeError(w, r, l, err)
			return
		}

		writeData(w, projects, nil)
	}
}

// getPagination reads page (>= 1) and limit (1..100) query params. Unparsable values fall back to defaults.
// A page whose offset doesn't fit in an int is rejected.
func getPagination(r *http.Request) (page, limit, offset int, err error) {
	page = getIntParam(r, "page", 1)
	if page < 1 {
		page = 1
	}
	limit = getIntParam(r, "limit", defaultPageLimit)
	if limit < 1 {
		limit = 1
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if page-1 > math.MaxInt/limit {
		return 0, 0, 0, errPageOutOfRange
	}

	return page, limit, (page - 1) * limit, nil
}

func getIntParam(r *http.Request, name string, defaultValue int) int {
	value := defaultValue
	if vs := r.URL.Query().Get(name); vs != "" {
		if v, err := strconv.Atoi(vs); err == nil {
			value = v
		}
	}

	return value
}
