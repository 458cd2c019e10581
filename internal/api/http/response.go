package http

import (
	"net/http"

	"github.com/groupproof/groupproof/internal/app"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

const (
	msgInternalError   = "Internal server error"
	msgTooManyRequests = "Too many requests, please try again later"
)

type response struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *pagination `json:"pagination,omitempty"`
	Error      string      `json:"error,omitempty"`
}

type pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

func newPagination(page, limit, total int) *pagination {
	return &pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + limit - 1) / limit,
	}
}

type commitRecordedResponse struct {
	Recorded bool `json:"recorded"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = jsoniter.ConfigFastest.NewEncoder(w).Encode(v)
}

func writeData(w http.ResponseWriter, data interface{}, p *pagination) {
	writeJSON(w, http.StatusOK, response{
		Success:    true,
		Data:       data,
		Pagination: p,
	})
}

func writeFailure(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, response{Error: msg})
}

// writeError maps service errors to response status.
// Details of unexpected errors are logged, never returned.
func writeError(w http.ResponseWriter, r *http.Request, l logrus.FieldLogger, err error) {
	switch {
	case app.IsInvalidRequestError(err):
		writeFailure(w, http.StatusBadRequest, err.Error())
	case app.IsNotFoundError(err):
		writeFailure(w, http.StatusNotFound, err.Error())
	case app.IsTooManyRequestsError(err):
		writeFailure(w, http.StatusTooManyRequests, msgTooManyRequests)
	default:
		l.WithError(err).WithFields(logrus.Fields{
			"path":      r.URL.Path,
			"requestId": w.Header().Get(requestIDHeader),
		}).Error("request failed")
		writeFailure(w, http.StatusInternalServerError, msgInternalError)
	}
}
