package app

import (
	"context"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Cache keeps encoded values under string keys. Expired entries are reported as a miss.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
	Invalidate(ctx context.Context, key string)
}

// Reader reads registry state. Implementations may serve values from cache.
//
//go:generate mockgen -destination mock/reader.go -package mock github.com/groupproof/groupproof/internal/app Reader
type Reader interface {
	TotalProjects(ctx context.Context) (int, error)
	AllProjects(ctx context.Context, offset, limit int) ([]Project, error)
	Project(ctx context.Context, id string) (Project, error)
	Commits(ctx context.Context, id string, offset, limit int) ([]Commit, error)
	CommitCount(ctx context.Context, id string) (int, error)
	Contributors(ctx context.Context, id string) ([]Contributor, error)
	UserProjects(ctx context.Context, address string) ([]Project, error)
	IsCommitRecorded(ctx context.Context, id string, hash string) (bool, error)
}

// Service serves registry reads and derived analytics.
type Service struct {
	reader Reader
	cache  Cache
	l      logrus.FieldLogger
}

// NewService creates new service instance.
func NewService(reader Reader, c Cache, l logrus.FieldLogger) *Service {
	return &Service{
		reader: reader,
		cache:  c,
		l:      l,
	}
}

// TotalProjects returns number of registered projects.
func (s *Service) TotalProjects(ctx context.Context) (int, error) {
	return s.reader.TotalProjects(ctx)
}

// AllProjects returns a page of projects.
func (s *Service) AllProjects(ctx context.Context, offset, limit int) ([]Project, error) {
	return s.reader.AllProjects(ctx, offset, limit)
}

// Project returns a single project or NotFoundError.
func (s *Service) Project(ctx context.Context, id string) (Project, error) {
	return s.reader.Project(ctx, id)
}

// Commits returns a page of project commits.
func (s *Service) Commits(ctx context.Context, id string, offset, limit int) ([]Commit, error) {
	return s.reader.Commits(ctx, id, offset, limit)
}

// CommitCount returns current number of project commits.
func (s *Service) CommitCount(ctx context.Context, id string) (int, error) {
	return s.reader.CommitCount(ctx, id)
}

// Contributors returns project contributors with their stats.
func (s *Service) Contributors(ctx context.Context, id string) ([]Contributor, error) {
	return s.reader.Contributors(ctx, id)
}

// UserProjects returns projects an address contributed to.
func (s *Service) UserProjects(ctx context.Context, address string) ([]Project, error) {
	return s.reader.UserProjects(ctx, address)
}

// IsCommitRecorded checks whether a commit is recorded in a project.
func (s *Service) IsCommitRecorded(ctx context.Context, id string, hash string) (bool, error) {
	return s.reader.IsCommitRecorded(ctx, id, hash)
}

// ProjectAnalytics returns aggregated contribution analytics of a project.
// Project and contributors are fetched concurrently. The summary is cached as a whole.
func (s *Service) ProjectAnalytics(ctx context.Context, id string) (AnalyticsSummary, error) {
	key := "analytics:" + id
	if data, ok := s.cache.Get(ctx, key); ok {
		var summary AnalyticsSummary
		if err := json.Unmarshal(data, &summary); err == nil {
			return summary, nil
		}
		s.cache.Invalidate(ctx, key)
	}

	summary, err := s.computeAnalytics(ctx, id)
	if err != nil {
		return AnalyticsSummary{}, err
	}

	if data, err := json.Marshal(summary); err != nil {
		s.l.WithError(err).WithField("projectId", id).Error("encoding analytics")
	} else {
		s.cache.Set(ctx, key, data)
	}

	return summary, nil
}

func (s *Service) computeAnalytics(ctx context.Context, id string) (AnalyticsSummary, error) {
	s.l.WithField("projectId", id).Debug("computing analytics")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type projectResult struct {
		project Project
		err     error
	}
	projectChan := make(chan projectResult, 1)
	go func() {
		p, err := s.reader.Project(ctx, id)
		projectChan <- projectResult{project: p, err: err}
	}()

	contributors, contributorsErr := s.reader.Contributors(ctx, id)
	if contributorsErr != nil {
		cancel()
	}
	pr := <-projectChan

	if pr.err != nil {
		return AnalyticsSummary{}, pr.err
	}
	if contributorsErr != nil {
		return AnalyticsSummary{}, contributorsErr
	}

	return BuildAnalytics(id, pr.project.CommitCount, contributors), nil
}
