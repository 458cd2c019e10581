package contract

import (
	"context"
	"fmt"

	"github.com/groupproof/groupproof/internal/app"
	"github.com/groupproof/groupproof/internal/cache"
	"github.com/sirupsen/logrus"
)

// Reader serves registry reads through a ttl cache.
// Multi-entity reads fetch entities concurrently and keep the order of the id list.
// Errors from the contract are returned unchanged and never cached.
type Reader struct {
	contract Contract
	cache    cache.Cache
	l        logrus.FieldLogger
}

var _ app.Reader = &Reader{}

// NewReader creates new Reader instance.
func NewReader(contract Contract, c cache.Cache, l logrus.FieldLogger) *Reader {
	return &Reader{
		contract: contract,
		cache:    c,
		l:        l,
	}
}

// TotalProjects returns number of registered projects.
func (r *Reader) TotalProjects(ctx context.Context) (int, error) {
	return load(ctx, r, "totalProjects", r.contract.TotalProjects)
}

// AllProjects returns a page of projects with full metadata.
func (r *Reader) AllProjects(ctx context.Context, offset, limit int) ([]app.Project, error) {
	key := fmt.Sprintf("projects:%d:%d", offset, limit)
	return load(ctx, r, key, func(ctx context.Context) ([]app.Project, error) {
		ids, err := r.contract.ProjectIDs(ctx, offset, limit)
		if err != nil {
			return nil, err
		}

		return fetchAll(ctx, ids, r.contract.Project)
	})
}

// Project returns project metadata or app.ErrProjectNotFound.
func (r *Reader) Project(ctx context.Context, id string) (app.Project, error) {
	return load(ctx, r, "project:"+id, func(ctx context.Context) (app.Project, error) {
		p, err := r.contract.Project(ctx, id)
		if err != nil {
			return app.Project{}, err
		}
		// No existence flag on chain: unknown ids read as zero values.
		if p.CreatedAt == 0 {
			return app.Project{}, app.ErrProjectNotFound
		}

		return p, nil
	})
}

// Commits returns a page of project commits.
func (r *Reader) Commits(ctx context.Context, id string, offset, limit int) ([]app.Commit, error) {
	key := fmt.Sprintf("commits:%s:%d:%d", id, offset, limit)
	return load(ctx, r, key, func(ctx context.Context) ([]app.Commit, error) {
		return r.contract.Commits(ctx, id, offset, limit)
	})
}

// CommitCount returns number of project commits. It is read on every call.
func (r *Reader) CommitCount(ctx context.Context, id string) (int, error) {
	return r.contract.CommitCount(ctx, id)
}

// Contributors returns project contributors with their stats.
// Stats are cached only as part of the list.
func (r *Reader) Contributors(ctx context.Context, id string) ([]app.Contributor, error) {
	return load(ctx, r, "contributors:"+id, func(ctx context.Context) ([]app.Contributor, error) {
		addresses, err := r.contract.Contributors(ctx, id)
		if err != nil {
			return nil, err
		}

		return fetchAll(ctx, addresses, func(ctx context.Context, address string) (app.Contributor, error) {
			stats, err := r.ContributorStats(ctx, id, address)
			if err != nil {
				return app.Contributor{}, err
			}

			return app.Contributor{
				Address:          address,
				ContributorStats: stats,
			}, nil
		})
	})
}

// ContributorStats reads stats of a single contributor, bypassing the cache.
func (r *Reader) ContributorStats(ctx context.Context, id string, address string) (app.ContributorStats, error) {
	return r.contract.ContributorStats(ctx, id, address)
}

// UserProjects returns projects an address contributed to.
func (r *Reader) UserProjects(ctx context.Context, address string) ([]app.Project, error) {
	return load(ctx, r, "userProjects:"+address, func(ctx context.Context) ([]app.Project, error) {
		ids, err := r.contract.UserProjectIDs(ctx, address)
		if err != nil {
			return nil, err
		}

		return fetchAll(ctx, ids, r.contract.Project)
	})
}

// IsCommitRecorded checks whether commit is recorded in a project. It is read on every call.
func (r *Reader) IsCommitRecorded(ctx context.Context, id string, hash string) (bool, error) {
	return r.contract.IsCommitRecorded(ctx, id, hash)
}

func load[T any](ctx context.Context, r *Reader, key string, fill func(context.Context) (T, error)) (T, error) {
	return cache.Load(ctx, r.cache, key, func(ctx context.Context) (T, error) {
		r.l.WithField("key", key).Debug("cache miss")
		return fill(ctx)
	})
}

// fetchAll calls fetch for every key concurrently.
// Results are in keys order. The first error cancels calls still in flight and is returned.
func fetchAll[K, V any](ctx context.Context, keys []K, fetch func(context.Context, K) (V, error)) ([]V, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type result struct {
		i   int
		v   V
		err error
	}
	resultsChan := make(chan result, len(keys))
	for i, k := range keys {
		go func(i int, k K) {
			v, err := fetch(ctx, k)
			resultsChan <- result{i: i, v: v, err: err}
		}(i, k)
	}

	values := make([]V, len(keys))
	for range keys {
		res := <-resultsChan
		if res.err != nil {
			return nil, res.err
		}
		values[res.i] = res.v
	}

	return values, nil
}
