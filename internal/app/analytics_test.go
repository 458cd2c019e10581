package app_test

import (
	"testing"

	"github.com/groupproof/groupproof/internal/app"
	"github.com/stretchr/testify/assert"
)

func contributor(address string, commits, additions, deletions, first, last int) app.Contributor {
	return app.Contributor{
		Address: address,
		ContributorStats: app.ContributorStats{
			TotalCommits:      commits,
			TotalAdditions:    additions,
			TotalDeletions:    deletions,
			TotalFilesChanged: commits * 2,
			FirstContribution: int64(first),
			LastContribution:  int64(last),
		},
	}
}

func TestBuildAnalytics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		totalCommits int
		contributors []app.Contributor
		want         app.AnalyticsSummary
	}{
		{
			name:         "no contributors",
			totalCommits: 0,
			contributors: nil,
			want: app.AnalyticsSummary{
				ProjectID:             "p",
				ContributionBreakdown: []app.ContributionShare{},
				ActivityTimeline:      []app.ContributorActivity{},
			},
		},
		{
			name:         "commit shares",
			totalCommits: 5,
			contributors: []app.Contributor{
				contributor("a", 3, 100, 10, 1, 20),
				contributor("b", 2, 50, 5, 2, 30),
			},
			want: app.AnalyticsSummary{
				ProjectID: "p",
				Summary: app.AnalyticsTotals{
					TotalCommits:      5,
					TotalContributors: 2,
					TotalAdditions:    150,
					TotalDeletions:    15,
					TotalFilesChanged: 10,
					NetLinesChanged:   135,
				},
				ContributionBreakdown: []app.ContributionShare{
					{Address: "a", Commits: 3, Additions: 100, Deletions: 10, Percentage: 60},
					{Address: "b", Commits: 2, Additions: 50, Deletions: 5, Percentage: 40},
				},
				ActivityTimeline: []app.ContributorActivity{
					{Address: "b", LastActive: 30, FirstActive: 2},
					{Address: "a", LastActive: 20, FirstActive: 1},
				},
			},
		},
		{
			name:         "zero project commits",
			totalCommits: 0,
			contributors: []app.Contributor{
				contributor("a", 3, 0, 0, 0, 0),
			},
			want: app.AnalyticsSummary{
				ProjectID: "p",
				Summary: app.AnalyticsTotals{
					TotalContributors: 1,
					TotalFilesChanged: 6,
				},
				ContributionBreakdown: []app.ContributionShare{
					{Address: "a", Commits: 3},
				},
				ActivityTimeline: []app.ContributorActivity{},
			},
		},
		{
			name:         "negative net lines",
			totalCommits: 1,
			contributors: []app.Contributor{
				contributor("a", 1, 10, 50, 5, 5),
			},
			want: app.AnalyticsSummary{
				ProjectID: "p",
				Summary: app.AnalyticsTotals{
					TotalCommits:      1,
					TotalContributors: 1,
					TotalAdditions:    10,
					TotalDeletions:    50,
					TotalFilesChanged: 2,
					NetLinesChanged:   -40,
				},
				ContributionBreakdown: []app.ContributionShare{
					{Address: "a", Commits: 1, Additions: 10, Deletions: 50, Percentage: 100},
				},
				ActivityTimeline: []app.ContributorActivity{
					{Address: "a", LastActive: 5, FirstActive: 5},
				},
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := app.BuildAnalytics("p", tt.totalCommits, tt.contributors)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildAnalyticsPercentageRounding(t *testing.T) {
	t.Parallel()

	got := app.BuildAnalytics("p", 3, []app.Contributor{
		contributor("a", 1, 0, 0, 0, 0),
		contributor("b", 2, 0, 0, 0, 0),
	})
	assert.Equal(t, 33.33, got.ContributionBreakdown[0].Percentage)
	assert.Equal(t, 66.67, got.ContributionBreakdown[1].Percentage)

	// Contributor commits above the project counter are not clamped.
	got = app.BuildAnalytics("p", 2, []app.Contributor{
		contributor("a", 3, 0, 0, 0, 0),
	})
	assert.Equal(t, 150.0, got.ContributionBreakdown[0].Percentage)
}

func TestBuildAnalyticsTimeline(t *testing.T) {
	t.Parallel()

	got := app.BuildAnalytics("p", 4, []app.Contributor{
		contributor("never", 0, 0, 0, 0, 0),
		contributor("old", 1, 0, 0, 10, 100),
		contributor("tie1", 1, 0, 0, 20, 200),
		contributor("new", 1, 0, 0, 30, 300),
		contributor("tie2", 1, 0, 0, 25, 200),
	})

	var order []string
	for _, a := range got.ActivityTimeline {
		order = append(order, a.Address)
	}
	assert.Equal(t, []string{"new", "tie1", "tie2", "old"}, order)
	assert.Len(t, got.ContributionBreakdown, 5)
	assert.Equal(t, 5, got.Summary.TotalContributors)
}
