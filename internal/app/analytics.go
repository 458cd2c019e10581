package app

import (
	"math"
	"sort"
)

// BuildAnalytics aggregates contributor stats of a project.
//
// totalCommits is the project commit counter, not the sum of contributor commits.
// Percentages are rounded to two decimals and are 0 when the project has no commits.
// The activity timeline skips contributors without a recorded contribution and is
// ordered by last activity, most recent first.
func BuildAnalytics(projectID string, totalCommits int, contributors []Contributor) AnalyticsSummary {
	totals := AnalyticsTotals{
		TotalCommits:      totalCommits,
		TotalContributors: len(contributors),
	}

	breakdown := make([]ContributionShare, 0, len(contributors))
	timeline := make([]ContributorActivity, 0, len(contributors))
	for _, c := range contributors {
		totals.TotalAdditions += c.TotalAdditions
		totals.TotalDeletions += c.TotalDeletions
		totals.TotalFilesChanged += c.TotalFilesChanged

		breakdown = append(breakdown, ContributionShare{
			Address:    c.Address,
			Commits:    c.TotalCommits,
			Additions:  c.TotalAdditions,
			Deletions:  c.TotalDeletions,
			Percentage: sharePercentage(c.TotalCommits, totalCommits),
		})

		if c.LastContribution != 0 {
			timeline = append(timeline, ContributorActivity{
				Address:     c.Address,
				LastActive:  c.LastContribution,
				FirstActive: c.FirstContribution,
			})
		}
	}
	totals.NetLinesChanged = totals.TotalAdditions - totals.TotalDeletions

	sort.SliceStable(timeline, func(i, j int) bool {
		return timeline[i].LastActive > timeline[j].LastActive
	})

	return AnalyticsSummary{
		ProjectID:             projectID,
		Summary:               totals,
		ContributionBreakdown: breakdown,
		ActivityTimeline:      timeline,
	}
}

func sharePercentage(commits, total int) float64 {
	if total == 0 {
		return 0
	}

	return math.Round(float64(commits)/float64(total)*10000) / 100
}
