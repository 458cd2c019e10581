package app

// Project entity.
// ID is the 0x-prefixed hex form of the 32 byte identifier assigned by the contract.
type Project struct {
	ID               string `json:"projectId"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	Owner            string `json:"owner"`
	CreatedAt        int64  `json:"createdAt"`
	IsActive         bool   `json:"isActive"`
	ContributorCount int    `json:"contributorCount"`
	CommitCount      int    `json:"commitCount"`
}

// Commit entity
type Commit struct {
	Hash         string `json:"commitHash"`
	Author       string `json:"author"`
	AuthorName   string `json:"authorName"`
	AuthorEmail  string `json:"authorEmail"`
	Timestamp    int64  `json:"timestamp"`
	GitTimestamp int64  `json:"gitTimestamp"`
	Message      string `json:"message"`
	FilesChanged int    `json:"filesChanged"`
	Additions    int    `json:"additions"`
	Deletions    int    `json:"deletions"`
	RepoName     string `json:"repoName"`
	Branch       string `json:"branch"`
}

// ContributorStats holds aggregated counters of one contributor within one project.
// LastContribution equal to 0 means the contributor never contributed.
type ContributorStats struct {
	TotalCommits      int   `json:"totalCommits"`
	TotalAdditions    int   `json:"totalAdditions"`
	TotalDeletions    int   `json:"totalDeletions"`
	TotalFilesChanged int   `json:"totalFilesChanged"`
	FirstContribution int64 `json:"firstContribution"`
	LastContribution  int64 `json:"lastContribution"`
}

// Contributor is an address with its stats in a project.
type Contributor struct {
	Address string `json:"address"`
	ContributorStats
}

// AnalyticsSummary is derived from a project and all of its contributors.
type AnalyticsSummary struct {
	ProjectID             string                `json:"projectId"`
	Summary               AnalyticsTotals       `json:"summary"`
	ContributionBreakdown []ContributionShare   `json:"contributionBreakdown"`
	ActivityTimeline      []ContributorActivity `json:"activityTimeline"`
}

// AnalyticsTotals entity
type AnalyticsTotals struct {
	TotalCommits      int `json:"totalCommits"`
	TotalContributors int `json:"totalContributors"`
	TotalAdditions    int `json:"totalAdditions"`
	TotalDeletions    int `json:"totalDeletions"`
	TotalFilesChanged int `json:"totalFilesChanged"`
	NetLinesChanged   int `json:"netLinesChanged"`
}

// ContributionShare is one contributor's part of the project's commits.
// Percentage is rounded to two decimal places.
type ContributionShare struct {
	Address    string  `json:"address"`
	Commits    int     `json:"commits"`
	Additions  int     `json:"additions"`
	Deletions  int     `json:"deletions"`
	Percentage float64 `json:"percentage"`
}

// ContributorActivity entity
type ContributorActivity struct {
	Address     string `json:"address"`
	LastActive  int64  `json:"lastActive"`
	FirstActive int64  `json:"firstActive"`
}
