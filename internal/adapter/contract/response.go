package contract

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/groupproof/groupproof/internal/app"
)

// Tuple structs mirror contract outputs field by field, in abi order.

type projectTuple struct {
	Name             string
	Description      string
	Owner            common.Address
	CreatedAt        *big.Int
	IsActive         bool
	ContributorCount *big.Int
	CommitCount      *big.Int
}

func (t projectTuple) ToProject(id common.Hash) app.Project {
	return app.Project{
		ID:               id.Hex(),
		Name:             t.Name,
		Description:      t.Description,
		Owner:            t.Owner.Hex(),
		CreatedAt:        toInt64(t.CreatedAt),
		IsActive:         t.IsActive,
		ContributorCount: toInt(t.ContributorCount),
		CommitCount:      toInt(t.CommitCount),
	}
}

type commitTuple struct {
	CommitHash   [32]byte
	Author       common.Address
	AuthorName   string
	AuthorEmail  string
	Timestamp    *big.Int
	GitTimestamp *big.Int
	Message      string
	FilesChanged uint16
	Additions    uint32
	Deletions    uint32
	RepoName     string
	Branch       string
}

type commitTuples []commitTuple

func (ts commitTuples) ToCommits() []app.Commit {
	cs := make([]app.Commit, 0, len(ts))
	for _, t := range ts {
		cs = append(cs, app.Commit{
			Hash:         common.Hash(t.CommitHash).Hex(),
			Author:       t.Author.Hex(),
			AuthorName:   t.AuthorName,
			AuthorEmail:  t.AuthorEmail,
			Timestamp:    toInt64(t.Timestamp),
			GitTimestamp: toInt64(t.GitTimestamp),
			Message:      t.Message,
			FilesChanged: int(t.FilesChanged),
			Additions:    int(t.Additions),
			Deletions:    int(t.Deletions),
			RepoName:     t.RepoName,
			Branch:       t.Branch,
		})
	}

	return cs
}

type contributorStatsTuple struct {
	TotalCommits      *big.Int
	TotalAdditions    *big.Int
	TotalDeletions    *big.Int
	TotalFilesChanged *big.Int
	FirstContribution *big.Int
	LastContribution  *big.Int
}

func (t contributorStatsTuple) ToStats() app.ContributorStats {
	return app.ContributorStats{
		TotalCommits:      toInt(t.TotalCommits),
		TotalAdditions:    toInt(t.TotalAdditions),
		TotalDeletions:    toInt(t.TotalDeletions),
		TotalFilesChanged: toInt(t.TotalFilesChanged),
		FirstContribution: toInt64(t.FirstContribution),
		LastContribution:  toInt64(t.LastContribution),
	}
}

func hashesToHex(hs [][32]byte) []string {
	ss := make([]string, 0, len(hs))
	for _, h := range hs {
		ss = append(ss, common.Hash(h).Hex())
	}

	return ss
}

func addressesToHex(as []common.Address) []string {
	ss := make([]string, 0, len(as))
	for _, a := range as {
		ss = append(ss, a.Hex())
	}

	return ss
}

// toInt narrows uint256 counters. Values above int64 range are not expected for
// git-scale counters and timestamps and are truncated.
func toInt(v *big.Int) int {
	return int(toInt64(v))
}

func toInt64(v *big.Int) int64 {
	if v == nil {
		return 0
	}

	return v.Int64()
}
