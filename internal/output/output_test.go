package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/groupproof/groupproof/internal/app"
	"github.com/stretchr/testify/assert"
)

func init() {
	color.NoColor = true
}

func newTestUI() (*UI, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &UI{Out: out, ErrOut: errOut}, out, errOut
}

func TestInfo(t *testing.T) {
	u, out, _ := newTestUI()
	u.Info("hello %s", "world")
	assert.Contains(t, out.String(), "hello world")
}

func TestWarningAndErrorGoToErrOut(t *testing.T) {
	u, out, errOut := newTestUI()
	u.Warning("careful %s", "now")
	u.Error("failed %s", "badly")
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "careful now")
	assert.Contains(t, errOut.String(), "failed badly")
}

func TestShort(t *testing.T) {
	assert.Equal(t, "0x1234", Short("0x1234"))
	assert.Equal(t, "0xaaaaaa…bbbb", Short("0xaaaaaa"+strings.Repeat("0", 50)+"bbbb"))
}

func TestTimestamp(t *testing.T) {
	assert.Equal(t, "never", Timestamp(0))
	assert.Equal(t, "2023-11-14 22:13", Timestamp(1700000000))
}

func TestNetColor(t *testing.T) {
	assert.Equal(t, "+5", NetColor(5))
	assert.Equal(t, "-40", NetColor(-40))
	assert.Equal(t, "0", NetColor(0))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
}

func TestProjects(t *testing.T) {
	u, out, _ := newTestUI()
	u.Projects([]app.Project{
		{ID: "0x" + strings.Repeat("a", 64), Name: "groupproof", CommitCount: 12, IsActive: true},
	})

	s := out.String()
	assert.Contains(t, s, "groupproof")
	assert.Contains(t, s, "12")
	assert.Contains(t, s, "active")
}

func TestProjectsEmpty(t *testing.T) {
	u, out, _ := newTestUI()
	u.Projects(nil)
	assert.Contains(t, out.String(), "No projects found")
}

func TestCommits(t *testing.T) {
	u, out, _ := newTestUI()
	u.Commits([]app.Commit{
		{Hash: "0x" + strings.Repeat("b", 64), AuthorName: "alice", Message: "fix cache", Additions: 3, Deletions: 1, Branch: "main"},
	})

	s := out.String()
	assert.Contains(t, s, "alice")
	assert.Contains(t, s, "fix cache")
	assert.Contains(t, s, "+3 -1")
}

func TestAnalytics(t *testing.T) {
	u, out, _ := newTestUI()
	u.Analytics(app.AnalyticsSummary{
		ProjectID: "0x" + strings.Repeat("c", 64),
		Summary:   app.AnalyticsTotals{TotalCommits: 5, TotalContributors: 2, NetLinesChanged: -40},
		ContributionBreakdown: []app.ContributionShare{
			{Address: "0xA", Commits: 3, Percentage: 60},
			{Address: "0xB", Commits: 2, Percentage: 40},
		},
		ActivityTimeline: []app.ContributorActivity{
			{Address: "0xA", LastActive: 1700000000},
		},
	})

	s := out.String()
	assert.Contains(t, s, "60.00%")
	assert.Contains(t, s, "40.00%")
	assert.Contains(t, s, "-40")
	assert.Contains(t, s, "2023-11-14 22:13")
}
