package output

import (
	"fmt"
	"strconv"

	"github.com/groupproof/groupproof/internal/app"
)

// Projects renders a project list.
func (u *UI) Projects(projects []app.Project) {
	if len(projects) == 0 {
		u.Info("No projects found")
		return
	}

	table := u.Table([]string{"ID", "Name", "Owner", "Commits", "Contributors", "Status", "Created"})
	for _, p := range projects {
		table.Append([]string{
			Short(p.ID),
			cyan(p.Name),
			Short(p.Owner),
			strconv.Itoa(p.CommitCount),
			strconv.Itoa(p.ContributorCount),
			ActiveColor(p.IsActive),
			Timestamp(p.CreatedAt),
		})
	}
	table.Render()
}

// Project renders project details.
func (u *UI) Project(p app.Project) {
	fmt.Fprintf(u.Out, "%s\n", bold(cyan(p.Name)))
	u.Field("ID", p.ID)
	if p.Description != "" {
		u.Field("Description", p.Description)
	}
	u.Field("Owner", p.Owner)
	u.Field("Status", ActiveColor(p.IsActive))
	u.Field("Created", Timestamp(p.CreatedAt))
	u.Field("Commits", p.CommitCount)
	u.Field("Contributors", p.ContributorCount)
}

// Commits renders a commit list.
func (u *UI) Commits(commits []app.Commit) {
	if len(commits) == 0 {
		u.Info("No commits recorded")
		return
	}

	table := u.Table([]string{"Hash", "Author", "Message", "Branch", "+/-", "Recorded"})
	for _, c := range commits {
		author := c.AuthorName
		if author == "" {
			author = Short(c.Author)
		}
		table.Append([]string{
			Short(c.Hash),
			author,
			truncate(c.Message, 48),
			c.Branch,
			green("+"+strconv.Itoa(c.Additions)) + " " + red("-"+strconv.Itoa(c.Deletions)),
			Timestamp(c.Timestamp),
		})
	}
	table.Render()
}

// Contributors renders contributors with their stats.
func (u *UI) Contributors(contributors []app.Contributor) {
	if len(contributors) == 0 {
		u.Info("No contributors yet")
		return
	}

	table := u.Table([]string{"Address", "Commits", "Additions", "Deletions", "Files", "Last active"})
	for _, c := range contributors {
		table.Append([]string{
			c.Address,
			strconv.Itoa(c.TotalCommits),
			green("+" + strconv.Itoa(c.TotalAdditions)),
			red("-" + strconv.Itoa(c.TotalDeletions)),
			strconv.Itoa(c.TotalFilesChanged),
			Timestamp(c.LastContribution),
		})
	}
	table.Render()
}

// Analytics renders an analytics summary.
func (u *UI) Analytics(a app.AnalyticsSummary) {
	s := a.Summary
	fmt.Fprintf(u.Out, "%s %s\n", bold("Analytics"), Short(a.ProjectID))
	u.Field("Commits", s.TotalCommits)
	u.Field("Contributors", s.TotalContributors)
	u.Field("Additions", green("+"+strconv.Itoa(s.TotalAdditions)))
	u.Field("Deletions", red("-"+strconv.Itoa(s.TotalDeletions)))
	u.Field("Files changed", s.TotalFilesChanged)
	u.Field("Net lines", NetColor(s.NetLinesChanged))

	if len(a.ContributionBreakdown) > 0 {
		fmt.Fprintln(u.Out)
		table := u.Table([]string{"Contributor", "Commits", "Share"})
		for _, c := range a.ContributionBreakdown {
			table.Append([]string{
				c.Address,
				strconv.Itoa(c.Commits),
				fmt.Sprintf("%.2f%%", c.Percentage),
			})
		}
		table.Render()
	}

	if len(a.ActivityTimeline) > 0 {
		fmt.Fprintln(u.Out)
		table := u.Table([]string{"Contributor", "First active", "Last active"})
		for _, c := range a.ActivityTimeline {
			table.Append([]string{
				c.Address,
				Timestamp(c.FirstActive),
				Timestamp(c.LastActive),
			})
		}
		table.Render()
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
