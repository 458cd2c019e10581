package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/groupproof/groupproof/internal/app"
	"github.com/spf13/cobra"
)

const (
	defaultLimit = 20
	gitHashLen   = 40
)

var (
	pageFlag  int
	limitFlag int
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List registered projects",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		offset, limit := pageRange()
		return withRegistry(cmd, func(ctx context.Context, r registry) error {
			total, err := r.TotalProjects(ctx)
			if err != nil {
				return err
			}
			projects, err := r.AllProjects(ctx, offset, limit)
			if err != nil {
				return err
			}

			ui.Projects(projects)
			ui.Info("Page %d, %d projects in total", pageFlag, total)
			return nil
		})
	},
}

var projectCmd = &cobra.Command{
	Use:   "project <projectId>",
	Short: "Show project details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := app.ParseProjectID(args[0])
		if err != nil {
			return err
		}
		return withRegistry(cmd, func(ctx context.Context, r registry) error {
			project, err := r.Project(ctx, id)
			if err != nil {
				return err
			}

			ui.Project(project)
			return nil
		})
	},
}

var commitsCmd = &cobra.Command{
	Use:   "commits <projectId>",
	Short: "List commits recorded in a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := app.ParseProjectID(args[0])
		if err != nil {
			return err
		}
		offset, limit := pageRange()
		return withRegistry(cmd, func(ctx context.Context, r registry) error {
			total, err := r.CommitCount(ctx, id)
			if err != nil {
				return err
			}
			commits, err := r.Commits(ctx, id, offset, limit)
			if err != nil {
				return err
			}

			ui.Commits(commits)
			ui.Info("Page %d, %d commits in total", pageFlag, total)
			return nil
		})
	},
}

var contributorsCmd = &cobra.Command{
	Use:   "contributors <projectId>",
	Short: "List project contributors with their stats",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := app.ParseProjectID(args[0])
		if err != nil {
			return err
		}
		return withRegistry(cmd, func(ctx context.Context, r registry) error {
			contributors, err := r.Contributors(ctx, id)
			if err != nil {
				return err
			}

			ui.Contributors(contributors)
			return nil
		})
	},
}

var analyticsCmd = &cobra.Command{
	Use:   "analytics <projectId>",
	Short: "Show project contribution analytics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := app.ParseProjectID(args[0])
		if err != nil {
			return err
		}
		return withRegistry(cmd, func(ctx context.Context, r registry) error {
			summary, err := r.ProjectAnalytics(ctx, id)
			if err != nil {
				return err
			}

			ui.Analytics(summary)
			return nil
		})
	},
}

var userCmd = &cobra.Command{
	Use:   "user <address>",
	Short: "List projects of an address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		address, err := app.ParseAddress(args[0])
		if err != nil {
			return err
		}
		return withRegistry(cmd, func(ctx context.Context, r registry) error {
			projects, err := r.UserProjects(ctx, address)
			if err != nil {
				return err
			}

			ui.Projects(projects)
			return nil
		})
	},
}

var checkCmd = &cobra.Command{
	Use:   "check <projectId> <commitHash>",
	Short: "Check whether a commit is recorded in a project",
	Long: `Check whether a commit is recorded in a project.

The commit hash is either a 32 byte hex value or a 40 character git hash,
which is right padded with zeros the same way commits are recorded.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := app.ParseProjectID(args[0])
		if err != nil {
			return err
		}
		hash, err := app.ParseCommitHash(commitHashFromGit(args[1]))
		if err != nil {
			return err
		}
		return withRegistry(cmd, func(ctx context.Context, r registry) error {
			recorded, err := r.IsCommitRecorded(ctx, id, hash)
			if err != nil {
				return err
			}

			if recorded {
				ui.Success("Commit %s is recorded", hash[:10])
			} else {
				ui.Warning("Commit %s is not recorded", hash[:10])
			}
			return nil
		})
	},
}

func init() {
	for _, c := range []*cobra.Command{projectsCmd, commitsCmd} {
		c.Flags().IntVar(&pageFlag, "page", 1, "Page number")
		c.Flags().IntVar(&limitFlag, "limit", defaultLimit, "Page size (max 100)")
	}

	rootCmd.AddCommand(
		projectsCmd,
		projectCmd,
		commitsCmd,
		contributorsCmd,
		analyticsCmd,
		userCmd,
		checkCmd,
	)
}

// pageRange converts page flags into offset and limit, applying the same bounds as the server.
func pageRange() (offset, limit int) {
	if pageFlag < 1 {
		pageFlag = 1
	}
	limit = limitFlag
	if limit < 1 {
		limit = 1
	}
	if limit > 100 {
		limit = 100
	}

	return (pageFlag - 1) * limit, limit
}

// commitHashFromGit turns a git hash into the bytes32 form commits are recorded with.
// Other values are returned unchanged.
func commitHashFromGit(hash string) string {
	hash = strings.TrimPrefix(strings.TrimPrefix(hash, "0x"), "0X")
	if len(hash) == gitHashLen {
		return fmt.Sprintf("0x%s%s", hash, strings.Repeat("0", 64-gitHashLen))
	}

	return "0x" + hash
}
