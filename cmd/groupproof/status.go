package main

import (
	"context"
	"fmt"

	"github.com/groupproof/groupproof/internal/app"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// projectFile is the shared project file written when a project is created.
type projectFile struct {
	ProjectID       string `mapstructure:"projectId"`
	ProjectName     string `mapstructure:"projectName"`
	ContractAddress string `mapstructure:"contractAddress"`
	RPCURL          string `mapstructure:"rpcUrl"`
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show status of the project in the current directory",
	Long: `Show status of the project configured in the project file
(.groupproof.json in the current directory by default).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pf, err := readProjectFile(viper.GetString("project_file"))
		if err != nil {
			return err
		}
		id, err := app.ParseProjectID(pf.ProjectID)
		if err != nil {
			return err
		}

		return withRegistry(cmd, func(ctx context.Context, r registry) error {
			project, err := r.Project(ctx, id)
			if err != nil {
				return err
			}
			summary, err := r.ProjectAnalytics(ctx, id)
			if err != nil {
				return err
			}

			ui.Project(project)
			if pf.ContractAddress != "" {
				ui.Field("Contract", pf.ContractAddress)
			}
			ui.Analytics(summary)
			return nil
		})
	},
}

func init() {
	statusCmd.Flags().String("file", "", "Project file (default .groupproof.json)")
	_ = viper.BindPFlag("project_file", statusCmd.Flags().Lookup("file"))
	rootCmd.AddCommand(statusCmd)
}

func readProjectFile(path string) (projectFile, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return projectFile{}, fmt.Errorf("no project file %s found, ask the project owner to share it: %w", path, err)
	}

	var pf projectFile
	if err := v.Unmarshal(&pf); err != nil {
		return projectFile{}, fmt.Errorf("parsing project file %s: %w", path, err)
	}
	if pf.ProjectID == "" {
		return projectFile{}, fmt.Errorf("project file %s has no projectId", path)
	}

	return pf, nil
}
