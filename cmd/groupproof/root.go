package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/groupproof/groupproof/internal/api/grpc"
	"github.com/groupproof/groupproof/internal/app"
	"github.com/groupproof/groupproof/internal/output"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	grpcLib "google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// registry is the part of the grpc client used by commands.
type registry interface {
	TotalProjects(ctx context.Context) (int, error)
	AllProjects(ctx context.Context, offset, limit int) ([]app.Project, error)
	Project(ctx context.Context, id string) (app.Project, error)
	Commits(ctx context.Context, id string, offset, limit int) ([]app.Commit, error)
	CommitCount(ctx context.Context, id string) (int, error)
	Contributors(ctx context.Context, id string) ([]app.Contributor, error)
	UserProjects(ctx context.Context, address string) ([]app.Project, error)
	ProjectAnalytics(ctx context.Context, id string) (app.AnalyticsSummary, error)
	IsCommitRecorded(ctx context.Context, id string, hash string) (bool, error)
}

// Package-level shared dependencies, initialized in cobra.OnInitialize.
var (
	ui *output.UI

	// dialRegistry connects to the server. Replaced in tests.
	dialRegistry = func(addr string) (registry, func() error, error) {
		conn, err := grpcLib.NewClient(addr, grpcLib.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return nil, nil, fmt.Errorf("dialing %s: %w", addr, err)
		}
		return grpc.NewClient(conn), conn.Close, nil
	}
)

var rootCmd = &cobra.Command{
	Use:   "groupproof",
	Short: "GroupProof - browse projects and commits recorded on chain",
	Long: `groupproof reads the GroupProof registry through the groupproof service.
It lists projects, commits and contributors, and shows contribution analytics.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig, initDeps)

	rootCmd.PersistentFlags().String("server", "localhost:9090", "groupproof grpc server address")
	rootCmd.PersistentFlags().Duration("timeout", 10*time.Second, "Timeout of a single command")
	rootCmd.PersistentFlags().String("config", "", "Config file (default ~/.config/groupproof/config.yaml)")
	_ = viper.BindPFlag("server", rootCmd.PersistentFlags().Lookup("server"))
	_ = viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.PersistentFlags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "groupproof"))
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("GROUPPROOF")
	viper.AutomaticEnv()

	viper.SetDefault("server", "localhost:9090")
	viper.SetDefault("timeout", 10*time.Second)
	viper.SetDefault("project_file", ".groupproof.json")

	// Config file is optional.
	_ = viper.ReadInConfig()
}

func initDeps() {
	if ui == nil {
		ui = output.New()
	}
}

// withRegistry connects to the server and runs fn with a timeout bound context.
func withRegistry(cmd *cobra.Command, fn func(ctx context.Context, r registry) error) error {
	r, closeConn, err := dialRegistry(viper.GetString("server"))
	if err != nil {
		return err
	}
	defer closeConn()

	ctx, cancel := context.WithTimeout(cmd.Context(), viper.GetDuration("timeout"))
	defer cancel()

	return fn(ctx, r)
}
