package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/golang/mock/gomock"
	"github.com/groupproof/groupproof/internal/api/http/mock"
	"github.com/groupproof/groupproof/internal/app"
	"github.com/groupproof/groupproof/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testProjectID  = "0x" + strings.Repeat("a", 64)
	testGitHash    = strings.Repeat("b", 40)
	testCommitHash = "0x" + testGitHash + strings.Repeat("0", 24)
)

func init() {
	color.NoColor = true
}

// runCommand executes root command with args against the mock registry.
// Commands share package state, so tests using it don't run in parallel.
func runCommand(t *testing.T, service *mock.MockService, args ...string) (string, string, error) {
	t.Helper()

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	ui = &output.UI{Out: out, ErrOut: errOut}
	t.Cleanup(func() { ui = nil })

	prevDial := dialRegistry
	dialRegistry = func(addr string) (registry, func() error, error) {
		return service, func() error { return nil }, nil
	}
	t.Cleanup(func() { dialRegistry = prevDial })

	rootCmd.SetArgs(args)
	err := rootCmd.Execute()

	return out.String(), errOut.String(), err
}

func TestProjectsCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mock.NewMockService(ctrl)

	service.EXPECT().TotalProjects(gomock.Any()).Return(45, nil)
	service.EXPECT().AllProjects(gomock.Any(), 20, 10).Return([]app.Project{
		{ID: testProjectID, Name: "groupproof", CommitCount: 3, IsActive: true},
	}, nil)

	out, _, err := runCommand(t, service, "projects", "--page", "3", "--limit", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "groupproof")
	assert.Contains(t, out, "Page 3, 45 projects in total")
}

func TestProjectCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mock.NewMockService(ctrl)

	service.EXPECT().Project(gomock.Any(), testProjectID).Return(app.Project{
		ID:          testProjectID,
		Name:        "groupproof",
		Description: "commit registry",
	}, nil)

	out, _, err := runCommand(t, service, "project", strings.ToUpper(testProjectID[2:]))
	require.Error(t, err, "id without 0x prefix is rejected")
	assert.Empty(t, out)

	out, _, err = runCommand(t, service, "project", testProjectID)
	require.NoError(t, err)
	assert.Contains(t, out, "groupproof")
	assert.Contains(t, out, "commit registry")
}

func TestProjectCommandNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mock.NewMockService(ctrl)

	service.EXPECT().Project(gomock.Any(), testProjectID).Return(app.Project{}, app.NotFoundError("Project not found"))

	_, _, err := runCommand(t, service, "project", testProjectID)
	require.Error(t, err)
	assert.True(t, app.IsNotFoundError(err))
}

func TestCheckCommand(t *testing.T) {
	tests := []struct {
		name     string
		hash     string
		recorded bool
		want     string
	}{
		{
			name:     "git hash recorded",
			hash:     testGitHash,
			recorded: true,
			want:     "is recorded",
		},
		{
			name:     "bytes32 hash not recorded",
			hash:     testCommitHash,
			recorded: false,
			want:     "is not recorded",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mock.NewMockService(ctrl)

			service.EXPECT().IsCommitRecorded(gomock.Any(), testProjectID, testCommitHash).Return(tt.recorded, nil)

			out, errOut, err := runCommand(t, service, "check", testProjectID, tt.hash)
			require.NoError(t, err)
			assert.Contains(t, out+errOut, tt.want)
		})
	}
}

func TestUserCommandInvalidAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mock.NewMockService(ctrl)

	_, _, err := runCommand(t, service, "user", "0x123")
	require.Error(t, err)
	assert.True(t, app.IsInvalidRequestError(err))
}

func TestAnalyticsCommandServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mock.NewMockService(ctrl)

	serviceErr := errors.New("connection refused")
	service.EXPECT().ProjectAnalytics(gomock.Any(), testProjectID).Return(app.AnalyticsSummary{}, serviceErr)

	_, _, err := runCommand(t, service, "analytics", testProjectID)
	assert.ErrorIs(t, err, serviceErr)
}

func TestStatusCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mock.NewMockService(ctrl)

	path := filepath.Join(t.TempDir(), ".groupproof.json")
	content := `{
  "projectId": "` + testProjectID + `",
  "projectName": "groupproof",
  "contractAddress": "0x1111111111111111111111111111111111111111",
  "rpcUrl": "https://rpc-amoy.polygon.technology"
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	service.EXPECT().Project(gomock.Any(), testProjectID).Return(app.Project{ID: testProjectID, Name: "groupproof"}, nil)
	service.EXPECT().ProjectAnalytics(gomock.Any(), testProjectID).Return(app.AnalyticsSummary{
		ProjectID: testProjectID,
		Summary:   app.AnalyticsTotals{TotalCommits: 7},
	}, nil)

	out, _, err := runCommand(t, service, "status", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "groupproof")
	assert.Contains(t, out, "0x1111111111111111111111111111111111111111")
	assert.Contains(t, out, "Analytics")
}

func TestReadProjectFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := readProjectFile(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ask the project owner")

	empty := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(empty, []byte(`{"projectName":"x"}`), 0o600))
	_, err = readProjectFile(empty)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no projectId")
}

func TestCommitHashFromGit(t *testing.T) {
	t.Parallel()

	assert.Equal(t, testCommitHash, commitHashFromGit(testGitHash))
	assert.Equal(t, testCommitHash, commitHashFromGit("0x"+testGitHash))
	assert.Equal(t, testCommitHash, commitHashFromGit(testCommitHash))
	assert.Equal(t, "0xabc", commitHashFromGit("abc"))
}
