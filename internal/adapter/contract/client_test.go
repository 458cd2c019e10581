package contract

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/groupproof/groupproof/internal/app"
	"github.com/groupproof/groupproof/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testContractAddress = "0x1111111111111111111111111111111111111111"
	testProjectID       = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	testCommitHash      = "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
	// EIP-55 reference vector.
	testOwner = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
)

func testABI(t *testing.T) abi.ABI {
	t.Helper()

	parsed, err := abi.JSON(strings.NewReader(registryABI))
	require.NoError(t, err)

	return parsed
}

func packOutput(t *testing.T, method string, values ...interface{}) []byte {
	t.Helper()

	data, err := testABI(t).Methods[method].Outputs.Pack(values...)
	require.NoError(t, err)

	return data
}

// unpackInput checks the call selector and returns decoded call arguments.
func unpackInput(t *testing.T, method string, call ethereum.CallMsg) []interface{} {
	t.Helper()

	m := testABI(t).Methods[method]
	require.GreaterOrEqual(t, len(call.Data), 4)
	require.Equal(t, m.ID, call.Data[:4], "selector of %s", method)
	args, err := m.Inputs.Unpack(call.Data[4:])
	require.NoError(t, err)

	return args
}

func newTestClient(t *testing.T, caller *mock.ContractCaller) *Client {
	t.Helper()

	c, err := NewClient(caller, testContractAddress)
	require.NoError(t, err)

	return c
}

func TestNewClient(t *testing.T) {
	t.Parallel()

	_, err := NewClient(&mock.ContractCaller{}, "not an address")
	assert.Error(t, err)

	c, err := NewClient(&mock.ContractCaller{}, testContractAddress)
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(testContractAddress), c.address)
}

func TestClient_Project(t *testing.T) {
	t.Parallel()

	caller := &mock.ContractCaller{
		Outputs: [][]byte{packOutput(t, "getProject",
			"groupproof",
			"verifiable contributions",
			common.HexToAddress(strings.ToLower(testOwner)),
			big.NewInt(1700000000),
			true,
			big.NewInt(3),
			big.NewInt(42),
		)},
	}
	c := newTestClient(t, caller)

	p, err := c.Project(context.Background(), testProjectID)
	require.NoError(t, err)
	assert.Equal(t, app.Project{
		ID:               testProjectID,
		Name:             "groupproof",
		Description:      "verifiable contributions",
		Owner:            testOwner,
		CreatedAt:        1700000000,
		IsActive:         true,
		ContributorCount: 3,
		CommitCount:      42,
	}, p)

	calls := caller.Calls()
	require.Len(t, calls, 1)
	require.NotNil(t, calls[0].To)
	assert.Equal(t, common.HexToAddress(testContractAddress), *calls[0].To)
	args := unpackInput(t, "getProject", calls[0])
	assert.Equal(t, [32]byte(common.HexToHash(testProjectID)), args[0])
}

func TestClient_ProjectUnknownIDReadsZeroValues(t *testing.T) {
	t.Parallel()

	caller := &mock.ContractCaller{
		Outputs: [][]byte{packOutput(t, "getProject",
			"", "", common.Address{}, big.NewInt(0), false, big.NewInt(0), big.NewInt(0),
		)},
	}
	c := newTestClient(t, caller)

	p, err := c.Project(context.Background(), testProjectID)
	require.NoError(t, err)
	assert.Zero(t, p.CreatedAt)
	assert.Equal(t, testProjectID, p.ID)
}

func TestClient_Commits(t *testing.T) {
	t.Parallel()

	caller := &mock.ContractCaller{
		Outputs: [][]byte{packOutput(t, "getCommits", []commitTuple{
			{
				CommitHash:   common.HexToHash(testCommitHash),
				Author:       common.HexToAddress(testOwner),
				AuthorName:   "alice",
				AuthorEmail:  "alice@example.com",
				Timestamp:    big.NewInt(1700000100),
				GitTimestamp: big.NewInt(1700000000),
				Message:      "initial commit",
				FilesChanged: 4,
				Additions:    120,
				Deletions:    7,
				RepoName:     "groupproof",
				Branch:       "main",
			},
		})},
	}
	c := newTestClient(t, caller)

	commits, err := c.Commits(context.Background(), testProjectID, 20, 10)
	require.NoError(t, err)
	assert.Equal(t, []app.Commit{
		{
			Hash:         testCommitHash,
			Author:       testOwner,
			AuthorName:   "alice",
			AuthorEmail:  "alice@example.com",
			Timestamp:    1700000100,
			GitTimestamp: 1700000000,
			Message:      "initial commit",
			FilesChanged: 4,
			Additions:    120,
			Deletions:    7,
			RepoName:     "groupproof",
			Branch:       "main",
		},
	}, commits)

	args := unpackInput(t, "getCommits", caller.Calls()[0])
	require.Len(t, args, 3)
	assert.Equal(t, big.NewInt(20), args[1])
	assert.Equal(t, big.NewInt(10), args[2])
}

func TestClient_CommitsEmptyPage(t *testing.T) {
	t.Parallel()

	caller := &mock.ContractCaller{
		Outputs: [][]byte{packOutput(t, "getCommits", []commitTuple{})},
	}
	c := newTestClient(t, caller)

	commits, err := c.Commits(context.Background(), testProjectID, 0, 10)
	require.NoError(t, err)
	assert.NotNil(t, commits)
	assert.Empty(t, commits)
}

func TestClient_ContributorStats(t *testing.T) {
	t.Parallel()

	caller := &mock.ContractCaller{
		Outputs: [][]byte{packOutput(t, "getContributorStats", contributorStatsTuple{
			TotalCommits:      big.NewInt(6),
			TotalAdditions:    big.NewInt(300),
			TotalDeletions:    big.NewInt(40),
			TotalFilesChanged: big.NewInt(12),
			FirstContribution: big.NewInt(1700000000),
			LastContribution:  big.NewInt(1700500000),
		})},
	}
	c := newTestClient(t, caller)

	stats, err := c.ContributorStats(context.Background(), testProjectID, testOwner)
	require.NoError(t, err)
	assert.Equal(t, app.ContributorStats{
		TotalCommits:      6,
		TotalAdditions:    300,
		TotalDeletions:    40,
		TotalFilesChanged: 12,
		FirstContribution: 1700000000,
		LastContribution:  1700500000,
	}, stats)

	args := unpackInput(t, "getContributorStats", caller.Calls()[0])
	assert.Equal(t, common.HexToAddress(testOwner), args[1])
}

func TestClient_Lists(t *testing.T) {
	t.Parallel()

	id1 := common.HexToHash("0x01")
	id2 := common.HexToHash("0x02")

	t.Run("project ids", func(t *testing.T) {
		t.Parallel()

		caller := &mock.ContractCaller{
			Outputs: [][]byte{packOutput(t, "getAllProjects", [][32]byte{id1, id2})},
		}
		ids, err := newTestClient(t, caller).ProjectIDs(context.Background(), 0, 2)
		require.NoError(t, err)
		assert.Equal(t, []string{id1.Hex(), id2.Hex()}, ids)
	})

	t.Run("user project ids", func(t *testing.T) {
		t.Parallel()

		caller := &mock.ContractCaller{
			Outputs: [][]byte{packOutput(t, "getUserProjects", [][32]byte{id2})},
		}
		ids, err := newTestClient(t, caller).UserProjectIDs(context.Background(), testOwner)
		require.NoError(t, err)
		assert.Equal(t, []string{id2.Hex()}, ids)
	})

	t.Run("contributors", func(t *testing.T) {
		t.Parallel()

		caller := &mock.ContractCaller{
			Outputs: [][]byte{packOutput(t, "getContributors", []common.Address{
				common.HexToAddress(strings.ToLower(testOwner)),
			})},
		}
		addrs, err := newTestClient(t, caller).Contributors(context.Background(), testProjectID)
		require.NoError(t, err)
		assert.Equal(t, []string{testOwner}, addrs)
	})
}

func TestClient_Scalars(t *testing.T) {
	t.Parallel()

	t.Run("total projects", func(t *testing.T) {
		t.Parallel()

		caller := &mock.ContractCaller{Outputs: [][]byte{packOutput(t, "getTotalProjects", big.NewInt(17))}}
		total, err := newTestClient(t, caller).TotalProjects(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 17, total)
	})

	t.Run("commit count", func(t *testing.T) {
		t.Parallel()

		caller := &mock.ContractCaller{Outputs: [][]byte{packOutput(t, "getCommitCount", big.NewInt(5))}}
		count, err := newTestClient(t, caller).CommitCount(context.Background(), testProjectID)
		require.NoError(t, err)
		assert.Equal(t, 5, count)
	})

	t.Run("commit recorded", func(t *testing.T) {
		t.Parallel()

		caller := &mock.ContractCaller{Outputs: [][]byte{packOutput(t, "isCommitRecorded", true)}}
		recorded, err := newTestClient(t, caller).IsCommitRecorded(context.Background(), testProjectID, testCommitHash)
		require.NoError(t, err)
		assert.True(t, recorded)

		args := unpackInput(t, "isCommitRecorded", caller.Calls()[0])
		assert.Equal(t, [32]byte(common.HexToHash(testCommitHash)), args[1])
	})
}

func TestClient_Errors(t *testing.T) {
	t.Parallel()

	rpcErr := errors.New("connection refused")

	tests := []struct {
		name    string
		caller  *mock.ContractCaller
		wantMsg string
		wantErr error
	}{
		{
			name:    "transport error is wrapped with method name",
			caller:  &mock.ContractCaller{Err: rpcErr},
			wantMsg: "calling getProject",
			wantErr: rpcErr,
		},
		{
			name:    "empty response",
			caller:  &mock.ContractCaller{},
			wantMsg: "unpacking getProject result",
		},
		{
			name:    "truncated response",
			caller:  &mock.ContractCaller{Outputs: [][]byte{{0x01, 0x02}}},
			wantMsg: "unpacking getProject result",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := newTestClient(t, tt.caller).Project(context.Background(), testProjectID)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestClient_NegativeRange(t *testing.T) {
	t.Parallel()

	caller := &mock.ContractCaller{}
	c := newTestClient(t, caller)

	_, err := c.ProjectIDs(context.Background(), -100, 100)
	assert.Equal(t, errNegativeRange, err)

	_, err = c.Commits(context.Background(), testProjectID, 0, -1)
	assert.Equal(t, errNegativeRange, err)
	assert.True(t, app.IsInvalidRequestError(err))

	assert.Empty(t, caller.Calls(), "nothing is sent to the node")
}
