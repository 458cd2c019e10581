package contract

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/groupproof/groupproof/internal/app"
)

// Caller can execute a read-only contract call.
// *ethclient.Client satisfies it.
type Caller interface {
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// Contract exposes registry view functions with results converted to app types.
//
//go:generate mockgen -destination mock/contract.go -package mock github.com/groupproof/groupproof/internal/adapter/contract Contract
type Contract interface {
	TotalProjects(ctx context.Context) (int, error)
	ProjectIDs(ctx context.Context, offset, limit int) ([]string, error)
	Project(ctx context.Context, id string) (app.Project, error)
	Commits(ctx context.Context, id string, offset, limit int) ([]app.Commit, error)
	CommitCount(ctx context.Context, id string) (int, error)
	Contributors(ctx context.Context, id string) ([]string, error)
	ContributorStats(ctx context.Context, id string, address string) (app.ContributorStats, error)
	UserProjectIDs(ctx context.Context, address string) ([]string, error)
	IsCommitRecorded(ctx context.Context, id string, hash string) (bool, error)
}

// Client calls the registry contract at a fixed address.
// Every method performs exactly one contract call and does no caching.
type Client struct {
	caller  Caller
	address common.Address
	abi     abi.ABI
}

var _ Contract = &Client{}

// NewClient creates new contract client.
func NewClient(caller Caller, address string) (*Client, error) {
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("invalid contract address %q", address)
	}
	parsed, err := abi.JSON(strings.NewReader(registryABI))
	if err != nil {
		return nil, fmt.Errorf("parsing registry abi: %w", err)
	}

	return &Client{
		caller:  caller,
		address: common.HexToAddress(address),
		abi:     parsed,
	}, nil
}

// TotalProjects returns number of registered projects.
func (c *Client) TotalProjects(ctx context.Context) (int, error) {
	var total *big.Int
	if err := c.call(ctx, &total, "getTotalProjects"); err != nil {
		return 0, err
	}

	return toInt(total), nil
}

// ProjectIDs returns a page of project ids in registration order.
func (c *Client) ProjectIDs(ctx context.Context, offset, limit int) ([]string, error) {
	if err := checkRange(offset, limit); err != nil {
		return nil, err
	}

	var ids [][32]byte
	if err := c.call(ctx, &ids, "getAllProjects", big.NewInt(int64(offset)), big.NewInt(int64(limit))); err != nil {
		return nil, err
	}

	return hashesToHex(ids), nil
}

// Project returns project metadata. The contract returns zero values for unknown ids.
func (c *Client) Project(ctx context.Context, id string) (app.Project, error) {
	hash := common.HexToHash(id)

	var t projectTuple
	if err := c.call(ctx, &t, "getProject", hash); err != nil {
		return app.Project{}, err
	}

	return t.ToProject(hash), nil
}

// Commits returns a page of commits of a project.
func (c *Client) Commits(ctx context.Context, id string, offset, limit int) ([]app.Commit, error) {
	if err := checkRange(offset, limit); err != nil {
		return nil, err
	}

	var ts []commitTuple
	err := c.call(ctx, &ts, "getCommits", common.HexToHash(id), big.NewInt(int64(offset)), big.NewInt(int64(limit)))
	if err != nil {
		return nil, err
	}

	return commitTuples(ts).ToCommits(), nil
}

// CommitCount returns number of commits recorded for a project.
func (c *Client) CommitCount(ctx context.Context, id string) (int, error) {
	var count *big.Int
	if err := c.call(ctx, &count, "getCommitCount", common.HexToHash(id)); err != nil {
		return 0, err
	}

	return toInt(count), nil
}

// Contributors returns addresses of project contributors.
func (c *Client) Contributors(ctx context.Context, id string) ([]string, error) {
	var addrs []common.Address
	if err := c.call(ctx, &addrs, "getContributors", common.HexToHash(id)); err != nil {
		return nil, err
	}

	return addressesToHex(addrs), nil
}

// ContributorStats returns contribution totals of an address in a project.
func (c *Client) ContributorStats(ctx context.Context, id string, address string) (app.ContributorStats, error) {
	var out struct {
		Stats contributorStatsTuple
	}
	err := c.call(ctx, &out, "getContributorStats", common.HexToHash(id), common.HexToAddress(address))
	if err != nil {
		return app.ContributorStats{}, err
	}

	return out.Stats.ToStats(), nil
}

// UserProjectIDs returns ids of projects an address contributed to.
func (c *Client) UserProjectIDs(ctx context.Context, address string) ([]string, error) {
	var ids [][32]byte
	if err := c.call(ctx, &ids, "getUserProjects", common.HexToAddress(address)); err != nil {
		return nil, err
	}

	return hashesToHex(ids), nil
}

// IsCommitRecorded checks whether commit hash is recorded in a project.
func (c *Client) IsCommitRecorded(ctx context.Context, id string, hash string) (bool, error) {
	var recorded bool
	if err := c.call(ctx, &recorded, "isCommitRecorded", common.HexToHash(id), common.HexToHash(hash)); err != nil {
		return false, err
	}

	return recorded, nil
}

func (c *Client) call(ctx context.Context, out interface{}, method string, args ...interface{}) error {
	input, err := c.abi.Pack(method, args...)
	if err != nil {
		return fmt.Errorf("packing %s arguments: %w", method, err)
	}

	msg := ethereum.CallMsg{
		To:   &c.address,
		Data: input,
	}
	output, err := c.caller.CallContract(ctx, msg, nil)
	if err != nil {
		return fmt.Errorf("calling %s: %w", method, err)
	}

	if err := c.abi.UnpackIntoInterface(out, method, output); err != nil {
		return fmt.Errorf("unpacking %s result: %w", method, err)
	}

	return nil
}

// errNegativeRange is returned for offsets or limits that would be packed as huge uint256 values.
const errNegativeRange = app.InvalidRequestError("offset and limit must not be negative")

func checkRange(offset, limit int) error {
	if offset < 0 || limit < 0 {
		return errNegativeRange
	}

	return nil
}
