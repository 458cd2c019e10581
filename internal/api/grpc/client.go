package grpc

import (
	"context"

	"github.com/groupproof/groupproof/internal/app"
	grpc "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// Client calls groupproof.v1.Registry service.
// Status errors are converted back to app errors, so callers can use app.Is*Error helpers.
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient creates new Client instance.
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// TotalProjects returns number of registered projects.
func (c *Client) TotalProjects(ctx context.Context) (int, error) {
	var reply totalReply
	if err := c.invoke(ctx, methodTotalProjects, request{}, &reply); err != nil {
		return 0, err
	}

	return reply.Total, nil
}

// AllProjects returns a page of projects.
func (c *Client) AllProjects(ctx context.Context, offset, limit int) ([]app.Project, error) {
	var reply itemsReply[app.Project]
	err := c.invoke(ctx, methodListProjects, request{Offset: offset, Limit: limit}, &reply)
	if err != nil {
		return nil, err
	}

	return reply.Items, nil
}

// Project returns a single project.
func (c *Client) Project(ctx context.Context, id string) (app.Project, error) {
	var project app.Project
	if err := c.invoke(ctx, methodGetProject, request{ProjectID: id}, &project); err != nil {
		return app.Project{}, err
	}

	return project, nil
}

// Commits returns a page of project commits.
func (c *Client) Commits(ctx context.Context, id string, offset, limit int) ([]app.Commit, error) {
	var reply itemsReply[app.Commit]
	req := request{ProjectID: id, Offset: offset, Limit: limit}
	if err := c.invoke(ctx, methodListCommits, req, &reply); err != nil {
		return nil, err
	}

	return reply.Items, nil
}

// CommitCount returns number of project commits.
func (c *Client) CommitCount(ctx context.Context, id string) (int, error) {
	var reply countReply
	if err := c.invoke(ctx, methodCommitCount, request{ProjectID: id}, &reply); err != nil {
		return 0, err
	}

	return reply.Count, nil
}

// Contributors returns project contributors with stats.
func (c *Client) Contributors(ctx context.Context, id string) ([]app.Contributor, error) {
	var reply itemsReply[app.Contributor]
	err := c.invoke(ctx, methodListContributors, request{ProjectID: id}, &reply)
	if err != nil {
		return nil, err
	}

	return reply.Items, nil
}

// UserProjects returns projects of an address.
func (c *Client) UserProjects(ctx context.Context, address string) ([]app.Project, error) {
	var reply itemsReply[app.Project]
	err := c.invoke(ctx, methodUserProjects, request{Address: address}, &reply)
	if err != nil {
		return nil, err
	}

	return reply.Items, nil
}

// ProjectAnalytics returns project analytics summary.
func (c *Client) ProjectAnalytics(ctx context.Context, id string) (app.AnalyticsSummary, error) {
	var summary app.AnalyticsSummary
	if err := c.invoke(ctx, methodProjectAnalytics, request{ProjectID: id}, &summary); err != nil {
		return app.AnalyticsSummary{}, err
	}

	return summary, nil
}

// IsCommitRecorded checks whether a commit is recorded in a project.
func (c *Client) IsCommitRecorded(ctx context.Context, id string, hash string) (bool, error) {
	var reply recordedReply
	if err := c.invoke(ctx, methodIsCommitRecorded, request{ProjectID: id, CommitHash: hash}, &reply); err != nil {
		return false, err
	}

	return reply.Recorded, nil
}

func (c *Client) invoke(ctx context.Context, method string, req request, out interface{}) error {
	in, err := toStruct(req)
	if err != nil {
		return err
	}

	reply := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, fullMethod(method), in, reply); err != nil {
		return appError(err)
	}

	return fromStruct(reply, out)
}

func appError(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	switch st.Code() {
	case codes.InvalidArgument:
		return app.InvalidRequestError(st.Message())
	case codes.NotFound:
		return app.NotFoundError(st.Message())
	case codes.ResourceExhausted:
		return app.TooManyRequestsError(st.Message())
	default:
		return err
	}
}
