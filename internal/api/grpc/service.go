package grpc

import (
	"context"
	"errors"

	"github.com/groupproof/groupproof/internal/app"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// AppService serves registry reads and analytics.
type AppService interface {
	TotalProjects(ctx context.Context) (int, error)
	AllProjects(ctx context.Context, offset, limit int) ([]app.Project, error)
	Project(ctx context.Context, id string) (app.Project, error)
	ProjectAnalytics(ctx context.Context, id string) (app.AnalyticsSummary, error)
	Commits(ctx context.Context, id string, offset, limit int) ([]app.Commit, error)
	CommitCount(ctx context.Context, id string) (int, error)
	Contributors(ctx context.Context, id string) ([]app.Contributor, error)
	UserProjects(ctx context.Context, address string) ([]app.Project, error)
	IsCommitRecorded(ctx context.Context, id string, hash string) (bool, error)
}

// Service implements RegistryServer, acting as a direct proxy to AppService.
type Service struct {
	appService AppService
	l          logrus.FieldLogger
}

var _ RegistryServer = &Service{}

// NewService returns new Service instance.
func NewService(appService AppService, l logrus.FieldLogger) *Service {
	return &Service{
		appService: appService,
		l:          l,
	}
}

// TotalProjects returns {"total"}.
func (s *Service) TotalProjects(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	total, err := s.appService.TotalProjects(ctx)
	if err != nil {
		return nil, s.statusError(err)
	}

	return s.reply(totalReply{Total: total})
}

// ListProjects returns {"items"} for given offset and limit.
func (s *Service) ListProjects(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req, err := s.decode(in)
	if err != nil {
		return nil, err
	}
	offset, limit, err := listRange(req)
	if err != nil {
		return nil, s.statusError(err)
	}

	projects, err := s.appService.AllProjects(ctx, offset, limit)
	if err != nil {
		return nil, s.statusError(err)
	}

	return s.reply(itemsReply[app.Project]{Items: projects})
}

// GetProject returns project for given projectId.
func (s *Service) GetProject(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	id, err := s.projectID(in)
	if err != nil {
		return nil, err
	}

	project, err := s.appService.Project(ctx, id)
	if err != nil {
		return nil, s.statusError(err)
	}

	return s.reply(project)
}

// ListCommits returns {"items"} for given projectId, offset and limit.
func (s *Service) ListCommits(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req, err := s.decode(in)
	if err != nil {
		return nil, err
	}
	id, err := app.ParseProjectID(req.ProjectID)
	if err != nil {
		return nil, s.statusError(err)
	}
	offset, limit, err := listRange(req)
	if err != nil {
		return nil, s.statusError(err)
	}

	commits, err := s.appService.Commits(ctx, id, offset, limit)
	if err != nil {
		return nil, s.statusError(err)
	}

	return s.reply(itemsReply[app.Commit]{Items: commits})
}

// CommitCount returns {"count"} for given projectId.
func (s *Service) CommitCount(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	id, err := s.projectID(in)
	if err != nil {
		return nil, err
	}

	count, err := s.appService.CommitCount(ctx, id)
	if err != nil {
		return nil, s.statusError(err)
	}

	return s.reply(countReply{Count: count})
}

// ListContributors returns {"items"} for given projectId.
func (s *Service) ListContributors(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	id, err := s.projectID(in)
	if err != nil {
		return nil, err
	}

	contributors, err := s.appService.Contributors(ctx, id)
	if err != nil {
		return nil, s.statusError(err)
	}

	return s.reply(itemsReply[app.Contributor]{Items: contributors})
}

// UserProjects returns {"items"} for given address.
func (s *Service) UserProjects(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req, err := s.decode(in)
	if err != nil {
		return nil, err
	}
	address, err := app.ParseAddress(req.Address)
	if err != nil {
		return nil, s.statusError(err)
	}

	projects, err := s.appService.UserProjects(ctx, address)
	if err != nil {
		return nil, s.statusError(err)
	}

	return s.reply(itemsReply[app.Project]{Items: projects})
}

// ProjectAnalytics returns analytics summary for given projectId.
func (s *Service) ProjectAnalytics(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	id, err := s.projectID(in)
	if err != nil {
		return nil, err
	}

	summary, err := s.appService.ProjectAnalytics(ctx, id)
	if err != nil {
		return nil, s.statusError(err)
	}

	return s.reply(summary)
}

// IsCommitRecorded returns {"recorded"} for given projectId and commitHash.
func (s *Service) IsCommitRecorded(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req, err := s.decode(in)
	if err != nil {
		return nil, err
	}
	id, err := app.ParseProjectID(req.ProjectID)
	if err != nil {
		return nil, s.statusError(err)
	}
	hash, err := app.ParseCommitHash(req.CommitHash)
	if err != nil {
		return nil, s.statusError(err)
	}

	recorded, err := s.appService.IsCommitRecorded(ctx, id, hash)
	if err != nil {
		return nil, s.statusError(err)
	}

	return s.reply(recordedReply{Recorded: recorded})
}

func (s *Service) decode(in *structpb.Struct) (request, error) {
	var req request
	if err := fromStruct(in, &req); err != nil {
		return req, status.Error(codes.InvalidArgument, err.Error())
	}

	return req, nil
}

func (s *Service) projectID(in *structpb.Struct) (string, error) {
	req, err := s.decode(in)
	if err != nil {
		return "", err
	}
	id, err := app.ParseProjectID(req.ProjectID)
	if err != nil {
		return "", s.statusError(err)
	}

	return id, nil
}

func (s *Service) reply(v interface{}) (*structpb.Struct, error) {
	out, err := toStruct(v)
	if err != nil {
		return nil, s.statusError(err)
	}

	return out, nil
}

// statusError maps app errors to grpc status codes.
// Details of unexpected errors are logged, never returned.
func (s *Service) statusError(err error) error {
	switch {
	case app.IsInvalidRequestError(err):
		return status.Error(codes.InvalidArgument, err.Error())
	case app.IsNotFoundError(err):
		return status.Error(codes.NotFound, err.Error())
	case app.IsTooManyRequestsError(err):
		return status.Error(codes.ResourceExhausted, "Too many requests, please try again later")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	default:
		s.l.WithError(err).Error("grpc request failed")
		return status.Error(codes.Internal, "Internal server error")
	}
}

// listRange applies default and maximum limit. Negative offsets are rejected.
func listRange(req request) (offset, limit int, err error) {
	if req.Offset < 0 {
		return 0, 0, app.InvalidRequestError("offset must not be negative")
	}
	limit = req.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	return req.Offset, limit, nil
}
