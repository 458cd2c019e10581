package grpc

import (
	"context"

	grpc "google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const registryServiceName = "groupproof.v1.Registry"

// Registry method names.
const (
	methodTotalProjects    = "TotalProjects"
	methodListProjects     = "ListProjects"
	methodGetProject       = "GetProject"
	methodListCommits      = "ListCommits"
	methodCommitCount      = "CommitCount"
	methodListContributors = "ListContributors"
	methodUserProjects     = "UserProjects"
	methodProjectAnalytics = "ProjectAnalytics"
	methodIsCommitRecorded = "IsCommitRecorded"
)

// RegistryServer is the server API for groupproof.v1.Registry service.
// Requests and replies are JSON shaped structs using the http api field names.
type RegistryServer interface {
	TotalProjects(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListProjects(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetProject(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListCommits(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CommitCount(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListContributors(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UserProjects(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ProjectAnalytics(context.Context, *structpb.Struct) (*structpb.Struct, error)
	IsCommitRecorded(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterRegistryServer registers srv on s.
func RegisterRegistryServer(s grpc.ServiceRegistrar, srv RegistryServer) {
	s.RegisterService(&registryServiceDesc, srv)
}

var registryServiceDesc = grpc.ServiceDesc{
	ServiceName: registryServiceName,
	HandlerType: (*RegistryServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethodDesc(methodTotalProjects, RegistryServer.TotalProjects),
		unaryMethodDesc(methodListProjects, RegistryServer.ListProjects),
		unaryMethodDesc(methodGetProject, RegistryServer.GetProject),
		unaryMethodDesc(methodListCommits, RegistryServer.ListCommits),
		unaryMethodDesc(methodCommitCount, RegistryServer.CommitCount),
		unaryMethodDesc(methodListContributors, RegistryServer.ListContributors),
		unaryMethodDesc(methodUserProjects, RegistryServer.UserProjects),
		unaryMethodDesc(methodProjectAnalytics, RegistryServer.ProjectAnalytics),
		unaryMethodDesc(methodIsCommitRecorded, RegistryServer.IsCommitRecorded),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "groupproof/v1/registry.proto",
}

type unaryMethod func(RegistryServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryMethodDesc(name string, method unaryMethod) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return method(srv.(RegistryServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod(name),
			}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return method(srv.(RegistryServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

func fullMethod(name string) string {
	return "/" + registryServiceName + "/" + name
}
