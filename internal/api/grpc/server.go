package grpc

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/sirupsen/logrus"
	grpc "google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// Server can start grpc server handling registry requests.
type Server struct {
	service RegistryServer
	address string
	l       logrus.FieldLogger
}

// NewServer creates new Server instance.
func NewServer(service RegistryServer, address string, l logrus.FieldLogger) *Server {
	return &Server{
		service: service,
		address: address,
		l:       l,
	}
}

// Run runs the grpc server until ctx is done, then gracefully stops it.
// Returns error when failing to open tcp connection.
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("starting tcp listener: %w", err)
	}

	srv := NewGRPCServer(s.service, s.l)

	errChan := make(chan error, 1)
	go func() {
		s.l.Infof("starting grpc server, listening on %s", s.address)
		if err := srv.Serve(lis); err != nil && err != grpc.ErrServerStopped {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("serving grpc: %w", err)
	case <-ctx.Done():
	}

	srv.GracefulStop()
	s.l.Info("grpc server shut down")

	return nil
}

// NewGRPCServer creates grpc server with registry service and request logging registered.
func NewGRPCServer(service RegistryServer, l logrus.FieldLogger) *grpc.Server {
	srv := grpc.NewServer(grpc.UnaryInterceptor(newLogInterceptor(l)))
	RegisterRegistryServer(srv, service)

	return srv
}

func newLogInterceptor(l logrus.FieldLogger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		l.WithFields(logrus.Fields{
			"method":   info.FullMethod,
			"code":     status.Code(err).String(),
			"duration": time.Since(start),
		}).Info("grpc request")

		return resp, err
	}
}
