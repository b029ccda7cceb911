// Package grpc exposes the itemkeeper API over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/avoronov/itemkeeper/internal/logging"
	pb "github.com/avoronov/itemkeeper/internal/proto"
	"github.com/avoronov/itemkeeper/internal/server/models"
	"github.com/avoronov/itemkeeper/internal/server/tasks"
	"google.golang.org/grpc"
)

// ItemService is the slice of the application services the API needs.
type ItemService interface {
	List(ctx context.Context) ([]*models.Item, error)
	Get(ctx context.Context, id int64) (*models.Item, error)
	Create(ctx context.Context, item *models.Item) (*models.Item, error)
	Update(ctx context.Context, item *models.Item) (*models.Item, error)
	Delete(ctx context.Context, id int64) error
	EnqueueItemSync(id int64) (string, error)
	EnqueueFullSync() (string, error)
}

// TaskStatusProvider reports async task state by handle.
type TaskStatusProvider interface {
	Status(id string) (tasks.Result, bool)
}

type GRPCServer struct {
	pb.UnimplementedItemKeeperServiceServer
	address string
	items   ItemService
	tasks   TaskStatusProvider
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, is ItemService, ts TaskStatusProvider) (*GRPCServer, error) {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		items:   is,
		tasks:   ts,
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor))

	pb.RegisterItemKeeperServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
