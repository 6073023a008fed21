package server

import (
	"context"
	"fmt"
	"net"
	"time"

	myGRPC "github.com/MKhiriev/go-gtd/internal/handler/grpc"
	"github.com/MKhiriev/go-gtd/internal/logger"

	"google.golang.org/grpc"
)

const healthProbeInterval = 15 * time.Second

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	gRPCNetListener net.Listener
	stopWatch       context.CancelFunc

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, address string, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("error listening on %s: %w", address, err)
	}

	server := grpc.NewServer()
	handler.Register(server)

	return &grpcServer{
		handler:         handler,
		server:          server,
		gRPCNetListener: listener,
		logger:          logger,
	}, nil
}

func (g *grpcServer) RunServer() {
	ctx, cancel := context.WithCancel(context.Background())
	g.stopWatch = cancel
	go g.handler.Watch(ctx, healthProbeInterval)

	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		g.logger.Error().Err(err).Msg("gRPC server Serve")
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("GRPC server Shutdown")
	if g.stopWatch != nil {
		g.stopWatch()
	}
	g.server.GracefulStop()
}
