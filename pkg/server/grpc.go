package server

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// RegistrationFunc registers a grpc service with the server.
type RegistrationFunc func(*grpc.Server)

// NewGRPCServer creates a gRPC server with optional reflection and the given service registrations.
func NewGRPCServer(enableReflection bool, registerFunc ...RegistrationFunc) *grpc.Server {
	grpcServer := grpc.NewServer()

	for _, regFunc := range registerFunc {
		regFunc(grpcServer)
	}

	if enableReflection {
		reflection.Register(grpcServer)
	}

	return grpcServer
}

// HealthRegistration returns a RegistrationFunc that exposes healthServer as grpc.health.v1.Health.
func HealthRegistration(healthServer *health.Server) RegistrationFunc {
	return func(s *grpc.Server) {
		grpc_health_v1.RegisterHealthServer(s, healthServer)
	}
}
