// Package health serves the standard gRPC health protocol for the wallet service.
package health

import (
	"context"
	"net"
	"sort"
	"sync"
	"time"

	"github.com/sbilibin2017/gw-donation-wallet/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// CheckFunc reports whether a dependency is usable.
type CheckFunc func(ctx context.Context) error

// Server exposes grpc.health.v1 with one service per named check. The empty
// service name reports SERVING only when every check passes.
type Server struct {
	grpc   *grpc.Server
	hs     *health.Server
	checks map[string]CheckFunc
	names  []string
	mu     sync.Mutex
}

// NewServer creates a Server. Every service starts as NOT_SERVING until Refresh runs.
func NewServer(checks map[string]CheckFunc) *Server {
	hs := health.NewServer()
	gs := grpc.NewServer()
	healthpb.RegisterHealthServer(gs, hs)

	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
		hs.SetServingStatus(name, healthpb.HealthCheckResponse_NOT_SERVING)
	}
	sort.Strings(names)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)

	return &Server{grpc: gs, hs: hs, checks: checks, names: names}
}

// Refresh runs every check once and publishes the results.
func (s *Server) Refresh(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	healthy := true
	for _, name := range s.names {
		status := healthpb.HealthCheckResponse_SERVING
		if err := s.checks[name](ctx); err != nil {
			healthy = false
			status = healthpb.HealthCheckResponse_NOT_SERVING
			logger.Log.Warnw("health check failed", "service", name, "error", err)
		}
		s.hs.SetServingStatus(name, status)
	}

	overall := healthpb.HealthCheckResponse_NOT_SERVING
	if healthy {
		overall = healthpb.HealthCheckResponse_SERVING
	}
	s.hs.SetServingStatus("", overall)
	return healthy
}

// Watch refreshes the status every interval until ctx is done.
func (s *Server) Watch(ctx context.Context, interval time.Duration) {
	s.Refresh(ctx)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Refresh(ctx)
		}
	}
}

// Serve accepts gRPC connections on lis until Stop is called.
func (s *Server) Serve(lis net.Listener) error {
	return s.grpc.Serve(lis)
}

// Stop marks every service NOT_SERVING and stops the gRPC server gracefully.
func (s *Server) Stop() {
	s.hs.Shutdown()
	s.grpc.GracefulStop()
}
