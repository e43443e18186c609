package app

import (
	"context"
	"errors"
	"net"
	"sync"
	"time"

	promgrpc "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	healthcheck "github.com/vladislavdragonenkov/orders/internal/health"
	"github.com/vladislavdragonenkov/orders/internal/metrics"
	grpcsvc "github.com/vladislavdragonenkov/orders/internal/service/grpc"
	"github.com/vladislavdragonenkov/orders/internal/service/idempotency"
	"github.com/vladislavdragonenkov/orders/internal/service/orders"
	"github.com/vladislavdragonenkov/orders/internal/version"
	ordersv1 "github.com/vladislavdragonenkov/orders/proto/orders/v1"
)

const grpcStopTimeout = 5 * time.Second

// Run поднимает зависимости, gRPC сервер и служебный HTTP сервер и блокируется до отмены ctx.
func Run(ctx context.Context, cfg Config) error {
	logger := log.WithField("component", "app")

	if err := cfg.Validate(); err != nil {
		return err
	}

	deps, err := initRuntimeDependencies(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer deps.close()

	orderMetrics := metrics.NewOrderMetrics()
	orchestrator := orders.NewOrchestrator(deps.repo, deps.products, orders.Options{
		ValidationTimeout: cfg.ValidationTimeout,
		StatusMachine:     cfg.StatusMachine(),
		Publisher:         deps.publisher,
		Metrics:           orderMetrics,
		Logger:            logger.WithField("layer", "orders"),
	})
	guard := idempotency.NewGuard(deps.idemStore, cfg.IdempotencyTTL, logger.WithField("layer", "idempotency"))
	orderService := grpcsvc.NewOrderService(orchestrator, guard, logger.WithField("layer", "grpc"))

	grpcServer, healthServer := newGRPCServer(orderService, logger)

	workersCtx, stopWorkers := context.WithCancel(ctx)
	var workers sync.WaitGroup
	defer func() {
		stopWorkers()
		workers.Wait()
	}()

	if deps.cleanup != nil {
		workers.Add(1)
		go func() {
			defer workers.Done()
			deps.cleanup.Run(workersCtx)
		}()
	}
	if deps.replyConsumer != nil {
		if err := deps.replyConsumer.Start(workersCtx); err != nil {
			return err
		}
		defer func() {
			// сначала отменяем контекст, иначе цикл Consume не увидит завершения
			stopWorkers()
			if err := deps.replyConsumer.Stop(); err != nil {
				logger.WithError(err).Warn("failed to stop product reply consumer")
			}
		}()

		// до назначения партиций ответы каталога теряются (OffsetNewest)
		healthServer.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
		workers.Add(1)
		go func() {
			defer workers.Done()
			waitAssigned(workersCtx, deps.replyConsumer.Assigned(), healthServer, logger)
		}()
	}

	healthHandler := healthcheck.NewHandler(version.GetVersion())
	for name, checker := range deps.checkers {
		healthHandler.RegisterChecker(name, checker)
	}
	metricsSrv := startMetricsServer(ctx, cfg.MetricsAddr, logger, healthHandler)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		shutdownHTTP(metricsSrv, logger)
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logger.WithField("addr", lis.Addr().String()).Info("grpc server listening")
		errCh <- grpcServer.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received, stopping grpc server")
		healthServer.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
		stopGRPC(grpcServer, logger)
		shutdownHTTP(metricsSrv, logger)
		return ctx.Err()
	case err := <-errCh:
		shutdownHTTP(metricsSrv, logger)
		if errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return err
	}
}

// newGRPCServer регистрирует сервис заказов, gRPC health, reflection и серверные метрики.
func newGRPCServer(service ordersv1.OrderServiceServer, logger *log.Entry) (*grpc.Server, *health.Server) {
	grpcMetrics := promgrpc.NewServerMetrics()
	if err := prometheus.Register(grpcMetrics); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*promgrpc.ServerMetrics); ok {
				grpcMetrics = existing
			}
		} else {
			logger.WithError(err).Warn("failed to register grpc metrics")
		}
	}

	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(grpcMetrics.UnaryServerInterceptor()))
	ordersv1.RegisterOrderServiceServer(grpcServer, service)

	healthServer := health.NewServer()
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)

	grpcMetrics.InitializeMetrics(grpcServer)
	return grpcServer, healthServer
}

// waitAssigned переводит gRPC health в SERVING, когда consumer ответов получил партиции.
func waitAssigned(ctx context.Context, assigned <-chan struct{}, healthServer *health.Server, logger *log.Entry) {
	select {
	case <-assigned:
		healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
		logger.Info("product reply consumer assigned, grpc health serving")
	case <-ctx.Done():
	}
}

// stopGRPC ждёт завершения активных вызовов, но не дольше grpcStopTimeout.
func stopGRPC(server *grpc.Server, logger *log.Entry) {
	stopped := make(chan struct{})
	go func() {
		server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(grpcStopTimeout):
		logger.Warn("graceful stop timed out, forcing grpc server stop")
		server.Stop()
	}
}
