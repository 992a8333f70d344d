package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"gorm.io/gorm"

	"pds/internal/common"
	"pds/internal/config"
	"pds/internal/dbmysql"
	"pds/internal/di"
)

const serviceName = "pds-content"

func main() {
	cfg := config.LoadConfig()

	app, cleanup, err := di.InitializeApplication(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer cleanup()

	if cfg.Database.AutoMigrate {
		if err := dbmysql.Migrate(app.DB); err != nil {
			app.Logger.Fatal("migration failed", "error", err)
		}
		app.Logger.Info("database migration completed")
	}

	server := &http.Server{
		Addr:           fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.HTTPPort),
		Handler:        setupRouter(app),
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(common.LoggingInterceptor(app.Logger)))
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	lis, err := net.Listen("tcp", ":"+cfg.Server.GRPCHealthPort)
	if err != nil {
		app.Logger.Fatal("failed to listen", "port", cfg.Server.GRPCHealthPort, "error", err)
	}

	go func() {
		app.Logger.Info("grpc health server starting", "port", cfg.Server.GRPCHealthPort)
		if err := grpcServer.Serve(lis); err != nil {
			app.Logger.Error("grpc health server stopped", "error", err)
		}
	}()

	go func() {
		app.Logger.Info("http server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Logger.Fatal("http server failed", "error", err)
		}
	}()

	if err := pingDB(context.Background(), app.DB); err != nil {
		app.Logger.Warn("database not reachable at startup", "error", err)
		healthServer.SetServingStatus(serviceName, healthpb.HealthCheckResponse_NOT_SERVING)
	} else {
		healthServer.SetServingStatus(serviceName, healthpb.HealthCheckResponse_SERVING)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Logger.Info("shutting down")
	healthServer.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		app.Logger.Error("server forced to shutdown", "error", err)
	}
	grpcServer.GracefulStop()

	app.Logger.Info("server gracefully stopped")
}

func setupRouter(app *di.Application) *mux.Router {
	router := mux.NewRouter()
	router.Use(common.CORSMiddleware)
	router.Use(common.LoggingMiddleware(app.Logger))

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/health", healthCheckHandler(app.DB)).Methods(http.MethodGet)

	app.ContentHandler.RegisterRoutes(api)
	app.BillHandler.RegisterRoutes(api)

	return router
}

func healthCheckHandler(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := pingDB(r.Context(), db); err != nil {
			common.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status":  "unhealthy",
				"service": serviceName,
			})
			return
		}
		common.WriteJSON(w, http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": serviceName,
		})
	}
}

func pingDB(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return sqlDB.PingContext(ctx)
}
