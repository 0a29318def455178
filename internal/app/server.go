// internal/app/server.go
package app

import (
	"context"
	"fmt"
	"log"

	"custman-service/internal/config"
	"custman-service/internal/db"
	customerHandler "custman-service/internal/handlers/customer"
	healthHandler "custman-service/internal/handlers/health"
	"custman-service/internal/middleware"
	"custman-service/internal/repository/postgres"
	customersvc "custman-service/internal/service/customer"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
	pool   *pgxpool.Pool
}

func NewServer() *Server {
	cfg := config.Load()
	engine := gin.New()
	return &Server{cfg: cfg, engine: engine}
}

func (s *Server) Start() error {
	ctx := context.Background()

	// ----- PostgreSQL -----
	pool, err := db.ConnectDB(ctx, s.cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	s.pool = pool

	// ----- Logger -----
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	s.logger = logger

	// ----- Repositories -----
	customerRepo := postgres.NewCustomerRepository(pool)

	// ----- Services -----
	customerService := customersvc.NewCustomerService(customerRepo, logger)

	// ----- Handlers -----
	customerHandlerInst := customerHandler.NewCustomerHandler(customerService)
	healthHandlerInst := healthHandler.NewHealthHandler(pool)

	// ----- Middlewares -----
	s.engine.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(logger),
		middleware.CORSMiddleware(),
	)

	// ----- Router -----
	handlers := &Handlers{
		CustomerHandler: customerHandlerInst,
		HealthHandler:   healthHandlerInst,
	}
	SetupRouter(s.engine, handlers)

	// ----- Start HTTP -----
	log.Printf("🚀 Server running on %s", s.cfg.HTTPAddr)
	return s.engine.Run(s.cfg.HTTPAddr)
}

// Shutdown releases the database pool.
func (s *Server) Shutdown(ctx context.Context) {
	if s.pool != nil {
		s.pool.Close()
	}
}
