// internal/app/server.go
package app

import (
	"retailcrm-proxy/internal/config"
	"retailcrm-proxy/internal/db"
	clientHandler "retailcrm-proxy/internal/handlers/client"
	"retailcrm-proxy/internal/middleware"
	"retailcrm-proxy/internal/retailcrm"
	clientService "retailcrm-proxy/internal/service/client"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
	redis  *redis.Client
}

func NewServer() (*Server, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	engine := gin.New()
	return &Server{cfg: cfg, engine: engine}, nil
}

func (s *Server) Start() error {
	// ----- Logger -----
	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()
	s.logger = logger

	// ----- Redis -----
	// The cache connection is declared by configuration but no endpoint
	// reads through it; a failed connection is logged and ignored.
	redisClient, err := db.NewRedisClient(db.RedisConfig{
		Addr:     s.cfg.RedisAddr,
		Password: s.cfg.RedisPass,
		DB:       0,
		PoolSize: 10,
	})
	if err != nil {
		logger.Warn("redis unavailable, continuing without it", zap.Error(err))
	} else {
		s.redis = redisClient
		logger.Info("redis connected", zap.String("addr", s.cfg.RedisAddr))
	}

	// ----- RetailCRM gateway -----
	crmClient := retailcrm.NewClient(s.cfg.RetailCRMURL, s.cfg.RetailCRMAPIKey)

	// ----- Services -----
	clientSvc := clientService.NewClientService(crmClient, logger)

	// ----- Handlers -----
	clientHandlerInst := clientHandler.NewClientHandler(clientSvc)

	// ----- Middlewares -----
	s.engine.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger),
		middleware.CORSMiddleware(),
	)

	// ----- Router -----
	handlers := &Handlers{
		ClientHandler: clientHandlerInst,
	}
	SetupRouter(s.engine, logger, handlers)

	// ----- Start HTTP -----
	logger.Info("server running", zap.String("addr", s.cfg.HTTPAddr))
	return s.engine.Run(s.cfg.HTTPAddr)
}

// Close releases resources held by the server.
func (s *Server) Close() {
	if s.redis != nil {
		if err := s.redis.Close(); err != nil && s.logger != nil {
			s.logger.Warn("failed to close redis client", zap.Error(err))
		}
	}
}
