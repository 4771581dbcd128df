package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/chaesu44438/emotion-theater/docs"
	"github.com/chaesu44438/emotion-theater/internal/ai/component"
	"github.com/chaesu44438/emotion-theater/internal/config"
	"github.com/chaesu44438/emotion-theater/internal/handler"
	adminHandler "github.com/chaesu44438/emotion-theater/internal/handler/admin"
	authHandler "github.com/chaesu44438/emotion-theater/internal/handler/auth"
	resourceHandler "github.com/chaesu44438/emotion-theater/internal/handler/resource"
	storyHandler "github.com/chaesu44438/emotion-theater/internal/handler/story"
	ttsHandler "github.com/chaesu44438/emotion-theater/internal/handler/tts"
	videoHandler "github.com/chaesu44438/emotion-theater/internal/handler/video"
	"github.com/chaesu44438/emotion-theater/internal/model/auth"
	"github.com/chaesu44438/emotion-theater/internal/pkg/cache"
	"github.com/chaesu44438/emotion-theater/internal/pkg/ctxutil"
	"github.com/chaesu44438/emotion-theater/internal/pkg/ffmpeg"
	"github.com/chaesu44438/emotion-theater/internal/pkg/jwt"
	"github.com/chaesu44438/emotion-theater/internal/pkg/mongodb"
	"github.com/chaesu44438/emotion-theater/internal/pkg/storage"
	"github.com/chaesu44438/emotion-theater/internal/pkg/storagefactory"
	"github.com/chaesu44438/emotion-theater/internal/pkg/storytools"
	"github.com/chaesu44438/emotion-theater/internal/pkg/storytools/providers"
	authRepo "github.com/chaesu44438/emotion-theater/internal/repository/auth"
	storyRepo "github.com/chaesu44438/emotion-theater/internal/repository/story"
	"github.com/chaesu44438/emotion-theater/internal/server/middleware"
	"github.com/chaesu44438/emotion-theater/internal/service"
	"github.com/chaesu44438/emotion-theater/internal/service/video"
)

// Server HTTP server with all pipeline services wired in. MongoDB,
// Redis and the AI backends are optional; the routes that need a
// missing backend are not registered.
type Server struct {
	cfg    *config.Config
	engine *gin.Engine
	mongo  *mongodb.Client
	redis  *cache.RedisCache

	llm    storytools.TextGenerator
	images storytools.ImageGenerator
	speech storytools.SpeechSynthesizer
	store  storage.Storage
}

// New creates the server and its dependencies.
func New(cfg *config.Config) (*Server, error) {
	switch cfg.Server.Mode {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	srv := &Server{
		cfg:    cfg,
		engine: engine,
	}

	if cfg.Mongo.URI != "" {
		client, err := mongodb.New(&cfg.Mongo)
		if err != nil {
			log.Warn().Err(err).Msg("failed to connect to MongoDB, continuing without it")
		} else {
			srv.mongo = client
			log.Info().Str("database", cfg.Mongo.Database).Msg("connected to MongoDB")

			if err := mongodb.EnsureIndexes(client.Database()); err != nil {
				log.Warn().Err(err).Msg("failed to ensure indexes")
			}
		}
	}

	if cfg.Redis.Addr != "" {
		rc, err := cache.NewRedisCache(&cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("failed to connect to Redis, continuing without it")
		} else {
			srv.redis = rc
			log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to Redis")
		}
	}

	if cfg.AI.APIKey != "" {
		chatModel, err := component.NewChatModel(context.Background(), &cfg.AI)
		if err != nil {
			log.Warn().Err(err).Msg("failed to initialize chat model, story and video endpoints disabled")
		} else {
			srv.llm = providers.NewEinoTextGenerator(chatModel)
			log.Info().Str("provider", cfg.AI.Provider).Str("model", cfg.AI.Model).Msg("initialized chat model")
		}
	}

	if cfg.Image.APIKey != "" {
		images, err := providers.NewImageGenerator(&cfg.Image)
		if err != nil {
			log.Warn().Err(err).Msg("failed to initialize image generator")
		} else {
			srv.images = images
			log.Info().Str("provider", cfg.Image.Provider).Msg("initialized image generator")
		}
	}

	if cfg.Speech.Key != "" {
		speech, err := providers.NewAzureSpeechProvider(&cfg.Speech)
		if err != nil {
			log.Warn().Err(err).Msg("failed to initialize speech synthesizer")
		} else {
			srv.speech = speech
			log.Info().Str("region", cfg.Speech.Region).Msg("initialized speech synthesizer")
		}
	}

	store, err := storagefactory.NewStorage(&cfg.Storage)
	if err != nil {
		log.Warn().Err(err).Msg("failed to initialize storage, resource endpoints disabled")
	} else {
		srv.store = store
	}

	if err := srv.setupRoutes(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (s *Server) setupRoutes() error {
	s.engine.Use(middleware.Recovery())
	s.engine.Use(middleware.RequestID())
	s.engine.Use(middleware.Logger())
	s.engine.Use(middleware.CORS())

	healthHandler := handler.NewHealthHandler()
	s.engine.GET("/health", healthHandler.Health)
	s.engine.GET("/ready", healthHandler.Ready)

	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := s.engine.Group("/api/v1")

	jwtSecret := s.cfg.Auth.JWTSecret
	if jwtSecret == "" {
		jwtSecret = "default-secret-key-change-in-production"
		log.Warn().Msg("JWT secret not configured, using default (NOT SECURE for production)")
	}
	accessTokenExpiry := s.cfg.Auth.AccessTokenExpiry
	if accessTokenExpiry == 0 {
		accessTokenExpiry = 24 * time.Hour
	}
	refreshTokenExpiry := s.cfg.Auth.RefreshTokenExpiry
	if refreshTokenExpiry == 0 {
		refreshTokenExpiry = 7 * 24 * time.Hour
	}
	jwtUtil := jwt.NewJWT(jwtSecret, accessTokenExpiry)

	var authSvc *service.AuthService
	var settings *storyRepo.SettingRepo
	var stories *storyRepo.StoryRepo
	var storySvc *service.StoryService

	if s.mongo != nil {
		db := s.mongo.Database()

		userRepo := authRepo.NewUserRepo(db)
		refreshTokenRepo := authRepo.NewRefreshTokenRepo(db)
		authSvc = service.NewAuthService(userRepo, refreshTokenRepo, jwtSecret, accessTokenExpiry, refreshTokenExpiry)

		stories = storyRepo.NewStoryRepo(db)
		settings = storyRepo.NewSettingRepo(db, s.redis)

		authHdl := authHandler.NewHandler(authSvc)
		v1.POST("/auth/register", authHdl.Register)
		v1.POST("/auth/login", authHdl.Login)
		v1.POST("/auth/refresh", authHdl.Refresh)
		v1.POST("/auth/logout", authHdl.Logout)
		v1.GET("/auth/me", authHdl.GetMe)

		adminHdl := adminHandler.NewHandler(settings, userRepo)
		admin := v1.Group("/admin", middleware.Auth(jwtUtil), s.requireAdmin(authSvc))
		admin.GET("/settings/:id", adminHdl.GetSetting)
		admin.PUT("/settings/:id", adminHdl.UpdateSetting)
		admin.DELETE("/settings/:id", adminHdl.ResetSetting)
		admin.GET("/users", adminHdl.ListUsers)
		admin.DELETE("/users/:id", adminHdl.DeleteUser)
	} else {
		log.Warn().Msg("MongoDB not configured, auth and admin endpoints disabled")
	}

	if s.llm != nil && s.images != nil {
		storySvc = service.NewStoryService(s.llm, s.images, stories, settings)
		storyHdl := storyHandler.NewHandler(storySvc)

		v1.POST("/stories/generate", storyHdl.Generate)
		v1.POST("/stories/translate", storyHdl.Translate)
		v1.POST("/stories/regenerate-illustration", storyHdl.RegenerateIllustration)

		if s.mongo != nil {
			saved := v1.Group("/stories", middleware.Auth(jwtUtil))
			saved.POST("", storyHdl.Save)
			saved.GET("", storyHdl.List)
			saved.DELETE("/:id", storyHdl.Delete)
		}
	} else {
		log.Warn().Msg("AI backends not configured, story endpoints disabled")
	}

	if s.speech != nil {
		ttsHdl := ttsHandler.NewHandler(s.speech)
		v1.POST("/tts/synthesize", ttsHdl.Synthesize)
	} else {
		log.Warn().Msg("speech synthesizer not configured, tts endpoint disabled")
	}

	if s.llm != nil && s.images != nil && s.speech != nil {
		videoSvc, err := video.NewService(&s.cfg.Video, s.llm, s.images, s.speech, ffmpeg.NewClient(), settings)
		if err != nil {
			return err
		}
		videoHdl := videoHandler.NewHandler(videoSvc, storySvc)

		v1.POST("/video/generate", videoHdl.Generate)
		v1.GET("/video/status/:id", videoHdl.Status)
		v1.GET("/video/download/:id", videoHdl.Download)
	} else {
		log.Warn().Msg("AI backends not configured, video endpoints disabled")
	}

	if s.store != nil {
		resourceHdl := resourceHandler.NewHandler(s.store)
		resources := v1.Group("/resources", middleware.Auth(jwtUtil))
		resources.POST("/reference-image", resourceHdl.UploadImage)
		resources.GET("/download-url/*key", resourceHdl.GetDownloadURL)
	}

	return nil
}

// requireAdmin gates a route group on the admin role. Must run after the
// auth middleware.
func (s *Server) requireAdmin(authSvc *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := ctxutil.GetUserID(c.Request.Context())
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    40101,
				"message": "Unauthorized",
			})
			return
		}

		user, err := authSvc.GetUserByID(c.Request.Context(), userID)
		if err != nil || user.Role != auth.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code":    40301,
				"message": "Admin role required",
			})
			return
		}

		c.Next()
	}
}

// Run starts the server and blocks until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.engine,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down server...")

		if s.mongo != nil {
			if err := s.mongo.Close(context.Background()); err != nil {
				log.Error().Err(err).Msg("failed to close MongoDB connection")
			}
		}
		if s.redis != nil {
			if err := s.redis.Close(); err != nil {
				log.Error().Err(err).Msg("failed to close Redis connection")
			}
		}

		return srv.Shutdown(context.Background())
	case err := <-errCh:
		return err
	}
}

// Engine returns the Gin engine, for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}
