package app

import (
	"context"
	"errors"
	"learning_assistant_backend/internal/analysis"
	"learning_assistant_backend/internal/chatbot"
	"learning_assistant_backend/internal/config"
	"learning_assistant_backend/internal/controller"
	"learning_assistant_backend/internal/repository"
	"learning_assistant_backend/internal/service"
	"learning_assistant_backend/pkg/configwatcher"
	"learning_assistant_backend/pkg/database"
	"learning_assistant_backend/pkg/logger"
	"learning_assistant_backend/pkg/monitoring"
	"learning_assistant_backend/pkg/security"
	"learning_assistant_backend/pkg/tracing"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	ConfigDir       string
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	Tables          *analysis.Tables
	Dataset         service.DatasetStats
	origins         *security.OriginList
	tracer          *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	performance *repository.PerformanceRepository
	snapshots   service.SnapshotStore
}

type services struct {
	dataset        *service.DatasetService
	analysis       *service.AnalysisService
	recommendation *service.RecommendationService
	chat           *service.ChatService
	history        *service.HistoryService
}

type controllers struct {
	analysis       *controller.AnalysisController
	recommendation *controller.RecommendationController
	chat           *controller.ChatController
	student        *controller.StudentController
	health         *controller.HealthController
	info           *controller.InfoController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) applyConfig(cfg *config.Config) {
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *repositories {
	repos := &repositories{
		performance: repository.NewPerformanceRepository(db),
	}
	// Leave the interface nil rather than wrapping a nil client.
	if rdb != nil {
		ttl := time.Duration(cfg.Redis.SnapshotTTLMinutes) * time.Minute
		repos.snapshots = repository.NewSnapshotCache(rdb, ttl)
	}
	return repos
}

func (a *App) initServices(ctx context.Context, repos *repositories, cfg *config.Config) *services {
	s := &services{}

	provider, err := service.NewDatasetProvider(&cfg.Storage)
	if err != nil {
		logger.Log.Error("Failed to create MinIO client, reading dataset from local storage", zap.Error(err))
	}

	weights := analysis.Weights{
		QuizScore:       cfg.Analysis.QuizWeight,
		Attendance:      cfg.Analysis.AttendanceWeight,
		Subject:         cfg.Analysis.SubjectWeight,
		ConfidenceScale: cfg.Analysis.ConfidenceScale,
	}
	s.dataset = service.NewDatasetService(provider, repos.performance, cfg.Dataset, weights)
	a.Tables, a.Dataset = s.dataset.Load(ctx)

	classifier := analysis.NewRuleClassifier(a.Tables.Weights)

	s.analysis = service.NewAnalysisService(a.Tables, classifier, repos.performance, repos.snapshots)
	s.recommendation = service.NewRecommendationService(a.Tables, classifier, repos.performance)
	s.chat = service.NewChatService(chatbot.NewDefaultResponder(), repos.performance, repos.snapshots)
	s.history = service.NewHistoryService(repos.performance)

	return s
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		analysis:       controller.NewAnalysisController(s.analysis),
		recommendation: controller.NewRecommendationController(s.recommendation),
		chat:           controller.NewChatController(s.chat),
		student:        controller.NewStudentController(s.history),
		health:         controller.NewHealthController(a.DB, a.Redis, a.Dataset),
		info:           controller.NewInfoController(a.Dataset),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	a.origins = security.NewOriginList(cfg.CORS.AllowedOrigins)
	a.RegisterConfigCallback(func(c *config.Config) {
		a.origins.Update(c.CORS.AllowedOrigins)
		logger.Log.Info("CORS origins updated", zap.Strings("origins", c.CORS.AllowedOrigins))
	})

	router.Use(security.CORS(a.origins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config, configDir string) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	gin.SetMode(cfg.Server.Mode)

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	// The snapshot cache is optional; without Redis chat falls back to history.
	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Error("Failed to initialize redis, continuing without snapshot cache", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config:    cfg,
		ConfigDir: configDir,
		DB:        db,
		Redis:     rdb,
	}

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("learning-assistant", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Error("Failed to initialize tracing", zap.Error(err))
		} else {
			app.tracer = tp
		}
	}

	monitoring.Init()

	repos := app.initRepositories(db, rdb, cfg)
	services := app.initServices(context.Background(), repos, cfg)
	controllers := app.initControllers(services)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:              ":" + a.Config.Server.Port,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		configFile := filepath.Join(a.ConfigDir, "config.yaml")
		if err := configwatcher.WatchConfig(ctx, configFile, a.applyConfig); err != nil {
			logger.Log.Warn("Config watcher disabled", zap.Error(err))
		}
	}()

	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("listen", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	a.close(shutdownCtx)
	logger.Log.Info("Server exiting")
	_ = logger.Log.Sync()
}

func (a *App) close(ctx context.Context) {
	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		a.Redis.Close()
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}
}
