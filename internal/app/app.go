package app

import (
	"aero-lite/docs"
	"aero-lite/internal/api/handlers"
	"aero-lite/internal/api/middlew"
	"aero-lite/internal/breaker"
	"aero-lite/internal/config"
	"aero-lite/internal/db"
	"aero-lite/internal/kafka"
	"aero-lite/internal/llm"
	"aero-lite/internal/routing"
	"aero-lite/internal/server"
	"aero-lite/internal/service"
	"aero-lite/internal/storage/postgres"
	"aero-lite/pkg/logger"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

type App struct {
	log               *slog.Logger
	server            *server.Server
	logFile           *os.File
	cfg               *config.Config
	engine            *routing.Engine
	llmClient         *llm.Client
	proposalBreaker   *breaker.Breaker
	kafkaProducer     kafka.Producer
	simulationService *service.SimulationService
}

func NewApp() (*App, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации конфига: %w", err)
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	loggerWithFile, err := logger.NewLoggerWithFile(cfg.Log.File, level)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации логгера: %w", err)
	}
	log := loggerWithFile.Logger
	log.Info("инициализация приложения")
	log.Info("конфигурация загружена", slog.String("port", cfg.HTTP.Port))

	routingCfg := cfg.RoutingConfig()
	if cfg.DB.Enabled {
		if err := loadFeeSchedule(context.Background(), cfg, &routingCfg, log); err != nil {
			return nil, err
		}
	} else {
		log.Info("тарифы из БД отключены, используются значения по умолчанию и окружение")
	}

	llmClient := llm.NewClient(llm.Options{
		APIKey:       cfg.OpenAI.APIKey,
		BaseURL:      cfg.OpenAI.BaseURL,
		RoutingModel: cfg.OpenAI.RoutingModel,
		VisionModel:  cfg.OpenAI.VisionModel,
		Temperature:  cfg.OpenAI.Temperature,
	}, log)
	if !llmClient.Enabled() {
		log.Warn("OPENAI_API_KEY не задан, симуляции будут использовать запасные маршруты")
	}

	proposalBreaker := breaker.New(breaker.Settings{
		Name:                "openai-routing",
		Interval:            cfg.Breaker.Interval,
		OpenTimeout:         cfg.Breaker.OpenTimeout,
		ConsecutiveFailures: cfg.Breaker.ConsecutiveFailures,
		MinRequests:         cfg.Breaker.MinRequests,
		FailureRatio:        cfg.Breaker.FailureRatio,
	}, log)

	var kafkaProducer kafka.Producer
	if cfg.Kafka.Enabled {
		log.Info("инициализация kafka producer", slog.Any("brokers", cfg.Kafka.Brokers))
		kafkaProducer, err = kafka.NewKafkaProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic, log)
		if err != nil {
			return nil, fmt.Errorf("ошибка инициализации kafka: %w", err)
		}
	} else {
		log.Info("kafka отключен в конфигурации")
		kafkaProducer = kafka.NewNoOpProducer(log)
	}

	srv := server.NewServer(cfg.HTTP.Port)
	log.Info("сервер инициализирован", slog.String("port", cfg.HTTP.Port))
	srv.Router.Use(middleware.RequestID)
	srv.Router.Use(middlew.WithLogger(log))
	srv.Router.Use(middleware.RealIP)
	srv.Router.Use(middlew.AccessLog)
	srv.Router.Use(middleware.Recoverer)
	srv.Router.Use(middlew.CORS(cfg.HTTP.AllowedOrigins))
	docs.SwaggerInfo.Host = cfg.HTTP.PublicHost
	srv.RegisterSwagger(cfg.HTTP.PublicHost)
	srv.RegisterMetrics()
	srv.Router.Get("/", handlers.Health)

	return &App{
		log:             log,
		server:          srv,
		logFile:         loggerWithFile.LogFile,
		cfg:             cfg,
		engine:          routing.NewEngine(routingCfg),
		llmClient:       llmClient,
		proposalBreaker: proposalBreaker,
		kafkaProducer:   kafkaProducer,
	}, nil
}

// loadFeeSchedule накатывает миграции и применяет тарифы из таблицы fee_parameters
func loadFeeSchedule(ctx context.Context, cfg *config.Config, routingCfg *routing.Config, log *slog.Logger) error {
	log.Info("выполнение миграций базы данных")
	if err := db.RunMigrations(cfg.DB.MigrationURL(), cfg.DB.MigrationsPath, log); err != nil {
		return fmt.Errorf("ошибка выполнения миграций: %w", err)
	}

	pool, err := db.NewPool(ctx, cfg.DB.DSN(), db.PoolConfig{
		MaxConns:          4,
		MinConns:          1,
		HealthCheckPeriod: 30 * time.Second,
		ConnectTimeout:    5 * time.Second,
		RetryAttempts:     5,
		RetryDelay:        1 * time.Second,
		ApplicationName:   "aero-lite",
	}, log)
	if err != nil {
		return fmt.Errorf("не удалось подключиться к базе данных: %w", err)
	}
	defer pool.Close()

	params, err := postgres.NewFeeParameterRepository(pool).ListParameters(ctx)
	if err != nil {
		return fmt.Errorf("не удалось загрузить тарифы: %w", err)
	}

	unknown := routingCfg.ApplyOverrides(params)
	for _, key := range unknown {
		log.Warn("неизвестный ключ тарифа пропущен", slog.String("key", key))
	}
	log.Info("тарифы из БД применены",
		slog.Int("loaded", len(params)),
		slog.Int("ignored", len(unknown)))
	return nil
}

func (a *App) BuildRoutingLayer() error {
	if a.kafkaProducer == nil {
		err := errors.New("kafkaProducer not initialized")
		a.log.Error(err.Error())
		return err
	}

	a.simulationService = service.NewSimulationService(
		a.engine,
		a.llmClient,
		a.proposalBreaker,
		a.kafkaProducer,
		a.cfg.OpenAI.Timeout,
		a.log,
	)

	routingHandler := handlers.NewRoutingHandler(a.simulationService)

	a.server.Router.Post("/api/v1/routing/simulate", routingHandler.Simulate)
	a.server.Router.Post("/api/ai-routing-sim", routingHandler.Simulate)

	a.log.Info("слой 'routing' собран и маршруты зарегистрированы")
	return nil
}

func (a *App) BuildReceiptLayer() {
	receiptService := service.NewReceiptService(a.engine, a.llmClient, a.cfg.OpenAI.Timeout, a.log)
	receiptHandler := handlers.NewReceiptHandler(receiptService)

	a.server.Router.Post("/api/v1/receipts/analyze", receiptHandler.Analyze)
	a.server.Router.Post("/api/ai-fee-killer", receiptHandler.Analyze)

	a.log.Info("слой 'receipts' собран и маршруты зарегистрированы")
}

func (a *App) Run() error {
	a.log.Info("сервер запускается")

	serverErr := make(chan error, 1)
	go func() {
		if err := a.server.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("ошибка запуска сервера: %w", err)
		}
	}()

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return err
	case sig := <-shutdownChan:
		a.log.Info("получен сигнал завершения", slog.String("signal", sig.String()))
	}

	a.log.Info("приложение останавливается")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.log.Error("ошибка при остановке http сервера", slog.String("error", err.Error()))
	}

	if a.simulationService != nil {
		a.log.Info("остановка simulation service")
		if err := a.simulationService.Shutdown(ctx); err != nil {
			a.log.Error("ошибка при остановке simulation service", slog.String("error", err.Error()))
		}
	}

	if a.kafkaProducer != nil {
		a.log.Info("закрытие kafka producer")
		if err := a.kafkaProducer.Close(); err != nil {
			a.log.Error("ошибка при закрытии kafka producer", slog.String("error", err.Error()))
		}
	}

	a.log.Info("закрытие файла логов")
	if a.logFile != nil {
		if err := a.logFile.Close(); err != nil {
			a.log.Error("ошибка при закрытии файла логов", slog.String("error", err.Error()))
		}
	}

	a.log.Info("приложение остановлено")
	return nil
}
