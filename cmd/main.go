package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	createTankHandler "github.com/m04kA/SMC-TankScheduler/internal/api/handlers/create_tank"
	deleteDayOverrideHandler "github.com/m04kA/SMC-TankScheduler/internal/api/handlers/delete_day_override"
	deleteTankHandler "github.com/m04kA/SMC-TankScheduler/internal/api/handlers/delete_tank"
	exportMonthCalendarHandler "github.com/m04kA/SMC-TankScheduler/internal/api/handlers/export_month_calendar"
	getDayTimetableHandler "github.com/m04kA/SMC-TankScheduler/internal/api/handlers/get_day_timetable"
	getMonthCalendarHandler "github.com/m04kA/SMC-TankScheduler/internal/api/handlers/get_month_calendar"
	getOperatingSettingsHandler "github.com/m04kA/SMC-TankScheduler/internal/api/handlers/get_operating_settings"
	listDayOverridesHandler "github.com/m04kA/SMC-TankScheduler/internal/api/handlers/list_day_overrides"
	listTanksHandler "github.com/m04kA/SMC-TankScheduler/internal/api/handlers/list_tanks"
	setDayOverrideHandler "github.com/m04kA/SMC-TankScheduler/internal/api/handlers/set_day_override"
	updateOperatingSettingsHandler "github.com/m04kA/SMC-TankScheduler/internal/api/handlers/update_operating_settings"
	updateTankHandler "github.com/m04kA/SMC-TankScheduler/internal/api/handlers/update_tank"
	"github.com/m04kA/SMC-TankScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-TankScheduler/internal/config"
	"github.com/m04kA/SMC-TankScheduler/internal/infra/cache"
	bookingRepo "github.com/m04kA/SMC-TankScheduler/internal/infra/storage/booking"
	overrideRepo "github.com/m04kA/SMC-TankScheduler/internal/infra/storage/override"
	settingsRepo "github.com/m04kA/SMC-TankScheduler/internal/infra/storage/settings"
	tankRepo "github.com/m04kA/SMC-TankScheduler/internal/infra/storage/tank"
	"github.com/m04kA/SMC-TankScheduler/internal/scheduling"
	overridesService "github.com/m04kA/SMC-TankScheduler/internal/service/overrides"
	settingsService "github.com/m04kA/SMC-TankScheduler/internal/service/settings"
	tanksService "github.com/m04kA/SMC-TankScheduler/internal/service/tanks"
	getDayTimetableUC "github.com/m04kA/SMC-TankScheduler/internal/usecase/get_day_timetable"
	getMonthCalendarUC "github.com/m04kA/SMC-TankScheduler/internal/usecase/get_month_calendar"
	setDayOverrideUC "github.com/m04kA/SMC-TankScheduler/internal/usecase/set_day_override"
	"github.com/m04kA/SMC-TankScheduler/pkg/dbmetrics"
	"github.com/m04kA/SMC-TankScheduler/pkg/logger"
	"github.com/m04kA/SMC-TankScheduler/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-TankScheduler...")
	log.Info("Configuration loaded from config.toml (capacity_policy=%s)", cfg.Scheduler.CapacityPolicy)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Репозитории работают либо с обёрткой метрик, либо с голым *sql.DB
	var executor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		executor = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	bookingRepository := bookingRepo.NewRepository(executor)
	overrideRepository := overrideRepo.NewRepository(executor)

	var (
		settingsStore cache.SettingsStore = settingsRepo.NewRepository(executor)
		tankStore     cache.TankStore     = tankRepo.NewRepository(executor)
	)

	// Кэш настроек и списка баков в Redis (опционально)
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, pingCancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			// Кэш не обязателен, при недоступности запросы идут в БД
			log.Warn("Redis is unavailable at %s: %v", cfg.Redis.Address, err)
		}
		pingCancel()

		ttl := time.Duration(cfg.Redis.CacheTTLSeconds) * time.Second
		settingsStore = cache.NewSettings(settingsStore, redisClient, ttl, log)
		tankStore = cache.NewTanks(tankStore, redisClient, ttl, log)
		log.Info("Redis cache enabled (address=%s, ttl=%s)", cfg.Redis.Address, ttl)
	}

	// Движок расписания
	policy, ok := scheduling.ParseCapacityPolicy(cfg.Scheduler.CapacityPolicy)
	if !ok {
		log.Fatal("Unknown capacity policy: %s", cfg.Scheduler.CapacityPolicy)
	}
	engine := scheduling.NewEngine(policy)

	// Инициализируем сервисы
	settingsSvc := settingsService.NewService(settingsStore, tankStore, log)
	tanksSvc := tanksService.NewService(tankStore, log)
	overridesSvc := overridesService.NewService(overrideRepository, log)

	// Инициализируем use cases
	getMonthCalendarUseCase := getMonthCalendarUC.NewUseCase(
		settingsStore,
		tankStore,
		overrideRepository,
		bookingRepository,
		engine,
		metricsCollector,
		log,
	)

	getDayTimetableUseCase := getDayTimetableUC.NewUseCase(
		settingsStore,
		tankStore,
		overrideRepository,
		bookingRepository,
		engine,
		log,
	)

	setDayOverrideUseCase := setDayOverrideUC.NewUseCase(
		settingsStore,
		tankStore,
		overrideRepository,
		engine,
		log,
	)

	// Инициализируем handlers
	getMonthCalendar := getMonthCalendarHandler.NewHandler(getMonthCalendarUseCase, log)
	exportMonthCalendar := exportMonthCalendarHandler.NewHandler(getMonthCalendarUseCase, log)
	getDayTimetable := getDayTimetableHandler.NewHandler(getDayTimetableUseCase, log)
	getOperatingSettings := getOperatingSettingsHandler.NewHandler(settingsSvc, log)
	updateOperatingSettings := updateOperatingSettingsHandler.NewHandler(settingsSvc, log)
	listTanks := listTanksHandler.NewHandler(tanksSvc, log)
	createTank := createTankHandler.NewHandler(tanksSvc, log)
	updateTank := updateTankHandler.NewHandler(tanksSvc, log)
	deleteTank := deleteTankHandler.NewHandler(tanksSvc, log)
	setDayOverride := setDayOverrideHandler.NewHandler(setDayOverrideUseCase, log)
	deleteDayOverride := deleteDayOverrideHandler.NewHandler(overridesSvc, log)
	listDayOverrides := listDayOverridesHandler.NewHandler(overridesSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
		go limiter.RunCleanup(time.Minute, stopMetricsCh)
		api.Use(limiter.Middleware)
		log.Info("Rate limit enabled (rps=%.1f, burst=%d)", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Календарь месяца с доступностью по дням
	api.HandleFunc("/calendar/{year:[0-9]{4}}/{month:[0-9]{1,2}}", getMonthCalendar.Handle).Methods(http.MethodGet)

	// Расписание сессий по бакам на дату
	api.HandleFunc("/days/{date}/timetable", getDayTimetable.Handle).Methods(http.MethodGet)

	// Настройки центра и список баков
	api.HandleFunc("/settings", getOperatingSettings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/tanks", listTanks.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют X-User-ID администратора)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth)
	admin.Use(middleware.AdminOnly(cfg.Auth.IsAdmin))

	// --- Настройки ---
	admin.HandleFunc("/settings", updateOperatingSettings.Handle).Methods(http.MethodPut)

	// --- Баки ---
	admin.HandleFunc("/tanks", createTank.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/tanks/{tankId}", updateTank.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/tanks/{tankId}", deleteTank.Handle).Methods(http.MethodDelete)

	// --- Исключения по датам ---
	admin.HandleFunc("/overrides", listDayOverrides.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/overrides/{date}", setDayOverride.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/overrides/{date}", deleteDayOverride.Handle).Methods(http.MethodDelete)

	// --- Выгрузка календаря ---
	admin.HandleFunc("/calendar/{year:[0-9]{4}}/{month:[0-9]{1,2}}/export", exportMonthCalendar.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем фоновые задачи: сбор метрик пула и очистку rate limiter
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
