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

	cancelAppointmentHandler "github.com/m04kA/SMC-SalonConsole/internal/api/handlers/cancel_appointment"
	getAppointmentHandler "github.com/m04kA/SMC-SalonConsole/internal/api/handlers/get_appointment"
	getAppointmentsHandler "github.com/m04kA/SMC-SalonConsole/internal/api/handlers/get_appointments"
	getSettingsHandler "github.com/m04kA/SMC-SalonConsole/internal/api/handlers/get_settings"
	resolveGroupStaffHandler "github.com/m04kA/SMC-SalonConsole/internal/api/handlers/resolve_group_staff"
	updateSettingsHandler "github.com/m04kA/SMC-SalonConsole/internal/api/handlers/update_settings"
	"github.com/m04kA/SMC-SalonConsole/internal/api/middleware"
	"github.com/m04kA/SMC-SalonConsole/internal/config"
	"github.com/m04kA/SMC-SalonConsole/internal/daterange"
	"github.com/m04kA/SMC-SalonConsole/internal/domain"
	"github.com/m04kA/SMC-SalonConsole/internal/infra/cache/staffcache"
	appointmentRepo "github.com/m04kA/SMC-SalonConsole/internal/infra/storage/appointment"
	settingsRepo "github.com/m04kA/SMC-SalonConsole/internal/infra/storage/settings"
	staffRepo "github.com/m04kA/SMC-SalonConsole/internal/infra/storage/staff"
	catalogServiceClient "github.com/m04kA/SMC-SalonConsole/internal/integrations/catalogservice"
	appointmentsService "github.com/m04kA/SMC-SalonConsole/internal/service/appointments"
	settingsService "github.com/m04kA/SMC-SalonConsole/internal/service/settings"
	getAppointmentsInRangeUC "github.com/m04kA/SMC-SalonConsole/internal/usecase/get_appointments_in_range"
	resolveGroupStaffUC "github.com/m04kA/SMC-SalonConsole/internal/usecase/resolve_group_staff"
	"github.com/m04kA/SMC-SalonConsole/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonConsole/pkg/logger"
	"github.com/m04kA/SMC-SalonConsole/pkg/metrics"
	"github.com/m04kA/SMC-SalonConsole/pkg/txmanager"
)

func main() {
	configPath := "config.toml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		configPath = v
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-SalonConsole...")
	log.Info("Configuration loaded from %s", configPath)

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

	// Без метрик обертка работает как обычный *sql.DB
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем интеграционных клиентов
	catalogClient := catalogServiceClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		log,
	)
	log.Info("Catalog client initialized (url=%s, timeout=%ds)", cfg.CatalogService.URL, cfg.CatalogService.Timeout)

	// Инициализируем репозитории
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	settingsRepository := settingsRepo.NewRepository(wrappedDB)
	staffRepository := staffRepo.NewRepository(wrappedDB)

	// Состав сотрудников читаем через redis, если кеш включен
	var roster resolveGroupStaffUC.RosterProvider = staffRepository
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 2*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis is unavailable, roster will be read from database: %v", err)
		}
		cancelPing()

		roster = staffcache.New(rdb, staffRepository, cfg.Redis.TTL(), cfg.Redis.Prefix, metricsCollector, log)
		log.Info("Roster cache enabled (addr=%s, ttl=%s)", cfg.Redis.Addr, cfg.Redis.TTL())
	}

	// Инициализируем сервисы
	settingsSvc := settingsService.NewService(
		settingsRepository,
		catalogClient,
		txMgr,
		buildDefaults(cfg.Defaults, log),
		log,
	)
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		settingsSvc,
		catalogClient,
		txMgr,
		log,
	)

	// Инициализируем use cases
	resolveGroupStaffUseCase := resolveGroupStaffUC.NewUseCase(
		roster,
		settingsSvc,
		catalogClient,
		metricsCollector,
		log,
	)
	getAppointmentsInRangeUseCase := getAppointmentsInRangeUC.NewUseCase(
		appointmentRepository,
		settingsSvc,
		log,
	)

	// Инициализируем handlers
	resolveGroupStaff := resolveGroupStaffHandler.NewHandler(resolveGroupStaffUseCase, log)
	getAppointments := getAppointmentsHandler.NewHandler(getAppointmentsInRangeUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Подбор сотрудников для группы
	api.HandleFunc("/companies/{companyId}/locations/{locationId}/group-bookings/staff",
		resolveGroupStaff.Handle).Methods(http.MethodPost)

	// Записи компании за период
	api.HandleFunc("/companies/{companyId}/appointments", getAppointments.Handle).Methods(http.MethodGet)

	// Настройки консоли
	api.HandleFunc("/companies/{companyId}/settings", getSettings.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/companies/{companyId}/settings", updateSettings.Handle).Methods(http.MethodPut)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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

// buildDefaults переводит секцию [defaults] в настройки по умолчанию
func buildDefaults(cfg config.DefaultsConfig, log *logger.Logger) settingsService.Defaults {
	defaults := settingsService.BuiltinDefaults()

	if cfg.WeekStart != "" {
		if day, ok := daterange.ParseWeekday(cfg.WeekStart); ok {
			defaults.WeekStart = day
		} else {
			log.Warn("Unknown defaults.week_start %q, using %s", cfg.WeekStart, defaults.WeekStart)
		}
	}
	if cfg.Timezone != "" {
		defaults.Timezone = cfg.Timezone
	}
	if cfg.SameStaffFallback != "" {
		defaults.SameStaffFallback = domain.SameStaffFallback(cfg.SameStaffFallback)
	}
	defaults.CancellationCutoffHours = cfg.CancellationCutoffHours
	defaults.RescheduleCutoffHours = cfg.RescheduleCutoffHours

	return defaults
}
