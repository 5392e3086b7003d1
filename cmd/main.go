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

	createAppointmentHandler "github.com/schnittwerk/SW-SchedulingService/internal/api/handlers/create_appointment"
	createServiceHandler "github.com/schnittwerk/SW-SchedulingService/internal/api/handlers/create_service"
	createStylistHandler "github.com/schnittwerk/SW-SchedulingService/internal/api/handlers/create_stylist"
	getAvailabilityHandler "github.com/schnittwerk/SW-SchedulingService/internal/api/handlers/get_availability"
	getSalonHandler "github.com/schnittwerk/SW-SchedulingService/internal/api/handlers/get_salon"
	getSalonAppointmentsHandler "github.com/schnittwerk/SW-SchedulingService/internal/api/handlers/get_salon_appointments"
	listServicesHandler "github.com/schnittwerk/SW-SchedulingService/internal/api/handlers/list_services"
	listStylistsHandler "github.com/schnittwerk/SW-SchedulingService/internal/api/handlers/list_stylists"
	updateAppointmentStatusHandler "github.com/schnittwerk/SW-SchedulingService/internal/api/handlers/update_appointment_status"
	"github.com/schnittwerk/SW-SchedulingService/internal/api/middleware"
	"github.com/schnittwerk/SW-SchedulingService/internal/config"
	"github.com/schnittwerk/SW-SchedulingService/internal/infra/bootstrap"
	appointmentRepo "github.com/schnittwerk/SW-SchedulingService/internal/infra/storage/appointment"
	catalogRepo "github.com/schnittwerk/SW-SchedulingService/internal/infra/storage/catalog"
	salonRepo "github.com/schnittwerk/SW-SchedulingService/internal/infra/storage/salon"
	appointmentsService "github.com/schnittwerk/SW-SchedulingService/internal/service/appointments"
	catalogService "github.com/schnittwerk/SW-SchedulingService/internal/service/catalog"
	createAppointmentUC "github.com/schnittwerk/SW-SchedulingService/internal/usecase/create_appointment"
	getAvailabilityUC "github.com/schnittwerk/SW-SchedulingService/internal/usecase/get_availability"
	"github.com/schnittwerk/SW-SchedulingService/pkg/dbmetrics"
	"github.com/schnittwerk/SW-SchedulingService/pkg/logger"
	"github.com/schnittwerk/SW-SchedulingService/pkg/metrics"
	"github.com/schnittwerk/SW-SchedulingService/pkg/simpletxmanager"
	"github.com/schnittwerk/SW-SchedulingService/pkg/txmanager"
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

	log.Info("Starting SW-SchedulingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Применяем миграции и начальные данные до старта роутера
	bootstrapCtx, cancelBootstrap := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelBootstrap()

	if err := bootstrap.Migrate(bootstrapCtx, db); err != nil {
		log.Fatal("Failed to run migrations: %v", err)
	}
	log.Info("Database migrations applied")

	if cfg.Salon.SeedDefaults {
		if err := bootstrap.Seed(bootstrapCtx, db); err != nil {
			log.Fatal("Failed to seed default salon data: %v", err)
		}
		log.Info("Default salon data ensured (salon=%s)", bootstrap.DefaultSalonID)
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		salonRepository       *salonRepo.Repository
		catalogRepository     *catalogRepo.Repository
	)

	// Интерфейс transaction manager, общий для обоих вариантов
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		salonRepository = salonRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		salonRepository = salonRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		salonRepository,
		txMgr,
		log,
	)
	catalogSvc := catalogService.NewService(
		salonRepository,
		catalogRepository,
		log,
	)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		salonRepository,
		catalogRepository,
		appointmentRepository,
		log,
	)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		salonRepository,
		catalogRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getSalonAppointments := getSalonAppointmentsHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log)
	getSalon := getSalonHandler.NewHandler(catalogSvc, log)
	listStylists := listStylistsHandler.NewHandler(catalogSvc, log)
	createStylist := createStylistHandler.NewHandler(catalogSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api").Subrouter()

	// --- Доступность ---
	api.HandleFunc("/availability/{salonId}/{date}", getAvailability.Handle).Methods(http.MethodGet)

	// --- Записи ---
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{id}", updateAppointmentStatus.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/salon/{salonId}/appointments", getSalonAppointments.Handle).Methods(http.MethodGet)

	// --- Каталог салона ---
	api.HandleFunc("/salon/{salonId}", getSalon.Handle).Methods(http.MethodGet)
	api.HandleFunc("/salon/{salonId}/stylists", listStylists.Handle).Methods(http.MethodGet)
	api.HandleFunc("/salon/{salonId}/stylists", createStylist.Handle).Methods(http.MethodPost)
	api.HandleFunc("/salon/{salonId}/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/salon/{salonId}/services", createService.Handle).Methods(http.MethodPost)

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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
