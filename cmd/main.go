package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	adminLoginHandler "github.com/m04kA/JBarber-BookingService/internal/api/handlers/admin_login"
	cancelAppointmentHandler "github.com/m04kA/JBarber-BookingService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/m04kA/JBarber-BookingService/internal/api/handlers/create_appointment"
	deleteAppointmentHandler "github.com/m04kA/JBarber-BookingService/internal/api/handlers/delete_appointment"
	getAgendaHandler "github.com/m04kA/JBarber-BookingService/internal/api/handlers/get_agenda"
	getDayScheduleHandler "github.com/m04kA/JBarber-BookingService/internal/api/handlers/get_day_schedule"
	"github.com/m04kA/JBarber-BookingService/internal/api/middleware"
	"github.com/m04kA/JBarber-BookingService/internal/config"
	"github.com/m04kA/JBarber-BookingService/internal/domain"
	appointmentRepo "github.com/m04kA/JBarber-BookingService/internal/infra/storage/appointment"
	whatsappClient "github.com/m04kA/JBarber-BookingService/internal/integrations/whatsapp"
	appointmentsService "github.com/m04kA/JBarber-BookingService/internal/service/appointments"
	authService "github.com/m04kA/JBarber-BookingService/internal/service/auth"
	createAppointmentUC "github.com/m04kA/JBarber-BookingService/internal/usecase/create_appointment"
	getAgendaUC "github.com/m04kA/JBarber-BookingService/internal/usecase/get_agenda"
	getDayScheduleUC "github.com/m04kA/JBarber-BookingService/internal/usecase/get_day_schedule"
	"github.com/m04kA/JBarber-BookingService/pkg/dbmetrics"
	"github.com/m04kA/JBarber-BookingService/pkg/logger"
	"github.com/m04kA/JBarber-BookingService/pkg/metrics"
	"github.com/m04kA/JBarber-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/JBarber-BookingService/pkg/txmanager"
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

	log.Info("Starting JBarber-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Каталог слотов приходит из конфигурации, а не из кода
	catalogue, err := domain.NewSlotCatalogue(cfg.Schedule.Slots)
	if err != nil {
		log.Fatal("Failed to build slot catalogue: %v", err)
	}
	log.Info("Slot catalogue loaded: %d slots per day", catalogue.Len())

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

	// Применяем миграции (если указан путь)
	if cfg.Database.MigrationsPath != "" {
		if err := runMigrations(db, cfg.Database.MigrationsPath); err != nil {
			log.Fatal("Failed to run migrations: %v", err)
		}
		log.Info("Migrations applied from %s", cfg.Database.MigrationsPath)
	}

	// Инициализируем WhatsApp клиента (ссылка работает всегда, Twilio опционально)
	waClient := whatsappClient.NewClient(
		cfg.WhatsApp.BarberPhone,
		cfg.WhatsApp.TwilioEnabled,
		cfg.WhatsApp.TwilioAccountSID,
		cfg.WhatsApp.TwilioAuthToken,
		cfg.WhatsApp.TwilioFrom,
		log,
	)
	log.Info("WhatsApp client initialized (barber=%s, twilio_enabled=%t)",
		cfg.WhatsApp.BarberPhone, cfg.WhatsApp.TwilioEnabled)

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		txMgr                 createAppointmentUC.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, log)
	authSvc := authService.NewService(
		cfg.Auth.PasswordHash,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute,
		log,
	)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		catalogue,
		waClient,
		txMgr,
		log,
	)
	getDayScheduleUseCase := getDayScheduleUC.NewUseCase(appointmentRepository, catalogue, log)
	getAgendaUseCase := getAgendaUC.NewUseCase(appointmentsSvc, log)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getDaySchedule := getDayScheduleHandler.NewHandler(getDayScheduleUseCase, log)
	getAgenda := getAgendaHandler.NewHandler(getAgendaUseCase, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentsSvc, log)
	adminLogin := adminLoginHandler.NewHandler(authSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID())

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Занятость слотов на день
	api.HandleFunc("/schedule", getDaySchedule.Handle).Methods(http.MethodGet)

	// Создание записи
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Вход администратора
	api.HandleFunc("/admin/login", adminLogin.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен администратора)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth(authSvc, log))

	// Агенда: все записи, сгруппированные по датам
	admin.HandleFunc("/agenda", getAgenda.Handle).Methods(http.MethodGet)

	// Отмена записи
	admin.HandleFunc("/appointments/{id}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// Физическое удаление записи
	admin.HandleFunc("/appointments/{id}", deleteAppointment.Handle).Methods(http.MethodDelete)

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

// runMigrations применяет миграции из каталога path к открытому соединению
func runMigrations(db *sql.DB, path string) error {
	driver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("migrate driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+path, "postgres", driver)
	if err != nil {
		return fmt.Errorf("migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}

	return nil
}
