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

	cancelReservationHandler "github.com/m04kA/RST-ReservationService/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/m04kA/RST-ReservationService/internal/api/handlers/create_reservation"
	createTableHandler "github.com/m04kA/RST-ReservationService/internal/api/handlers/create_table"
	getAvailableSlotsHandler "github.com/m04kA/RST-ReservationService/internal/api/handlers/get_available_slots"
	getCustomerReservationsHandler "github.com/m04kA/RST-ReservationService/internal/api/handlers/get_customer_reservations"
	getReservationHandler "github.com/m04kA/RST-ReservationService/internal/api/handlers/get_reservation"
	listReservationsHandler "github.com/m04kA/RST-ReservationService/internal/api/handlers/list_reservations"
	listTablesHandler "github.com/m04kA/RST-ReservationService/internal/api/handlers/list_tables"
	subscribeNewsletterHandler "github.com/m04kA/RST-ReservationService/internal/api/handlers/subscribe_newsletter"
	unsubscribeNewsletterHandler "github.com/m04kA/RST-ReservationService/internal/api/handlers/unsubscribe_newsletter"
	"github.com/m04kA/RST-ReservationService/internal/api/middleware"
	"github.com/m04kA/RST-ReservationService/internal/config"
	customerRepo "github.com/m04kA/RST-ReservationService/internal/infra/storage/customer"
	newsletterRepo "github.com/m04kA/RST-ReservationService/internal/infra/storage/newsletter"
	reservationRepo "github.com/m04kA/RST-ReservationService/internal/infra/storage/reservation"
	tableRepo "github.com/m04kA/RST-ReservationService/internal/infra/storage/table"
	availabilityService "github.com/m04kA/RST-ReservationService/internal/service/availability"
	newsletterService "github.com/m04kA/RST-ReservationService/internal/service/newsletter"
	reservationsService "github.com/m04kA/RST-ReservationService/internal/service/reservations"
	createReservationUC "github.com/m04kA/RST-ReservationService/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/m04kA/RST-ReservationService/internal/usecase/get_available_slots"
	"github.com/m04kA/RST-ReservationService/pkg/logger"
	"github.com/m04kA/RST-ReservationService/pkg/metrics"
	"github.com/m04kA/RST-ReservationService/pkg/txmanager"
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

	log.Info("Starting RST-ReservationService...")
	log.Info("Configuration loaded from config.toml")

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

	if cfg.Metrics.Enabled {
		metricsCollector.CollectDBStats(db, 15*time.Second, stopMetricsCh)
		log.Info("Database pool metrics collection started")
	}

	// Инициализируем репозитории
	customers := customerRepo.NewRepository(db)
	reservations := reservationRepo.NewRepository(db)
	tables := tableRepo.NewRepository(db)
	subscribers := newsletterRepo.NewRepository(db)

	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем сервисы
	availability := availabilityService.NewService(
		reservations,
		tables,
		availabilityService.Config{
			Policy:                 availabilityService.Policy(cfg.Booking.TableSelection),
			PoolSize:               cfg.Booking.TableCount,
			SlotStepMinutes:        cfg.Booking.SlotStepMinutes,
			DefaultDurationMinutes: cfg.Booking.DefaultDurationMinutes,
		},
		log,
	)
	log.Info("Table selection policy: %s (pool size %d, slot step %d min, default duration %d min)",
		cfg.Booking.TableSelection, cfg.Booking.TableCount, cfg.Booking.SlotStepMinutes, cfg.Booking.DefaultDurationMinutes)

	reservationsSvc := reservationsService.NewService(reservations, customers, log)
	newsletterSvc := newsletterService.NewService(subscribers, log)

	// Инициализируем use cases
	var outcomeRecorder createReservationUC.OutcomeRecorder
	if cfg.Metrics.Enabled {
		outcomeRecorder = metricsCollector
	}

	createReservationUseCase := createReservationUC.NewUseCase(
		customers,
		reservations,
		availability,
		txMgr,
		outcomeRecorder,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(availability, log)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	getCustomerReservations := getCustomerReservationsHandler.NewHandler(reservationsSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationsSvc, log)
	subscribeNewsletter := subscribeNewsletterHandler.NewHandler(newsletterSvc, log)
	unsubscribeNewsletter := unsubscribeNewsletterHandler.NewHandler(newsletterSvc, log)
	listTables := listTablesHandler.NewHandler(tables, log)
	createTable := createTableHandler.NewHandler(tables, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Бронирования
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// Свободные слоты
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// История броней клиента
	api.HandleFunc("/customers/{email}/reservations", getCustomerReservations.Handle).Methods(http.MethodGet)

	// Рассылка
	api.HandleFunc("/newsletter/subscribe", subscribeNewsletter.Handle).Methods(http.MethodPost)
	api.HandleFunc("/newsletter/unsubscribe", unsubscribeNewsletter.Handle).Methods(http.MethodPost)

	// Столы
	api.HandleFunc("/tables", listTables.Handle).Methods(http.MethodGet)
	api.HandleFunc("/tables", createTable.Handle).Methods(http.MethodPost)

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
