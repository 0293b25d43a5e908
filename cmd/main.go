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

	checkBookingClashHandler "github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers/check_booking_clash"
	editRoomHandler "github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers/edit_room"
	findAvailableRoomsHandler "github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers/find_available_rooms"
	getLocationScheduleHandler "github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers/get_location_schedule"
	toggleLocationActiveHandler "github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers/toggle_location_active"
	toggleRoomActiveHandler "github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers/toggle_room_active"
	"github.com/m04kA/SMC-MeetingRoomService/internal/api/middleware"
	"github.com/m04kA/SMC-MeetingRoomService/internal/config"
	bookingRepo "github.com/m04kA/SMC-MeetingRoomService/internal/infra/storage/booking"
	locationRepo "github.com/m04kA/SMC-MeetingRoomService/internal/infra/storage/location"
	roomRepo "github.com/m04kA/SMC-MeetingRoomService/internal/infra/storage/room"
	directoryClient "github.com/m04kA/SMC-MeetingRoomService/internal/integrations/directory"
	notifyClient "github.com/m04kA/SMC-MeetingRoomService/internal/integrations/notify"
	availabilityService "github.com/m04kA/SMC-MeetingRoomService/internal/service/availability"
	roomsService "github.com/m04kA/SMC-MeetingRoomService/internal/service/rooms"
	roomsModels "github.com/m04kA/SMC-MeetingRoomService/internal/service/rooms/models"
	findAvailableRoomsUC "github.com/m04kA/SMC-MeetingRoomService/internal/usecase/find_available_rooms"
	getLocationScheduleUC "github.com/m04kA/SMC-MeetingRoomService/internal/usecase/get_location_schedule"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/dbmetrics"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/logger"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/metrics"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/txmanager"
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

	log.Info("Starting SMC-MeetingRoomService...")
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

	// Инициализируем интеграционных клиентов
	directory := directoryClient.NewClient(
		cfg.DirectoryService.URL,
		time.Duration(cfg.DirectoryService.Timeout)*time.Second,
		log,
	)
	notify := notifyClient.NewClient(
		cfg.NotifyService.URL,
		time.Duration(cfg.NotifyService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (DirectoryService=%s timeout=%ds, NotifyService=%s timeout=%ds)",
		cfg.DirectoryService.URL, cfg.DirectoryService.Timeout, cfg.NotifyService.URL, cfg.NotifyService.Timeout)

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		roomRepository     *roomRepo.Repository
		locationRepository *locationRepo.Repository
		txMgr              roomsService.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		roomRepository = roomRepo.NewRepository(wrappedDB)
		locationRepository = locationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		roomRepository = roomRepo.NewRepository(db)
		locationRepository = locationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Настройки email уведомлений каскадной деактивации
	emailSettings := roomsModels.EmailSettings{
		FromEmail: cfg.Email.FromEmail,
		Subject:   cfg.Email.CancellationSubject,
		Template:  cfg.Email.CancellationTemplate,
	}

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(bookingRepository, log)
	roomsSvc := roomsService.NewService(
		roomRepository,
		locationRepository,
		bookingRepository,
		directory,
		notify,
		txMgr,
		log,
	)

	// Инициализируем use cases
	getLocationScheduleUseCase := getLocationScheduleUC.NewUseCase(
		roomRepository,
		bookingRepository,
		log,
	)
	findAvailableRoomsUseCase := findAvailableRoomsUC.NewUseCase(
		roomRepository,
		bookingRepository,
		availabilitySvc,
		log,
	)

	// Инициализируем handlers
	getLocationSchedule := getLocationScheduleHandler.NewHandler(getLocationScheduleUseCase, log)
	findAvailableRooms := findAvailableRoomsHandler.NewHandler(findAvailableRoomsUseCase, log)
	checkBookingClash := checkBookingClashHandler.NewHandler(availabilitySvc, log)
	editRoom := editRoomHandler.NewHandler(roomsSvc, log)
	toggleRoomActive := toggleRoomActiveHandler.NewHandler(roomsSvc, emailSettings, log)
	toggleLocationActive := toggleLocationActiveHandler.NewHandler(roomsSvc, emailSettings, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Дневной снапшот локации: комнаты и их бронирования на дату
	api.HandleFunc("/locations/{location}/schedule",
		getLocationSchedule.Handle).Methods(http.MethodGet)

	// Поиск свободных комнат в окне [start, end)
	api.HandleFunc("/locations/{location}/available-rooms",
		findAvailableRooms.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Проверка кандидата на пересечение с существующими бронированиями
	protected.HandleFunc("/bookings/check-clash", checkBookingClash.Handle).Methods(http.MethodPost)

	// Редактирование комнаты
	protected.HandleFunc("/rooms/{roomId}", editRoom.Handle).Methods(http.MethodPut)

	// Активация/деактивация комнаты (деактивация каскадно отменяет бронирования)
	protected.HandleFunc("/rooms/{roomId}/active", toggleRoomActive.Handle).Methods(http.MethodPatch)

	// Активация/деактивация локации
	protected.HandleFunc("/locations/{locationId}/active", toggleLocationActive.Handle).Methods(http.MethodPatch)

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
