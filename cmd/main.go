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

	acceptReservationHandler "github.com/X-Sarthak/CSIR-Project-sub000/internal/api/handlers/accept_reservation"
	cancelReservationHandler "github.com/X-Sarthak/CSIR-Project-sub000/internal/api/handlers/cancel_reservation"
	createRequesterHandler "github.com/X-Sarthak/CSIR-Project-sub000/internal/api/handlers/create_requester"
	createRoomHandler "github.com/X-Sarthak/CSIR-Project-sub000/internal/api/handlers/create_room"
	deleteRoomHandler "github.com/X-Sarthak/CSIR-Project-sub000/internal/api/handlers/delete_room"
	getPendingCountHandler "github.com/X-Sarthak/CSIR-Project-sub000/internal/api/handlers/get_pending_count"
	getRequesterHandler "github.com/X-Sarthak/CSIR-Project-sub000/internal/api/handlers/get_requester"
	getRequesterReservationsHandler "github.com/X-Sarthak/CSIR-Project-sub000/internal/api/handlers/get_requester_reservations"
	getReservationHandler "github.com/X-Sarthak/CSIR-Project-sub000/internal/api/handlers/get_reservation"
	getRoomHandler "github.com/X-Sarthak/CSIR-Project-sub000/internal/api/handlers/get_room"
	getRoomReservationsHandler "github.com/X-Sarthak/CSIR-Project-sub000/internal/api/handlers/get_room_reservations"
	getRoomWindowHandler "github.com/X-Sarthak/CSIR-Project-sub000/internal/api/handlers/get_room_window"
	rejectReservationHandler "github.com/X-Sarthak/CSIR-Project-sub000/internal/api/handlers/reject_reservation"
	replaceRoomWindowHandler "github.com/X-Sarthak/CSIR-Project-sub000/internal/api/handlers/replace_room_window"
	setRoomActiveHandler "github.com/X-Sarthak/CSIR-Project-sub000/internal/api/handlers/set_room_active"
	submitReservationHandler "github.com/X-Sarthak/CSIR-Project-sub000/internal/api/handlers/submit_reservation"
	"github.com/X-Sarthak/CSIR-Project-sub000/internal/api/middleware"
	"github.com/X-Sarthak/CSIR-Project-sub000/internal/config"
	requesterRepo "github.com/X-Sarthak/CSIR-Project-sub000/internal/infra/storage/requester"
	reservationRepo "github.com/X-Sarthak/CSIR-Project-sub000/internal/infra/storage/reservation"
	roomRepo "github.com/X-Sarthak/CSIR-Project-sub000/internal/infra/storage/room"
	identityClient "github.com/X-Sarthak/CSIR-Project-sub000/internal/integrations/identity"
	requestersService "github.com/X-Sarthak/CSIR-Project-sub000/internal/service/requesters"
	reservationsService "github.com/X-Sarthak/CSIR-Project-sub000/internal/service/reservations"
	roomsService "github.com/X-Sarthak/CSIR-Project-sub000/internal/service/rooms"
	replaceWindowUC "github.com/X-Sarthak/CSIR-Project-sub000/internal/usecase/replace_window"
	submitReservationUC "github.com/X-Sarthak/CSIR-Project-sub000/internal/usecase/submit_reservation"
	"github.com/X-Sarthak/CSIR-Project-sub000/pkg/dbmetrics"
	"github.com/X-Sarthak/CSIR-Project-sub000/pkg/logger"
	"github.com/X-Sarthak/CSIR-Project-sub000/pkg/metrics"
	"github.com/X-Sarthak/CSIR-Project-sub000/pkg/simpletxmanager"
	"github.com/X-Sarthak/CSIR-Project-sub000/pkg/txmanager"
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

	log.Info("Starting reservation service...")
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

	// Клиент identity-сервиса, через него проходит каждый bearer-токен
	identity := identityClient.NewClient(
		cfg.Identity.URL,
		time.Duration(cfg.Identity.Timeout)*time.Second,
		log,
	)
	log.Info("Identity client initialized (url=%s, timeout=%ds)", cfg.Identity.URL, cfg.Identity.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		roomRepository        *roomRepo.Repository
		requesterRepository   *requesterRepo.Repository
	)

	// Интерфейс transaction manager: submit использует сериализуемые
	// транзакции, замена окна - обычные
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		roomRepository = roomRepo.NewRepository(wrappedDB)
		requesterRepository = requesterRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		roomRepository = roomRepo.NewRepository(db)
		requesterRepository = requesterRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(reservationRepository, log)
	roomSvc := roomsService.NewService(roomRepository, log)
	requesterSvc := requestersService.NewService(requesterRepository, log)

	// Инициализируем use cases
	submitReservationUseCase := submitReservationUC.NewUseCase(
		reservationRepository,
		roomRepository,
		txMgr,
		log,
	)
	replaceWindowUseCase := replaceWindowUC.NewUseCase(
		roomRepository,
		reservationRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	submitReservation := submitReservationHandler.NewHandler(submitReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	acceptReservation := acceptReservationHandler.NewHandler(reservationSvc, log)
	rejectReservation := rejectReservationHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	getRoomReservations := getRoomReservationsHandler.NewHandler(reservationSvc, log)
	getPendingCount := getPendingCountHandler.NewHandler(reservationSvc, log)
	getRequesterReservations := getRequesterReservationsHandler.NewHandler(reservationSvc, log)
	createRoom := createRoomHandler.NewHandler(roomSvc, log)
	getRoom := getRoomHandler.NewHandler(roomSvc, log)
	setRoomActive := setRoomActiveHandler.NewHandler(roomSvc, log)
	deleteRoom := deleteRoomHandler.NewHandler(roomSvc, log)
	getRoomWindow := getRoomWindowHandler.NewHandler(roomSvc, log)
	replaceRoomWindow := replaceRoomWindowHandler.NewHandler(replaceWindowUseCase, log)
	createRequester := createRequesterHandler.NewHandler(requesterSvc, log)
	getRequester := getRequesterHandler.NewHandler(requesterSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Карточка переговорной и её окно доступности
	api.HandleFunc("/rooms/{id}", getRoom.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{id}/window", getRoomWindow.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют bearer-токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(identity, log))

	// --- Бронирования ---
	protected.HandleFunc("/reservations", submitReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{id}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{id}/accept", acceptReservation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reservations/{id}/reject", rejectReservation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reservations/{id}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// --- Переговорные ---
	protected.HandleFunc("/rooms", createRoom.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/rooms/{id}", deleteRoom.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/rooms/{id}/active", setRoomActive.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/rooms/{id}/window", replaceRoomWindow.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/rooms/{id}/reservations", getRoomReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/rooms/{id}/reservations/pending-count", getPendingCount.Handle).Methods(http.MethodGet)

	// --- Пользователи ---
	protected.HandleFunc("/requesters", createRequester.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/requesters/{id}", getRequester.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/requesters/{id}/reservations", getRequesterReservations.Handle).Methods(http.MethodGet)

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
