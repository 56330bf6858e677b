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

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "barber-scheduling-service/internal/api/handlers/cancel_booking"
	confirmBookingHandler "barber-scheduling-service/internal/api/handlers/confirm_booking"
	createBarberHandler "barber-scheduling-service/internal/api/handlers/create_barber"
	createBookingHandler "barber-scheduling-service/internal/api/handlers/create_booking"
	createBookingAdminHandler "barber-scheduling-service/internal/api/handlers/create_booking_admin"
	createLinkTokenHandler "barber-scheduling-service/internal/api/handlers/create_link_token"
	createPlanHandler "barber-scheduling-service/internal/api/handlers/create_plan"
	deletePlanHandler "barber-scheduling-service/internal/api/handlers/delete_plan"
	getBarberBookingsHandler "barber-scheduling-service/internal/api/handlers/get_barber_bookings"
	getBookingHandler "barber-scheduling-service/internal/api/handlers/get_booking"
	getFreeSlotsHandler "barber-scheduling-service/internal/api/handlers/get_free_slots"
	getScheduleConfigHandler "barber-scheduling-service/internal/api/handlers/get_schedule_config"
	listBarbersHandler "barber-scheduling-service/internal/api/handlers/list_barbers"
	listPlansHandler "barber-scheduling-service/internal/api/handlers/list_plans"
	planOccurrencesHandler "barber-scheduling-service/internal/api/handlers/plan_occurrences"
	updateBarberHandler "barber-scheduling-service/internal/api/handlers/update_barber"
	updateBookingStatusHandler "barber-scheduling-service/internal/api/handlers/update_booking_status"
	updatePlanHandler "barber-scheduling-service/internal/api/handlers/update_plan"
	updateScheduleConfigHandler "barber-scheduling-service/internal/api/handlers/update_schedule_config"
	"barber-scheduling-service/internal/api/middleware"
	"barber-scheduling-service/internal/config"
	barberRepo "barber-scheduling-service/internal/infra/storage/barber"
	bookingRepo "barber-scheduling-service/internal/infra/storage/booking"
	planRepo "barber-scheduling-service/internal/infra/storage/plan"
	scheduleRepo "barber-scheduling-service/internal/infra/storage/schedule"
	tokenRepo "barber-scheduling-service/internal/infra/storage/token"
	"barber-scheduling-service/internal/infra/tokenstore"
	whatsappClient "barber-scheduling-service/internal/integrations/whatsapp"
	bookingsService "barber-scheduling-service/internal/service/bookings"
	plansService "barber-scheduling-service/internal/service/plans"
	scheduleService "barber-scheduling-service/internal/service/schedule"
	confirmBookingUC "barber-scheduling-service/internal/usecase/confirm_booking"
	createBookingUC "barber-scheduling-service/internal/usecase/create_booking"
	createLinkTokenUC "barber-scheduling-service/internal/usecase/create_link_token"
	createPlanUC "barber-scheduling-service/internal/usecase/create_plan"
	getFreeSlotsUC "barber-scheduling-service/internal/usecase/get_free_slots"
	updatePlanUC "barber-scheduling-service/internal/usecase/update_plan"
	"barber-scheduling-service/pkg/dbmetrics"
	"barber-scheduling-service/pkg/logger"
	"barber-scheduling-service/pkg/metrics"
	"barber-scheduling-service/pkg/simpletxmanager"
	"barber-scheduling-service/pkg/txmanager"
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

	log.Info("Starting barber-scheduling-service...")

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

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Подключаемся к Redis (хранилище токенов персональных ссылок)
	linkTokens, err := tokenstore.NewRedisStore(
		cfg.Redis.Addr,
		cfg.Redis.Password,
		cfg.Redis.DB,
		time.Duration(cfg.Redis.LinkTokenTTLMin)*time.Minute,
	)
	if err != nil {
		log.Fatal("Failed to connect to redis: %v", err)
	}
	defer linkTokens.Close()
	log.Info("Connected to redis at %s (link token TTL %d min)", cfg.Redis.Addr, cfg.Redis.LinkTokenTTLMin)

	// Клиент WhatsApp-шлюза
	notifier := whatsappClient.NewClient(
		cfg.WhatsApp.URL,
		cfg.WhatsApp.Enabled,
		time.Duration(cfg.WhatsApp.Timeout)*time.Second,
		log,
	)
	log.Info("WhatsApp gateway client initialized (enabled=%v, url=%s)", cfg.WhatsApp.Enabled, cfg.WhatsApp.URL)

	// Инициализируем репозитории (с метриками или без)
	var (
		barberRepository   *barberRepo.Repository
		bookingRepository  *bookingRepo.Repository
		scheduleRepository *scheduleRepo.Repository
		planRepository     *planRepo.Repository
		tokenRepository    *tokenRepo.Repository
	)

	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		barberRepository = barberRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		planRepository = planRepo.NewRepository(wrappedDB)
		tokenRepository = tokenRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		barberRepository = barberRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		planRepository = planRepo.NewRepository(db)
		tokenRepository = tokenRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, barberRepository, notifier, log)
	scheduleSvc := scheduleService.NewService(barberRepository, scheduleRepository, txMgr, log)
	plansSvc := plansService.NewService(planRepository, barberRepository, log)

	// Инициализируем use cases
	getFreeSlotsUseCase := getFreeSlotsUC.NewUseCase(
		barberRepository,
		scheduleRepository,
		bookingRepository,
		planRepository,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		barberRepository,
		scheduleRepository,
		bookingRepository,
		planRepository,
		tokenRepository,
		linkTokens,
		notifier,
		txMgr,
		log,
	)
	confirmBookingUseCase := confirmBookingUC.NewUseCase(
		tokenRepository,
		bookingRepository,
		notifier,
		txMgr,
		log,
	)
	createPlanUseCase := createPlanUC.NewUseCase(
		barberRepository,
		scheduleRepository,
		planRepository,
		txMgr,
		log,
	)
	updatePlanUseCase := updatePlanUC.NewUseCase(
		scheduleRepository,
		planRepository,
		txMgr,
		log,
	)
	createLinkTokenUseCase := createLinkTokenUC.NewUseCase(linkTokens, notifier, log)

	// Инициализируем handlers
	listBarbers := listBarbersHandler.NewHandler(scheduleSvc, log)
	createBarber := createBarberHandler.NewHandler(scheduleSvc, log)
	updateBarber := updateBarberHandler.NewHandler(scheduleSvc, log)
	getScheduleConfig := getScheduleConfigHandler.NewHandler(scheduleSvc, log)
	updateScheduleConfig := updateScheduleConfigHandler.NewHandler(scheduleSvc, log)
	getFreeSlots := getFreeSlotsHandler.NewHandler(getFreeSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	createBookingAdmin := createBookingAdminHandler.NewHandler(createBookingUseCase, log)
	confirmBooking := confirmBookingHandler.NewHandler(confirmBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getBarberBookings := getBarberBookingsHandler.NewHandler(bookingSvc, log)
	createPlan := createPlanHandler.NewHandler(createPlanUseCase, log)
	updatePlan := updatePlanHandler.NewHandler(updatePlanUseCase, log)
	deletePlan := deletePlanHandler.NewHandler(plansSvc, log)
	listPlans := listPlansHandler.NewHandler(plansSvc, log)
	planOccurrences := planOccurrencesHandler.NewHandler(plansSvc, log)
	createLinkToken := createLinkTokenHandler.NewHandler(createLinkTokenUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (клиентская страница записи)
	// ============================================================

	api.HandleFunc("/barbers", listBarbers.Handle).Methods(http.MethodGet)
	api.HandleFunc("/barbers/{id}/free-slots", getFreeSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/confirm", confirmBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (админка, X-Admin-Token)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(cfg.Server.AdminToken))

	// --- Записи ---
	protected.HandleFunc("/bookings/{id}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{id}/cancel", cancelBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{id}/status", updateBookingStatus.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/admin/bookings", createBookingAdmin.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/admin/link-tokens", createLinkToken.Handle).Methods(http.MethodPost)

	// --- Барберы и расписание ---
	protected.HandleFunc("/barbers", createBarber.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/barbers/{id}", updateBarber.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/barbers/{id}/bookings", getBarberBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/barbers/{id}/config", getScheduleConfig.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/barbers/{id}/config", updateScheduleConfig.Handle).Methods(http.MethodPut)

	// --- Еженедельные планы ---
	protected.HandleFunc("/plans", createPlan.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/plans/{id}", updatePlan.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/plans/{id}", deletePlan.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/plans/{id}/occurrences", planOccurrences.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/barbers/{id}/plans", listPlans.Handle).Methods(http.MethodGet)

	// Recovery и CORS для клиентской страницы записи
	handler := gorillaHandlers.RecoveryHandler()(
		gorillaHandlers.CORS(
			gorillaHandlers.AllowedOrigins([]string{"*"}),
			gorillaHandlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
			gorillaHandlers.AllowedHeaders([]string{"Content-Type", "X-Admin-Token"}),
		)(r),
	)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
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
