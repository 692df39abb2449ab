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
	_ "time/tzdata"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/myphysiotime/PhysioTime-BookingService/internal/api/handlers/create_booking"
	createPaymentHandler "github.com/myphysiotime/PhysioTime-BookingService/internal/api/handlers/create_payment"
	createServiceHandler "github.com/myphysiotime/PhysioTime-BookingService/internal/api/handlers/create_service"
	deleteBookingHandler "github.com/myphysiotime/PhysioTime-BookingService/internal/api/handlers/delete_booking"
	deleteServiceHandler "github.com/myphysiotime/PhysioTime-BookingService/internal/api/handlers/delete_service"
	getAllServicesHandler "github.com/myphysiotime/PhysioTime-BookingService/internal/api/handlers/get_all_services"
	getAvailableSlotsHandler "github.com/myphysiotime/PhysioTime-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/myphysiotime/PhysioTime-BookingService/internal/api/handlers/get_booking"
	getBookingsHandler "github.com/myphysiotime/PhysioTime-BookingService/internal/api/handlers/get_bookings"
	getBookingsByStateHandler "github.com/myphysiotime/PhysioTime-BookingService/internal/api/handlers/get_bookings_by_state"
	getClientHandler "github.com/myphysiotime/PhysioTime-BookingService/internal/api/handlers/get_client"
	getClientsHandler "github.com/myphysiotime/PhysioTime-BookingService/internal/api/handlers/get_clients"
	getDashboardStatsHandler "github.com/myphysiotime/PhysioTime-BookingService/internal/api/handlers/get_dashboard_stats"
	getMeHandler "github.com/myphysiotime/PhysioTime-BookingService/internal/api/handlers/get_me"
	getMyBookingsHandler "github.com/myphysiotime/PhysioTime-BookingService/internal/api/handlers/get_my_bookings"
	getMyPaymentsHandler "github.com/myphysiotime/PhysioTime-BookingService/internal/api/handlers/get_my_payments"
	getPaymentHandler "github.com/myphysiotime/PhysioTime-BookingService/internal/api/handlers/get_payment"
	getServicesHandler "github.com/myphysiotime/PhysioTime-BookingService/internal/api/handlers/get_services"
	loginHandler "github.com/myphysiotime/PhysioTime-BookingService/internal/api/handlers/login"
	registerHandler "github.com/myphysiotime/PhysioTime-BookingService/internal/api/handlers/register"
	updateBookingHandler "github.com/myphysiotime/PhysioTime-BookingService/internal/api/handlers/update_booking"
	updateMeHandler "github.com/myphysiotime/PhysioTime-BookingService/internal/api/handlers/update_me"
	updatePaymentStatusHandler "github.com/myphysiotime/PhysioTime-BookingService/internal/api/handlers/update_payment_status"
	updateServiceHandler "github.com/myphysiotime/PhysioTime-BookingService/internal/api/handlers/update_service"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/api/middleware"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/config"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/infra/security/bcrypt"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/infra/security/tokens"
	bookingRepo "github.com/myphysiotime/PhysioTime-BookingService/internal/infra/storage/booking"
	paymentRepo "github.com/myphysiotime/PhysioTime-BookingService/internal/infra/storage/payment"
	serviceRepo "github.com/myphysiotime/PhysioTime-BookingService/internal/infra/storage/service"
	userRepo "github.com/myphysiotime/PhysioTime-BookingService/internal/infra/storage/user"
	bookingsService "github.com/myphysiotime/PhysioTime-BookingService/internal/service/bookings"
	catalogService "github.com/myphysiotime/PhysioTime-BookingService/internal/service/catalog"
	paymentsService "github.com/myphysiotime/PhysioTime-BookingService/internal/service/payments"
	usersService "github.com/myphysiotime/PhysioTime-BookingService/internal/service/users"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/slots"
	createBookingUC "github.com/myphysiotime/PhysioTime-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/myphysiotime/PhysioTime-BookingService/internal/usecase/get_available_slots"
	getDashboardStatsUC "github.com/myphysiotime/PhysioTime-BookingService/internal/usecase/get_dashboard_stats"
	loginUC "github.com/myphysiotime/PhysioTime-BookingService/internal/usecase/login"
	registerUC "github.com/myphysiotime/PhysioTime-BookingService/internal/usecase/register"
	updateBookingUC "github.com/myphysiotime/PhysioTime-BookingService/internal/usecase/update_booking"
	"github.com/myphysiotime/PhysioTime-BookingService/pkg/dbmetrics"
	"github.com/myphysiotime/PhysioTime-BookingService/pkg/logger"
	"github.com/myphysiotime/PhysioTime-BookingService/pkg/metrics"
	"github.com/myphysiotime/PhysioTime-BookingService/pkg/txmanager"
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

	log.Info("Starting PhysioTime-BookingService...")
	log.Info("Configuration loaded from config.toml")

	clinicLocation, err := cfg.Clinic.Location()
	if err != nil {
		log.Fatal("Failed to load clinic timezone %q: %v", cfg.Clinic.Timezone, err)
	}

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

	// Обертка над БД: с метриками запросов и пула или без них
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	// Репозитории и transaction manager
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	userRepository := userRepo.NewRepository(wrappedDB)
	serviceRepository := serviceRepo.NewRepository(wrappedDB)
	paymentRepository := paymentRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Безопасность и калькулятор слотов
	hasher := bcrypt.NewHasher(0)
	tokenManager := tokens.NewManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Audience, cfg.JWT.TTL())
	calculator := slots.NewCalculator(slots.Hours{
		Open:        cfg.Clinic.OpenTime,
		Close:       cfg.Clinic.CloseTime,
		StepMinutes: cfg.Clinic.SlotStepMinutes,
		ClosedDays:  cfg.Clinic.ClosedWeekdays(),
		Location:    clinicLocation,
	})
	log.Info("Clinic hours %s-%s (%s), slot step %d min",
		cfg.Clinic.OpenTime, cfg.Clinic.CloseTime, cfg.Clinic.Timezone, cfg.Clinic.SlotStepMinutes)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, clinicLocation, log)
	catalogSvc := catalogService.NewService(serviceRepository, log)
	paymentSvc := paymentsService.NewService(paymentRepository, serviceRepository, txMgr, log)
	userSvc := usersService.NewService(userRepository, log)

	// Инициализируем use cases
	loginUseCase := loginUC.NewUseCase(userRepository, hasher, tokenManager, nil, log)
	registerUseCase := registerUC.NewUseCase(userRepository, hasher, log)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		serviceRepository,
		userRepository,
		calculator,
		txMgr,
		nil,
		log,
	)
	updateBookingUseCase := updateBookingUC.NewUseCase(
		bookingRepository,
		userRepository,
		calculator,
		txMgr,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(bookingRepository, calculator, log)
	getDashboardStatsUseCase := getDashboardStatsUC.NewUseCase(bookingRepository, calculator, nil, log)

	// Инициализируем handlers
	login := loginHandler.NewHandler(loginUseCase, log)
	register := registerHandler.NewHandler(registerUseCase, log)

	getClients := getClientsHandler.NewHandler(userSvc, log)
	getClient := getClientHandler.NewHandler(userSvc, log)
	getMe := getMeHandler.NewHandler(userSvc, log)
	updateMe := updateMeHandler.NewHandler(userSvc, log)

	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	getBookingsByState := getBookingsByStateHandler.NewHandler(bookingSvc, log)
	getMyBookings := getMyBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, clinicLocation, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, clinicLocation, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getDashboardStats := getDashboardStatsHandler.NewHandler(getDashboardStatsUseCase, log)

	getServices := getServicesHandler.NewHandler(catalogSvc, log)
	getAllServices := getAllServicesHandler.NewHandler(catalogSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	deleteService := deleteServiceHandler.NewHandler(catalogSvc, log)

	createPayment := createPaymentHandler.NewHandler(paymentSvc, log)
	getMyPayments := getMyPaymentsHandler.NewHandler(paymentSvc, log)
	getPayment := getPaymentHandler.NewHandler(paymentSvc, log)
	updatePaymentStatus := updatePaymentStatusHandler.NewHandler(paymentSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

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

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/register", register.Handle).Methods(http.MethodPost)

	// Активные услуги
	api.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (Authorization: Bearer <JWT>)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(tokenManager, log))

	// --- Клиенты ---
	protected.HandleFunc("/clients", getClients.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/clients/{id:[0-9]+}", getClient.Handle).Methods(http.MethodGet)

	// --- Профиль ---
	protected.HandleFunc("/users/me", getMe.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/me", updateMe.Handle).Methods(http.MethodPut)

	// --- Бронирования ---
	// Статические пути регистрируются раньше /bookings/{id}
	protected.HandleFunc("/bookings/my", getMyBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/dashboard/stats", getDashboardStats.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/state/{state}", getBookingsByState.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{id:[0-9]+}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{id:[0-9]+}", updateBooking.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/bookings/{id:[0-9]+}", deleteBooking.Handle).Methods(http.MethodDelete)

	// --- Услуги (управление) ---
	protected.HandleFunc("/services/all", getAllServices.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/services/{id:[0-9]+}", updateService.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/services/{id:[0-9]+}", deleteService.Handle).Methods(http.MethodDelete)

	// --- Платежи ---
	protected.HandleFunc("/payments/my", getMyPayments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/payments", createPayment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/payments/{id:[0-9]+}", getPayment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/payments/{id:[0-9]+}/status", updatePaymentStatus.Handle).Methods(http.MethodPatch)

	// Recover, request id и CORS оборачивают весь роутер, чтобы срабатывать и на 404/405
	var handler http.Handler = r
	handler = middleware.CORS(cfg.Server.AllowedOrigins)(handler)
	handler = middleware.RequestID(log)(handler)
	handler = middleware.Recover(log)(handler)

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
