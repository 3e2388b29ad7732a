package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/cors"
	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"

	addFavoriteHandler "github.com/m04kA/SMC-CanchaBooking/internal/api/handlers/add_favorite"
	cancelReservationHandler "github.com/m04kA/SMC-CanchaBooking/internal/api/handlers/cancel_reservation"
	checkAvailabilityHandler "github.com/m04kA/SMC-CanchaBooking/internal/api/handlers/check_availability"
	createFacilityHandler "github.com/m04kA/SMC-CanchaBooking/internal/api/handlers/create_facility"
	createReservationHandler "github.com/m04kA/SMC-CanchaBooking/internal/api/handlers/create_reservation"
	deleteFacilityHandler "github.com/m04kA/SMC-CanchaBooking/internal/api/handlers/delete_facility"
	deleteUserHandler "github.com/m04kA/SMC-CanchaBooking/internal/api/handlers/delete_user"
	getAdminDashboardHandler "github.com/m04kA/SMC-CanchaBooking/internal/api/handlers/get_admin_dashboard"
	getFacilityHandler "github.com/m04kA/SMC-CanchaBooking/internal/api/handlers/get_facility"
	getOwnerDashboardHandler "github.com/m04kA/SMC-CanchaBooking/internal/api/handlers/get_owner_dashboard"
	getProfileHandler "github.com/m04kA/SMC-CanchaBooking/internal/api/handlers/get_profile"
	getUserDashboardHandler "github.com/m04kA/SMC-CanchaBooking/internal/api/handlers/get_user_dashboard"
	listFacilitiesHandler "github.com/m04kA/SMC-CanchaBooking/internal/api/handlers/list_facilities"
	listFavoritesHandler "github.com/m04kA/SMC-CanchaBooking/internal/api/handlers/list_favorites"
	listOwnerReservationsHandler "github.com/m04kA/SMC-CanchaBooking/internal/api/handlers/list_owner_reservations"
	listUserReservationsHandler "github.com/m04kA/SMC-CanchaBooking/internal/api/handlers/list_user_reservations"
	listUsersHandler "github.com/m04kA/SMC-CanchaBooking/internal/api/handlers/list_users"
	loginHandler "github.com/m04kA/SMC-CanchaBooking/internal/api/handlers/login"
	logoutHandler "github.com/m04kA/SMC-CanchaBooking/internal/api/handlers/logout"
	registerHandler "github.com/m04kA/SMC-CanchaBooking/internal/api/handlers/register"
	removeFavoriteHandler "github.com/m04kA/SMC-CanchaBooking/internal/api/handlers/remove_favorite"
	runSweepHandler "github.com/m04kA/SMC-CanchaBooking/internal/api/handlers/run_sweep"
	updateFacilityHandler "github.com/m04kA/SMC-CanchaBooking/internal/api/handlers/update_facility"
	updateProfileHandler "github.com/m04kA/SMC-CanchaBooking/internal/api/handlers/update_profile"
	updateUserHandler "github.com/m04kA/SMC-CanchaBooking/internal/api/handlers/update_user"
	"github.com/m04kA/SMC-CanchaBooking/internal/api/middleware"
	"github.com/m04kA/SMC-CanchaBooking/internal/config"
	"github.com/m04kA/SMC-CanchaBooking/internal/domain"
	"github.com/m04kA/SMC-CanchaBooking/internal/infra/events"
	"github.com/m04kA/SMC-CanchaBooking/internal/infra/session"
	facilityRepo "github.com/m04kA/SMC-CanchaBooking/internal/infra/storage/facility"
	favoriteRepo "github.com/m04kA/SMC-CanchaBooking/internal/infra/storage/favorite"
	"github.com/m04kA/SMC-CanchaBooking/internal/infra/storage/migrations"
	"github.com/m04kA/SMC-CanchaBooking/internal/infra/storage/postgres"
	reservationRepo "github.com/m04kA/SMC-CanchaBooking/internal/infra/storage/reservation"
	statsRepo "github.com/m04kA/SMC-CanchaBooking/internal/infra/storage/stats"
	userRepo "github.com/m04kA/SMC-CanchaBooking/internal/infra/storage/user"
	adminService "github.com/m04kA/SMC-CanchaBooking/internal/service/admin"
	authService "github.com/m04kA/SMC-CanchaBooking/internal/service/auth"
	dashboardsService "github.com/m04kA/SMC-CanchaBooking/internal/service/dashboards"
	facilitiesService "github.com/m04kA/SMC-CanchaBooking/internal/service/facilities"
	favoritesService "github.com/m04kA/SMC-CanchaBooking/internal/service/favorites"
	reservationsService "github.com/m04kA/SMC-CanchaBooking/internal/service/reservations"
	checkAvailabilityUC "github.com/m04kA/SMC-CanchaBooking/internal/usecase/check_availability"
	createReservationUC "github.com/m04kA/SMC-CanchaBooking/internal/usecase/create_reservation"
	sweepCompletionsUC "github.com/m04kA/SMC-CanchaBooking/internal/usecase/sweep_completions"
	"github.com/m04kA/SMC-CanchaBooking/pkg/clock"
	"github.com/m04kA/SMC-CanchaBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-CanchaBooking/pkg/logger"
	"github.com/m04kA/SMC-CanchaBooking/pkg/metrics"
	"github.com/m04kA/SMC-CanchaBooking/pkg/txmanager"
)

// sessionStore хранилище сессий, которое нужно закрыть при остановке
type sessionStore interface {
	authService.SessionStore
	Close() error
}

// publisher издатель событий, который нужно закрыть при остановке
type publisher interface {
	Publish(ctx context.Context, event events.ReservationEvent) error
	Close() error
}

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

	log.Info("Starting SMC-CanchaBooking...")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := postgres.Open(ctx, cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Миграции (по флагу)
	if cfg.Database.ApplyMigrations {
		applied, err := migrations.NewMigrator(wrappedDB, txMgr, log).Up(ctx)
		if err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		log.Info("Migrations applied: %d", applied)
	}

	// Хранилище сессий: Redis или память процесса
	sessions, err := newSessionStore(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to initialize session store: %v", err)
	}
	defer sessions.Close()

	// События жизненного цикла бронирований
	eventPublisher, err := newPublisher(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize event publisher: %v", err)
	}
	defer eventPublisher.Close()

	timeProvider := clock.New(cfg.Location())
	log.Info("Dates are evaluated in %s", cfg.App.Timezone)

	// Инициализируем репозитории
	users := userRepo.NewRepository(wrappedDB)
	facilityRepository := facilityRepo.NewRepository(wrappedDB)
	reservationRepository := reservationRepo.NewRepository(wrappedDB)
	favoriteRepository := favoriteRepo.NewRepository(wrappedDB)
	statsRepository := statsRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	tokens := authService.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.SessionTTL())
	authSvc := authService.NewService(users, sessions, tokens, cfg.Auth.BcryptCost, log)
	facilitiesSvc := facilitiesService.NewService(facilityRepository, reservationRepository, favoriteRepository, txMgr, log)
	reservationsSvc := reservationsService.NewService(reservationRepository, eventPublisher, metricsCollector, timeProvider, log)
	favoritesSvc := favoritesService.NewService(favoriteRepository, facilityRepository, log)
	dashboardsSvc := dashboardsService.NewService(statsRepository, reservationRepository, facilityRepository, timeProvider, log)
	adminSvc := adminService.NewService(adminService.Deps{
		Users:              users,
		Reservations:       reservationRepository,
		Favorites:          favoriteRepository,
		Facilities:         facilityRepository,
		Stats:              statsRepository,
		Hasher:             authService.NewHasher(cfg.Auth.BcryptCost),
		TxManager:          txMgr,
		TimeProvider:       timeProvider,
		RecentReservations: cfg.App.RecentReservations,
		Logger:             log,
	})

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		facilityRepository,
		txMgr,
		eventPublisher,
		metricsCollector,
		timeProvider,
		log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(reservationRepository, facilityRepository, log)
	sweepUseCase := sweepCompletionsUC.NewUseCase(reservationRepository, eventPublisher, metricsCollector, timeProvider, log)

	// Фоновый проход завершения бронирований (если включен)
	if cfg.Sweeper.Enabled {
		go sweepUseCase.RunEvery(ctx, time.Duration(cfg.Sweeper.Interval)*time.Second)
		log.Info("In-process sweeper started, interval=%ds", cfg.Sweeper.Interval)
	}

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recover(log))
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Deadline(time.Duration(cfg.Database.QueryTimeout) * time.Second))
	api.Use(middleware.Auth(authSvc, log))

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/auth/register", registerHandler.NewHandler(authSvc, log).Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", loginHandler.NewHandler(authSvc, log).Handle).Methods(http.MethodPost)
	api.HandleFunc("/facilities", listFacilitiesHandler.NewHandler(facilitiesSvc, log).Handle).Methods(http.MethodGet)
	api.HandleFunc("/facilities/{facilityId:[0-9]+}", getFacilityHandler.NewHandler(facilitiesSvc, log).Handle).Methods(http.MethodGet)

	// ============================================================
	// AUTHENTICATED ROUTES (любая роль)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.RequireAuth)

	protected.HandleFunc("/auth/logout", logoutHandler.NewHandler(authSvc, log).Handle).Methods(http.MethodPost)
	protected.HandleFunc("/me", getProfileHandler.NewHandler(authSvc, log).Handle).Methods(http.MethodGet)
	protected.HandleFunc("/me", updateProfileHandler.NewHandler(authSvc, log).Handle).Methods(http.MethodPut)
	protected.HandleFunc("/me/dashboard", getUserDashboardHandler.NewHandler(dashboardsSvc, log).Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	protected.HandleFunc("/reservations", createReservationHandler.NewHandler(createReservationUseCase, log).Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations", listUserReservationsHandler.NewHandler(reservationsSvc, log).Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId:[0-9]+}/cancel",
		cancelReservationHandler.NewHandler(reservationsSvc, log).Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/facilities/{facilityId:[0-9]+}/availability",
		checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log).Handle).Methods(http.MethodGet)

	// --- Избранное ---
	protected.HandleFunc("/favorites", listFavoritesHandler.NewHandler(favoritesSvc, log).Handle).Methods(http.MethodGet)
	protected.HandleFunc("/favorites/{facilityId:[0-9]+}", addFavoriteHandler.NewHandler(favoritesSvc, log).Handle).Methods(http.MethodPost)
	protected.HandleFunc("/favorites/{facilityId:[0-9]+}", removeFavoriteHandler.NewHandler(favoritesSvc, log).Handle).Methods(http.MethodDelete)

	// ============================================================
	// OWNER ROUTES
	// ============================================================

	owner := api.PathPrefix("/owner").Subrouter()
	owner.Use(middleware.RequireRole(domain.RoleOwner))

	owner.HandleFunc("/facilities", listFacilitiesHandler.NewOwnerHandler(facilitiesSvc, log).Handle).Methods(http.MethodGet)
	owner.HandleFunc("/facilities", createFacilityHandler.NewHandler(facilitiesSvc, log).Handle).Methods(http.MethodPost)
	owner.HandleFunc("/facilities/{facilityId:[0-9]+}", updateFacilityHandler.NewHandler(facilitiesSvc, log).Handle).Methods(http.MethodPut)
	owner.HandleFunc("/facilities/{facilityId:[0-9]+}", deleteFacilityHandler.NewHandler(facilitiesSvc, log).Handle).Methods(http.MethodDelete)
	owner.HandleFunc("/reservations", listOwnerReservationsHandler.NewHandler(reservationsSvc, log).Handle).Methods(http.MethodGet)
	owner.HandleFunc("/dashboard", getOwnerDashboardHandler.NewHandler(dashboardsSvc, log).Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.RequireRole(domain.RoleAdmin))

	admin.HandleFunc("/dashboard", getAdminDashboardHandler.NewHandler(adminSvc, log).Handle).Methods(http.MethodGet)
	admin.HandleFunc("/users", listUsersHandler.NewHandler(adminSvc, log).Handle).Methods(http.MethodGet)
	admin.HandleFunc("/users/{userId:[0-9]+}", updateUserHandler.NewHandler(adminSvc, log).Handle).Methods(http.MethodPut)
	admin.HandleFunc("/users/{userId:[0-9]+}", deleteUserHandler.NewHandler(adminSvc, log).Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/facilities", listFacilitiesHandler.NewAdminHandler(facilitiesSvc, log).Handle).Methods(http.MethodGet)
	admin.HandleFunc("/facilities/{facilityId:[0-9]+}", deleteFacilityHandler.NewAdminHandler(facilitiesSvc, log).Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/reservations", listOwnerReservationsHandler.NewAdminHandler(reservationsSvc, log).Handle).Methods(http.MethodGet)
	admin.HandleFunc("/sweep", runSweepHandler.NewHandler(sweepUseCase, log).Handle).Methods(http.MethodPost)

	// CORS
	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	})

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler(r),
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
	<-ctx.Done()

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
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

func newSessionStore(ctx context.Context, cfg *config.Config) (sessionStore, error) {
	if !cfg.Redis.Enabled {
		return session.NewMemoryStore(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	store := session.NewRedisStore(client, cfg.Redis.KeyPrefix)
	if err := store.Ping(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}
	return store, nil
}

func newPublisher(cfg *config.Config, log *logger.Logger) (publisher, error) {
	if !cfg.Events.Enabled {
		return events.NoopPublisher{}, nil
	}
	return events.NewAMQPPublisher(cfg.Events.URL, cfg.Events.Queue, log)
}
