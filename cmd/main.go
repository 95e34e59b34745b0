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

	"github.com/alecthomas/kong"
	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cartHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/cart"
	createContentHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/create_content"
	deleteContentHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/delete_content"
	getAvailabilityHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/get_availability"
	getContentHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/get_content"
	getReservationHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/get_reservation"
	listContentHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/list_content"
	listMessagesHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/list_messages"
	listReservationsHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/list_reservations"
	listServicesHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/list_services"
	sendMessageHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/send_message"
	submitReservationHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/submit_reservation"
	subscribeNewsletterHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/subscribe_newsletter"
	updateReservationStatusHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/update_reservation_status"
	uploadMediaHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/upload_media"
	"github.com/m04kA/SMC-StudioBooking/internal/api/middleware"
	"github.com/m04kA/SMC-StudioBooking/internal/config"
	cartStore "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/cart"
	contentRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/content"
	messageRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/message"
	newsletterRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/newsletter"
	orderRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/order"
	reservationRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-StudioBooking/internal/integrations/mediastore"
	notifierClient "github.com/m04kA/SMC-StudioBooking/internal/integrations/notifier"
	"github.com/m04kA/SMC-StudioBooking/internal/notify"
	cartService "github.com/m04kA/SMC-StudioBooking/internal/service/cart"
	"github.com/m04kA/SMC-StudioBooking/internal/service/catalog"
	contentService "github.com/m04kA/SMC-StudioBooking/internal/service/content"
	messagesService "github.com/m04kA/SMC-StudioBooking/internal/service/messages"
	reservationsService "github.com/m04kA/SMC-StudioBooking/internal/service/reservations"
	getAvailabilityUC "github.com/m04kA/SMC-StudioBooking/internal/usecase/get_availability"
	sendMessageUC "github.com/m04kA/SMC-StudioBooking/internal/usecase/send_message"
	submitReservationUC "github.com/m04kA/SMC-StudioBooking/internal/usecase/submit_reservation"
	subscribeNewsletterUC "github.com/m04kA/SMC-StudioBooking/internal/usecase/subscribe_newsletter"
	"github.com/m04kA/SMC-StudioBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-StudioBooking/pkg/imageproc"
	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
	"github.com/m04kA/SMC-StudioBooking/pkg/metrics"
	"github.com/m04kA/SMC-StudioBooking/pkg/txmanager"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"config.toml"`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("studio-booking"),
		kong.Description("Booking and storefront backend for the photography studio site"),
		kong.UsageOnError(),
		kong.Vars{"version": "v1.0.0"},
	)

	// Загружаем конфигурацию
	cfg, err := config.Load(CLI.Config)
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

	log.Info("Starting SMC-StudioBooking...")
	log.Info("Configuration loaded from %s", CLI.Config)

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

	// Без метрик обёртка работает как прозрачный прокси
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	reservationRepository := reservationRepo.NewRepository(wrappedDB)
	messageRepository := messageRepo.NewRepository(wrappedDB)
	newsletterRepository := newsletterRepo.NewRepository(wrappedDB)
	contentRepository := contentRepo.NewRepository(wrappedDB)
	orderRepository := orderRepo.NewRepository(wrappedDB)

	// Каталог услуг и сетка слотов задаются при деплое
	serviceCatalog, err := catalog.New(cfg.CatalogServices())
	if err != nil {
		log.Fatal("Invalid service catalog: %v", err)
	}
	slotGrid, err := catalog.NewSlotGrid(cfg.Booking.Slots)
	if err != nil {
		log.Fatal("Invalid slot grid: %v", err)
	}
	log.Info("Catalog loaded: %d services, slots=%v", len(serviceCatalog.ListServices()), cfg.Booking.Slots)

	// Уведомления владельцу студии отправляются в фоне
	var sender notify.Sender
	if cfg.Notifier.Enabled {
		sender = notifierClient.NewClient(
			cfg.Notifier.URL,
			cfg.Notifier.APIKey,
			time.Duration(cfg.Notifier.Timeout)*time.Second,
			log,
		)
		log.Info("Notifier relay enabled (url=%s timeout=%ds)", cfg.Notifier.URL, cfg.Notifier.Timeout)
	} else {
		sender = notify.LogSender{Logger: log}
		log.Warn("Notifier relay disabled, notifications will only be logged")
	}
	dispatcher := notify.NewDispatcher(
		sender,
		cfg.Notifier.QueueSize,
		time.Duration(cfg.Notifier.Timeout)*time.Second,
		metricsCollector,
		log,
	)
	go func() {
		for err := range dispatcher.Errors() {
			log.Warn("Notification not delivered: %v", err)
		}
	}()

	// Объектное хранилище для медиафайлов (опционально)
	var mediaStore contentService.MediaStore
	if cfg.Media.Enabled {
		client, err := mediastore.NewClient(mediastore.Config{
			Endpoint:      cfg.Media.Endpoint,
			Region:        cfg.Media.Region,
			Bucket:        cfg.Media.Bucket,
			AccessKey:     cfg.Media.AccessKey,
			SecretKey:     cfg.Media.SecretKey,
			PublicBaseURL: cfg.Media.PublicBaseURL,
		}, log)
		if err != nil {
			log.Fatal("Failed to initialize media store: %v", err)
		}
		mediaStore = client
		log.Info("Media uploads enabled (bucket=%s)", cfg.Media.Bucket)
	}

	// Redis для сессий корзины (опционально)
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		log.Info("Successfully connected to redis (addr=%s)", cfg.Redis.Addr)
	}

	// Инициализируем сервисы
	reservationsSvc := reservationsService.NewService(reservationRepository, txMgr, log)
	messagesSvc := messagesService.NewService(messageRepository, log)
	contentSvc := contentService.NewService(
		contentRepository,
		mediaStore,
		imageproc.Options{MaxDimension: cfg.Media.MaxDimension, Quality: float32(cfg.Media.Quality)},
		log,
	)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		reservationRepository,
		serviceCatalog,
		slotGrid,
		time.Duration(cfg.Booking.StoreTimeout)*time.Second,
		metricsCollector,
		log,
	)
	submitReservationUseCase := submitReservationUC.NewUseCase(
		reservationRepository,
		txMgr,
		serviceCatalog,
		slotGrid,
		dispatcher,
		metricsCollector,
		submitReservationUC.Options{
			HorizonMonths:   cfg.Booking.HorizonMonths,
			MinLeadDays:     cfg.Booking.MinLeadDays,
			StrictSlotCheck: cfg.Booking.StrictSlotCheck,
			Location:        cfg.Location(),
			NotifyTo:        cfg.Notifier.To,
		},
		log,
	)
	sendMessageUseCase := sendMessageUC.NewUseCase(messageRepository, dispatcher, cfg.Notifier.To, log)
	subscribeNewsletterUseCase := subscribeNewsletterUC.NewUseCase(newsletterRepository, dispatcher, cfg.Notifier.To, log)

	if cfg.Booking.StrictSlotCheck {
		log.Info("Strict slot check enabled: overlapping reservations are rejected")
	}

	// Инициализируем handlers
	listServices := listServicesHandler.NewHandler(serviceCatalog, slotGrid)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	submitReservation := submitReservationHandler.NewHandler(submitReservationUseCase, log)
	sendMessage := sendMessageHandler.NewHandler(sendMessageUseCase, log)
	subscribeNewsletter := subscribeNewsletterHandler.NewHandler(subscribeNewsletterUseCase, log)
	listContent := listContentHandler.NewHandler(contentSvc, log)
	getContent := getContentHandler.NewHandler(contentSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationsSvc, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(reservationsSvc, log)
	listMessages := listMessagesHandler.NewHandler(messagesSvc, log)
	createContent := createContentHandler.NewHandler(contentSvc, log)
	deleteContent := deleteContentHandler.NewHandler(contentSvc, log)
	uploadMedia := uploadMediaHandler.NewHandler(contentSvc, int64(cfg.Media.MaxUploadMB)<<20, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recover(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Timeout(time.Duration(cfg.Server.RequestTimeout) * time.Second))

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// --- Запись на съёмку ---
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations", submitReservation.Handle).Methods(http.MethodPost)

	// --- Обратная связь ---
	api.HandleFunc("/messages", sendMessage.Handle).Methods(http.MethodPost)
	api.HandleFunc("/newsletter", subscribeNewsletter.Handle).Methods(http.MethodPost)

	// --- Контент сайта ---
	api.HandleFunc("/content/{collection}", listContent.Handle).Methods(http.MethodGet)
	api.HandleFunc("/content/{collection}/{itemId}", getContent.Handle).Methods(http.MethodGet)

	// --- Корзина магазина ---
	if redisClient != nil {
		cartSvc := cartService.NewService(
			cartStore.NewStore(redisClient, time.Duration(cfg.Redis.CartTTL)*time.Minute),
			contentRepository,
			orderRepository,
			dispatcher,
			cfg.Notifier.To,
			log,
		)
		carts := cartHandler.NewHandler(cartSvc, log)

		api.HandleFunc("/carts", carts.Open).Methods(http.MethodPost)
		api.HandleFunc("/carts/{cartId}", carts.Get).Methods(http.MethodGet)
		api.HandleFunc("/carts/{cartId}", carts.Close).Methods(http.MethodDelete)
		api.HandleFunc("/carts/{cartId}/items", carts.AddItem).Methods(http.MethodPost)
		api.HandleFunc("/carts/{cartId}/items/{productId}", carts.RemoveItem).Methods(http.MethodDelete)
		api.HandleFunc("/carts/{cartId}/checkout", carts.Checkout).Methods(http.MethodPost)
	} else {
		log.Warn("Redis disabled, cart routes are not registered")
	}

	// ============================================================
	// ADMIN ROUTES (требуют токен администратора)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(middleware.AuthConfig{
		Secret: cfg.Auth.JWTSecret,
		Role:   cfg.Auth.AdminRole,
		Issuer: cfg.Auth.Issuer,
	}, log))

	// --- Бронирования ---
	admin.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reservations/{reservationId}/status", updateReservationStatus.Handle).Methods(http.MethodPatch)

	// --- Сообщения ---
	admin.HandleFunc("/messages", listMessages.Handle).Methods(http.MethodGet)

	// --- Контент ---
	admin.HandleFunc("/content/{collection}", createContent.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/content/{collection}/{itemId}", deleteContent.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/media/{collection}", uploadMedia.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      middleware.CORS(cfg.Server.AllowedOrigins)(r), // Preflight OPTIONS не совпадает с маршрутами mux
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Досылаем уведомления, поставленные до остановки сервера
	if err := dispatcher.Close(shutdownCtx); err != nil {
		log.Warn("Notification queue not drained: %v", err)
	}

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close redis: %v", err)
		}
	}

	log.Info("Server stopped gracefully")
}
