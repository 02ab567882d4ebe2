package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/boutique-bouquet/go-backend/internal/cfg"
	v1Http "github.com/boutique-bouquet/go-backend/internal/delivery/v1/http"
	jwtAuth "github.com/boutique-bouquet/go-backend/internal/infrastructure/auth"
	"github.com/boutique-bouquet/go-backend/internal/infrastructure/kafka"
	minioInfra "github.com/boutique-bouquet/go-backend/internal/infrastructure/minio"
	s3Repo "github.com/boutique-bouquet/go-backend/internal/repository/minio"
	"github.com/boutique-bouquet/go-backend/internal/repository/pgdb"
	pgdbConv "github.com/boutique-bouquet/go-backend/internal/repository/pgdb/converter/generated"
	"github.com/boutique-bouquet/go-backend/internal/repository/redis"
	redisConv "github.com/boutique-bouquet/go-backend/internal/repository/redis/converter/generated"
	"github.com/boutique-bouquet/go-backend/internal/usecase"
	"github.com/boutique-bouquet/go-backend/pkg/clients"
	"github.com/boutique-bouquet/go-backend/pkg/closer"
	"github.com/boutique-bouquet/go-backend/pkg/e"
	"github.com/boutique-bouquet/go-backend/pkg/logger"
	"github.com/boutique-bouquet/go-backend/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

// App связывает все слои приложения и управляет их жизненным циклом.
type App struct {
	cfg    *config.Config
	logger logger.Logger

	db           *postgres.PgDatabase
	redisClient  *clients.RedisClient
	producer     *kafka.Producer
	outboxWorker *kafka.OutboxWorker
	imagesInfra  *minioInfra.MinioInfrastructure
	httpSrv      *v1Http.Server

	closer      *closer.Closer
	workerCtx   context.Context
	stopWorkers context.CancelFunc
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	db, err := initPGDB(log, cfg)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	prConv := pgdbConv.NewProductConverterImpl()
	orConv := pgdbConv.NewOrderConverterImpl()
	itemConv := pgdbConv.NewOrderItemConverterImpl()
	adminConv := pgdbConv.NewAdminConverterImpl()
	outboxConv := pgdbConv.NewOutboxEventConverterImpl()
	infoConv := redisConv.NewProductInfoConverterImpl()

	productRepo := pgdb.NewProductRepo(db.Pool, prConv)
	orderRepo := pgdb.NewOrderRepo(db.Pool, orConv, itemConv)
	adminRepo := pgdb.NewAdminRepo(db.Pool, adminConv)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, outboxConv)

	minioClient, err := clients.NewMinIOClient(cfg)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer minioCancel()
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	imageRepo := s3Repo.NewImageRepo(minioClient, cfg.Minio)

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cacheRepo := redis.NewCacheRepo(redisClient, infoConv, cfg.Redis, log)

	producer, err := kafka.NewProducer(log, cfg.Kafka)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	outboxWorker := kafka.NewOutboxWorker(outboxRepo, log, producer, db.Dsn)

	// workerCtx живёт дольше запросов: фоновые задачи доделываются при остановке
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	imagesInfra := minioInfra.NewMinioInfrastructure(imageRepo, cfg.Minio, log, workerCtx)

	tokenManager := jwtAuth.NewJWTManager(cfg.Auth)

	productUC := usecase.NewProductUC(productRepo, cacheRepo, imagesInfra, log)
	orderUC := usecase.NewOrderUC(orderRepo, productRepo, outboxRepo, db.Pool, cacheRepo, log)
	authUC := usecase.NewAuthUC(adminRepo, tokenManager, log)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(productUC, orderUC, authUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)

	return &App{
		cfg:          cfg,
		logger:       log,
		db:           db,
		redisClient:  redisClient,
		producer:     producer,
		outboxWorker: outboxWorker,
		imagesInfra:  imagesInfra,
		httpSrv:      httpSrv,
		closer:       closer.NewCloser(2 * time.Second),
		workerCtx:    workerCtx,
		stopWorkers:  stopWorkers,
	}, nil
}

// Run запускает приложение и блокируется до сигнала остановки или фатальной ошибки.
func (a *App) Run() error {
	a.registerClosers()

	a.outboxWorker.Start(a.workerCtx)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Warnf("shutdown finished with errors: %v", err)
	} else {
		a.logger.Infof("Application shutdown complete")
	}

	return appErr
}

// registerClosers регистрирует ресурсы в порядке открытия; закрытие идёт в обратном порядке.
func (a *App) registerClosers() {
	a.closer.Add(func(ctx context.Context) error {
		a.db.Close()
		return nil
	})

	a.closer.Add(func(ctx context.Context) error {
		return a.redisClient.Client.Close()
	})

	a.closer.Add(func(ctx context.Context) error {
		return a.producer.Close()
	})

	a.closer.Add(func(ctx context.Context) error {
		a.stopWorkers()
		a.outboxWorker.Stop()
		return nil
	})

	a.closer.Add(func(ctx context.Context) error {
		return a.imagesInfra.WaitForCleanup(ctx)
	})

	a.closer.Add(func(ctx context.Context) error {
		if err := a.httpSrv.Stop(ctx); err != nil {
			return err
		}
		a.logger.Infof("HTTP server stopped")
		return nil
	})
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
