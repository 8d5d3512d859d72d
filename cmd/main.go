package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/stock-allocation/application/allocation"
	inventoryapp "github.com/muhammadheryan/stock-allocation/application/inventory"
	orderapp "github.com/muhammadheryan/stock-allocation/application/order"
	"github.com/muhammadheryan/stock-allocation/cmd/config"
	redisclient "github.com/muhammadheryan/stock-allocation/cmd/redis"
	_ "github.com/muhammadheryan/stock-allocation/docs"
	batchRepo "github.com/muhammadheryan/stock-allocation/repository/batch"
	orderRepo "github.com/muhammadheryan/stock-allocation/repository/order"
	productRepo "github.com/muhammadheryan/stock-allocation/repository/product"
	redisRepo "github.com/muhammadheryan/stock-allocation/repository/redis"
	reservationRepo "github.com/muhammadheryan/stock-allocation/repository/reservation"
	"github.com/muhammadheryan/stock-allocation/repository/schema"
	slotRepo "github.com/muhammadheryan/stock-allocation/repository/slot"
	txRepo "github.com/muhammadheryan/stock-allocation/repository/tx"
	"github.com/muhammadheryan/stock-allocation/thirdparty/rabbitmq"
	"github.com/muhammadheryan/stock-allocation/transport"
	"github.com/muhammadheryan/stock-allocation/utils/logger"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// @title STOCK ALLOCATION API
// @version 1.0
// @description Inventory allocation and reservation API
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey InternalKey
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment), zap.String("db_driver", cfg.Database.Driver))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database
	db, err := sqlx.Connect(cfg.Database.Driver, cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if cfg.Database.AutoMigrate {
		if err := schema.Apply(ctx, db); err != nil {
			logger.Fatal("err apply schema", zap.Error(err))
		}
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	ProductRepo := productRepo.NewProductRepository(db)
	BatchRepo := batchRepo.NewBatchRepository(db)
	SlotRepo := slotRepo.NewSlotRepository(db)
	OrderRepo := orderRepo.NewOrderRepository(db)
	ReservationRepo := reservationRepo.NewReservationRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Allocation engine
	Allocator := allocation.NewAllocator(BatchRepo, SlotRepo, allocation.Options{LastResortWave: cfg.Allocation.LastResortWave})
	Compensator := allocation.NewCompensator(SlotRepo)

	var publisher rabbitmq.EventPublisher
	if cfg.RabbitMQ.Enabled {
		p, err := rabbitmq.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange)
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer p.Close()
		publisher = p
	}

	// Initialize application layers
	OrderApp := orderapp.NewOrderApp(cfg, TxRepo, OrderRepo, ReservationRepo, RedisRepo, Allocator, Compensator, publisher)
	InventoryApp := inventoryapp.NewInventoryApp(cfg, TxRepo, ProductRepo, BatchRepo, SlotRepo)

	if cfg.RabbitMQ.Enabled {
		consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange, cfg.RabbitMQ.StatusQueue, OrderApp)
		if err != nil {
			logger.Fatal("err create ledger status consumer", zap.Error(err))
		}
		defer consumer.Close()
		if err := consumer.Start(ctx); err != nil {
			logger.Fatal("err start ledger status consumer", zap.Error(err))
		}
		logger.Info("Ledger status consumer running", zap.String("queue", cfg.RabbitMQ.StatusQueue))
	}

	httpTransport := transport.NewTransport(cfg, OrderApp, InventoryApp)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("err shutdown server", zap.Error(err))
		}
	}()

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("failed server", zap.Error(err))
	}
	logger.Info("Server stopped")
}
