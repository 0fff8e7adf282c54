package di

import (
	"fmt"
	"os"

	"gorm.io/gorm"

	"taskboard/application/serviceimpl"
	"taskboard/domain/ports"
	"taskboard/domain/repositories"
	"taskboard/domain/services"
	"taskboard/infrastructure/database"
	"taskboard/infrastructure/events"
	"taskboard/infrastructure/memory"
	redispkg "taskboard/infrastructure/redis"
	"taskboard/infrastructure/storage"
	"taskboard/interfaces/api/handlers"
	"taskboard/pkg/config"
	"taskboard/pkg/logger"
	"taskboard/pkg/scheduler"
)

// overdue sweep รันทุกวัน 07:00 UTC
const overdueSweepCron = "0 7 * * *"

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB             *gorm.DB       // nil เมื่อใช้ memory driver
	RedisClient    *redispkg.Client // optional
	SessionStore   *redispkg.SessionStore
	EventPublisher ports.EventPublisherPort
	Storage        ports.StoragePort
	EventScheduler scheduler.EventScheduler

	// Repositories
	UserRepository repositories.UserRepository
	TodoRepository repositories.TodoRepository

	// Services
	UserService      services.UserService
	TodoService      services.TodoService
	DashboardService services.DashboardService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	c.initRepositories()
	c.initServices()

	if err := c.initScheduler(); err != nil {
		return err
	}

	logger.Info("Container initialized",
		"db_driver", c.Config.Database.Driver,
		"redis", c.RedisClient != nil,
		"storage", c.Storage.GetProviderName(),
	)
	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	// middleware.Protected อ่าน JWT_SECRET จาก env ตรง ๆ
	if os.Getenv("JWT_SECRET") == "" {
		os.Setenv("JWT_SECRET", cfg.JWT.Secret)
	}
	return nil
}

func (c *Container) initLogger() error {
	return logger.Init(logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	})
}

func (c *Container) initInfrastructure() error {
	// Database
	if c.Config.Database.Driver != "memory" {
		db, err := database.NewDatabase(c.Config.Database)
		if err != nil {
			return fmt.Errorf("failed to connect database: %w", err)
		}
		if err := database.Migrate(db); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
		c.DB = db
		logger.Info("Database connected", "driver", c.Config.Database.Driver)
	} else {
		logger.Warn("Using in-memory storage, data will not survive restart")
	}

	// Redis session cache (optional)
	if c.Config.Redis.URL != "" {
		client, err := redispkg.NewClient(&c.Config.Redis)
		if err != nil {
			logger.Warn("Redis unavailable, session cache disabled", "error", err)
		} else {
			c.RedisClient = client
			c.SessionStore = redispkg.NewSessionStore(client)
			logger.Info("Redis connected")
		}
	}

	// Task event publisher (optional NATS)
	if c.Config.NATS.URL != "" {
		publisher, err := events.NewNATSPublisher(c.Config.NATS.URL)
		if err != nil {
			logger.Warn("NATS unavailable, task events disabled", "error", err)
			c.EventPublisher = events.NewNoopPublisher()
		} else {
			c.EventPublisher = publisher
			logger.Info("NATS connected")
		}
	} else {
		c.EventPublisher = events.NewNoopPublisher()
	}

	// Storage provider
	var err error
	switch c.Config.Storage.Type {
	case "s3":
		c.Storage, err = storage.NewS3Storage(storage.S3StorageConfig{
			Endpoint:  c.Config.Storage.S3.Endpoint,
			AccessKey: c.Config.Storage.S3.AccessKey,
			SecretKey: c.Config.Storage.S3.SecretKey,
			Bucket:    c.Config.Storage.S3.Bucket,
			UseSSL:    c.Config.Storage.S3.UseSSL,
			Region:    c.Config.Storage.S3.Region,
			PublicURL: c.Config.Storage.S3.PublicURL,
		})
	default:
		c.Storage, err = storage.NewLocalStorage(storage.LocalStorageConfig{
			BasePath: c.Config.Storage.BasePath,
			BaseURL:  c.Config.Storage.BaseURL,
		})
	}
	if err != nil {
		return fmt.Errorf("failed to init storage: %w", err)
	}

	return nil
}

func (c *Container) initRepositories() {
	if c.DB != nil {
		c.UserRepository = database.NewUserRepository(c.DB)
		c.TodoRepository = database.NewTodoRepository(c.DB)
	} else {
		c.UserRepository = memory.NewUserRepository()
		c.TodoRepository = memory.NewTodoRepository()
	}
}

func (c *Container) initServices() {
	c.UserService = serviceimpl.NewUserService(c.UserRepository, c.SessionStore, c.Config.JWT.Secret)
	c.TodoService = serviceimpl.NewTodoService(c.TodoRepository, c.EventPublisher)
	c.DashboardService = serviceimpl.NewDashboardService(c.TodoService)
}

func (c *Container) initScheduler() error {
	c.EventScheduler = scheduler.NewEventScheduler()

	sweep := serviceimpl.NewOverdueSweep(c.UserRepository, c.TodoRepository)
	if err := c.EventScheduler.AddJob("overdue-sweep", overdueSweepCron, sweep.Run); err != nil {
		return fmt.Errorf("failed to schedule overdue sweep: %w", err)
	}

	c.EventScheduler.Start()
	return nil
}

// GetHandlerServices รวม services ที่ handler layer ต้องใช้
func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		UserService:      c.UserService,
		TodoService:      c.TodoService,
		DashboardService: c.DashboardService,
		StoragePort:      c.Storage,
	}
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) Cleanup() error {
	if c.EventScheduler != nil {
		c.EventScheduler.Stop()
	}

	if c.EventPublisher != nil {
		c.EventPublisher.Close()
	}

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Warn("Failed to close redis client", "error", err)
		}
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				return fmt.Errorf("failed to close database: %w", err)
			}
		}
	}

	return nil
}
