package di

import (
	"fmt"

	"gorm.io/gorm"

	"todo-backend/application/serviceimpl"
	"todo-backend/domain/ports"
	"todo-backend/domain/repositories"
	"todo-backend/domain/services"
	"todo-backend/infrastructure/events"
	"todo-backend/infrastructure/memory"
	"todo-backend/infrastructure/postgres"
	redispkg "todo-backend/infrastructure/redis"
	"todo-backend/interfaces/api/handlers"
	"todo-backend/pkg/config"
	"todo-backend/pkg/logger"
)

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB             *gorm.DB
	RedisClient    *redispkg.Client     // optional, profile directory backend
	EventPublisher ports.EventPublisher // NATS or noop

	// Repositories
	ProfileRepository repositories.ProfileRepository
	TaskRepository    repositories.TaskRepository
	SubtaskRepository repositories.SubtaskRepository

	// Services
	AuthService    services.AuthService
	ProfileService services.ProfileService
	TaskService    services.TaskService
	SubtaskService services.SubtaskService
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

	logger.Info("Container initialized",
		"app", c.Config.App.Name,
		"env", c.Config.App.Env,
		"db_driver", c.Config.Database.Driver,
	)

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
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
	db, err := postgres.NewDatabase(c.Config.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	if err := postgres.Migrate(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	c.DB = db

	// Redis is optional: without a URL the profile directory lives in memory.
	if c.Config.Redis.URL != "" {
		client, err := redispkg.NewClient(&c.Config.Redis)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		c.RedisClient = client
	}

	// NATS is optional: without a URL lifecycle events are logged and dropped.
	if c.Config.NATS.URL != "" {
		publisher, err := events.NewNATSPublisher(c.Config.NATS.URL)
		if err != nil {
			return fmt.Errorf("failed to connect to NATS: %w", err)
		}
		c.EventPublisher = publisher
	} else {
		c.EventPublisher = events.NewNoopPublisher()
	}

	return nil
}

func (c *Container) initRepositories() {
	if c.RedisClient != nil {
		c.ProfileRepository = redispkg.NewProfileStore(c.RedisClient)
	} else {
		c.ProfileRepository = memory.NewProfileStore()
	}

	c.TaskRepository = postgres.NewTaskRepository(c.DB)
	c.SubtaskRepository = postgres.NewSubtaskRepository(c.DB)
}

func (c *Container) initServices() {
	c.AuthService = serviceimpl.NewAuthService(c.ProfileRepository, c.Config.JWT.Secret, c.Config.JWT.ExpireMinutes)
	c.ProfileService = serviceimpl.NewProfileService(c.ProfileRepository)
	c.TaskService = serviceimpl.NewTaskService(c.TaskRepository, c.EventPublisher)
	c.SubtaskService = serviceimpl.NewSubtaskService(c.TaskRepository, c.SubtaskRepository)
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

// GetHandlerServices bundles everything the HTTP layer needs.
func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		AuthService:    c.AuthService,
		ProfileService: c.ProfileService,
		TaskService:    c.TaskService,
		SubtaskService: c.SubtaskService,
		JWTSecret:      c.Config.JWT.Secret,
	}
}

// Cleanup releases infrastructure connections on shutdown.
func (c *Container) Cleanup() {
	if c.EventPublisher != nil {
		if err := c.EventPublisher.Close(); err != nil {
			logger.Error("Failed to close event publisher", "error", err)
		}
	}

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Error("Failed to close redis client", "error", err)
		}
	}

	if c.DB != nil {
		if sqlDB, err := c.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				logger.Error("Failed to close database", "error", err)
			}
		}
	}
}
