package di

import (
	"fmt"

	"gorm.io/gorm"

	"menu-api/application/serviceimpl"
	"menu-api/domain/ports"
	"menu-api/domain/repositories"
	"menu-api/domain/services"
	"menu-api/infrastructure/postgres"
	"menu-api/infrastructure/storage"
	"menu-api/interfaces/api/handlers"
	"menu-api/pkg/config"
	"menu-api/pkg/logger"
)

type Container struct {
	Config *config.Config

	// Infrastructure
	DB      *gorm.DB
	Storage ports.MediaStoragePort

	// Repositories
	UserRepository     repositories.UserRepository
	CommerceRepository repositories.CommerceRepository
	CategoryRepository repositories.CategoryRepository
	ProductRepository  repositories.ProductRepository
	OptionRepository   repositories.OptionRepository
	TagRepository      repositories.TagRepository

	// Services
	AccessGuard     services.AccessGuard
	UserService     services.UserService
	CommerceService services.CommerceService
	CategoryService services.CategoryService
	ProductService  services.ProductService
	OptionService   services.OptionService
	TagService      services.TagService
	MenuService     services.MenuService
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
		"storage", c.Storage.GetProviderName(),
		"env", c.Config.App.Env,
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
	db, err := postgres.NewDatabase(postgres.DatabaseConfig{
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		User:     c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.DBName,
		SSLMode:  c.Config.Database.SSLMode,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := postgres.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	c.DB = db

	mediaStorage, err := c.buildStorage()
	if err != nil {
		return fmt.Errorf("failed to init media storage: %w", err)
	}
	c.Storage = mediaStorage
	return nil
}

func (c *Container) buildStorage() (ports.MediaStoragePort, error) {
	switch c.Config.Media.Type {
	case "s3":
		return storage.NewS3Storage(storage.S3StorageConfig{
			Endpoint:  c.Config.Media.S3.Endpoint,
			AccessKey: c.Config.Media.S3.AccessKey,
			SecretKey: c.Config.Media.S3.SecretKey,
			Bucket:    c.Config.Media.S3.Bucket,
			UseSSL:    c.Config.Media.S3.UseSSL,
			Region:    c.Config.Media.S3.Region,
			PublicURL: c.Config.Media.S3.PublicURL,
		})
	default:
		return storage.NewLocalStorage(storage.LocalStorageConfig{
			BasePath: c.Config.Media.BasePath,
			BaseURL:  c.Config.Media.BaseURL,
		})
	}
}

func (c *Container) initRepositories() {
	c.UserRepository = postgres.NewUserRepository(c.DB)
	c.CommerceRepository = postgres.NewCommerceRepository(c.DB)
	c.CategoryRepository = postgres.NewCategoryRepository(c.DB)
	c.ProductRepository = postgres.NewProductRepository(c.DB)
	c.OptionRepository = postgres.NewOptionRepository(c.DB)
	c.TagRepository = postgres.NewTagRepository(c.DB)
}

func (c *Container) initServices() {
	c.AccessGuard = serviceimpl.NewAccessGuard(
		c.CategoryRepository,
		c.ProductRepository,
		c.OptionRepository,
		c.TagRepository,
	)
	c.UserService = serviceimpl.NewUserService(c.UserRepository, c.Config.JWT.Secret)
	c.CommerceService = serviceimpl.NewCommerceService(c.CommerceRepository, c.UserRepository, c.AccessGuard, c.Storage)
	c.CategoryService = serviceimpl.NewCategoryService(c.CategoryRepository, c.AccessGuard)
	c.ProductService = serviceimpl.NewProductService(c.ProductRepository, c.CategoryRepository, c.AccessGuard, c.Storage)
	c.OptionService = serviceimpl.NewOptionService(c.OptionRepository, c.AccessGuard, c.Storage)
	c.TagService = serviceimpl.NewTagService(c.TagRepository, c.AccessGuard)
	c.MenuService = serviceimpl.NewMenuService(c.CommerceRepository, c.CategoryRepository, c.ProductRepository)
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

// GetHandlerServices รวม services ที่ HTTP layer ใช้
func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		UserService:     c.UserService,
		CommerceService: c.CommerceService,
		CategoryService: c.CategoryService,
		ProductService:  c.ProductService,
		OptionService:   c.OptionService,
		TagService:      c.TagService,
		MenuService:     c.MenuService,
		MaxUploadSize:   c.Config.Media.MaxUploadSize,
	}
}

func (c *Container) Cleanup() error {
	if c.DB != nil {
		if sqlDB, err := c.DB.DB(); err == nil {
			return sqlDB.Close()
		}
	}
	return nil
}
