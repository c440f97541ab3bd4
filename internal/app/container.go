package app

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Forbidden-Duck/ecommerce-backend/domain"
	"github.com/Forbidden-Duck/ecommerce-backend/internal/config"
	"github.com/Forbidden-Duck/ecommerce-backend/internal/infrastructure/auth"
	"github.com/Forbidden-Duck/ecommerce-backend/internal/infrastructure/database"
	"github.com/Forbidden-Duck/ecommerce-backend/internal/infrastructure/repositories"
	"github.com/Forbidden-Duck/ecommerce-backend/internal/services"
)

// Container holds all dependencies
type Container struct {
	// Config
	Config *config.Config

	// Infrastructure
	DB          *gorm.DB
	RedisClient *redis.Client
	Casbin      *auth.CasbinService

	// Repositories
	UserRepo    domain.UserRepository
	TokenRepo   domain.RefreshTokenRepository
	ProductRepo domain.ProductRepository
	CartRepo    domain.CartRepository
	OrderRepo   domain.OrderRepository

	// Services
	PasswordSvc domain.PasswordService
	TokenSvc    domain.TokenService
	AuthSvc     domain.AuthService
	UserSvc     domain.UserService
	ProductSvc  domain.ProductService
	CartSvc     domain.CartService
	OrderSvc    domain.OrderService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	container := &Container{Config: cfg}

	if err := container.initDatabase(); err != nil {
		return nil, err
	}
	container.initRedis()

	container.initRepositories()

	if err := container.initServices(); err != nil {
		return nil, err
	}

	return container, nil
}

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.DSN)
	if err != nil {
		return err
	}

	if err := database.AutoMigrate(db); err != nil {
		return err
	}

	cas, err := auth.NewCasbinService(db, c.Config.CasbinModelPath)
	if err != nil {
		return err
	}

	c.DB = db
	c.Casbin = cas
	return nil
}

func (c *Container) initRedis() {
	c.RedisClient = database.NewRedis(c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB).Client
}

func (c *Container) initRepositories() {
	c.UserRepo = repositories.NewUserRepository(c.DB)
	c.TokenRepo = repositories.NewRefreshTokenRepository(c.RedisClient, c.Config.RefreshTTL)
	c.ProductRepo = repositories.NewProductRepository(c.DB)
	c.CartRepo = repositories.NewCartRepository(c.DB)
	c.OrderRepo = repositories.NewOrderRepository(c.DB)
}

func (c *Container) initServices() error {
	c.PasswordSvc = auth.NewPasswordService()

	tokenSvc, err := auth.NewTokenService(c.Config.JWTSecret, c.Config.JWTIssuer, c.Config.AccessTTL)
	if err != nil {
		return err
	}
	c.TokenSvc = tokenSvc

	c.AuthSvc = services.NewAuthService(c.UserRepo, c.TokenRepo, c.PasswordSvc, c.TokenSvc)
	c.UserSvc = services.NewUserService(c.UserRepo, c.TokenRepo, c.PasswordSvc)
	c.ProductSvc = services.NewProductService(c.ProductRepo)
	c.CartSvc = services.NewCartService(c.CartRepo, c.OrderRepo, c.ProductRepo, c.UserRepo)
	c.OrderSvc = services.NewOrderService(c.OrderRepo)

	return nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
