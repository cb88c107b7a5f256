package app

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/mahir-soa/FYP/domain"
	"github.com/mahir-soa/FYP/internal/config"
	"github.com/mahir-soa/FYP/internal/infrastructure/auth"
	"github.com/mahir-soa/FYP/internal/infrastructure/database"
	"github.com/mahir-soa/FYP/internal/infrastructure/notifications"
	"github.com/mahir-soa/FYP/internal/infrastructure/repositories"
	"github.com/mahir-soa/FYP/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config

	DB          *gorm.DB
	RedisClient *redis.Client

	UserRepo         domain.UserRepository
	PendingRepo      domain.PendingRegistrationRepository
	ExpenseRepo      domain.ExpenseRepository
	SubscriptionRepo domain.SubscriptionRepository
	FareRepo         domain.FareRepository
	ConversationRepo domain.ConversationRepository

	PasswordSvc     domain.PasswordService
	TokenSvc        domain.TokenService
	NotificationSvc domain.NotificationService
	AuthSvc         domain.AuthService
	SubscriptionSvc domain.SubscriptionService
	FareSvc         domain.FareService
	ChatSvc         domain.ChatService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	if err := c.initDatabase(); err != nil {
		return nil, err
	}
	if err := c.initRedis(); err != nil {
		return nil, err
	}

	c.initRepositories()
	c.initServices()

	if err := seedFares(context.Background(), c.FareRepo); err != nil {
		return nil, fmt.Errorf("failed to seed fares: %w", err)
	}

	return c, nil
}

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(db); err != nil {
		return err
	}
	c.DB = db
	return nil
}

func (c *Container) initRedis() error {
	c.RedisClient = database.NewRedis(c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB).Client
	return c.RedisClient.Ping(context.Background()).Err()
}

func (c *Container) initRepositories() {
	c.UserRepo = repositories.NewUserRepository(c.DB)
	c.PendingRepo = repositories.NewPendingRepository(c.RedisClient)
	c.ExpenseRepo = repositories.NewExpenseRepository(c.DB)
	c.SubscriptionRepo = repositories.NewSubscriptionRepository(c.DB)
	c.FareRepo = repositories.NewFareRepository(c.DB)
	c.ConversationRepo = repositories.NewConversationRepository(c.DB)
}

func (c *Container) initServices() {
	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(c.Config.JWTSecret, c.Config.JWTIssuer, c.Config.JWTTTL)
	c.NotificationSvc = notifications.NewEmailService(
		c.Config.SMTPHost,
		c.Config.SMTPPort,
		c.Config.SMTPUsername,
		c.Config.SMTPPassword,
		c.Config.SMTPFrom,
		c.Config.FrontendURL,
	)

	c.AuthSvc = services.NewAuthService(
		c.UserRepo,
		c.PendingRepo,
		c.PasswordSvc,
		c.TokenSvc,
		auth.NewSecretGenerator(),
		c.NotificationSvc,
		c.Config.OTPTTL,
		c.Config.VerificationTTL,
		c.Config.ResetTTL,
	)
	c.SubscriptionSvc = services.NewSubscriptionService(c.SubscriptionRepo)
	c.FareSvc = services.NewFareService(c.FareRepo)
	c.ChatSvc = services.NewChatService(
		services.NewOpenAIClient(c.Config.OpenAIKey),
		c.Config.OpenAIModel,
		c.ExpenseRepo,
	)
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
