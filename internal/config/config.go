package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port        int    `yaml:"port"`
	GinMode     string `yaml:"gin_mode"`
	FrontendURL string `yaml:"frontend_url"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret string `yaml:"secret"`
	Issuer string `yaml:"issuer"`
	TTL    string `yaml:"ttl"`
}

type TokenConfig struct {
	OTPTTL          string `yaml:"otp_ttl"`
	VerificationTTL string `yaml:"verification_ttl"`
	ResetTTL        string `yaml:"reset_ttl"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

type OpenAIConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	JWT      JWTConfig      `yaml:"jwt"`
	Tokens   TokenConfig    `yaml:"tokens"`
	SMTP     SMTPConfig     `yaml:"smtp"`
	OpenAI   OpenAIConfig   `yaml:"openai"`
}

type Config struct {
	Port            string
	GinMode         string
	FrontendURL     string
	DSN             string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	JWTSecret       string
	JWTIssuer       string
	JWTTTL          time.Duration
	OTPTTL          time.Duration
	VerificationTTL time.Duration
	ResetTTL        time.Duration
	SMTPHost        string
	SMTPPort        int
	SMTPUsername    string
	SMTPPassword    string
	SMTPFrom        string
	OpenAIKey       string
	OpenAIModel     string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads config/config.yml and applies environment overrides for the
// secrets that should not live in the file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	configFile, err := loadConfigFile(env("CONFIG_PATH", "config/config.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	jwtTTL, err := time.ParseDuration(configFile.JWT.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT TTL: %w", err)
	}

	otpTTL, err := time.ParseDuration(configFile.Tokens.OTPTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid OTP TTL: %w", err)
	}

	verTTL, err := time.ParseDuration(configFile.Tokens.VerificationTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid verification token TTL: %w", err)
	}

	resetTTL, err := time.ParseDuration(configFile.Tokens.ResetTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid reset token TTL: %w", err)
	}

	return &Config{
		Port:            fmt.Sprintf("%d", configFile.App.Port),
		GinMode:         configFile.App.GinMode,
		FrontendURL:     env("FRONTEND_URL", configFile.App.FrontendURL),
		DSN:             env("DATABASE_DSN", configFile.Database.DSN),
		RedisAddr:       env("REDIS_ADDR", configFile.Redis.Addr),
		RedisPassword:   env("REDIS_PASSWORD", configFile.Redis.Password),
		RedisDB:         configFile.Redis.DB,
		JWTSecret:       env("JWT_SECRET", configFile.JWT.Secret),
		JWTIssuer:       configFile.JWT.Issuer,
		JWTTTL:          jwtTTL,
		OTPTTL:          otpTTL,
		VerificationTTL: verTTL,
		ResetTTL:        resetTTL,
		SMTPHost:        env("SMTP_HOST", configFile.SMTP.Host),
		SMTPPort:        configFile.SMTP.Port,
		SMTPUsername:    env("SMTP_USERNAME", configFile.SMTP.Username),
		SMTPPassword:    env("SMTP_PASSWORD", configFile.SMTP.Password),
		SMTPFrom:        env("SMTP_FROM", configFile.SMTP.From),
		OpenAIKey:       env("OPENAI_API_KEY", configFile.OpenAI.APIKey),
		OpenAIModel:     env("OPENAI_MODEL", configFile.OpenAI.Model),
	}, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
