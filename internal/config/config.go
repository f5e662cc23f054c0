package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"libraria-backend/internal/domain"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Email     EmailConfig     `yaml:"email"`
	Gateway   GatewayConfig   `yaml:"gateway"`
	Policy    PolicyConfig    `yaml:"policy"`
	Log       LogConfig       `yaml:"log"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

// EmailConfig contains SendGrid settings for overdue notices
type EmailConfig struct {
	APIKey         string `yaml:"api_key"`
	FromEmail      string `yaml:"from_email"`
	FromName       string `yaml:"from_name"`
	LibrarianEmail string `yaml:"librarian_email"`
}

// GatewayConfig contains payment gateway settings
type GatewayConfig struct {
	// Mode selects the gateway implementation: "simulated" is the only
	// supported mode until a real processor is integrated.
	Mode string `yaml:"mode"`
	// DeclineOverCents makes the simulated gateway decline any charge above
	// this amount; 0 disables the limit.
	DeclineOverCents int32 `yaml:"decline_over_cents"`
}

// PolicyConfig contains lending policy overrides, all optional
type PolicyConfig struct {
	LoanPeriodDays     int32 `yaml:"loan_period_days"`
	MaxBorrowedBooks   int32 `yaml:"max_borrowed_books"`
	LateFeePerDayCents int32 `yaml:"late_fee_per_day_cents"`
	LateFeeCapCents    int32 `yaml:"late_fee_cap_cents"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	SendOverdueNotices string `yaml:"send_overdue_notices"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Override with environment variables if present
	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Database
	if val := os.Getenv("DB_HOST"); val != "" {
		c.Database.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Database.Port)
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Database.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Database.Database = val
	}
	if val := os.Getenv("DB_SSL_MODE"); val != "" {
		c.Database.SSLMode = val
	}

	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	// Email
	if val := os.Getenv("SENDGRID_API_KEY"); val != "" {
		c.Email.APIKey = val
	}
	if val := os.Getenv("LIBRARIAN_EMAIL"); val != "" {
		c.Email.LibrarianEmail = val
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	// Set defaults for log if not configured
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid and fills in defaults
func (c *Config) Validate() error {
	// Server validation
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	// Database validation
	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}

	// Gateway defaults
	if c.Gateway.Mode == "" {
		c.Gateway.Mode = "simulated"
	}
	if c.Gateway.Mode != "simulated" {
		return fmt.Errorf("unsupported gateway mode: %s", c.Gateway.Mode)
	}

	// Policy defaults
	def := domain.DefaultLendingPolicy()
	if c.Policy.LoanPeriodDays == 0 {
		c.Policy.LoanPeriodDays = def.LoanPeriodDays
	}
	if c.Policy.MaxBorrowedBooks == 0 {
		c.Policy.MaxBorrowedBooks = def.MaxBorrowedBooks
	}
	if c.Policy.LateFeePerDayCents == 0 {
		c.Policy.LateFeePerDayCents = def.LateFeePerDayCents
	}
	if c.Policy.LateFeeCapCents == 0 {
		c.Policy.LateFeeCapCents = def.LateFeeCapCents
	}
	if c.Policy.LoanPeriodDays < 0 || c.Policy.MaxBorrowedBooks < 0 ||
		c.Policy.LateFeePerDayCents < 0 || c.Policy.LateFeeCapCents < 0 {
		return fmt.Errorf("lending policy values must not be negative")
	}

	// Scheduler defaults
	if c.Scheduler.SendOverdueNotices == "" {
		c.Scheduler.SendOverdueNotices = "0 0 8 * * *" // 8 AM UTC daily
	}

	return nil
}

// LendingPolicy returns the effective lending policy
func (c *Config) LendingPolicy() domain.LendingPolicy {
	return domain.LendingPolicy{
		LoanPeriodDays:     c.Policy.LoanPeriodDays,
		MaxBorrowedBooks:   c.Policy.MaxBorrowedBooks,
		LateFeePerDayCents: c.Policy.LateFeePerDayCents,
		LateFeeCapCents:    c.Policy.LateFeeCapCents,
	}
}

// GetDatabaseConnectionString returns a PostgreSQL connection string
func (c *Config) GetDatabaseConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
