package cmd

import (
	"errors"
	"fmt"
	"time"

	"b2better/internal/jobs"
)

type Config struct {
	HTTPPort              string
	DBHost                string
	DBPort                string
	DBUser                string
	DBPassword            string
	DBName                string
	DBSslMode             string
	MongoURI              string
	MongoDB               string
	JWTSecret             string
	RecommendationURL     string
	RecommendationTimeout time.Duration
	AMQPURL               string
	AMQPExchange          string
	// RetailerStatsSchedule takes six cron fields with seconds first
	// ("0 */5 * * * *") or a descriptor ("@every 5m"). Empty means every five minutes.
	RetailerStatsSchedule string
	RateLimitRPS          float64
	// RateLimitBurst of zero lets a visitor burst to one second's worth of requests.
	RateLimitBurst        int
	LogLevel              string
}

// Validate reports every missing or malformed setting at once.
func (c Config) Validate() error {
	required := []struct {
		key   string
		value string
	}{
		{"HTTP_PORT", c.HTTPPort},
		{"DB_HOST", c.DBHost},
		{"DB_PORT", c.DBPort},
		{"DB_USER", c.DBUser},
		{"DB_NAME", c.DBName},
		{"MONGO_URI", c.MongoURI},
		{"MONGO_DB", c.MongoDB},
		{"JWT_SECRET", c.JWTSecret},
		{"RECOMMENDATION_URL", c.RecommendationURL},
	}

	var missing []error
	for _, r := range required {
		if r.value == "" {
			missing = append(missing, fmt.Errorf("%s is required", r.key))
		}
	}
	if c.RecommendationTimeout < 0 {
		missing = append(missing, errors.New("RECOMMENDATION_TIMEOUT must not be negative"))
	}
	if c.RateLimitRPS < 0 {
		missing = append(missing, errors.New("RATE_LIMIT_RPS must not be negative"))
	}
	if c.RateLimitBurst < 0 {
		missing = append(missing, errors.New("RATE_LIMIT_BURST must not be negative"))
	}
	if err := jobs.ValidateSchedule(c.RetailerStatsSchedule); err != nil {
		missing = append(missing, fmt.Errorf("RETAILER_STATS_SCHEDULE: %w", err))
	}

	return errors.Join(missing...)
}

// PostgresDSN builds the connection string for gorm.io/driver/postgres.
func (c Config) PostgresDSN() string {
	sslMode := c.DBSslMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, sslMode)
}
