package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/flexwork-hq/payroll-engine-go/internal/domain/worktime"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	App   AppConfig
	JWT   JWTConfig
	Rules worktime.WorkRules
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

func Load() (*Config, error) {
	// A missing .env file is fine in deployed environments where the
	// variables come from the process environment.
	_ = godotenv.Load()

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Work rules. Defaults are the Korean statutory values; every knob
	// can be overridden per jurisdiction without a code change.
	rules, err := loadRules()
	if err != nil {
		return nil, err
	}
	config.Rules = rules

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func loadRules() (worktime.WorkRules, error) {
	rules := worktime.DefaultWorkRules()

	intFields := []struct {
		env    string
		target *int
	}{
		{"RULES_NIGHT_START_HOUR", &rules.NightStartHour},
		{"RULES_NIGHT_END_HOUR", &rules.NightEndHour},
		{"RULES_NIGHT_SAMPLE_STEP_MINUTES", &rules.NightSampleStepMinutes},
		{"RULES_BIWEEKLY_STANDARD_MINUTES", &rules.BiweeklyStandardMinutes},
		{"RULES_SUBSTITUTE_HALF_DAY_MINUTES", &rules.SubstituteHalfDayMinutes},
		{"RULES_SUBSTITUTE_FULL_DAY_MINUTES", &rules.SubstituteFullDayMinutes},
	}
	for _, field := range intFields {
		raw := os.Getenv(field.env)
		if raw == "" {
			continue
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			return worktime.WorkRules{}, fmt.Errorf("invalid %s: %w", field.env, err)
		}
		*field.target = value
	}

	decimalFields := []struct {
		env    string
		target *decimal.Decimal
	}{
		{"RULES_OVERTIME_MULTIPLIER", &rules.OvertimeMultiplier},
		{"RULES_NIGHT_MULTIPLIER", &rules.NightMultiplier},
		{"RULES_NIGHT_OVERTIME_MULTIPLIER", &rules.NightOvertimeMultiplier},
		{"RULES_HOLIDAY_MULTIPLIER", &rules.HolidayMultiplier},
	}
	for _, field := range decimalFields {
		raw := os.Getenv(field.env)
		if raw == "" {
			continue
		}
		value, err := decimal.NewFromString(raw)
		if err != nil {
			return worktime.WorkRules{}, fmt.Errorf("invalid %s: %w", field.env, err)
		}
		*field.target = value
	}

	return rules, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Rules.NightStartHour < 0 || c.Rules.NightStartHour > 23 {
		return fmt.Errorf("RULES_NIGHT_START_HOUR must be between 0 and 23")
	}
	if c.Rules.NightEndHour < 0 || c.Rules.NightEndHour > 23 {
		return fmt.Errorf("RULES_NIGHT_END_HOUR must be between 0 and 23")
	}
	if c.Rules.NightSampleStepMinutes <= 0 {
		return fmt.Errorf("RULES_NIGHT_SAMPLE_STEP_MINUTES must be positive")
	}
	if c.Rules.BiweeklyStandardMinutes <= 0 {
		return fmt.Errorf("RULES_BIWEEKLY_STANDARD_MINUTES must be positive")
	}
	if c.Rules.SubstituteHalfDayMinutes <= 0 ||
		c.Rules.SubstituteFullDayMinutes < c.Rules.SubstituteHalfDayMinutes {
		return fmt.Errorf("substitute-leave thresholds must be positive and half-day must not exceed full-day")
	}
	for _, m := range []decimal.Decimal{
		c.Rules.OvertimeMultiplier,
		c.Rules.NightMultiplier,
		c.Rules.NightOvertimeMultiplier,
		c.Rules.HolidayMultiplier,
	} {
		if m.IsNegative() {
			return fmt.Errorf("rule multipliers must not be negative")
		}
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
