package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Server configuration
	Port        string
	Environment string

	// Store backend: "redis" or "memory"
	StoreBackend  string
	RedisURL      string
	RedisPassword string
	RedisDB       int

	// PubNub configuration (notifications disabled when keys are empty)
	PubNubPublishKey   string
	PubNubSubscribeKey string

	// Simulated latency
	LoginDelay   time.Duration
	PaymentDelay time.Duration

	// Duplicate-submission throttle
	SubmitLimit  int
	SubmitWindow time.Duration

	// Monitoring
	EnableMetrics bool
}

// LoadConfig reads the environment, then overlays the optional YAML file
// named by CONFIG_FILE.
func LoadConfig() *Config {
	cfg := &Config{
		// Server
		Port:        getEnv("PORT", "8090"),
		Environment: getEnv("ENVIRONMENT", "development"),

		// Store
		StoreBackend:  getEnv("STORE_BACKEND", "redis"),
		RedisURL:      getEnv("REDIS_URL", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),

		// PubNub
		PubNubPublishKey:   getEnv("PUBNUB_PUBLISH_KEY", ""),
		PubNubSubscribeKey: getEnv("PUBNUB_SUBSCRIBE_KEY", ""),

		// Simulated latency
		LoginDelay:   getEnvAsDuration("LOGIN_DELAY", "1s"),
		PaymentDelay: getEnvAsDuration("PAYMENT_DELAY", "3s"),

		// Throttle
		SubmitLimit:  getEnvAsInt("SUBMIT_LIMIT", 5),
		SubmitWindow: getEnvAsDuration("SUBMIT_WINDOW", "10s"),

		// Monitoring
		EnableMetrics: getEnvAsBool("ENABLE_METRICS", true),
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.applyFile(path); err != nil {
			log.Fatalf("Failed to load config file %s: %v", path, err)
		}
	}

	return cfg
}

// fileOverrides mirrors Config with optional fields; only keys present in
// the YAML document override the environment values.
type fileOverrides struct {
	Port               *string `yaml:"port"`
	Environment        *string `yaml:"environment"`
	StoreBackend       *string `yaml:"store_backend"`
	RedisURL           *string `yaml:"redis_url"`
	RedisPassword      *string `yaml:"redis_password"`
	RedisDB            *int    `yaml:"redis_db"`
	PubNubPublishKey   *string `yaml:"pubnub_publish_key"`
	PubNubSubscribeKey *string `yaml:"pubnub_subscribe_key"`
	LoginDelay         *string `yaml:"login_delay"`
	PaymentDelay       *string `yaml:"payment_delay"`
	SubmitLimit        *int    `yaml:"submit_limit"`
	SubmitWindow       *string `yaml:"submit_window"`
	EnableMetrics      *bool   `yaml:"enable_metrics"`
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var over fileOverrides
	if err := yaml.Unmarshal(data, &over); err != nil {
		return err
	}

	setString(&c.Port, over.Port)
	setString(&c.Environment, over.Environment)
	setString(&c.StoreBackend, over.StoreBackend)
	setString(&c.RedisURL, over.RedisURL)
	setString(&c.RedisPassword, over.RedisPassword)
	setString(&c.PubNubPublishKey, over.PubNubPublishKey)
	setString(&c.PubNubSubscribeKey, over.PubNubSubscribeKey)
	if over.RedisDB != nil {
		c.RedisDB = *over.RedisDB
	}
	if over.SubmitLimit != nil {
		c.SubmitLimit = *over.SubmitLimit
	}
	if over.EnableMetrics != nil {
		c.EnableMetrics = *over.EnableMetrics
	}
	if err := setDuration(&c.LoginDelay, over.LoginDelay); err != nil {
		return err
	}
	if err := setDuration(&c.PaymentDelay, over.PaymentDelay); err != nil {
		return err
	}
	return setDuration(&c.SubmitWindow, over.SubmitWindow)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setDuration(dst *time.Duration, src *string) error {
	if src == nil {
		return nil
	}
	d, err := time.ParseDuration(*src)
	if err != nil {
		return err
	}
	*dst = d
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
