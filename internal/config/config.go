package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	DataPath          string
	Actor             string
	LogLevel          string
	LowStockThreshold int
	NotificationTTL   time.Duration
}

// Load reads configuration from the environment with compiled-in
// defaults. Variables are prefixed CMMS_ (CMMS_DATA_PATH, CMMS_ACTOR,
// ...); a .env file loaded by the caller feeds the same path.
func Load() Config {
	v := viper.New()
	v.SetEnvPrefix("cmms")
	v.AutomaticEnv()

	v.SetDefault("data_path", "cmms.db")
	v.SetDefault("actor", "Admin")
	v.SetDefault("log_level", "info")
	v.SetDefault("low_stock_threshold", 10)
	v.SetDefault("notification_ttl_ms", 3000)

	return Config{
		DataPath:          v.GetString("data_path"),
		Actor:             v.GetString("actor"),
		LogLevel:          v.GetString("log_level"),
		LowStockThreshold: v.GetInt("low_stock_threshold"),
		NotificationTTL:   time.Duration(v.GetInt("notification_ttl_ms")) * time.Millisecond,
	}
}
