package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// DBConfig holds the voyage recorder's database settings. An empty Host
// skips Postgres and goes straight to the embedded SQLite fallback.
type DBConfig struct {
	Host       string `mapstructure:"host"`
	Port       string `mapstructure:"port"`
	Username   string `mapstructure:"username"`
	Password   string `mapstructure:"password"`
	Database   string `mapstructure:"database"`
	SQLitePath string `mapstructure:"sqlitePath"`
}

// InfluxConfig holds the optional telemetry export settings.
type InfluxConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Protocol string `mapstructure:"protocol"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Token    string `mapstructure:"token"`
	Org      string `mapstructure:"org"`
	Bucket   string `mapstructure:"bucket"`
}

// RecorderConfig controls voyage persistence.
type RecorderConfig struct {
	Enabled          bool `mapstructure:"enabled"`
	SampleEveryTicks int  `mapstructure:"sampleEveryTicks"`
	TrackFlushPoints int  `mapstructure:"trackFlushPoints"`
}

// Load reads configuration: defaults first, then an optional sail-it.yaml
// in configDir, then SAILIT_* environment overrides.
func Load(configDir string) error {
	viper.SetDefault("logLevel", "info")

	viper.SetDefault("run.scenario", "training_lagoon")
	viper.SetDefault("run.seed", 0)
	viper.SetDefault("run.pace", false)

	viper.SetDefault("db.host", "")
	viper.SetDefault("db.port", "5432")
	viper.SetDefault("db.username", "postgres")
	viper.SetDefault("db.password", "postgres")
	viper.SetDefault("db.database", "sailit")
	viper.SetDefault("db.sqlitePath", "")

	viper.SetDefault("recorder.enabled", false)
	viper.SetDefault("recorder.sampleEveryTicks", 60)
	viper.SetDefault("recorder.trackFlushPoints", 512)

	viper.SetDefault("influx.enabled", false)
	viper.SetDefault("influx.protocol", "http")
	viper.SetDefault("influx.host", "localhost")
	viper.SetDefault("influx.port", "8086")
	viper.SetDefault("influx.token", "")
	viper.SetDefault("influx.org", "sail-it")
	viper.SetDefault("influx.bucket", "voyage_samples")

	viper.SetConfigName("sail-it")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configDir)

	viper.SetEnvPrefix("SAILIT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetInt64 returns an int64 config value.
func GetInt64(key string) int64 {
	return viper.GetInt64(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDBConfig returns the database section.
func GetDBConfig() DBConfig {
	return DBConfig{
		Host:       viper.GetString("db.host"),
		Port:       viper.GetString("db.port"),
		Username:   viper.GetString("db.username"),
		Password:   viper.GetString("db.password"),
		Database:   viper.GetString("db.database"),
		SQLitePath: viper.GetString("db.sqlitePath"),
	}
}

// GetInfluxConfig returns the telemetry export section.
func GetInfluxConfig() InfluxConfig {
	return InfluxConfig{
		Enabled:  viper.GetBool("influx.enabled"),
		Protocol: viper.GetString("influx.protocol"),
		Host:     viper.GetString("influx.host"),
		Port:     viper.GetString("influx.port"),
		Token:    viper.GetString("influx.token"),
		Org:      viper.GetString("influx.org"),
		Bucket:   viper.GetString("influx.bucket"),
	}
}

// GetRecorderConfig returns the voyage recorder section.
func GetRecorderConfig() RecorderConfig {
	return RecorderConfig{
		Enabled:          viper.GetBool("recorder.enabled"),
		SampleEveryTicks: viper.GetInt("recorder.sampleEveryTicks"),
		TrackFlushPoints: viper.GetInt("recorder.trackFlushPoints"),
	}
}
