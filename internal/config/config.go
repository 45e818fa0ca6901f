package config

import (
	"os"
	"runtime"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds process settings shared by the server and the CLI.
type Config struct {
	Port     string        `mapstructure:"port"`
	Workers  int           `mapstructure:"workers"`
	LogLevel string        `mapstructure:"log_level"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
	// MaxStudents caps num_students on requests served over HTTP.
	MaxStudents int `mapstructure:"max_students"`
	// MaxSweepCruises caps max_cruises on sweep requests; each point is a
	// full batch.
	MaxSweepCruises int `mapstructure:"max_sweep_cruises"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("workers", runtime.GOMAXPROCS(0))
	v.SetDefault("log_level", "info")
	v.SetDefault("cache_ttl", 10*time.Minute)
	v.SetDefault("max_students", 100000)
	v.SetDefault("max_sweep_cruises", 24)
}

// Load reads settings from an optional .env file, the environment (PORT,
// WORKERS, LOG_LEVEL, CACHE_TTL, MAX_STUDENTS, MAX_SWEEP_CRUISES) and, when path is not empty,
// a config file. Environment values win over the file.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("ignoring unreadable .env file")
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	for _, key := range []string{"port", "workers", "log_level", "cache_ttl", "max_students", "max_sweep_cruises"} {
		if err := v.BindEnv(key); err != nil {
			return Config{}, errors.WithStack(err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "reading config %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "decoding config")
	}
	if cfg.Workers < 1 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	return cfg, nil
}

func ConfigureLogging(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", level)
	}
	log.SetFormatter(&log.TextFormatter{ForceColors: true, FullTimestamp: true})
	log.SetOutput(os.Stdout)
	log.SetLevel(lvl)
	return nil
}
