package config

import (
	"errors"
	"fmt"
	"net"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gookit/validate"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const AppName = "qrstudio"

var (
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Flags are the command line values that affect configuration loading.
type Flags struct {
	ConfigPath string
	Debug      bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.banner", true)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("history.backend", "file")
	v.SetDefault("history.filePath", "data/history.json.zst")
	v.SetDefault("suggest.provider", "none")
	v.SetDefault("suggest.model", "gemini-2.5-flash")
	v.SetDefault("archive.backend", "none")
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.size", 128)
	v.SetDefault("cache.ttl", 10*time.Minute)
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.path", "/metrics")
	v.SetDefault("notify.ttl", 3*time.Second)
}

func bindEnv(v *viper.Viper) {
	_ = v.BindEnv("server.host", "QRSTUDIO_HOST")
	_ = v.BindEnv("server.port", "QRSTUDIO_PORT", "PORT")
	_ = v.BindEnv("server.mode", "QRSTUDIO_MODE", "GIN_MODE")
	_ = v.BindEnv("server.baseURL", "QRSTUDIO_BASE_URL")
	_ = v.BindEnv("logger.level", "QRSTUDIO_LOG_LEVEL")
	_ = v.BindEnv("logger.format", "QRSTUDIO_LOG_FORMAT")
	_ = v.BindEnv("history.backend", "QRSTUDIO_HISTORY_BACKEND")
	_ = v.BindEnv("history.filePath", "QRSTUDIO_HISTORY_FILE")
	_ = v.BindEnv("history.redisURL", "QRSTUDIO_REDIS_URL")
	_ = v.BindEnv("suggest.provider", "QRSTUDIO_SUGGEST_PROVIDER")
	_ = v.BindEnv("suggest.apiKey", "QRSTUDIO_SUGGEST_API_KEY", "GEMINI_API_KEY")
	_ = v.BindEnv("suggest.model", "QRSTUDIO_SUGGEST_MODEL")
	_ = v.BindEnv("suggest.endpoint", "QRSTUDIO_SUGGEST_ENDPOINT")
	_ = v.BindEnv("archive.backend", "QRSTUDIO_ARCHIVE_BACKEND")
	_ = v.BindEnv("archive.dir", "QRSTUDIO_ARCHIVE_DIR")
	_ = v.BindEnv("archive.bucket", "QRSTUDIO_ARCHIVE_BUCKET")
	_ = v.BindEnv("archive.region", "QRSTUDIO_ARCHIVE_REGION", "AWS_REGION")
	_ = v.BindEnv("archive.accessKey", "QRSTUDIO_ARCHIVE_ACCESS_KEY", "AWS_ACCESS_KEY_ID")
	_ = v.BindEnv("archive.secretKey", "QRSTUDIO_ARCHIVE_SECRET_KEY", "AWS_SECRET_ACCESS_KEY")
	_ = v.BindEnv("cache.enabled", "QRSTUDIO_CACHE_ENABLED")
	_ = v.BindEnv("cache.size", "QRSTUDIO_CACHE_SIZE")
	_ = v.BindEnv("metrics.enabled", "QRSTUDIO_METRICS_ENABLED")
}

// Load reads the yaml file named by flags, applies environment overrides
// and validates the result. A missing file is not an error; defaults and
// the environment are enough to run.
func Load(flags Flags) (*Config, error) {
	// The .env file is optional.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	bindEnv(v)

	if flags.ConfigPath != "" {
		filename := filepath.Base(flags.ConfigPath)
		v.AddConfigPath(filepath.Dir(flags.ConfigPath))
		v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	conf.AppName = AppName
	conf.Path = flags.ConfigPath
	conf.Debug = flags.Debug
	if conf.Debug {
		conf.Logger.Level = "debug"
	}

	if err := Validate(&conf); err != nil {
		return nil, err
	}
	return &conf, nil
}

// Validate checks each section against its validate tags and the
// cross-field requirements of the selected backends.
func Validate(conf *Config) error {
	sections := []any{&conf.Server, &conf.Logger, &conf.History, &conf.Suggest, &conf.Archive}
	for _, s := range sections {
		v := validate.Struct(s)
		if !v.Validate() {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, v.Errors.One())
		}
	}

	switch {
	case conf.History.Backend == "file" && conf.History.FilePath == "":
		return fmt.Errorf("%w: history.filePath is required for the file backend", ErrInvalidConfig)
	case conf.History.Backend == "redis" && conf.History.RedisURL == "":
		return fmt.Errorf("%w: history.redisURL is required for the redis backend", ErrInvalidConfig)
	case conf.Suggest.Provider == "http" && conf.Suggest.Endpoint == "":
		return fmt.Errorf("%w: suggest.endpoint is required for the http provider", ErrInvalidConfig)
	case conf.Archive.Backend == "local" && conf.Archive.Dir == "":
		return fmt.Errorf("%w: archive.dir is required for the local archive", ErrInvalidConfig)
	case conf.Archive.Backend == "s3" && conf.Archive.Bucket == "":
		return fmt.Errorf("%w: archive.bucket is required for the s3 archive", ErrInvalidConfig)
	case conf.Notify.TTL < 0:
		return fmt.Errorf("%w: notify.ttl must not be negative", ErrInvalidConfig)
	}
	return nil
}

// JoinHostPort formats a listen address.
func JoinHostPort(host string, port int) string {
	return net.JoinHostPort(host, strconv.Itoa(port))
}
