package config

import "time"

type Server struct {
	Host    string `mapstructure:"host" validate:"required"`
	Port    int    `mapstructure:"port" validate:"required|uint|min:1|max:65535"`
	Mode    string `mapstructure:"mode" validate:"required|in:debug,release,test"`
	Banner  bool   `mapstructure:"banner"`
	BaseURL string `mapstructure:"baseURL"`
}

type Logger struct {
	Level  string `mapstructure:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Format string `mapstructure:"format" validate:"required|in:console,json"`
}

type History struct {
	Backend  string `mapstructure:"backend" validate:"required|in:file,redis,memory"`
	FilePath string `mapstructure:"filePath"`
	RedisURL string `mapstructure:"redisURL"`
}

type Suggest struct {
	Provider string `mapstructure:"provider" validate:"required|in:none,gemini,http"`
	APIKey   string `mapstructure:"apiKey"`
	Model    string `mapstructure:"model"`
	Endpoint string `mapstructure:"endpoint"`
}

// Enabled reports whether a suggestion backend is configured. An empty
// provider means none.
func (s Suggest) Enabled() bool {
	return s.Provider != "" && s.Provider != "none"
}

type Archive struct {
	Backend   string `mapstructure:"backend" validate:"required|in:none,local,s3"`
	Dir       string `mapstructure:"dir"`
	Bucket    string `mapstructure:"bucket"`
	Prefix    string `mapstructure:"prefix"`
	Region    string `mapstructure:"region"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"accessKey"`
	SecretKey string `mapstructure:"secretKey"`
}

type Cache struct {
	Enabled bool          `mapstructure:"enabled"`
	Size    int           `mapstructure:"size"`
	TTL     time.Duration `mapstructure:"ttl"`
}

type Metrics struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

type Notify struct {
	TTL time.Duration `mapstructure:"ttl"`
}

type Config struct {
	AppName string
	Path    string
	Debug   bool

	Server  Server  `mapstructure:"server"`
	Logger  Logger  `mapstructure:"logger"`
	History History `mapstructure:"history"`
	Suggest Suggest `mapstructure:"suggest"`
	Archive Archive `mapstructure:"archive"`
	Cache   Cache   `mapstructure:"cache"`
	Metrics Metrics `mapstructure:"metrics"`
	Notify  Notify  `mapstructure:"notify"`
}

// Address is the host:port the server listens on.
func (c *Config) Address() string {
	return JoinHostPort(c.Server.Host, c.Server.Port)
}
