package config

import "time"

type Config struct {
	App         AppConfig         `mapstructure:"app"`
	HTTP        HTTPConfig        `mapstructure:"http"`
	CORS        CORSConfig        `mapstructure:"cors"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	Interpreter InterpreterConfig `mapstructure:"interpreter"`
	History     HistoryConfig     `mapstructure:"history"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type HTTPConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	AllowedMethods []string `mapstructure:"allowed_methods"`
	AllowedHeaders []string `mapstructure:"allowed_headers"`
	ExposeHeaders  []string `mapstructure:"expose_headers"`
	Credentials    bool     `mapstructure:"credentials"`
	MaxAge         int      `mapstructure:"max_age"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type InterpreterConfig struct {
	// MaxCommandLength rejects utterances longer than this many
	// characters before the pipeline runs.
	MaxCommandLength int `mapstructure:"max_command_length"`
}

type HistoryConfig struct {
	// Capacity bounds the in-memory command history log.
	Capacity int `mapstructure:"capacity"`
}
