// Package config loads application configuration from file and
// environment and initializes logging.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/OLVCORE/olv-trade-intelligence-sub000/internal/catalog"
	"github.com/OLVCORE/olv-trade-intelligence-sub000/internal/classify"
)

// Config holds the full application configuration.
type Config struct {
	Serper   SerperConfig     `yaml:"serper" mapstructure:"serper"`
	Search   SearchConfig     `yaml:"search" mapstructure:"search"`
	Catalog  catalog.Config   `yaml:"catalog" mapstructure:"catalog"`
	Qualify  classify.Weights `yaml:"qualify" mapstructure:"qualify"`
	Resolver ResolverConfig   `yaml:"resolver" mapstructure:"resolver"`
	Server   ServerConfig     `yaml:"server" mapstructure:"server"`
	Log      LogConfig        `yaml:"log" mapstructure:"log"`
}

// SerperConfig holds search API credentials.
type SerperConfig struct {
	Key     string `yaml:"key" mapstructure:"key"`
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
}

// SearchConfig configures the evidence collection behavior.
type SearchConfig struct {
	DelayMs     int `yaml:"delay_ms" mapstructure:"delay_ms"`
	TimeoutSecs int `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	MaxResults  int `yaml:"max_results" mapstructure:"max_results"`
	Concurrency int `yaml:"concurrency" mapstructure:"concurrency"`
}

// ResolverConfig configures the identity resolver's page fetch.
type ResolverConfig struct {
	FetchTimeoutSecs int    `yaml:"fetch_timeout_secs" mapstructure:"fetch_timeout_secs"`
	MaxBodyBytes     int64  `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	UserAgent        string `yaml:"user_agent" mapstructure:"user_agent"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("TRADEINTEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults. Keys without a meaningful default still get an empty
	// one so AutomaticEnv picks them up during Unmarshal.
	v.SetDefault("serper.key", "")
	v.SetDefault("serper.base_url", "https://google.serper.dev")
	v.SetDefault("search.delay_ms", 500)
	v.SetDefault("search.timeout_secs", 15)
	v.SetDefault("search.max_results", 10)
	v.SetDefault("search.concurrency", 2)
	v.SetDefault("catalog.driver", "yaml")
	v.SetDefault("catalog.database_url", "")
	v.SetDefault("catalog.path", "")
	v.SetDefault("catalog.seller_id", "")
	v.SetDefault("resolver.fetch_timeout_secs", 20)
	v.SetDefault("resolver.max_body_bytes", 2<<20)
	v.SetDefault("resolver.user_agent", "tradeintel/1.0 (+https://olvcore.com)")
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Scoring constants ship with the empirically chosen defaults; they
	// are configuration, not validated business rules.
	w := classify.DefaultWeights()
	v.SetDefault("qualify.expansion_strong", w.ExpansionStrong)
	v.SetDefault("qualify.expansion_mid", w.ExpansionMid)
	v.SetDefault("qualify.expansion_any", w.ExpansionAny)
	v.SetDefault("qualify.procurement_strong", w.ProcurementStrong)
	v.SetDefault("qualify.procurement_mid", w.ProcurementMid)
	v.SetDefault("qualify.procurement_any", w.ProcurementAny)
	v.SetDefault("qualify.hiring_strong", w.HiringStrong)
	v.SetDefault("qualify.hiring_mid", w.HiringMid)
	v.SetDefault("qualify.hiring_any", w.HiringAny)
	v.SetDefault("qualify.growth_strong", w.GrowthStrong)
	v.SetDefault("qualify.growth_mid", w.GrowthMid)
	v.SetDefault("qualify.growth_any", w.GrowthAny)
	v.SetDefault("qualify.fit_strong", w.FitStrong)
	v.SetDefault("qualify.fit_mid", w.FitMid)
	v.SetDefault("qualify.fit_any", w.FitAny)
	v.SetDefault("qualify.hot_threshold", w.HotThreshold)
	v.SetDefault("qualify.warm_threshold", w.WarmThreshold)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// ValidateQualify checks the configuration needed to run the
// qualification engine. A missing search key is fatal: the engine must
// fail fast instead of silently degrading to zero evidence.
func (c *Config) ValidateQualify() error {
	if c.Serper.Key == "" {
		return eris.New("config: serper.key is required (set TRADEINTEL_SERPER_KEY)")
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
