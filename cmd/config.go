package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/skill-matcher/internal/ai"
	"github.com/spigell/skill-matcher/internal/ai/gemini"
	"github.com/spigell/skill-matcher/internal/analysis"
	"github.com/spigell/skill-matcher/internal/extraction"
	"github.com/spigell/skill-matcher/internal/filtering"
	"github.com/spigell/skill-matcher/internal/scoring"
	"github.com/spigell/skill-matcher/internal/secrets"
	"github.com/spigell/skill-matcher/internal/server"
	"github.com/spigell/skill-matcher/internal/skills"
)

const geminiAPIKeyEnv = "GEMINI_API_KEY"

type Config struct {
	AI       *AIConfig       `mapstructure:"ai"`
	Matching *MatchingConfig `mapstructure:"matching"`
	Server   server.Config   `mapstructure:"server"`
}

type AIConfig struct {
	Provider string        `mapstructure:"provider"`
	Gemini   *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKey         string `mapstructure:"api-key"`
	APIKeyFile     string `mapstructure:"api-key-file"`
	Model          string `mapstructure:"model"`
	EmbeddingModel string `mapstructure:"embedding-model"`
	MaxRetries     int    `mapstructure:"max-retries"`
	MaxLogLength   int    `mapstructure:"max-log-length"`
}

type MatchingConfig struct {
	analysis.Weights `mapstructure:",squash"`

	// Aliases extend the built-in alias table.
	Aliases map[string]string `mapstructure:"aliases"`
	// Junk extends the built-in list of generic job labels.
	Junk []string `mapstructure:"junk"`
	// Filler replaces the built-in filler phrases when set.
	Filler []string `mapstructure:"filler"`
	// DisabledFilters maps cleaning filter names to the reason they are off.
	DisabledFilters map[string]string `mapstructure:"disabled-filters"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ai.provider", gemini.ProviderName)
	v.SetDefault("ai.gemini.api-key", "")
	v.SetDefault("ai.gemini.api-key-file", "")
	v.SetDefault("ai.gemini.model", gemini.DefaultModel)
	v.SetDefault("ai.gemini.embedding-model", gemini.DefaultEmbeddingModel)
	v.SetDefault("ai.gemini.max-retries", gemini.DefaultMaxRetries)
	v.SetDefault("ai.gemini.max-log-length", 200)

	v.SetDefault("matching.required-weight", scoring.DefaultRequiredWeight)
	v.SetDefault("matching.semantic-weight", scoring.DefaultSemanticWeight)
	v.SetDefault("matching.importance-share", scoring.DefaultImportanceShare)

	srv := server.DefaultConfig()
	v.SetDefault("server.listen", srv.Listen)
	v.SetDefault("server.allowed-origins", srv.AllowedOrigins)
	v.SetDefault("server.request-timeout", srv.RequestTimeout)
	v.SetDefault("server.rate-limit.per-second", srv.RateLimit.PerSecond)
	v.SetDefault("server.rate-limit.burst", srv.RateLimit.Burst)
	v.SetDefault("server.release", false)
}

func getConfig() (*Config, error) {
	return loadConfig(viper.GetViper())
}

func loadConfig(v *viper.Viper) (*Config, error) {
	var config *Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if config == nil {
		config = &Config{}
	}
	if config.AI == nil {
		config.AI = &AIConfig{}
	}
	if config.AI.Gemini == nil {
		config.AI.Gemini = &GeminiConfig{}
	}
	if config.Matching == nil {
		config.Matching = &MatchingConfig{Weights: analysis.DefaultWeights()}
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

func (c *Config) Validate() error {
	provider := strings.TrimSpace(strings.ToLower(c.AI.Provider))
	if provider != "" && provider != gemini.ProviderName {
		return fmt.Errorf("unsupported ai provider: %s", c.AI.Provider)
	}
	if c.AI.Gemini.MaxRetries < 0 {
		return fmt.Errorf("ai.gemini.max-retries must not be negative, got %d", c.AI.Gemini.MaxRetries)
	}
	if err := c.Matching.Weights.Validate(); err != nil {
		return err
	}
	return c.Server.Validate()
}

func newBuilder(cfg *MatchingConfig, logger *zap.Logger) *filtering.Builder {
	normalizer := skills.NewNormalizer(skills.DefaultAliases().With(cfg.Aliases))

	builder := filtering.NewBuilder(normalizer, filtering.BuilderOptions{
		FillerPhrases: cfg.Filler,
		ExtraJunk:     cfg.Junk,
		Disabled:      cfg.DisabledFilters,
	})

	job, candidate := builder.Describe()
	for _, status := range job {
		logger.Debug("job filter",
			zap.String("filter", status.Name),
			zap.Bool("enabled", status.Enabled),
			zap.String("reason", status.Reason),
		)
	}
	for _, status := range candidate {
		logger.Debug("candidate filter",
			zap.String("filter", status.Name),
			zap.Bool("enabled", status.Enabled),
			zap.String("reason", status.Reason),
		)
	}
	logger.Debug("skill aliases loaded", zap.Int("count", normalizer.Aliases().Len()))

	return builder
}

func newProvider(ctx context.Context, cfg *AIConfig, logger *zap.Logger) (ai.Provider, error) {
	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		File:  cfg.Gemini.APIKeyFile,
		Value: cfg.Gemini.APIKey,
		Env:   geminiAPIKeyEnv,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file, GEMINI_API_KEY_FILE or GEMINI_API_KEY)", err)
	}

	genLogger := logger.With(zap.Int("ai_retry_attempts", cfg.Gemini.MaxRetries))

	generator, err := gemini.NewGenerator(ctx, gemini.Options{
		APIKey:         apiKey,
		Model:          cfg.Gemini.Model,
		EmbeddingModel: cfg.Gemini.EmbeddingModel,
		MaxRetries:     cfg.Gemini.MaxRetries,
	}, genLogger)
	if err != nil {
		return nil, err
	}

	return gemini.NewAnalyzer(generator, logger, cfg.Gemini.MaxLogLength), nil
}

// newService wires the scoring service. With withProvider false the service
// can only score already extracted input.
func newService(ctx context.Context, config *Config, withProvider bool, logger *zap.Logger) (*analysis.Service, *filtering.Builder, error) {
	builder := newBuilder(config.Matching, logger)

	var provider ai.Provider
	if withProvider {
		p, err := newProvider(ctx, config.AI, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("building ai provider: %w", err)
		}
		provider = p
	}

	svc, err := analysis.NewService(provider, extraction.NewAdapter(builder, logger), config.Matching.Weights, logger)
	if err != nil {
		return nil, nil, err
	}
	return svc, builder, nil
}
