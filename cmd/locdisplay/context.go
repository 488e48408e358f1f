package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ZaguanLabs/locdisplay"
	"github.com/ZaguanLabs/locdisplay/cache"
	"github.com/ZaguanLabs/locdisplay/catalog"
	"github.com/ZaguanLabs/locdisplay/config"
	"github.com/ZaguanLabs/locdisplay/internal/logging"
	"github.com/ZaguanLabs/locdisplay/provider"
)

// commandContext builds the components shared by every subcommand from
// flags, environment and the settings file.
type commandContext struct {
	v *viper.Viper
}

func newCommandContext(v *viper.Viper) *commandContext {
	return &commandContext{v: v}
}

func (c *commandContext) configPath() string {
	return c.v.GetString(flagConfig)
}

func (c *commandContext) language() string {
	return locdisplay.NormalizeLanguage(c.v.GetString(flagLang))
}

func (c *commandContext) settings() (config.Config, error) {
	return config.Load(c.configPath())
}

func (c *commandContext) logger(w io.Writer, cfg config.Config) *logrus.Logger {
	return logging.New(w, logging.Options{
		Debug:  cfg.EnableDebugLogging,
		Format: c.v.GetString(flagLogFormat),
	})
}

func (c *commandContext) catalog() (*catalog.Catalog, error) {
	return catalog.LoadDir(c.v.GetString(flagI18n))
}

// cache returns the Redis cache when --redis-url is set, the in-memory one
// otherwise. The returned close function is always safe to call.
func (c *commandContext) cache() (cache.EnumerableCache, func(), error) {
	url := c.v.GetString(flagRedisURL)
	if url == "" {
		return cache.NewInMemoryCache(c.v.GetInt(flagCacheTTL)), func() {}, nil
	}

	rc, err := cache.NewRedisCache(cache.RedisConfig{
		URL:       url,
		TTL:       c.v.GetInt(flagCacheTTL),
		KeyPrefix: c.v.GetString(flagRedisPrefix),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to redis: %w", err)
	}
	return rc, func() { _ = rc.Close() }, nil
}

// lookup returns the catalog lookup for lang, backed by machine translation
// when an OpenAI key is configured.
func (c *commandContext) lookup(cat *catalog.Catalog, lang string, logger logrus.FieldLogger) locdisplay.Lookup {
	key := c.v.GetString(flagOpenAIKey)
	if key == "" {
		return cat.For(lang)
	}

	translator := provider.NewOpenAITranslator(provider.OpenAIConfig{
		APIKey: key,
		Model:  c.v.GetString(flagOpenAIModel),
	})
	return provider.NewMachineLookup(cat.Translated(lang), cat.For(locdisplay.DefaultLanguage), translator, lang,
		provider.WithMachineLogger(logger))
}

// components wires a resolver and its lookup for the current language.
type components struct {
	cfg      config.Config
	logger   *logrus.Logger
	cache    cache.EnumerableCache
	resolver *locdisplay.Resolver
	host     *cliHost
	close    func()
}

func (c *commandContext) build(logOut io.Writer, names hostNames) (*components, error) {
	cfg, err := c.settings()
	if err != nil {
		return nil, err
	}
	logger := c.logger(logOut, cfg)

	cat, err := c.catalog()
	if err != nil {
		return nil, err
	}

	tc, closeFn, err := c.cache()
	if err != nil {
		return nil, err
	}

	lang := c.language()
	return &components{
		cfg:    cfg,
		logger: logger,
		cache:  tc,
		resolver: locdisplay.NewResolver(tc,
			locdisplay.WithLogger(logger),
			locdisplay.WithDisplayNamer(names)),
		host: &cliHost{
			lookup:    c.lookup(cat, lang, logger),
			hostNames: names,
			lang:      lang,
		},
		close: closeFn,
	}, nil
}

func hostNamesFlag(cmd *cobra.Command) hostNames {
	names, _ := cmd.Flags().GetStringToString(flagHostName)
	return hostNames(names)
}
