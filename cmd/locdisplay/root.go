package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ZaguanLabs/locdisplay/config"
)

const (
	flagConfig      = "config"
	flagI18n        = "i18n"
	flagLang        = "lang"
	flagLogFormat   = "log-format"
	flagCacheTTL    = "cache-ttl"
	flagRedisURL    = "redis-url"
	flagRedisPrefix = "redis-prefix"
	flagOpenAIKey   = "openai-key"
	flagOpenAIModel = "openai-model"
	flagHostName    = "host-name"
	flagJSON        = "json"
)

func newRootCommand() *cobra.Command {
	v := viper.New()
	ctx := newCommandContext(v)

	rootCmd := &cobra.Command{
		Use:           "locdisplay",
		Short:         "Resolve location display names and replay location notifications",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String(flagConfig, "config.json", "Settings file (EnableMod, NotificationDuration, EnableDebugLogging)")
	flags.String(flagI18n, "i18n", "Translation catalog directory")
	flags.String(flagLang, "", "Language tag, e.g. de-DE (default: untranslated)")
	flags.String(flagLogFormat, "text", "Log format: text or json")
	flags.Int(flagCacheTTL, 0, "In-memory cache TTL in seconds (0 = session lifetime)")
	flags.String(flagRedisURL, "", "Use a shared Redis translation cache (e.g. redis://localhost:6379)")
	flags.String(flagRedisPrefix, "", "Redis key prefix (default: locdisplay:)")
	flags.String(flagOpenAIKey, "", "Machine-translate missing catalog entries with OpenAI (default: OPENAI_API_KEY env)")
	flags.String(flagOpenAIModel, "", "OpenAI model for machine translation")
	flags.StringToString(flagHostName, nil, "Host display name for an identifier, e.g. --host-name Farm_abc=\"Sunny Farm\"")

	_ = v.BindPFlags(flags)
	_ = v.BindEnv(flagOpenAIKey, "OPENAI_API_KEY")
	v.SetEnvPrefix(config.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	rootCmd.AddCommand(newResolveCommand(ctx))
	rootCmd.AddCommand(newSimulateCommand(ctx))
	rootCmd.AddCommand(newDescribeCommand(ctx))
	rootCmd.AddCommand(newCatalogCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
