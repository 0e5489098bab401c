package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/rapidresponse/leadsite/internal/config"
	"github.com/rapidresponse/leadsite/internal/logging"
)

var (
	cfgFile   string
	logLevel  string
	appConfig config.Config
	logger    = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "leadsite",
	Short: "Lead-generation site for a local plumbing business",
	Long: `leadsite builds and serves the marketing site for a plumbing business:
service, suburb and service-in-suburb landing pages, a blog read from
./content/blog, and a contact form that forwards leads to an external API.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		used, err := initializeConfig()
		if err != nil {
			return err
		}
		if err := initializeLogger(); err != nil {
			return err
		}
		if used != "" {
			logger.Debug("using config file", zap.String("file", used))
		} else {
			logger.Debug("no config file found, using defaults and environment")
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error (overrides config)")
}

// initializeConfig loads defaults, then the config file, then LEADSITE_*
// environment variables, and returns the config file used if any.
func initializeConfig() (string, error) {
	v := viper.New()
	for key, value := range config.Defaults() {
		v.SetDefault(key, value)
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("LEADSITE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	used := ""
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || cfgFile != "" {
			return "", fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		used = v.ConfigFileUsed()
	}

	if err := v.Unmarshal(&appConfig); err != nil {
		return "", fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if logLevel != "" {
		appConfig.LogLevel = logLevel
	}
	return used, nil
}

func initializeLogger() error {
	l, err := logging.NewLogger(logging.Config{
		Component: "leadsite",
		Level:     appConfig.LogLevel,
		Format:    appConfig.LogFormat,
	})
	if err != nil {
		return fmt.Errorf("init zap logger: %w", err)
	}
	logger = l
	return nil
}
