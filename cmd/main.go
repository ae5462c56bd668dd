package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"label-bot/config"
)

var rootCmd = &cobra.Command{
	Use:           "label-bot",
	Short:         "Bot that connects the labeling UI to a model inference service",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// setupLogging настраивает уровень логов из конфигурации
func setupLogging(cfg *config.Config) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warning("[Main] Unknown log level ", cfg.LogLevel, ", using info")
		level = log.InfoLevel
	}
	log.SetLevel(level)
}
