package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/fussel132/hue-controller/internal/config"
	"github.com/fussel132/hue-controller/internal/constants"
	"github.com/fussel132/hue-controller/internal/hue"
	"github.com/fussel132/hue-controller/internal/prompt"
	"github.com/fussel132/hue-controller/internal/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const logTimeFormat = "2006/01/02 15:04:05"

func newRootCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "hue-info",
		Short: "Print the lights, groups and scenes of a Hue bridge",
		Long: `hue-info asks for the address of your Hue bridge and an API key/username,
reads the bridge's full state and prints everything available on your system.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, cfgFile)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: config.* in /etc/hue-info, $HOME/.config/hue-info or .)")
	flags.String("bridge", "", "bridge IP or hostname (prompted for if empty)")
	flags.String("key", "", "API key/username (prompted for if empty)")
	flags.String("mode", constants.DefaultMode, "report mode: none, detailed or raw")
	flags.Bool("insecure", false, "skip TLS certificate verification of the bridge")
	flags.Duration("timeout", constants.DefaultRequestTimeout, "bridge request timeout")
	flags.String("log-level", "warn", "log level: debug, info, warn, error")
	flags.String("log-file", "", "write logs to this (rotated) file instead of stderr")

	bindings := map[string]string{
		"bridgeIp":          "bridge",
		"hueApplicationKey": "key",
		"mode":              "mode",
		"insecure":          "insecure",
		"timeout":           "timeout",
		"logLevel":          "log-level",
		"logFile":           "log-file",
	}
	for key, flag := range bindings {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(fmt.Errorf("fatal error binding flag %s: %w", flag, err))
		}
	}

	return cmd
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, cfgFile string) error {
	// read the config
	if err := config.InitialiseConfig(cfgFile); err != nil {
		return err
	}
	cfg, err := config.ReadConfig()
	if err != nil {
		return err
	}

	logger, closeLog := newLogger(*cfg)
	defer closeLog()
	logger.Info("hue-info starting", "mode", cfg.Mode)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// create/wire up services
	collector := prompt.NewCollector(logger, cmd.InOrStdin(), cmd.OutOrStdout())
	hs := hue.NewHueAPIService(*cfg, logger)
	generator := report.NewGenerator(logger, hs, cmd.OutOrStdout())

	address, appKey, err := collector.Collect(cfg.BridgeIP, cfg.HueAppKey)
	if err != nil {
		return err
	}

	// every report outcome has been printed, the exit status stays 0
	outcome := generator.GenerateReport(ctx, address, appKey, cfg.Mode)
	logger.Info("hue-info finished", "outcome", outcome)

	return nil
}

func newLogger(cfg config.Config) (*log.Logger, func()) {
	if cfg.LogFile == "" {
		return log.NewWithOptions(os.Stderr, log.Options{
			Level:           cfg.Level(),
			ReportTimestamp: true,
			TimeFormat:      logTimeFormat,
		}), func() {}
	}

	var w io.WriteCloser = &lumberjack.Logger{
		Filename: cfg.LogFile,
		MaxAge:   3,
	}
	logger := log.NewWithOptions(w, log.Options{
		Level:           cfg.Level(),
		ReportTimestamp: true,
		TimeFormat:      logTimeFormat,
	})
	return logger, func() { _ = w.Close() }
}
