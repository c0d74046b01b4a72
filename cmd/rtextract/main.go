// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the rtextract CLI.
// The root command runs a file-to-file extraction; print reports tokens
// from a file or stdin on the console.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/rtextract/internal/collect"
	"github.com/pdiddy/rtextract/internal/source"
	"github.com/pdiddy/rtextract/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger carries diagnostics to stderr. It is replaced in PersistentPreRunE.
var logger = zap.NewNop()

// rootCmd extracts tokens from one input file into one output file.
var rootCmd = &cobra.Command{
	Use:   "rtextract [file]",
	Short: "Extract refresh tokens (rt_...) from account export text",
	Long: `rtextract scans account export text for refresh tokens. Each line is split
on "----" and every field starting with "rt_" is collected. Repeats are
removed, keeping first-seen order, and the result overwrites the output file
one token per line.

The input defaults to tokens.txt in the current directory and the output to
rt_tokens.txt. Use the print subcommand to read stdin and report on the
console instead.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(viper.GetBool("verbose"))
		if err != nil {
			return fmt.Errorf("building logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: runCollect,
}

func runCollect(cmd *cobra.Command, args []string) error {
	cfg, err := collectConfig(args)
	if err != nil {
		return err
	}

	_, err = collect.Run(cmd.Context(), cfg, logger, cmd.OutOrStdout())
	if errors.Is(err, source.ErrMissingInput) {
		missingInputHint(cmd.ErrOrStderr(), cfg.InputPath)
	}
	return err
}

// collectConfig resolves the run settings from viper (flags, env, config
// file) with an optional positional input path taking precedence.
func collectConfig(args []string) (types.CollectConfig, error) {
	format, err := types.ParseOutputFormat(viper.GetString("format"))
	if err != nil {
		return types.CollectConfig{}, err
	}
	cfg := types.CollectConfig{
		InputPath:  viper.GetString("input"),
		OutputPath: viper.GetString("output"),
		Format:     format,
	}
	if len(args) > 0 {
		cfg.InputPath = args[0]
	}
	return cfg.WithDefaults(), nil
}

func missingInputHint(w io.Writer, path string) {
	fmt.Fprintf(w, "Input file does not exist: %s\n", path)
	fmt.Fprintf(w, "Put a %s in the current directory, or run: rtextract your_tokens.txt\n", types.DefaultInputPath)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./rtextract.yaml or ~/.config/rtextract/rtextract.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log diagnostics to stderr")
	rootCmd.Flags().StringP("output", "o", types.DefaultOutputPath, "output file, overwritten on each run")
	rootCmd.Flags().String("format", string(types.FormatText), "output file format: text, yaml, or json")

	viper.SetDefault("input", types.DefaultInputPath)
	viper.SetDefault("output", types.DefaultOutputPath)
	viper.SetDefault("format", string(types.FormatText))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("output", rootCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("format", rootCmd.Flags().Lookup("format"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("rtextract")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "rtextract"))
		}
	}

	viper.SetEnvPrefix("RTEXTRACT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// reportError prints err once. A missing input has already been explained by
// missingInputHint, so nothing more is printed for it.
func reportError(w io.Writer, err error) {
	if errors.Is(err, source.ErrMissingInput) {
		return
	}
	fmt.Fprintln(w, "Error:", err)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		reportError(rootCmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}
