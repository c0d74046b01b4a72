// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/rtextract/internal/sink"
	"github.com/pdiddy/rtextract/internal/source"
	"github.com/pdiddy/rtextract/internal/token"
)

var printCmd = &cobra.Command{
	Use:   "print [file]",
	Short: "Print refresh tokens found in a file or stdin",
	Long: `Print extracts refresh tokens and reports them on the console: the count,
then one token per line. With no file argument it reads stdin until end of
input. Nothing is written to disk.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPrint,
}

func runPrint(cmd *cobra.Command, args []string) error {
	unique, _ := cmd.Flags().GetBool("unique")

	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	return printTokens(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), path, unique)
}

// printTokens reads path, or in when path is empty, and writes the report to
// out. Prompts and hints go to errOut.
func printTokens(in io.Reader, out, errOut io.Writer, path string, unique bool) error {
	var (
		text string
		err  error
	)
	if path != "" {
		text, err = source.ReadFile(path)
		if errors.Is(err, source.ErrMissingInput) {
			missingInputHint(errOut, path)
		}
	} else {
		if f, ok := in.(*os.File); ok && source.IsInteractive(f) {
			fmt.Fprintln(errOut, "Paste input, then press Ctrl+D (Ctrl+Z, Enter on Windows) to finish:")
		}
		text, err = source.Read(in)
	}
	if err != nil {
		return err
	}

	tokens := token.Extract(text)
	logger.Debug("tokens extracted", zap.String("input", path), zap.Int("found", len(tokens)))
	if unique {
		tokens = token.Dedupe(tokens)
	}
	sink.PrintReport(out, tokens)
	return nil
}

func init() {
	printCmd.Flags().Bool("unique", false, "drop repeated tokens, keeping first-seen order")

	rootCmd.AddCommand(printCmd)
}
