// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package collect runs a file-to-file extraction: read the input file,
// extract and deduplicate refresh tokens, and overwrite the output file.
package collect

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pdiddy/rtextract/internal/sink"
	"github.com/pdiddy/rtextract/internal/source"
	"github.com/pdiddy/rtextract/internal/token"
	"github.com/pdiddy/rtextract/pkg/types"
)

// Summary holds the outcome of one run.
type Summary struct {
	RunID      string
	Found      int
	Unique     int
	Written    bool
	OutputPath string
}

// Duplicates returns how many extracted tokens were dropped as repeats.
func (s Summary) Duplicates() int {
	return s.Found - s.Unique
}

// Run executes one extraction with cfg and prints progress lines to w.
//
// A missing input file returns an error wrapping source.ErrMissingInput and
// nothing is extracted. When no tokens are found Run reports it, leaves the
// output file untouched, and returns a Summary with Written false.
func Run(ctx context.Context, cfg types.CollectConfig, logger *zap.Logger, w io.Writer) (Summary, error) {
	cfg = cfg.WithDefaults()
	summary := Summary{RunID: uuid.NewString(), OutputPath: cfg.OutputPath}
	log := logger.With(
		zap.String("run_id", summary.RunID),
		zap.String("input", cfg.InputPath),
		zap.String("output", cfg.OutputPath),
	)

	text, err := source.ReadFile(cfg.InputPath)
	if err != nil {
		log.Debug("input unavailable", zap.Error(err))
		return summary, err
	}
	log.Debug("input read", zap.Int("bytes", len(text)))

	tokens := token.Extract(text)
	summary.Found = len(tokens)
	if len(tokens) == 0 {
		log.Info("no tokens found")
		fmt.Fprintf(w, "No refresh tokens found in %s\n", cfg.InputPath)
		return summary, nil
	}

	unique := token.Dedupe(tokens)
	summary.Unique = len(unique)
	log.Debug("tokens extracted", zap.Int("found", summary.Found), zap.Int("unique", summary.Unique))

	select {
	case <-ctx.Done():
		return summary, ctx.Err()
	default:
	}

	doc := sink.Document{
		RunID:     summary.RunID,
		Source:    cfg.InputPath,
		Found:     summary.Found,
		Unique:    summary.Unique,
		Timestamp: time.Now().UTC(),
		Tokens:    unique,
	}
	if err := sink.WriteFile(cfg.OutputPath, cfg.Format, doc); err != nil {
		log.Error("output write failed", zap.Error(err))
		return summary, err
	}
	summary.Written = true
	log.Info("tokens written", zap.Int("found", summary.Found), zap.Int("unique", summary.Unique))

	fmt.Fprintf(w, "Extracted %d token(s) from %s, %d unique.\n", summary.Found, cfg.InputPath, summary.Unique)
	fmt.Fprintf(w, "Wrote %s (%s)\n", cfg.OutputPath, layoutNote(cfg.Format))
	return summary, nil
}

func layoutNote(format types.OutputFormat) string {
	if format == types.FormatText {
		return "one per line"
	}
	return string(format)
}
