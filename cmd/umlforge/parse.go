package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/viant/umlforge/adapter"
	"github.com/viant/umlforge/cir"
	"github.com/viant/umlforge/dispatch"
)

func newParseCmd() *cobra.Command {
	var language string
	var out string

	cmd := &cobra.Command{
		Use:   "parse <file-or-dir>",
		Short: "Parse source into CIR and print its debug JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			if language == "" {
				language = cfg.DefaultLanguage
			}

			path := args[0]
			g, errs, err := parsePath(cmd.Context(), path, language)
			if err != nil {
				return fmt.Errorf("parse %s: %w", path, err)
			}
			for _, e := range errs {
				log.WithField("file", e.Path).Warn(e.Error)
			}

			facade := dispatch.NewFacade()
			data, err := facade.DebugJSON(g)
			if err != nil {
				return fmt.Errorf("debug json: %w", err)
			}

			if out == "" {
				out = filepath.Join(cfg.OutputDir, "cir.json")
			}
			return writeOutput(out, data)
		},
	}
	cmd.Flags().StringVar(&language, "language", "", "java, python, or empty to auto-detect")
	cmd.Flags().StringVar(&out, "out", "", "output path for the debug JSON (default: <output_dir>/cir.json)")
	return cmd
}

// parsePath dispatches to ParseSingle for a file or ParseDirectory for
// a directory, per spec §4.5's single-file vs. project-mode split.
func parsePath(ctx context.Context, path, language string) (*cir.Graph, []adapter.FileError, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, err
	}
	if info.IsDir() {
		return dispatch.ParseDirectory(ctx, path, language)
	}

	code, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	g, err := dispatch.ParseSingle(code, path, language)
	return g, nil, err
}

func writeOutput(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output dir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	log.WithField("path", path).Info("wrote output file")
	return nil
}
