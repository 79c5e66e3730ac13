package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/viant/umlforge/dispatch"
)

func newDiagramCmd() *cobra.Command {
	var language string
	var diagramTypes []string
	var out string

	cmd := &cobra.Command{
		Use:   "diagram <file-or-dir>",
		Short: "Parse source and render one or more PlantUML diagrams",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			if language == "" {
				language = cfg.DefaultLanguage
			}
			if len(diagramTypes) == 0 {
				diagramTypes = cfg.DiagramTypes
			}
			outputDir := out
			if outputDir == "" {
				outputDir = cfg.OutputDir
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
			for _, diagramType := range diagramTypes {
				ok, plantuml, validationErrors, err := facade.Diagram(g, diagramType)
				if err != nil {
					return fmt.Errorf("diagram %s: %w", diagramType, err)
				}
				if !ok {
					log.WithField("diagram", diagramType).
						Warnf("validation failed: %s", strings.Join(validationErrors, "; "))
				}

				outPath := filepath.Join(outputDir, diagramType+".puml")
				if err := writeOutput(outPath, []byte(plantuml)); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&language, "language", "", "java, python, or empty to auto-detect")
	cmd.Flags().StringSliceVar(&diagramTypes, "type", nil, "diagram types to render: class, package, sequence, component (repeatable)")
	cmd.Flags().StringVar(&out, "out", "", "output directory for rendered diagrams (default: config output_dir)")
	return cmd
}
