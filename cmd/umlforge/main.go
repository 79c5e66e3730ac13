// Command umlforge is a thin CLI over the dispatch façade (C5): it
// parses Java/Python source into CIR and renders PlantUML diagrams,
// grounded on the teacher's pattern of a pure analysis library plus a
// cobra-driven command wrapper for ambient concerns (config, logging).
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/viant/umlforge/internal/config"
)

var (
	cfgPath string
	verbose bool
	log     = logrus.New()
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "umlforge",
		Short: "Parse source into a Code Intermediate Representation and render PlantUML diagrams",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "umlforge.yaml", "path to umlforge.yaml")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newParseCmd())
	root.AddCommand(newDiagramCmd())
	return root
}

func loadConfig() *config.Config {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}
	return cfg
}

func main() {
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
