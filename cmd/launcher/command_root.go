package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	var (
		cfgFile   string
		verbose   bool
		noBrowser bool
	)

	root := &cobra.Command{
		Use:           "launcher",
		Short:         "Agri-Aid stack launcher",
		Long:          "Launches the Ollama model server, the Agri-Aid API backend and the static frontend, then drops into an interactive control menu.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.InfoLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLauncher(cmd, cfgFile, noBrowser)
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: launcher.yaml in the working directory)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	root.Flags().BoolVar(&noBrowser, "no-browser", false, "disable the open-browser-tabs command")

	root.AddCommand(newServicesCmd(&cfgFile))

	return root
}
