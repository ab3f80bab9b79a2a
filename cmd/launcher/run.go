package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tpen14/INTSYS-Finals/pkg/browser"
	"github.com/tpen14/INTSYS-Finals/pkg/config"
	"github.com/tpen14/INTSYS-Finals/pkg/menu"
	"github.com/tpen14/INTSYS-Finals/pkg/registry"
	"github.com/tpen14/INTSYS-Finals/pkg/supervisor"
)

func runLauncher(cmd *cobra.Command, cfgFile string, noBrowser bool) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	sup := supervisor.New(registry.Services(cfg), supervisor.Options{
		ReadyTimeout: cfg.ReadyTimeout,
		RestartPause: cfg.RestartPause,
		StopGrace:    cfg.StopGrace,
		LogDir:       cfg.LogDir,
	})
	opener := browser.New(cfg.BrowserCommand, cfg.BrowserArgs)
	urls := []string{cfg.BackendDocsURL(), cfg.FrontendURL()}
	if noBrowser {
		urls = nil
	}

	m := menu.New(os.Stdin, os.Stdout, sup, opener, urls)
	return menu.RunLoop(cmd.Context(), sup, m, os.Stdout)
}
