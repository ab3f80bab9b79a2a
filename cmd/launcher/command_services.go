package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tpen14/INTSYS-Finals/pkg/config"
	"github.com/tpen14/INTSYS-Finals/pkg/registry"
)

func newServicesCmd(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "services",
		Short: "Print the resolved service registry and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*cfgFile)
			if err != nil {
				return err
			}
			printServicesTable(registry.Services(cfg))
			return nil
		},
	}
}

func printServicesTable(services []registry.Descriptor) {
	nameW, cmdW, dirW := len("SERVICE"), len("COMMAND"), len("DIR")
	for _, d := range services {
		nameW = maxInt(nameW, len(d.Name))
		cmdW = maxInt(cmdW, len(d.CommandLine()))
		dirW = maxInt(dirW, len(d.Dir))
	}

	sep := fmt.Sprintf("+-%s-+-%s-+-%s-+\n",
		strings.Repeat("-", nameW), strings.Repeat("-", cmdW), strings.Repeat("-", dirW))
	fmt.Print(sep)
	fmt.Printf("| %s | %s | %s |\n", pad("SERVICE", nameW), pad("COMMAND", cmdW), pad("DIR", dirW))
	fmt.Print(sep)
	for _, d := range services {
		fmt.Printf("| %s | %s | %s |\n", pad(d.Name, nameW), pad(d.CommandLine(), cmdW), pad(d.Dir, dirW))
	}
	fmt.Print(sep)
}

func pad(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
