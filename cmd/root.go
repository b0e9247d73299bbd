package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/preferreddeals/prefdeals/pkg/ui"
)

var (
	flags = struct {
		ConfigFile string
	}{}

	root = &cobra.Command{
		Use:   "prefdeals",
		Short: "Preferred Deals is a terminal client for the local deals directory",
		Args:  cobra.MaximumNArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := ui.NewFromConfigFile(flags.ConfigFile)
			if err != nil {
				return err
			}

			p := tea.NewProgram(m, tea.WithAltScreen())
			return p.Start()
		},
	}
)

func init() {
	root.PersistentFlags().StringVarP(&flags.ConfigFile, "config", "c", "~/.prefdeals.yaml", "configuration file")
}

func Execute() {
	err := root.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
