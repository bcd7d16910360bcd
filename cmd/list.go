package cmd

import (
	"github.com/spf13/cobra"

	"github.com/keepactive/keepactive/internal/model"
	"github.com/keepactive/keepactive/internal/output"
	"github.com/keepactive/keepactive/internal/platform"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List visible windows or running processes",
	Long:  "List visible top-level windows with their title, PID, and executable name, or running processes with --processes. Useful for picking targets.",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Uint32("pid", 0, "Filter windows by PID")
	listCmd.Flags().Bool("processes", false, "List processes instead of windows")
	listCmd.Flags().Bool("no-exe", false, "Skip resolving executable names (faster)")
}

func runList(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	processes, _ := cmd.Flags().GetBool("processes")
	if processes {
		procs, err := provider.Reader.ListProcesses()
		if err != nil {
			return err
		}
		if procs == nil {
			procs = []model.Process{}
		}
		return output.Print(procs)
	}

	pid, _ := cmd.Flags().GetUint32("pid")
	noExe, _ := cmd.Flags().GetBool("no-exe")

	windows, err := provider.Reader.ListWindows(platform.ListOptions{
		PID:        pid,
		IncludeExe: !noExe,
	})
	if err != nil {
		return err
	}
	if windows == nil {
		windows = []model.Window{}
	}
	return output.Print(windows)
}
