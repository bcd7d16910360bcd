package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/keepactive/keepactive/internal/engine"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Start the keep-alive loop and block until interrupted",
	Long: `Start the activation loop for the configured targets and keep it
running until the process receives SIGINT or SIGTERM.

Examples:
  keepactive watch -e notepad.exe
  keepactive watch -w CounterSide --interval 250ms`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	addTargetFlags(watchCmd)
	watchCmd.Flags().String("topology", "", "Worker topology: thread, process")
}

func runWatch(cmd *cobra.Command, args []string) error {
	relaunched, err := ensureElevated()
	if err != nil {
		return err
	}
	if relaunched {
		return nil
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	spec := engine.NewTargetSpec(cfg.WindowTitles, cfg.ProcessNames)

	ctrl, err := newController(cfg)
	if err != nil {
		return err
	}
	defer ctrl.Close()

	if err := ctrl.Start(spec); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "keepactive: watching %s (interval %s), press Ctrl-C to stop\n",
		displayList(append(spec.ProcessNames, spec.WindowTitles...)), cfg.Interval)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	return ctrl.Stop()
}
