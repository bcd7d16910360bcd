package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/keepactive/keepactive/internal/engine"
	"github.com/keepactive/keepactive/internal/platform"
)

// workerCmd is the re-entry point for the process topology: the supervising
// process launches "keepactive worker --window ... --exe ..." and owns the
// child's lifetime. It runs exactly the keep-alive loop: no prompt, no
// elevation check (the parent was already elevated when it spawned us).
var workerCmd = &cobra.Command{
	Use:    "worker",
	Hidden: true,
	Short:  "Run a single keep-alive worker loop (internal)",
	RunE:   runWorker,
}

func init() {
	rootCmd.AddCommand(workerCmd)
	addTargetFlags(workerCmd)
}

func runWorker(cmd *cobra.Command, args []string) error {
	if platform.HideConsoleFunc != nil {
		platform.HideConsoleFunc()
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	spec := engine.NewTargetSpec(cfg.WindowTitles, cfg.ProcessNames)

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w := engine.NewWorker(spec, cfg.Interval, engine.NewLocator(provider.Reader, logger), provider.Activator, logger)
	w.Run(ctx)
	return nil
}
