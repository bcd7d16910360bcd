package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/keepactive/keepactive/internal/engine"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Interactively control the keep-alive loop",
	Long: `Start an interactive console session driving the keep-alive engine.

Commands:
  1   start the activation loop
  0   stop the activation loop
  q   quit

Examples:
  keepactive run -e notepad.exe
  keepactive run -w "My Game" -w "My Game - Launcher"
  keepactive run --config targets.yaml --topology process`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	addTargetFlags(runCmd)
	runCmd.Flags().String("topology", "", "Worker topology: thread, process")
}

func runRun(cmd *cobra.Command, args []string) error {
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

	fmt.Printf("keepactive %s\n", rootCmd.Version)
	fmt.Printf("Target executables: %s\n", displayList(spec.ProcessNames))
	fmt.Printf("Fallback window titles: %s\n", displayList(spec.WindowTitles))
	fmt.Println("----------------------------------------")
	fmt.Println("Commands: 1 = start, 0 = stop, q = quit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		switch input := strings.TrimSpace(scanner.Text()); input {
		case "":
		case "1":
			if ctrl.IsRunning() {
				fmt.Println("Already running.")
				continue
			}
			if err := ctrl.Start(spec); err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			fmt.Println("Activation loop started.")
		case "0":
			if !ctrl.IsRunning() {
				fmt.Println("Not running.")
				continue
			}
			if err := ctrl.Stop(); err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			fmt.Println("Activation loop stopped.")
		case "q", "Q":
			if err := ctrl.Stop(); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			fmt.Println("Exiting.")
			return nil
		default:
			fmt.Printf("Unknown command: %s\n", input)
		}
	}
	return scanner.Err()
}

func displayList(values []string) string {
	if len(values) == 0 {
		return "not set"
	}
	return strings.Join(values, ", ")
}
