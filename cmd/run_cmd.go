package cmd

import (
	"fmt"
	"os"

	"github.com/Henrik-Peters/Yalc/cleaner"
	"github.com/Henrik-Peters/Yalc/config"
	"github.com/spf13/cobra"
)

type RunParams struct {
	ConfigPath string // path of the config file
	DryRun     bool   // simulate without mutating files
	IgnoreMiss bool   // missing log files are not an error
	Truncate   bool   // copy and truncate instead of renaming
}

var runParams *RunParams

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute the log file cleanup process",
	Long:  "Executes the log file cleanup process based on the current configuration.",
	Run:   runRun,
}

func init() {
	runParams = &RunParams{}
	runCmd.Flags().StringVarP(&runParams.ConfigPath, "config", "c", config.DefaultConfigPath, "config file path")
	runCmd.Flags().BoolVarP(&runParams.DryRun, "dry", "d", false, "simulate the cleanup without deleting or modifying any files")
	runCmd.Flags().BoolVarP(&runParams.IgnoreMiss, "ignore-miss", "i", false, "do not return an error when a configured log file is missing")
	runCmd.Flags().BoolVarP(&runParams.Truncate, "trunc", "t", false, "truncate files instead of deleting them, useful for files still in use")
}

func runRun(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(runParams.ConfigPath)
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	adjusted := cfg.ApplyOverrides(runParams.DryRun, runParams.IgnoreMiss, runParams.Truncate)
	report := cleaner.Run(&adjusted)

	fmt.Printf("Successful tasks: %d/%d [%d%%]\n", report.Succeeded, report.Executed, report.SuccessRate())
	fmt.Printf("Failure tasks:    %d/%d [%d%%]\n", report.Failed, report.Executed, report.FailureRate())
	fmt.Println("All tasks done")

	if report.Failed > 0 {
		os.Exit(1)
	}
}
