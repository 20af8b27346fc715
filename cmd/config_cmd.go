package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/Henrik-Peters/Yalc/config"
	"github.com/spf13/cobra"
)

var configPath string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the yalc configuration file",
	Long:  "Performs actions related to the yalc configuration file. Without a subcommand the config is checked.",
	Run:   configCheckRun,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a new default configuration file",
	Run:   configInitRun,
}

var configCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that the configuration file exists and is valid",
	Run:   configCheckRun,
}

func init() {
	configCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultConfigPath, "config file path")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configCheckCmd)
}

func configInitRun(cmd *cobra.Command, args []string) {
	if err := config.Init(configPath); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	fmt.Println("Successfully written template config file to:", configPath)
}

func configCheckRun(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Println("Yalc config check: [ERROR]")
		fmt.Println("Config error:", err)
		os.Exit(1)
	}

	fmt.Println("Yalc config check: [VALID]")
	fmt.Println("dry_run:", cfg.DryRun)
	fmt.Println("mode:", cfg.Mode)
	fmt.Println("keep_rotate:", cfg.KeepRotate)
	fmt.Println("missing_files_ok:", cfg.MissingFilesOK)
	fmt.Println("copy_truncate:", cfg.CopyTruncate)
	fmt.Println("file_list:", strings.Join(cfg.FileList, ", "))
	fmt.Println("retention.file_size_mb:", cfg.Retention.FileSizeMB)
	fmt.Println("retention.last_write_h:", cfg.Retention.LastWriteH)
}
