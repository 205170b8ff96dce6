package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a task repository in the current directory",
	Long: `Create the .mcp-tasks directory with a starter configuration file.

The directory holds the task data file, the lock file, and optional prompt
override templates.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

// starterConfig is the shape written to the starter config file.
type starterConfig struct {
	Project struct {
		RootDir      string `yaml:"rootDir"`
		TemplatesDir string `yaml:"templatesDir"`
	} `yaml:"project"`
	Data struct {
		File string `yaml:"file"`
	} `yaml:"data"`
	Lock struct {
		TimeoutMs int64 `yaml:"timeoutMs"`
	} `yaml:"lock"`
}

func runInit(cmd *cobra.Command, args []string) error {
	rootDir := ".mcp-tasks"
	if err := os.MkdirAll(rootDir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", rootDir, err)
	}

	configPath := filepath.Join(rootDir, configName+".yaml")
	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("Config already exists at %s\n", configPath)
		return nil
	}

	var cfg starterConfig
	cfg.Project.RootDir = rootDir
	cfg.Project.TemplatesDir = ""
	cfg.Data.File = "tasks.jsonl"
	cfg.Lock.TimeoutMs = 10000

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal starter config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", configPath, err)
	}

	fmt.Printf("Initialized task repository: %s\n", configPath)
	return nil
}
