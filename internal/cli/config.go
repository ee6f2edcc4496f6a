package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"pomo/internal/core"
)

// configFileHeader is written above the generated config.yaml.
const configFileHeader = `# pomo configuration.
# Interval lengths are in minutes. Delete a key to fall back to its default.
`

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the configuration file",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Cfg == nil {
			return fmt.Errorf("configuration not initialized")
		}

		path := configFilePath()
		source := path
		if _, err := os.Stat(path); os.IsNotExist(err) {
			source = fmt.Sprintf("%s (not present, using defaults)", path)
		}

		fmt.Printf("Config file: %s\n\n", source)
		fmt.Printf("  %-28s %d\n", "timer.work_minutes", Cfg.Timer.WorkMinutes)
		fmt.Printf("  %-28s %d\n", "timer.short_break_minutes", Cfg.Timer.ShortBreakMinutes)
		fmt.Printf("  %-28s %d\n", "timer.long_break_minutes", Cfg.Timer.LongBreakMinutes)
		fmt.Printf("  %-28s %d\n", "timer.sessions", Cfg.Timer.Sessions)
		fmt.Printf("  %-28s %t\n", "notifications.desktop", Cfg.Notifications.Desktop)
		fmt.Printf("  %-28s %t\n", "notifications.sound", Cfg.Notifications.Sound)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config.yaml",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configFilePath()
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists at %s", path)
		}

		data, err := yaml.Marshal(core.DefaultConfig())
		if err != nil {
			return fmt.Errorf("marshalling default config: %w", err)
		}

		if err := os.MkdirAll(Home, 0o755); err != nil {
			return fmt.Errorf("creating pomo home: %w", err)
		}
		if err := os.WriteFile(path, append([]byte(configFileHeader), data...), 0o644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Printf("Wrote default configuration to %s\n", path)
		return nil
	},
}

// configFilePath returns the location of config.yaml inside the pomo home.
func configFilePath() string {
	return filepath.Join(Home, "config.yaml")
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
