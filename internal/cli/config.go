package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"pomodoro/solanum/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.Load().SettingsPath
		settings, err := config.LoadSettings(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v; showing defaults\n", err)
		}
		raw, err := yaml.Marshal(settings)
		if err != nil {
			return fmt.Errorf("failed to encode settings: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(raw))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Long: `Change one setting and save it to the settings file.

Durations are in minutes. Keys:
  focusDuration, shortBreakDuration, longBreakDuration,
  sessionsBeforeLongBreak, autoStartNextSession, soundEnabled,
  notificationsEnabled, defaultProject

Examples:
  pomodoro config set focusDuration 50
  pomodoro config set autoStartNextSession true`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.Load().SettingsPath
		settings, err := config.LoadSettings(path)
		if err != nil {
			return fmt.Errorf("refusing to overwrite unreadable settings: %w", err)
		}
		if err := config.Set(&settings, args[0], args[1]); err != nil {
			return err
		}
		if err := config.SaveSettings(path, settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", args[0])
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), config.Load().SettingsPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configSetCmd, configPathCmd)
}
