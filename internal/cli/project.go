package cli

import (
	"fmt"

	"github.com/koki-develop/go-fzf"
	"github.com/spf13/cobra"

	"pomodoro/solanum/internal/config"
	"pomodoro/solanum/internal/sessionlog"
)

var projectCmd = &cobra.Command{
	Use:   "project [name]",
	Short: "Choose the default project for new sessions",
	Long: `Set the project label that new sessions start with.

Without a name, pick one of the projects from your history.

Examples:
  pomodoro project           # Pick from past projects
  pomodoro project thesis    # Use "thesis"
  pomodoro project --clear   # No default project`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProject,
}

var projectClear bool

func init() {
	rootCmd.AddCommand(projectCmd)

	projectCmd.Flags().BoolVar(&projectClear, "clear", false, "Remove the default project")
}

func runProject(cmd *cobra.Command, args []string) error {
	var name string
	switch {
	case projectClear:
	case len(args) == 1:
		name = args[0]
	default:
		picked, err := pickProject(cmd)
		if err != nil {
			return err
		}
		if picked == "" {
			return nil
		}
		name = picked
	}

	path := config.Load().SettingsPath
	settings, err := config.LoadSettings(path)
	if err != nil {
		return fmt.Errorf("refusing to overwrite unreadable settings: %w", err)
	}
	if err := config.Set(&settings, "defaultProject", name); err != nil {
		return err
	}
	if err := config.SaveSettings(path, settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	if settings.DefaultProject == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "Default project cleared.")
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Default project: %s\n", settings.DefaultProject)
	}
	return nil
}

// pickProject returns "" when the user cancels.
func pickProject(cmd *cobra.Command) (string, error) {
	app, err := NewAppContext(cmd.Context(), nil)
	if err != nil {
		return "", err
	}
	projects := sessionlog.ProjectNames(app.Log.Records())
	_ = app.Close()

	if len(projects) == 0 {
		return "", fmt.Errorf("no projects in history; pass a name instead")
	}

	f, err := fzf.New(
		fzf.WithPrompt("Project > "),
		fzf.WithInputPosition(fzf.InputPositionTop),
		fzf.WithLimit(1),
	)
	if err != nil {
		return "", err
	}
	idxs, err := f.Find(projects, func(i int) string { return projects[i] })
	if err != nil {
		return "", err
	}
	if len(idxs) == 0 {
		return "", nil
	}
	return projects[idxs[0]], nil
}
