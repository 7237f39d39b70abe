package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the session history",
	Long: `Delete every recorded session. This cannot be undone.

Examples:
  pomodoro clear        # Ask before deleting
  pomodoro clear --yes  # Delete without asking`,
	RunE: runClear,
}

var clearYes bool

func init() {
	rootCmd.AddCommand(clearCmd)

	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "Skip the confirmation prompt")
}

func runClear(cmd *cobra.Command, args []string) error {
	app, err := NewAppContext(cmd.Context(), nil)
	if err != nil {
		return err
	}
	defer app.Close()

	out := cmd.OutOrStdout()
	count := app.Log.Len()
	if count == 0 {
		fmt.Fprintln(out, "History is already empty.")
		return nil
	}

	if !clearYes && !confirm(cmd, fmt.Sprintf("Delete %d session(s)? [y/N] ", count)) {
		fmt.Fprintln(out, "Cancelled.")
		return nil
	}

	if err := app.Log.Clear(cmd.Context()); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	fmt.Fprintf(out, "Deleted %d session(s).\n", count)
	return nil
}

func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
