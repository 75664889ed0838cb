package cmd

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/sadopc/ambrogio/internal/hooks"
	"github.com/sadopc/ambrogio/internal/tui"
)

var pomodoroCmd = &cobra.Command{
	Use:     "pomodoro",
	Aliases: []string{"pom"},
	Short:   "Pomodoro focus sessions",
}

var pomodoroStartCmd = &cobra.Command{
	Use:     "start",
	Aliases: []string{"s"},
	Short:   "Start a 25-minute pomodoro timer",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPomodoroStart()
	},
}

var pomodoroStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show focus sessions per day",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPomodoroStats()
	},
}

func init() {
	pomodoroCmd.AddCommand(pomodoroStartCmd, pomodoroStatsCmd)
	rootCmd.AddCommand(pomodoroCmd)
}

func runPomodoroStart() error {
	s, err := openStore()
	if err != nil {
		return err
	}
	open, err := s.OpenTodos()
	if err != nil {
		return err
	}
	if len(open) == 0 {
		fmt.Println("No open tasks. Add a task first with: ambrogio tasks add <name>")
		return nil
	}

	idx, err := selectTodo("Select a task to focus on:", open)
	if err != nil {
		return err
	}

	startedAt := time.Now()
	outcome, err := tui.RunSession(open[idx].Description)
	if err != nil {
		return err
	}
	cancelled := outcome == tui.OutcomeCancelled

	if err := s.AddSession(idx, startedAt, cancelled); err != nil {
		return err
	}

	if cancelled {
		fmt.Println("Pomodoro cancelled.")
		return nil
	}

	fmt.Println("Pomodoro complete!\a")
	if err := hooks.Run("pomodoro", "stop"); err != nil {
		log.Warn("pomodoro stop hook", "err", err)
	}
	return nil
}

func runPomodoroStats() error {
	s, err := openStore()
	if err != nil {
		return err
	}
	stats, err := s.SessionStats()
	if err != nil {
		return err
	}
	fmt.Println(tui.RenderStats(stats))
	return nil
}
