// Command minishell is the process entry point: it wires the readline-style
// line reader, the colorized slog logger, and the REPL loop together, then
// returns the process exit code described in spec §6 and §9.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/chzyer/readline"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/minishell-go/minishell/internal/shell"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		debug       bool
		noColor     bool
		historyFile string
	)

	rootCmd := &cobra.Command{
		Use:           "minishell",
		Short:         "a small POSIX-ish interactive shell",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "v", false, "trace tokens and parsed pipelines to stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable prompt and log colors")
	rootCmd.PersistentFlags().StringVar(&historyFile, "history-file", defaultHistoryFile(), "line-editor history file")

	exitCode := 0
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		exitCode = runShell(debug, noColor, historyFile)
		return nil
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "minishell:", err)
		return 1
	}
	return exitCode
}

func runShell(debug, noColor bool, historyFile string) int {
	color := !noColor && isatty.IsTerminal(os.Stderr.Fd())

	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(shell.NewColorHandler(os.Stderr, level, color))

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "minishell$ ",
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "minishell: readline:", err)
		return 1
	}
	defer rl.Close()

	reader := &readlineAdapter{rl: rl}

	sh := shell.New(reader, os.Stdout, os.Stderr, logger)
	sh.Debug = debug
	sh.Prompt = shell.ColoredPrompt(color)
	reader.setPrompt = func(p string) { rl.SetPrompt(p) }

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	defer signal.Stop(sigCh)
	stopCh := make(chan struct{})
	defer close(stopCh)
	go func() {
		for {
			select {
			case <-stopCh:
				return
			case <-sigCh:
				sh.Interrupt()
			}
		}
	}()

	return sh.Run()
}

func defaultHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return home + "/.minishell_history"
}

// readlineAdapter satisfies shell.LineReader against a real
// github.com/chzyer/readline instance, the external collaborator spec §1
// names as out of scope for this module to implement itself.
type readlineAdapter struct {
	rl        *readline.Instance
	setPrompt func(string)
}

func (a *readlineAdapter) ReadLine(prompt string) (string, bool) {
	if a.setPrompt != nil {
		a.setPrompt(prompt)
	}
	line, err := a.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		// Ctrl-C on an empty line redraws the prompt rather than exiting,
		// matching interactive shells; EvalLine never sees this line.
		return "", true
	}
	if err != nil {
		return "", false
	}
	return line, true
}

func (a *readlineAdapter) AddHistory(line string) {
	a.rl.SaveHistory(line)
}
