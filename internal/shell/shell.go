// Package shell wires the lexer, validator, expander, parser, heredoc
// collector and executor into the read-eval loop described in spec §2:
// prompt → lex → validate → expand → parse → execute → reap → loop.
package shell

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/minishell-go/minishell/internal/ast"
	"github.com/minishell-go/minishell/internal/builtin"
	"github.com/minishell-go/minishell/internal/envstore"
	"github.com/minishell-go/minishell/internal/executor"
	"github.com/minishell-go/minishell/internal/expand"
	"github.com/minishell-go/minishell/internal/heredoc"
	"github.com/minishell-go/minishell/internal/lexer"
	"github.com/minishell-go/minishell/internal/parser"
	"github.com/minishell-go/minishell/internal/shellerr"
	"github.com/minishell-go/minishell/internal/syntax"
)

// LineReader abstracts the external readline-style collaborator spec §1
// delegates to: read_line(prompt) -> Option<String>, add_history(String).
// The CLI entry point wires this to github.com/chzyer/readline; tests
// substitute a scripted reader.
type LineReader interface {
	ReadLine(prompt string) (line string, ok bool)
	AddHistory(line string)
}

var _ heredoc.LineReader = lineReaderAdapter{}

// lineReaderAdapter lets a LineReader satisfy heredoc.LineReader, which
// only needs ReadLine; the embedded interface's AddHistory is simply
// unused by the heredoc collector.
type lineReaderAdapter struct{ LineReader }

// Shell is the top-level REPL state: the environment store plus the
// streams and line reader it was constructed with.
type Shell struct {
	Env      *envstore.Store
	Reader   LineReader
	Stdout   io.Writer
	Stderr   io.Writer
	Debug    bool
	Prompt   func() string
	Logger   *slog.Logger
	LastExit int

	executor *executor.Executor
}

// New builds a Shell seeded from the process environment (spec §6).
func New(reader LineReader, stdout, stderr io.Writer, logger *slog.Logger) *Shell {
	env := envstore.FromEnviron(os.Environ())
	sh := &Shell{
		Env:    env,
		Reader: reader,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
		Prompt: func() string { return "minishell$ " },
	}
	sh.executor = &executor.Executor{Env: env, Stdin: os.Stdin, Stdout: stdout, Stderr: stderr}
	return sh
}

// Run is the top-level loop (spec §2). It returns the process exit code:
// the last evaluated command's exit status, or 0 if none ran before EOF or
// the "exit" builtin (spec §6).
func (sh *Shell) Run() int {
	for {
		line, ok := sh.Reader.ReadLine(sh.Prompt())
		if !ok {
			return sh.LastExit
		}
		if line == "" {
			continue
		}
		sh.Reader.AddHistory(line)

		exitRequested := sh.EvalLine(line)
		if exitRequested {
			return sh.LastExit
		}
	}
}

// EvalLine runs one line through lex → validate → expand → parse →
// heredoc → execute and reports errors per spec §7. It returns true if the
// "exit" builtin was invoked.
func (sh *Shell) EvalLine(line string) bool {
	normalized := lexer.Collapse(line)
	tokens, err := lexer.Lex(normalized)
	if err != nil {
		var oq lexer.ErrOpenQuote
		if errors.As(err, &oq) {
			fmt.Fprintln(sh.Stdout, "Open quote")
			sh.LastExit = exitCodeFor(shellerr.OpenQuote)
			return false
		}
		fmt.Fprintln(sh.Stderr, err.Error())
		sh.LastExit = 1
		return false
	}

	if err := syntax.Validate(tokens); err != nil {
		fmt.Fprintln(sh.Stderr, err.Error())
		sh.LastExit = exitCodeFor(err)
		return false
	}

	expanded := expand.Expand(tokens, sh.Env)
	pipeline := parser.Parse(expanded)
	if len(pipeline) == 0 {
		return false
	}

	if sh.Debug && sh.Logger != nil {
		sh.Logger.Debug("lexed line", "tokens", lexer.DebugString(tokens))
		sh.Logger.Debug("parsed pipeline", "pipeline", fmt.Sprintf("%+v", pipeline))
	}

	created, err := heredoc.CollectAll(lineReaderAdapter{sh.Reader}, pipeline)
	defer func() {
		for _, p := range created {
			os.Remove(p)
		}
	}()
	if err != nil {
		fmt.Fprintln(sh.Stderr, err.Error())
		sh.LastExit = 1
		return false
	}

	if exitRequested, handled := sh.runFastPath(pipeline); handled {
		return exitRequested
	}

	sh.LastExit = sh.executor.Run(pipeline)
	return false
}

// Interrupt forwards a SIGINT caught by the CLI layer to any external
// commands the executor currently has in flight (spec §5).
func (sh *Shell) Interrupt() {
	sh.executor.Interrupt()
}

// runFastPath implements spec §4.6's single-node shell-state fast path:
// cd, unset, export (with arguments) and exit run in the parent process so
// their side effects persist, bypassing the fork/pipe machinery entirely.
func (sh *Shell) runFastPath(pipeline ast.Pipeline) (exitRequested bool, handled bool) {
	if len(pipeline) != 1 {
		return false, false
	}
	node := pipeline[0]
	if len(node.Argv) == 0 {
		return false, false
	}
	if builtin.Classify(node.Argv) != builtin.ParentOnly {
		return false, false
	}

	res := builtin.Run(builtin.IO{Stdin: os.Stdin, Stdout: sh.Stdout, Stderr: sh.Stderr}, sh.Env, node.Argv)
	sh.LastExit = res.Code
	return res.ExitShell, true
}

// exitCodeFor translates a terminal shellerr into the process's exit
// status, per spec §9's redesign flags.
func exitCodeFor(err error) int {
	var se *shellerr.Error
	if errors.As(err, &se) {
		return shellerr.ExitCode(se.Kind)
	}
	return 0
}
