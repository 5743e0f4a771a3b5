// Package builtin implements the shell-intrinsic commands of spec §4.7:
// cd, pwd, echo, env, export, unset, exit.
package builtin

import (
	"io"

	"github.com/minishell-go/minishell/internal/envstore"
)

// IO bundles the streams a builtin reads/writes, standing in for the
// process's stdin/stdout/stderr whether the builtin runs in the parent
// shell or inside a forked child (spec §4.6).
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Dispatch is the parent-vs-child predicate spec §4.6 and §9 call for: a
// single enum answer to "how should argv[0] run", used both at the top of
// pipeline execution and inside a forked child.
type Dispatch int

const (
	// NotBuiltin: argv[0] is an external program, resolved via $PATH.
	NotBuiltin Dispatch = iota
	// ChildCapable: the builtin has no shell-state side effect and may run
	// inside a forked child (echo, pwd, env, export with no args).
	ChildCapable
	// ParentOnly: the builtin mutates shell state and must run in the
	// parent process to have any observable effect (cd, export with args,
	// unset, exit).
	ParentOnly
)

var childCapable = map[string]bool{
	"echo": true,
	"pwd":  true,
	"env":  true,
}

var parentOnly = map[string]bool{
	"cd":     true,
	"export": true,
	"unset":  true,
	"exit":   true,
}

// Classify returns how argv[0] must be dispatched. "export" is
// ChildCapable only when called with no arguments (it then only prints);
// called with arguments it mutates the store and is ParentOnly.
func Classify(argv []string) Dispatch {
	if len(argv) == 0 {
		return NotBuiltin
	}
	name := argv[0]
	if name == "export" {
		if len(argv) == 1 {
			return ChildCapable
		}
		return ParentOnly
	}
	if childCapable[name] {
		return ChildCapable
	}
	if parentOnly[name] {
		return ParentOnly
	}
	return NotBuiltin
}

// IsBuiltin reports whether name is any known builtin, regardless of
// dispatch class.
func IsBuiltin(name string) bool {
	return childCapable[name] || parentOnly[name]
}

// Result is the outcome of running a builtin: an exit code (spec §9's
// decision: 0 success, 1/2 on error) and, for "exit", a request to
// terminate the REPL loop.
type Result struct {
	Code      int
	ExitShell bool
}

// Run executes the named builtin against argv and env, writing to io.
// env is nil-safe for builtins that don't touch the store (echo, pwd).
func Run(io IO, env *envstore.Store, argv []string) Result {
	if len(argv) == 0 {
		return Result{}
	}
	switch argv[0] {
	case "echo":
		return runEcho(io, argv[1:])
	case "pwd":
		return runPwd(io)
	case "env":
		return runEnv(io, env)
	case "export":
		return runExport(io, env, argv[1:])
	case "unset":
		return runUnset(env, argv[1:])
	case "cd":
		return runCd(io, env, argv[1:])
	case "exit":
		return Result{Code: 0, ExitShell: true}
	default:
		return Result{Code: 1}
	}
}
