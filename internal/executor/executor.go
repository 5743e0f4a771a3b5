// Package executor materializes a parsed pipeline as a chain of running
// commands joined by pipes (spec §4.6): one goroutine/process per node,
// pipes wired according to position, heredocs and redirections applied,
// built-ins dispatched in-process or in-child, then all results reaped.
package executor

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"

	"github.com/minishell-go/minishell/internal/ast"
	"github.com/minishell-go/minishell/internal/builtin"
	"github.com/minishell-go/minishell/internal/envstore"
	"github.com/minishell-go/minishell/internal/shellerr"
)

// Executor runs pipelines against a shared environment store and the
// process's standard streams.
type Executor struct {
	Env    *envstore.Store
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	mu      sync.Mutex
	running []*exec.Cmd // external commands currently in flight, for Interrupt
}

// Interrupt forwards os.Interrupt to every external command currently in
// flight. The CLI layer calls this from its SIGINT handler (spec §5: the
// only concurrency primitive beyond the process model itself).
func (x *Executor) Interrupt() {
	x.mu.Lock()
	defer x.mu.Unlock()
	for _, cmd := range x.running {
		if cmd.Process != nil {
			_ = cmd.Process.Signal(os.Interrupt)
		}
	}
}

func (x *Executor) track(cmd *exec.Cmd) {
	x.mu.Lock()
	x.running = append(x.running, cmd)
	x.mu.Unlock()
}

func (x *Executor) untrack(cmd *exec.Cmd) {
	x.mu.Lock()
	for i, c := range x.running {
		if c == cmd {
			x.running = append(x.running[:i], x.running[i+1:]...)
			break
		}
	}
	x.mu.Unlock()
}

// New creates an Executor wired to the process's real stdio.
func New(env *envstore.Store) *Executor {
	return &Executor{Env: env, Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run executes pipeline (spec §4.6 "general path"): allocates one pipe per
// adjacent pair of nodes, starts every node before reaping any, and
// returns the exit code of the last node. Heredocs must already have been
// collected by the caller (spec's HEREDOCS_COLLECTED state).
func (x *Executor) Run(pipeline ast.Pipeline) int {
	if len(pipeline) == 0 {
		return 0
	}

	n := len(pipeline)
	stages := make([]*stage, n)
	pipeR := make([]*os.File, n)
	pipeW := make([]*os.File, n)

	for i := 0; i < n-1; i++ {
		r, w, err := os.Pipe()
		if err != nil {
			fmt.Fprintf(x.Stderr, "minishell: pipe: %v\n", err)
			return 1
		}
		pipeR[i+1] = r
		pipeW[i] = w
	}

	for i := range pipeline {
		stages[i] = x.buildStage(pipeline[i], i, n, pipeR, pipeW)
	}

	// Start every stage before reaping any (spec §5 ordering guarantee).
	for i, s := range stages {
		s.start(x)
		if s.closeStdoutAt != nil {
			// An in-process builtin shares this pipe writer with the parent
			// and closes it itself once it returns.
			pipeW[i] = nil
		}
		x.closeParentEnds(i, n, pipeR, pipeW)
	}

	code := 0
	for i, s := range stages {
		c := s.wait(x)
		if i == n-1 {
			code = c
		}
	}
	return code
}

// closeParentEnds closes the pipe ends the parent no longer needs once
// stage i has been started, matching the index-dependent rule of spec
// §4.6: the parent must close every pipe end it handed to a child.
func (x *Executor) closeParentEnds(i, n int, pipeR, pipeW []*os.File) {
	if i > 0 && pipeR[i] != nil {
		pipeR[i].Close()
	}
	if i < n-1 && pipeW[i] != nil {
		pipeW[i].Close()
	}
}

// stage bundles one pipeline node's resolved I/O and its running form:
// either an external os/exec.Cmd or an in-process builtin goroutine.
type stage struct {
	node    ast.Command
	openErr error // set if argv couldn't run at all (bad redirect, command not found)

	cmd *exec.Cmd

	isBuiltin     bool
	builtinIO     builtin.IO
	builtinDone   chan int
	closeStdoutAt io.Closer // the inter-stage pipe writer this builtin must close itself on exit

	closers []io.Closer // redirection files opened for this stage
}

func (x *Executor) buildStage(node ast.Command, i, n int, pipeR, pipeW []*os.File) *stage {
	s := &stage{node: node}

	var stdin io.Reader = x.Stdin
	if i > 0 {
		stdin = pipeR[i]
	}
	var stdout io.Writer = x.Stdout
	var pipeStdout io.Closer
	if i < n-1 {
		stdout = pipeW[i]
		pipeStdout = pipeW[i]
	}
	stderr := x.Stderr

	if target, ok := node.LastInput(); ok {
		f, err := os.Open(target)
		if err != nil {
			s.openErr = shellerr.New(shellerr.KindNoSuchFile, "minishell: %s: No such file or directory", target)
			return s
		}
		s.closers = append(s.closers, f)
		stdin = f
	}
	if target, appendMode, ok := node.LastOutput(); ok {
		flags := os.O_CREATE | os.O_WRONLY
		if appendMode {
			flags |= os.O_APPEND
		} else {
			flags |= os.O_TRUNC
		}
		f, err := os.OpenFile(target, flags, 0o664)
		if err != nil {
			s.openErr = shellerr.New(shellerr.KindNoSuchFile, "minishell: %s: No such file or directory", target)
			return s
		}
		s.closers = append(s.closers, f)
		stdout = f
		pipeStdout = nil // redirected away from the inter-stage pipe; closers already owns it
	}

	if len(node.Argv) == 0 {
		s.openErr = shellerr.New(shellerr.KindSyntaxError, "minishell: empty command")
		return s
	}

	if builtin.Classify(node.Argv) == builtin.ChildCapable {
		s.isBuiltin = true
		s.builtinIO = builtin.IO{Stdin: stdin, Stdout: stdout, Stderr: stderr}
		s.builtinDone = make(chan int, 1)
		s.closeStdoutAt = pipeStdout
		return s
	}

	resolved, ok := ResolvePath(node.Argv[0], lookupPath(x.Env))
	if !ok {
		s.openErr = shellerr.CommandNotFound
		return s
	}
	cmd := exec.Command(resolved)
	cmd.Args = append([]string{node.Argv[0]}, node.Argv[1:]...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if x.Env != nil {
		cmd.Env = x.Env.Envp()
	}
	s.cmd = cmd
	return s
}

func lookupPath(env *envstore.Store) string {
	if env == nil {
		return ""
	}
	v, _ := env.Lookup("PATH")
	return v
}

// start launches the stage: Start()s an external command, or spawns the
// goroutine standing in for a forked builtin child. Diagnostics for a
// stage that cannot run at all are printed immediately, matching spec
// §4.6's "child exits without executing."
func (s *stage) start(x *Executor) {
	if s.openErr != nil {
		if s.openErr == shellerr.CommandNotFound {
			fmt.Fprintln(x.Stderr, "minishell: Command not found")
		} else {
			fmt.Fprintln(x.Stderr, s.openErr.Error())
		}
		return
	}
	if s.isBuiltin {
		go func() {
			res := builtin.Run(s.builtinIO, x.Env, s.node.Argv)
			if s.closeStdoutAt != nil {
				s.closeStdoutAt.Close()
			}
			s.builtinDone <- res.Code
		}()
		return
	}
	if err := s.cmd.Start(); err != nil {
		fmt.Fprintf(x.Stderr, "minishell: %s: %v\n", s.node.Argv[0], err)
		s.openErr = err
		return
	}
	x.track(s.cmd)
}

// wait reaps the stage and returns its exit code, then releases any
// redirection file descriptors it opened.
func (s *stage) wait(x *Executor) int {
	defer func() {
		for _, c := range s.closers {
			c.Close()
		}
	}()
	if s.openErr != nil {
		if s.openErr == shellerr.CommandNotFound {
			return shellerr.ExitCode(shellerr.KindCommandNotFound)
		}
		return 1
	}
	if s.isBuiltin {
		return <-s.builtinDone
	}
	defer x.untrack(s.cmd)
	err := s.cmd.Wait()
	if err == nil {
		return 0
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		return exitErr.ExitCode()
	}
	return 1
}
