package shell

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedReader struct {
	lines   []string
	i       int
	history []string
}

func (r *scriptedReader) ReadLine(prompt string) (string, bool) {
	if r.i >= len(r.lines) {
		return "", false
	}
	line := r.lines[r.i]
	r.i++
	return line, true
}

func (r *scriptedReader) AddHistory(line string) {
	r.history = append(r.history, line)
}

func newTestShell(lines ...string) (*Shell, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sh := New(&scriptedReader{lines: lines}, &stdout, &stderr, logger)
	return sh, &stdout, &stderr
}

func TestRunExitsCleanlyOnExitBuiltin(t *testing.T) {
	sh, _, _ := newTestShell("exit")
	code := sh.Run()
	assert.Equal(t, 0, code)
}

func TestRunExitsCleanlyOnEOF(t *testing.T) {
	sh, _, _ := newTestShell()
	code := sh.Run()
	assert.Equal(t, 0, code)
}

func TestEvalLineRunsChildCapableBuiltin(t *testing.T) {
	sh, stdout, _ := newTestShell()
	exit := sh.EvalLine("echo hello")
	assert.False(t, exit)
	assert.Equal(t, "hello\n", stdout.String())
}

func TestEvalLineCdIsParentOnlyFastPath(t *testing.T) {
	sh, _, _ := newTestShell()
	sh.Env.Set("HOME", t.TempDir())
	exit := sh.EvalLine("cd")
	assert.False(t, exit)
	pwd, ok := sh.Env.Lookup("PWD")
	require.True(t, ok)
	assert.NotEmpty(t, pwd)
}

func TestEvalLineOpenQuotePrintsToStdout(t *testing.T) {
	sh, stdout, stderr := newTestShell()
	exit := sh.EvalLine("echo 'unterminated")
	assert.False(t, exit)
	assert.Equal(t, "Open quote\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestEvalLineSyntaxErrorPrintsToStderr(t *testing.T) {
	sh, _, stderr := newTestShell()
	exit := sh.EvalLine("| echo hi")
	assert.False(t, exit)
	assert.NotEmpty(t, stderr.String())
}

func TestEvalLineEmptyLineIsNoOp(t *testing.T) {
	sh, stdout, stderr := newTestShell()
	exit := sh.EvalLine("   ")
	assert.False(t, exit)
	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String())
}

func TestEvalLineExpandsVariables(t *testing.T) {
	sh, stdout, _ := newTestShell()
	sh.Env.Set("GREETING", "hi")
	sh.EvalLine("echo $GREETING")
	assert.Equal(t, "hi\n", stdout.String())
}

func TestEvalLineExportPersistsAcrossCalls(t *testing.T) {
	sh, _, _ := newTestShell()
	sh.EvalLine("export FOO=bar")
	v, ok := sh.Env.Lookup("FOO")
	require.True(t, ok)
	assert.Equal(t, "bar", v)
}

func TestEvalLineUnsetRemovesVariable(t *testing.T) {
	sh, _, _ := newTestShell()
	sh.Env.Set("FOO", "bar")
	sh.EvalLine("unset FOO")
	assert.False(t, sh.Env.Has("FOO"))
}
