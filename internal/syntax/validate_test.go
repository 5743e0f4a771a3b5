package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minishell-go/minishell/internal/lexer"
	"github.com/minishell-go/minishell/internal/shellerr"
)

func validateLine(t *testing.T, line string) error {
	t.Helper()
	toks, err := lexer.Lex(lexer.Collapse(line))
	require.NoError(t, err)
	return Validate(toks)
}

func TestValidateAcceptsWellFormedPipeline(t *testing.T) {
	assert.NoError(t, validateLine(t, "echo hi | grep h"))
}

func TestValidateRejectsLeadingPipe(t *testing.T) {
	err := validateLine(t, "| echo hi")
	require.Error(t, err)
	assert.ErrorIs(t, err, shellerr.SyntaxError)
}

func TestValidateRejectsTrailingPipe(t *testing.T) {
	err := validateLine(t, "echo hi |")
	require.Error(t, err)
	assert.ErrorIs(t, err, shellerr.SyntaxError)
}

func TestValidateRejectsDoubledPipe(t *testing.T) {
	err := validateLine(t, "echo hi || grep h")
	require.Error(t, err)
	assert.ErrorIs(t, err, shellerr.SyntaxError)
}

func TestValidateRejectsDanglingRedirection(t *testing.T) {
	err := validateLine(t, "echo hi >")
	require.Error(t, err)
	assert.ErrorIs(t, err, shellerr.SyntaxError)
}

func TestValidateAcceptsRedirectionFollowedByQuoted(t *testing.T) {
	assert.NoError(t, validateLine(t, `echo hi > "out.txt"`))
}

func TestValidateEmptyInput(t *testing.T) {
	assert.NoError(t, Validate(nil))
}
