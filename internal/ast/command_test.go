package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, Command{}.IsEmpty())
	assert.False(t, Command{Argv: []string{"echo"}}.IsEmpty())
	assert.False(t, Command{Redirections: []Redirection{{Kind: RedirIn, Target: "f"}}}.IsEmpty())
}

func TestLastOfKindReturnsLastMatch(t *testing.T) {
	c := Command{Redirections: []Redirection{
		{Kind: RedirOut, Target: "a"},
		{Kind: RedirOut, Target: "b"},
	}}
	target, found := c.LastOfKind(RedirOut)
	require.True(t, found)
	assert.Equal(t, "b", target)

	_, found = c.LastOfKind(RedirIn)
	assert.False(t, found)
}

func TestLastInput(t *testing.T) {
	c := Command{Redirections: []Redirection{
		{Kind: RedirIn, Target: "first"},
		{Kind: RedirOut, Target: "out"},
		{Kind: RedirIn, Target: "second"},
	}}
	target, found := c.LastInput()
	require.True(t, found)
	assert.Equal(t, "second", target)
}

func TestLastOutputPrefersLastAcrossOutAndAppend(t *testing.T) {
	c := Command{Redirections: []Redirection{
		{Kind: RedirOut, Target: "a"},
		{Kind: RedirAppend, Target: "b"},
	}}
	target, appendMode, found := c.LastOutput()
	require.True(t, found)
	assert.Equal(t, "b", target)
	assert.True(t, appendMode)
}
