package envstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndLookup(t *testing.T) {
	s := New()
	s.Set("FOO", "bar")
	v, ok := s.Lookup("FOO")
	require.True(t, ok)
	assert.Equal(t, "bar", v)

	_, ok = s.Lookup("MISSING")
	assert.False(t, ok)
}

func TestSetPreservesInsertionOrderOnUpdate(t *testing.T) {
	s := New()
	s.Set("A", "1")
	s.Set("B", "2")
	s.Set("A", "3")
	entries := s.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "A", entries[0].Name)
	assert.Equal(t, "3", entries[0].Value)
	assert.Equal(t, "B", entries[1].Name)
}

func TestDeclareNameOnlyLeavesExistingValue(t *testing.T) {
	s := New()
	s.Set("X", "1")
	s.DeclareNameOnly("X")
	v, ok := s.Lookup("X")
	require.True(t, ok)
	assert.Equal(t, "1", v)
}

func TestAppendToExisting(t *testing.T) {
	s := New()
	s.Set("PATH", "/bin")
	s.Append("PATH", ":/usr/bin")
	v, _ := s.Lookup("PATH")
	assert.Equal(t, "/bin:/usr/bin", v)
}

func TestAppendToAbsentBehavesLikeSet(t *testing.T) {
	s := New()
	s.Append("NEW", "value")
	v, ok := s.Lookup("NEW")
	require.True(t, ok)
	assert.Equal(t, "value", v)
}

func TestUnsetAbsentIsNoOp(t *testing.T) {
	s := New()
	s.Unset("GONE")
	assert.False(t, s.Has("GONE"))
}

func TestUnsetReindexesRemainingEntries(t *testing.T) {
	s := New()
	s.Set("A", "1")
	s.Set("B", "2")
	s.Set("C", "3")
	s.Unset("B")
	assert.False(t, s.Has("B"))
	v, ok := s.Lookup("C")
	require.True(t, ok)
	assert.Equal(t, "3", v)
}

func TestExportedIsSortedByName(t *testing.T) {
	s := New()
	s.Set("ZETA", "1")
	s.Set("ALPHA", "2")
	s.Set("MID", "3")
	exported := s.Exported()
	require.Len(t, exported, 3)
	assert.Equal(t, []string{"ALPHA", "MID", "ZETA"}, []string{exported[0].Name, exported[1].Name, exported[2].Name})
}

func TestEnvpRendersNameOnlyAsTrailingEquals(t *testing.T) {
	s := New()
	s.DeclareNameOnly("NOVAL")
	s.Set("HASVAL", "x")
	envp := s.Envp()
	assert.Contains(t, envp, "NOVAL=")
	assert.Contains(t, envp, "HASVAL=x")
}

func TestFromEnviron(t *testing.T) {
	s := FromEnviron([]string{"A=1", "B=2"})
	v, ok := s.Lookup("A")
	require.True(t, ok)
	assert.Equal(t, "1", v)
}

func TestValidName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"FOO", true},
		{"foo_bar", false},
		{"FOO+", true},
		{"1FOO", false},
		{"", false},
		{"FO+O", false},
		{"FOO!", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidName(tt.name), "ValidName(%q)", tt.name)
	}
}

func TestParseAssignment(t *testing.T) {
	name, value, isAppend, hasValue, err := ParseAssignment("FOO=bar")
	require.NoError(t, err)
	assert.Equal(t, "FOO", name)
	assert.Equal(t, "bar", value)
	assert.False(t, isAppend)
	assert.True(t, hasValue)

	name, _, isAppend, hasValue, err = ParseAssignment("FOO+=bar")
	require.NoError(t, err)
	assert.Equal(t, "FOO", name)
	assert.True(t, isAppend)
	assert.True(t, hasValue)

	name, _, _, hasValue, err = ParseAssignment("FOO")
	require.NoError(t, err)
	assert.Equal(t, "FOO", name)
	assert.False(t, hasValue)

	_, _, _, _, err = ParseAssignment("1BAD=x")
	require.Error(t, err)
}
