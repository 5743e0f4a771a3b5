// Package expand replaces DOLLAR/AFDOLLAR variable references in a token
// stream with their looked-up values, respecting quoting context (spec
// §4.3).
package expand

import (
	"github.com/minishell-go/minishell/internal/envstore"
	"github.com/minishell-go/minishell/internal/token"
)

// Lookup is the minimal interface the expander needs from the environment
// store — expressed as an interface so tests can substitute a plain map.
type Lookup interface {
	Lookup(name string) (string, bool)
}

var _ Lookup = (*envstore.Store)(nil)

// Expand walks tokens and rewrites each DOLLAR/AFDOLLAR pair into a WORD
// carrying the variable's current value (or the empty string if unset, per
// spec §4.3). SQUOTE tokens never contain a DOLLAR and pass through
// untouched. A bare DOLLAR with no following AFDOLLAR (no identifier
// followed it at lex time) is left as a literal "$".
func Expand(tokens []token.Token, env Lookup) []token.Token {
	out := make([]token.Token, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		t := tokens[i]
		if t.Kind == token.DOLLAR && i+1 < len(tokens) && tokens[i+1].Kind == token.AFDOLLAR {
			name := tokens[i+1].Value
			value, _ := env.Lookup(name)
			out = append(out, token.Token{Kind: token.WORD, Value: value})
			i++
			continue
		}
		if t.Kind == token.DOLLAR {
			out = append(out, token.Token{Kind: token.WORD, Value: "$"})
			continue
		}
		out = append(out, t)
	}
	return out
}
