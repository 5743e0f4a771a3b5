// Package syntax rejects malformed token sequences (spec §4.2) before the
// expander or parser do any semantic work.
package syntax

import (
	"github.com/minishell-go/minishell/internal/shellerr"
	"github.com/minishell-go/minishell/internal/token"
)

// Validate walks tokens and returns a *shellerr.Error (Kind SyntaxError) for
// the first grammar violation found:
//
//   - a pipe at the start, end, or adjacent to another pipe (SPACE-separated
//     or not)
//   - a redirection operator not followed, ignoring an optional SPACE, by a
//     WORD, DOLLAR or quoted token
//   - a heredoc with no delimiter
func Validate(tokens []token.Token) error {
	if len(tokens) == 0 {
		return nil
	}

	nonSpace := stripTrailingSentinel(tokens)

	for i, t := range nonSpace {
		switch t.Kind {
		case token.PIPE:
			prev, hasPrev := prevNonSpace(nonSpace, i)
			next, hasNext := nextNonSpace(nonSpace, i)
			if !hasPrev || !hasNext {
				return shellerr.New(shellerr.KindSyntaxError, "syntax error near unexpected token `|'")
			}
			if prev.Kind == token.PIPE || next.Kind == token.PIPE {
				return shellerr.New(shellerr.KindSyntaxError, "syntax error near unexpected token `|'")
			}
		case token.LEFTRED, token.RIGHTRED, token.APPEND, token.HEREDOC:
			next, hasNext := nextNonSpace(nonSpace, i)
			if !hasNext || !next.IsWordLike() {
				return shellerr.New(shellerr.KindSyntaxError, "syntax error near unexpected token `newline'")
			}
		}
	}
	return nil
}

// stripTrailingSentinel returns tokens with the NLINE sentinel removed; the
// sentinel itself is never part of the grammar under validation.
func stripTrailingSentinel(tokens []token.Token) []token.Token {
	out := make([]token.Token, 0, len(tokens))
	for _, t := range tokens {
		if t.Kind == token.NLINE {
			continue
		}
		out = append(out, t)
	}
	return out
}

func prevNonSpace(tokens []token.Token, i int) (token.Token, bool) {
	for j := i - 1; j >= 0; j-- {
		if tokens[j].Kind != token.SPACE {
			return tokens[j], true
		}
	}
	return token.Token{}, false
}

func nextNonSpace(tokens []token.Token, i int) (token.Token, bool) {
	for j := i + 1; j < len(tokens); j++ {
		if tokens[j].Kind != token.SPACE {
			return tokens[j], true
		}
	}
	return token.Token{}, false
}
