// Package parser folds an expanded token list into the ordered command
// nodes described in spec §4.4: each node's argv is the concatenation of
// adjacent word-like tokens, SPACE opens a new argv slot, and redirection
// operators consume their target into the node's Redirections instead of
// argv.
package parser

import (
	"github.com/minishell-go/minishell/internal/ast"
	"github.com/minishell-go/minishell/internal/token"
)

// Parse consumes tokens (already syntax-validated and expanded) and
// returns the pipeline of command nodes they describe.
func Parse(tokens []token.Token) ast.Pipeline {
	var pipeline ast.Pipeline
	i := 0
	for i < len(tokens) && tokens[i].Kind != token.NLINE {
		node, next := parseCommand(tokens, i)
		i = next
		if !node.IsEmpty() {
			pipeline = append(pipeline, node)
		}
	}
	return pipeline
}

// parseCommand parses one command node starting at tokens[i], returning the
// node and the index of the token following its terminating PIPE/NLINE.
func parseCommand(tokens []token.Token, i int) (ast.Command, int) {
	var node ast.Command
	slots := countArgvSlots(tokens, i)
	node.Argv = make([]string, 0, slots)

	var slot string
	haveSlot := false
	closeSlot := func() {
		if haveSlot {
			node.Argv = append(node.Argv, slot)
		}
		slot, haveSlot = "", false
	}

	for i < len(tokens) {
		t := tokens[i]
		switch t.Kind {
		case token.NLINE:
			closeSlot()
			return node, i
		case token.PIPE:
			closeSlot()
			node.Separator = ast.Pipe
			return node, i + 1
		case token.SPACE:
			closeSlot()
			i++
		case token.LEFTRED, token.RIGHTRED, token.APPEND, token.HEREDOC:
			target, consumed := redirectionTarget(tokens, i+1)
			node.Redirections = append(node.Redirections, ast.Redirection{
				Kind:   redirKind(t.Kind),
				Target: target,
			})
			i = consumed
		default:
			if t.IsWordLike() {
				slot += t.Value
				haveSlot = true
			}
			i++
		}
	}
	closeSlot()
	return node, i
}

// redirectionTarget skips an optional SPACE and returns the word-like
// token's value as the redirection's target, along with the index past it.
// The syntax validator guarantees a word-like token is present.
func redirectionTarget(tokens []token.Token, i int) (string, int) {
	if i < len(tokens) && tokens[i].Kind == token.SPACE {
		i++
	}
	if i < len(tokens) && tokens[i].IsWordLike() {
		return tokens[i].Value, i + 1
	}
	return "", i
}

func redirKind(k token.Kind) ast.RedirKind {
	switch k {
	case token.LEFTRED:
		return ast.RedirIn
	case token.RIGHTRED:
		return ast.RedirOut
	case token.APPEND:
		return ast.RedirAppend
	case token.HEREDOC:
		return ast.RedirHeredoc
	default:
		return ast.RedirIn
	}
}

// countArgvSlots pre-computes the number of argv slots a command node
// starting at i will need, mirroring the reference's separate counting
// pass (spec §4.4) so Command.Argv can be allocated with the right
// capacity up front instead of growing incrementally.
func countArgvSlots(tokens []token.Token, i int) int {
	n := 0
	haveSlot := false
	for i < len(tokens) {
		t := tokens[i]
		switch t.Kind {
		case token.PIPE, token.NLINE:
			if haveSlot {
				n++
			}
			return n
		case token.SPACE:
			if haveSlot {
				n++
			}
			haveSlot = false
			i++
		case token.LEFTRED, token.RIGHTRED, token.APPEND, token.HEREDOC:
			_, i = redirectionTarget(tokens, i+1)
		default:
			if t.IsWordLike() {
				haveSlot = true
			}
			i++
		}
	}
	if haveSlot {
		n++
	}
	return n
}
