// Package ast holds the command-node data model produced by the parser
// (spec §3): an ordered pipeline of commands, each with an argv and its
// redirections.
package ast

// RedirKind identifies the direction/kind of a Redirection.
type RedirKind int

const (
	RedirIn      RedirKind = iota // '<'
	RedirOut                      // '>'
	RedirAppend                   // '>>'
	RedirHeredoc                  // '<<'
)

// Redirection associates a target (a filename, or — once resolved by the
// heredoc collector — a scratch-file path) with a command's stdin/stdout.
type Redirection struct {
	Kind   RedirKind
	Target string
}

// Separator marks what follows a Command in its pipeline.
type Separator int

const (
	EndOfLine Separator = iota
	Pipe
)

// Command is one node of a pipeline: an argv (first element is the
// program) plus its redirections in source order and the separator that
// follows it. Per spec invariant 3, a Command is never built with both an
// empty Argv and no Redirections.
type Command struct {
	Argv         []string
	Redirections []Redirection
	Separator    Separator
}

// IsEmpty reports whether this node carries neither argv nor redirections —
// the shape the parser must never produce (spec §8 invariant 3).
func (c Command) IsEmpty() bool {
	return len(c.Argv) == 0 && len(c.Redirections) == 0
}

// LastOfKind returns the target of the last redirection of kind k, and
// whether one exists. Spec §4.6 and §9's redirection-semantics note: only
// the last redirection of a given direction is effective.
func (c Command) LastOfKind(k RedirKind) (string, bool) {
	target, found := "", false
	for _, r := range c.Redirections {
		if r.Kind == k {
			target, found = r.Target, true
		}
	}
	return target, found
}

// LastInput returns the target of the last input-direction redirection
// (RedirIn — including a heredoc already rewritten to RedirIn by the
// heredoc collector) in source order, and whether one exists.
func (c Command) LastInput() (string, bool) {
	target, found := "", false
	for _, r := range c.Redirections {
		if r.Kind == RedirIn {
			target, found = r.Target, true
		}
	}
	return target, found
}

// LastOutput returns the target and append-mode of the last
// output-direction redirection (RedirOut or RedirAppend) in source order,
// and whether one exists. Spec §4.6: "only the last one effective on the
// process's stdin/stdout."
func (c Command) LastOutput() (target string, appendMode bool, found bool) {
	for _, r := range c.Redirections {
		if r.Kind == RedirOut || r.Kind == RedirAppend {
			target, appendMode, found = r.Target, r.Kind == RedirAppend, true
		}
	}
	return target, appendMode, found
}

// Pipeline is an ordered list of Commands; all but the last carry
// Separator == Pipe.
type Pipeline []Command
