// Package heredoc implements the heredoc collector (spec §4.5): before a
// pipeline forks, every "<<" redirection's body is read from the terminal
// and buffered to a scratch file that the executor then treats as a plain
// input redirection.
package heredoc

import (
	"fmt"
	"os"

	"github.com/minishell-go/minishell/internal/ast"
)

// LineReader reads one line of input at a time, mirroring the readline
// contract spec §1 delegates to an external library: ok is false on EOF.
type LineReader interface {
	ReadLine(prompt string) (line string, ok bool)
}

// Collector materializes heredoc bodies into unique temp files, one per
// heredoc redirection, instead of the reference's single shared "heredoc"
// file — spec §9's design note: "implementations SHOULD use one unique
// temp file per heredoc to avoid this hazard."
type Collector struct {
	reader LineReader
}

// New creates a Collector reading heredoc bodies from reader.
func New(reader LineReader) *Collector {
	return &Collector{reader: reader}
}

// Collect rewrites every RedirHeredoc redirection on cmd in place into a
// RedirIn redirection targeting a freshly written scratch file, and returns
// the list of scratch file paths created (so the caller can remove them
// once the pipeline's children have opened their inputs).
func (c *Collector) Collect(cmd *ast.Command) ([]string, error) {
	var created []string
	for i := range cmd.Redirections {
		r := &cmd.Redirections[i]
		if r.Kind != ast.RedirHeredoc {
			continue
		}
		path, err := c.collectOne(r.Target)
		if err != nil {
			for _, p := range created {
				os.Remove(p)
			}
			return nil, err
		}
		created = append(created, path)
		r.Kind = ast.RedirIn
		r.Target = path
	}
	return created, nil
}

func (c *Collector) collectOne(delimiter string) (string, error) {
	f, err := os.CreateTemp("", "minishell-heredoc-*")
	if err != nil {
		return "", fmt.Errorf("heredoc: %w", err)
	}
	defer f.Close()

	for {
		line, ok := c.reader.ReadLine("> ")
		if !ok {
			break
		}
		if line == delimiter {
			break
		}
		if _, err := fmt.Fprintln(f, line); err != nil {
			return "", fmt.Errorf("heredoc: %w", err)
		}
	}
	return f.Name(), nil
}

// CollectAll collects heredocs for every command in the pipeline, in
// pipeline order, before any child is forked (spec §5 ordering guarantee).
func CollectAll(reader LineReader, pipeline ast.Pipeline) ([]string, error) {
	var all []string
	for i := range pipeline {
		created, err := New(reader).Collect(&pipeline[i])
		if err != nil {
			for _, p := range all {
				os.Remove(p)
			}
			return nil, err
		}
		all = append(all, created...)
	}
	return all, nil
}
