package shell

import "github.com/fatih/color"

// ColoredPrompt returns the literal prompt from spec §6 ("minishell$ "),
// optionally wrapped in ANSI color. Color rendering and disposition of the
// escape codes themselves are an external collaborator's concern (spec
// §1's "Out of scope: terminal color escapes in the prompt"); this only
// decides whether to ask for color at all.
func ColoredPrompt(enabled bool) func() string {
	if !enabled {
		return func() string { return "minishell$ " }
	}
	c := color.New(color.FgGreen, color.Bold)
	return func() string { return c.Sprint("minishell$ ") }
}
