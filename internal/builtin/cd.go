package builtin

import (
	"fmt"
	"os"
	"strings"

	"github.com/minishell-go/minishell/internal/envstore"
)

// runCd implements spec §4.7's "cd". With no argument, or an argument
// starting with '~', it changes to $HOME (an error if unset). Otherwise it
// changes to the given path, reporting
// "minishell: <path>: No such file or directory" on failure.
//
// Redesign flag applied (spec §9): unlike the reference, this updates
// $OLDPWD and $PWD on a successful chdir.
func runCd(io IO, env *envstore.Store, args []string) Result {
	var target string
	useHome := len(args) == 0 || strings.HasPrefix(args[0], "~")

	if useHome {
		home, ok := env.Lookup("HOME")
		if !ok || home == "" {
			fmt.Fprintln(io.Stderr, "minishell: cd: HOME not set")
			return Result{Code: 1}
		}
		target = home
	} else {
		target = args[0]
	}

	oldwd, _ := os.Getwd()
	if err := os.Chdir(target); err != nil {
		fmt.Fprintf(io.Stderr, "minishell: %s: No such file or directory\n", target)
		return Result{Code: 1}
	}

	if newwd, err := os.Getwd(); err == nil {
		env.Set("OLDPWD", oldwd)
		env.Set("PWD", newwd)
	}
	return Result{Code: 0}
}
