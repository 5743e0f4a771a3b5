package builtin

import "github.com/minishell-go/minishell/internal/envstore"

// runUnset removes each named variable from the store; a name absent from
// the store is silently ignored (spec §4.7, original_source/unset.c).
func runUnset(env *envstore.Store, names []string) Result {
	for _, name := range names {
		env.Unset(name)
	}
	return Result{Code: 0}
}
