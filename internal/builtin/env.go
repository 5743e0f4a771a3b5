package builtin

import (
	"fmt"

	"github.com/minishell-go/minishell/internal/envstore"
)

// runEnv prints every lookup-view entry as "name=value\n" (spec §4.7).
func runEnv(io IO, env *envstore.Store) Result {
	if env == nil {
		return Result{Code: 0}
	}
	for _, e := range env.Entries() {
		fmt.Fprintf(io.Stdout, "%s=%s\n", e.Name, e.Value)
	}
	return Result{Code: 0}
}
