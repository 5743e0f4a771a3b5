package builtin

import (
	"errors"
	"fmt"

	"github.com/minishell-go/minishell/internal/envstore"
	"github.com/minishell-go/minishell/internal/shellerr"
)

// runExport implements both forms of spec §4.7's "export":
//   - no arguments: print the sorted exported view as
//     `declare -x NAME="VALUE"` / `declare -x NAME` (redesign flag: name-only
//     entries are now printed uniformly, without the reference's stray
//     `=""` artifact).
//   - one or more "name[=value|+=value]" arguments: validate and apply each,
//     reporting `error : <arg> not identifier` for anything malformed.
func runExport(io IO, env *envstore.Store, args []string) Result {
	if len(args) == 0 {
		for _, e := range env.Exported() {
			if e.HasValue {
				fmt.Fprintf(io.Stdout, "declare -x %s=%q\n", e.Name, e.Value)
			} else {
				fmt.Fprintf(io.Stdout, "declare -x %s\n", e.Name)
			}
		}
		return Result{Code: 0}
	}

	code := 0
	for _, arg := range args {
		name, value, isAppend, hasValue, err := envstore.ParseAssignment(arg)
		if err != nil {
			var se *shellerr.Error
			if errors.As(err, &se) {
				fmt.Fprintln(io.Stderr, se.Message)
			} else {
				fmt.Fprintln(io.Stderr, err.Error())
			}
			code = shellerr.ExitCode(shellerr.KindBadIdentifier)
			continue
		}
		switch {
		case isAppend:
			env.Append(name, value)
		case hasValue:
			env.Set(name, value)
		default:
			env.DeclareNameOnly(name)
		}
	}
	return Result{Code: code}
}

