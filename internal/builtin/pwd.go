package builtin

import (
	"fmt"
	"os"
)

// runPwd prints the current working directory and a newline (spec §4.7).
// Errors go to stderr, matching the reference's getcwd() failure path.
func runPwd(io IO) Result {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(io.Stderr, "minishell: pwd: %v\n", err)
		return Result{Code: 1}
	}
	fmt.Fprintln(io.Stdout, cwd)
	return Result{Code: 0}
}
