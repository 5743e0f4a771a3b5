package builtin

import "fmt"

// isEchoFlag reports whether arg is a "-n" style suppress-newline flag: a
// '-' followed by one or more 'n' characters and nothing else. "-nm" does
// not match (the extra 'm' makes it a literal argument instead), per spec
// §4.7 and the Open Questions note on preserving this quirk.
func isEchoFlag(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}
	for i := 1; i < len(arg); i++ {
		if arg[i] != 'n' {
			return false
		}
	}
	return true
}

// runEcho concatenates args with single spaces and appends a trailing
// newline unless every leading argument was a suppress-newline flag group
// (spec §4.7; round-trip property in spec §8).
func runEcho(io IO, args []string) Result {
	i := 0
	sawFlag := false
	for i < len(args) && isEchoFlag(args[i]) {
		sawFlag = true
		i++
	}
	for j, arg := range args[i:] {
		if j > 0 {
			fmt.Fprint(io.Stdout, " ")
		}
		fmt.Fprint(io.Stdout, arg)
	}
	if !sawFlag {
		fmt.Fprintln(io.Stdout)
	}
	return Result{Code: 0}
}
