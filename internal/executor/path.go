package executor

import (
	"os"
	"path/filepath"
	"strings"
)

// ResolvePath resolves argv[0] against $PATH, per spec §4.6: a name starting
// with '/', "./" or "../" is used as-is if it is an executable file, without
// searching path; otherwise each ':'-separated component of path is tried
// in order (an empty component means the current directory), and the
// first component+"/"+name that is an executable regular file wins.
func ResolvePath(name, path string) (string, bool) {
	if strings.HasPrefix(name, "/") || strings.HasPrefix(name, "./") || strings.HasPrefix(name, "../") {
		if isExecutable(name) {
			return name, true
		}
		return "", false
	}
	for _, dir := range strings.Split(path, ":") {
		if dir == "" {
			dir = "."
		}
		candidate := filepath.Join(dir, name)
		if isExecutable(candidate) {
			return candidate, true
		}
	}
	return "", false
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return info.Mode()&0o111 != 0
}
