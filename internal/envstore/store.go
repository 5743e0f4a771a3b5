// Package envstore owns the shell's environment variables for the
// lifetime of the process: one set of entries, with both the insertion
// ordered "lookup" view (spec §3) and the name-sorted "exported" view
// derived from it on demand.
package envstore

import (
	"sort"
	"strings"

	"github.com/minishell-go/minishell/internal/shellerr"
)

// Entry is one environment variable. HasValue distinguishes "declared with
// an empty value" (export X=) from "declared name-only" (export X), both of
// which have Value == "" — spec §3's "empty value is distinct from declared
// but unset."
type Entry struct {
	Name     string
	Value    string
	HasValue bool
}

// Store is the single owned sequence of environment entries backing both
// views described in spec §3. The lookup (insertion) order is the slice
// order; the exported (sorted) view is computed on read.
type Store struct {
	entries []Entry
	index   map[string]int
}

// New creates an empty Store.
func New() *Store {
	return &Store{index: make(map[string]int)}
}

// FromEnviron ingests "name=value" pairs as produced by os.Environ,
// splitting each on the first '=', per spec §6.
func FromEnviron(environ []string) *Store {
	s := New()
	for _, kv := range environ {
		if i := strings.IndexByte(kv, '='); i >= 0 {
			s.Set(kv[:i], kv[i+1:])
		} else {
			s.DeclareNameOnly(kv)
		}
	}
	return s
}

// Lookup returns the entry's value (or "" if absent) for variable
// expansion, path lookup, and envp construction — the "lookup view".
func (s *Store) Lookup(name string) (string, bool) {
	if i, ok := s.index[name]; ok {
		return s.entries[i].Value, true
	}
	return "", false
}

// Set declares name with value, replacing an existing entry in place so
// lookup-view insertion order is preserved on update.
func (s *Store) Set(name, value string) {
	if i, ok := s.index[name]; ok {
		s.entries[i].Value = value
		s.entries[i].HasValue = true
		return
	}
	s.index[name] = len(s.entries)
	s.entries = append(s.entries, Entry{Name: name, Value: value, HasValue: true})
}

// DeclareNameOnly declares name with no value (export X, no '='). If name
// is already present its value is left untouched.
func (s *Store) DeclareNameOnly(name string) {
	if _, ok := s.index[name]; ok {
		return
	}
	s.index[name] = len(s.entries)
	s.entries = append(s.entries, Entry{Name: name, HasValue: false})
}

// Append implements "export NAME+=value": concatenates value onto an
// existing entry, or behaves like Set if NAME was undeclared (spec §9
// supplemented-features note, grounded in original_source/export.c
// add_var_in_list: append against an absent variable is append-to-empty).
func (s *Store) Append(name, value string) {
	if i, ok := s.index[name]; ok {
		s.entries[i].Value += value
		s.entries[i].HasValue = true
		return
	}
	s.Set(name, value)
}

// Unset removes name; a name absent from the store is a silent no-op
// (spec §4.7, confirmed by original_source/unset.c).
func (s *Store) Unset(name string) {
	i, ok := s.index[name]
	if !ok {
		return
	}
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	delete(s.index, name)
	for j := i; j < len(s.entries); j++ {
		s.index[s.entries[j].Name] = j
	}
}

// Has reports whether name is declared, regardless of HasValue.
func (s *Store) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Entries returns all entries in insertion order — used to build execve's
// envp and by the "env" builtin.
func (s *Store) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Exported returns entries sorted ascending by name — the "exported view"
// printed by "export" with no arguments.
func (s *Store) Exported() []Entry {
	out := s.Entries()
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Envp builds execve's environment vector: "name=value" per entry, with
// name-only entries rendered as "name=" (spec §4.6).
func (s *Store) Envp() []string {
	out := make([]string, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e.Name+"="+e.Value)
	}
	return out
}

// ValidName reports whether name is a legal variable name per spec §3: a
// non-empty run of ASCII alphanumerics, optionally terminated by a single
// trailing '+' (the append-assignment marker), not starting with a digit.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	if name[0] >= '0' && name[0] <= '9' {
		return false
	}
	for i := 0; i < len(name); i++ {
		ch := name[i]
		alnum := ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ('0' <= ch && ch <= '9')
		if alnum {
			continue
		}
		if ch == '+' && i == len(name)-1 {
			continue
		}
		return false
	}
	return true
}

// ParseAssignment splits an "export"/"unset" argument into name, value and
// operator kind, per spec §4.7: "name=value", "name+=value" or a bare
// "name". Returns shellerr.BadIdentifier if the name portion fails
// ValidName.
func ParseAssignment(arg string) (name, value string, isAppend, hasValue bool, err error) {
	eq := strings.IndexByte(arg, '=')
	if eq < 0 {
		name = arg
		if !ValidName(name) {
			return "", "", false, false, shellerr.New(shellerr.KindBadIdentifier, "error : %s not identifier", arg)
		}
		return name, "", false, false, nil
	}
	namePart := arg[:eq]
	value = arg[eq+1:]
	if strings.HasSuffix(namePart, "+") {
		isAppend = true
		namePart = strings.TrimSuffix(namePart, "+")
	}
	if !ValidName(namePart) {
		return "", "", false, false, shellerr.New(shellerr.KindBadIdentifier, "error : %s not identifier", arg)
	}
	return namePart, value, isAppend, true, nil
}
