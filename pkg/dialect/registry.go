package dialect

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

var (
	dialectsMu sync.RWMutex
	dialects   = make(map[string]*Dialect) // canonical name -> dialect
	aliases    = make(map[string]string)   // alias -> canonical name
)

// ErrDialectRequired is returned when a dialect is required but not provided.
var ErrDialectRequired = errors.New("dialect is required")

// Get returns a dialect by name or alias, case-insensitively.
func Get(name string) (*Dialect, bool) {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	d, ok := dialects[key]
	return d, ok
}

// MustGet returns a dialect by name and panics if it is not registered.
func MustGet(name string) *Dialect {
	d, ok := Get(name)
	if !ok {
		panic(fmt.Sprintf("dialect %q is not registered", name))
	}
	return d
}

// Register registers a dialect in the global registry.
// Called by dialect implementations in their init() functions.
func Register(d *Dialect) {
	dialectsMu.Lock()
	defer dialectsMu.Unlock()
	name := strings.ToLower(d.Name)
	dialects[name] = d
	for _, alias := range d.Aliases {
		aliases[strings.ToLower(alias)] = name
	}
}

// List returns all registered dialect names (sorted), without aliases.
func List() []string {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()
	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
