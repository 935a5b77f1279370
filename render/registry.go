package render

import (
	"sort"
	"strings"
	"sync"
)

// Info describes a registered output format.
type Info struct {
	Name        string
	Aliases     []string
	Description string
	Renderer    Renderer
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]*Info)
	aliases    = make(map[string]string)
)

func init() {
	Register(Info{Name: "debug", Description: "Unstable, human-readable dump of the parsed expression", Renderer: Debug{}})
	Register(Info{Name: "pcre", Description: "Perl Compatible Regular Expressions", Renderer: PCRE{}})
	Register(Info{Name: "pcre2", Description: "PCRE2, with named group and named backreference syntax", Renderer: PCRE2{}})
	Register(Info{Name: "js", Aliases: []string{"javascript", "ecmascript"}, Description: "JavaScript RegExp source", Renderer: JavaScript{}})
}

// Register adds an output format. A later registration under the same name
// replaces the earlier one.
func Register(info Info) {
	registryMu.Lock()
	defer registryMu.Unlock()
	name := strings.ToLower(info.Name)
	registry[name] = &info
	for _, a := range info.Aliases {
		aliases[strings.ToLower(a)] = name
	}
}

// Get returns the renderer registered under name or one of its aliases.
func Get(name string) (Renderer, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	name = strings.ToLower(name)
	if target, ok := aliases[name]; ok {
		name = target
	}
	info, ok := registry[name]
	if !ok {
		return nil, false
	}
	return info.Renderer, true
}

// List returns all registered formats sorted by name.
func List() []Info {
	registryMu.RLock()
	defer registryMu.RUnlock()
	infos := make([]Info, 0, len(registry))
	for _, info := range registry {
		infos = append(infos, *info)
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name < infos[j].Name
	})
	return infos
}

// Names returns the registered format names, sorted.
func Names() []string {
	infos := List()
	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name
	}
	return names
}
