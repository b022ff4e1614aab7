package tools

import (
	"sort"
	"sync"
)

// Registry manages the available tools with grouping support. Registration
// happens once at startup; reads are safe from any goroutine afterwards.
type Registry struct {
	mu     sync.RWMutex
	tools  map[string]*Tool
	groups map[string][]string
}

// NewRegistry creates an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{
		tools:  make(map[string]*Tool),
		groups: make(map[string][]string),
	}
}

// Register adds a tool to the registry.
func (r *Registry) Register(tool *Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[tool.Name] = tool
	if tool.Group != "" {
		r.groups[tool.Group] = append(r.groups[tool.Group], tool.Name)
	}
}

// Get retrieves a tool by name, or nil.
func (r *Registry) Get(name string) *Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tools[name]
}

// All returns all registered tools sorted by name.
func (r *Registry) All() []*Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tools := make([]*Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		tools = append(tools, tool)
	}
	sort.Slice(tools, func(i, j int) bool {
		return tools[i].Name < tools[j].Name
	})
	return tools
}

// ByGroup returns the tools in a group, in registration order.
func (r *Registry) ByGroup(group string) []*Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := r.groups[group]
	tools := make([]*Tool, 0, len(names))
	for _, name := range names {
		if tool, ok := r.tools[name]; ok {
			tools = append(tools, tool)
		}
	}
	return tools
}
