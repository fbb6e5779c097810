package pipeline

// Registry tracks identifiers seen during one run, for duplicate
// detection. It is an explicit per-run object handed to whoever needs
// it, never a process-wide singleton: two concurrent runs each get their
// own registry and cannot contend. A Registry is not safe for concurrent
// use; observe IDs before fanning work out.
type Registry struct {
	seen map[string]map[string]struct{}
}

// NewRegistry creates an empty registry scoped to one run.
func NewRegistry() *Registry {
	return &Registry{seen: make(map[string]map[string]struct{})}
}

// Observe records an identifier under a kind and reports whether it was
// new. A second Observe of the same (kind, id) returns false.
func (r *Registry) Observe(kind, id string) bool {
	ids, ok := r.seen[kind]
	if !ok {
		ids = make(map[string]struct{})
		r.seen[kind] = ids
	}
	if _, dup := ids[id]; dup {
		return false
	}
	ids[id] = struct{}{}
	return true
}

// Count reports how many distinct identifiers of a kind were observed.
func (r *Registry) Count(kind string) int {
	return len(r.seen[kind])
}
