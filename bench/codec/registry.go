package codec

// Registry is a name-keyed store of compressors with deterministic iteration
// order, so sweeps visit codecs in a reproducible sequence.
//
// It is built once at startup and passed into the orchestrator; it is not
// safe for concurrent registration and must be fully populated before a
// sweep begins.
type Registry struct {
	order  []string
	byName map[string]*Compressor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Compressor)}
}

// Register adds a compressor under its name. Registering the same name again
// replaces the earlier entry but keeps its original position in the
// iteration order.
func (r *Registry) Register(c *Compressor) {
	name := c.Name()
	if _, exists := r.byName[name]; !exists {
		r.order = append(r.order, name)
	}
	r.byName[name] = c
}

// Get looks up a compressor by name.
func (r *Registry) Get(name string) (*Compressor, bool) {
	c, ok := r.byName[name]
	return c, ok
}

// All returns every registered compressor in stable insertion order.
func (r *Registry) All() []*Compressor {
	out := make([]*Compressor, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}
	return out
}

// Names returns the registered names in iteration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Len returns the number of registered compressors.
func (r *Registry) Len() int {
	return len(r.order)
}

// NewDefaultRegistry builds a registry holding every built-in codec.
func NewDefaultRegistry() (*Registry, error) {
	reg := NewRegistry()
	reg.Register(NewDeflate())
	reg.Register(NewGzip())
	reg.Register(NewLZ4())
	zstd, err := NewZstd()
	if err != nil {
		return nil, err
	}
	reg.Register(zstd)
	reg.Register(NewS2())
	return reg, nil
}
