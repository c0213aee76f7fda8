package outputs

import (
	"sort"

	"github.com/markovml/pandas-ai/pkg/types"
)

// Registry maps canonical kind names to their output types. Kinds are
// stateless and immutable after construction, so a single registry is safe
// to share across any number of concurrent callers.
type Registry struct {
	kinds map[string]OutputType
	def   *DefaultType
}

// NewRegistry builds a registry over the full closed set of kinds.
// The classifier backs the dataframe kind; style selects which template
// hint the default kind carries (types.HintChart picks the extended
// chart-example hint).
func NewRegistry(c TabularClassifier, style types.HintStyle) *Registry {
	def := NewDefault()
	if style == types.HintChart {
		def = NewMKVDefault()
	}

	r := &Registry{
		kinds: make(map[string]OutputType),
		def:   def,
	}
	for _, k := range []OutputType{
		NewNumber(),
		NewString(),
		NewDataFrame(c),
		NewPlot(),
		NewHighChart(),
		def,
	} {
		r.kinds[k.Name()] = k
	}
	return r
}

// Lookup returns the kind registered under name.
func (r *Registry) Lookup(name string) (OutputType, bool) {
	k, ok := r.kinds[name]
	return k, ok
}

// Select returns the kind registered under name, falling back to the
// default kind when name is empty or unknown. This matches the factory
// behavior callers expect: an unconfigured output type means "anything
// renderable".
func (r *Registry) Select(name string) OutputType {
	if k, ok := r.kinds[name]; ok {
		return k
	}
	return r.def
}

// Default returns the fallback kind.
func (r *Registry) Default() *DefaultType {
	return r.def
}

// Names returns the sorted canonical names of all registered kinds.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.kinds))
	for name := range r.kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
