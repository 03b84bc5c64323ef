package renderers

import (
	"fmt"
	"strings"
)

// Parameter is one generated-name/bound-value pair.
type Parameter struct {
	Name  string
	Value any
}

// Fragment is an immutable unit of rendered SQL text paired with the
// parameters it introduced.
type Fragment struct {
	Text   string
	Params []Parameter
}

// NewFragment creates a fragment from text and its parameters.
func NewFragment(text string, params ...Parameter) Fragment {
	return Fragment{Text: text, Params: params}
}

// ParameterMap is an insertion-ordered mapping from generated parameter name
// to bound runtime value.
type ParameterMap struct {
	names  []string
	values map[string]any
}

// NewParameterMap creates an empty parameter map.
func NewParameterMap() *ParameterMap {
	return &ParameterMap{values: make(map[string]any)}
}

// put registers a parameter. A duplicate name means the shared sequence was
// not threaded through every nested render; that is a bug in the renderer,
// never a recoverable condition.
func (m *ParameterMap) put(name string, value any) {
	if _, dup := m.values[name]; dup {
		panic(fmt.Sprintf("fluentsql: duplicate parameter name %q", name))
	}
	m.names = append(m.names, name)
	m.values[name] = value
}

// Names returns the parameter names in insertion order. The returned slice
// is shared; callers must not modify it.
func (m *ParameterMap) Names() []string {
	return m.names
}

// Get returns the value bound under name.
func (m *ParameterMap) Get(name string) (any, bool) {
	v, ok := m.values[name]
	return v, ok
}

// Len returns the number of parameters.
func (m *ParameterMap) Len() int {
	return len(m.names)
}

// FragmentCollector accumulates fragments in caller order and merges their
// parameters into one map. It does not reorder: callers supply fragments in
// final clause order even when they were computed out of order.
type FragmentCollector struct {
	fragments []string
	params    *ParameterMap
}

// NewFragmentCollector creates an empty collector.
func NewFragmentCollector() *FragmentCollector {
	return &FragmentCollector{params: NewParameterMap()}
}

// Add appends the fragment's text and registers its parameters.
func (c *FragmentCollector) Add(f Fragment) {
	c.fragments = append(c.fragments, f.Text)
	for _, p := range f.Params {
		c.params.put(p.Name, p.Value)
	}
}

// Merge appends all of other's fragments and parameters after c's own.
// Merging is associative and order-preserving, so independently built
// partial collectors combine deterministically.
func (c *FragmentCollector) Merge(other *FragmentCollector) *FragmentCollector {
	c.fragments = append(c.fragments, other.fragments...)
	for _, name := range other.params.names {
		c.params.put(name, other.params.values[name])
	}
	return c
}

// Empty reports whether no fragment has been added.
func (c *FragmentCollector) Empty() bool {
	return len(c.fragments) == 0
}

// Text joins the accumulated fragment texts with sep.
func (c *FragmentCollector) Text(sep string) string {
	return strings.Join(c.fragments, sep)
}

// Parameters returns the finished parameter map.
func (c *FragmentCollector) Parameters() *ParameterMap {
	return c.params
}

// fragment finalizes the collector into a single Fragment.
func (c *FragmentCollector) fragment(sep string) Fragment {
	params := make([]Parameter, 0, c.params.Len())
	for _, name := range c.params.names {
		params = append(params, Parameter{Name: name, Value: c.params.values[name]})
	}
	return Fragment{Text: c.Text(sep), Params: params}
}
