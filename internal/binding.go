package internal

import "sort"

// A Binding is a lexical scope frame mapping names to values. Lookups which
// miss locally continue to the parent; assignments always write locally.
type Binding struct {
	// parent is the enclosing scope, or nil for a global binding.
	parent *Binding
	// vars holds the local variables.
	vars map[string]interface{}
	// meta holds metadata for local variables assigned with SetWithMeta.
	meta map[string]Meta
}

// NewGlobalBinding creates a root binding with its self variable set. Each
// call creates an independent global scope.
func NewGlobalBinding(self interface{}) *Binding {
	return newBinding(nil).Set("self", self)
}

func newBinding(parent *Binding) *Binding {
	return &Binding{
		parent: parent,
		vars:   map[string]interface{}{},
		meta:   map[string]Meta{},
	}
}

// Child creates a new binding whose parent is b.
func (b *Binding) Child() *Binding {
	return newBinding(b)
}

// Parent returns the enclosing binding, or nil if b is global.
func (b *Binding) Parent() *Binding {
	return b.parent
}

// IsGlobal returns whether b has no parent.
func (b *Binding) IsGlobal() bool {
	return b.parent == nil
}

// Global returns the root of b's scope chain.
func (b *Binding) Global() *Binding {
	for b.parent != nil {
		b = b.parent
	}
	return b
}

// Get looks up a variable in b and then its ancestors. If no binding in the
// chain defines the name, the error is an *UnknownVariableError.
func (b *Binding) Get(name string) (interface{}, error) {
	for s := b; s != nil; s = s.parent {
		if v, ok := s.vars[name]; ok {
			return v, nil
		}
	}
	return nil, &UnknownVariableError{Name: name}
}

// Has returns whether b or any ancestor defines the name.
func (b *Binding) Has(name string) bool {
	_, err := b.Get(name)
	return err == nil
}

// Set assigns a variable in b itself, shadowing any definition in its
// ancestors. Returns b.
func (b *Binding) Set(name string, value interface{}) *Binding {
	b.vars[name] = value
	return b
}

// SetWithMeta assigns a variable in b along with metadata about it. Returns b.
func (b *Binding) SetWithMeta(name string, value interface{}, meta Meta) *Binding {
	b.vars[name] = value
	if meta != nil {
		b.meta[name] = meta.clone()
	}
	return b
}

// MetaOf returns the metadata for the binding that defines name, searching
// ancestors like Get.
func (b *Binding) MetaOf(name string) (Meta, bool) {
	for s := b; s != nil; s = s.parent {
		if _, ok := s.vars[name]; ok {
			m, ok := s.meta[name]
			return m.clone(), ok
		}
	}
	return nil, false
}

// SetGlobal assigns a variable in the root of b's scope chain, bypassing any
// local shadowing. Returns b.
func (b *Binding) SetGlobal(name string, value interface{}) *Binding {
	b.Global().Set(name, value)
	return b
}

// Names returns the sorted names of b's local variables.
func (b *Binding) Names() []string {
	r := make([]string, 0, len(b.vars))
	for k := range b.vars {
		r = append(r, k)
	}
	sort.Strings(r)
	return r
}

// Self returns the current receiver for unqualified dispatch.
func (b *Binding) Self() interface{} {
	v, _ := b.Get("self")
	return v
}

// Context returns the execution context recorded in the binding, if any.
func (b *Binding) Context() *ExecutionContext {
	v, _ := b.Get("context")
	c, _ := v.(*ExecutionContext)
	return c
}
