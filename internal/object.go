package internal

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/zephyrtronium/contains"
)

// Method is a handler for a message. self is the receiver of the dispatch,
// and args are the message's arguments.
type Method func(self interface{}, args ...interface{}) (interface{}, error)

// Slots is a set of named properties. Values which are Methods or Go
// functions are called when dispatched with arguments; any value is returned
// as-is when dispatched with a unary message.
type Slots map[string]interface{}

// Handlers is a set of Methods keyed by message hash.
type Handlers map[Hash]Method

// HashResponder is implemented by receivers that register handlers under
// message hashes. Dispatch consults it before name-based lookup.
type HashResponder interface {
	HandlerFor(h Hash) (Method, bool)
}

// Responder is implemented by receivers with named properties.
type Responder interface {
	Slot(name string) (interface{}, bool)
}

// Object is a general receiver with named slots, hash-keyed handlers, and an
// ordered list of protos which are searched depth-first when the object itself
// lacks a slot or handler.
//
// Always use NewObject to obtain new objects.
type Object struct {
	// name is the object's type name, used in diagnostics.
	name string

	// mu guards slots, handlers, and protos.
	mu       sync.RWMutex
	slots    Slots
	handlers Handlers
	protos   []*Object

	// id is the object's unique ID.
	id uintptr
}

// NewObject creates a new object with the given slots and protos.
func NewObject(slots Slots, protos ...*Object) *Object {
	o := &Object{
		slots:    make(Slots, len(slots)),
		handlers: Handlers{},
		protos:   append([]*Object(nil), protos...),
		id:       nextObject(),
	}
	for k, v := range slots {
		o.slots[k] = v
	}
	return o
}

// NamedObject creates a new object with a type name.
func NamedObject(name string, slots Slots, protos ...*Object) *Object {
	o := NewObject(slots, protos...)
	o.name = name
	return o
}

// Name returns the object's type name, or the first one among its protos.
func (o *Object) Name() string {
	var name string
	o.walk(func(p *Object) bool {
		name = p.name
		return name == ""
	})
	return name
}

// UniqueID returns the object's unique ID. A nil object's ID is 0, which no
// allocated object has.
func (o *Object) UniqueID() uintptr {
	if o == nil {
		return 0
	}
	return o.id
}

// HashCode returns the object's identity hash.
func (o *Object) HashCode() Hash {
	return Hash(o.UniqueID())
}

// Clone returns a new object with no slots and o as its only proto.
func (o *Object) Clone() *Object {
	return NewObject(nil, o)
}

// SetSlot sets a named slot on the object. Returns the object.
func (o *Object) SetSlot(name string, value interface{}) *Object {
	o.mu.Lock()
	o.slots[name] = value
	o.mu.Unlock()
	return o
}

// SetSlots sets several named slots at once. Returns the object.
func (o *Object) SetSlots(slots Slots) *Object {
	o.mu.Lock()
	for k, v := range slots {
		o.slots[k] = v
	}
	o.mu.Unlock()
	return o
}

// RemoveSlot removes a named slot from the object itself.
func (o *Object) RemoveSlot(name string) {
	o.mu.Lock()
	delete(o.slots, name)
	o.mu.Unlock()
}

// SetHandler registers a handler under the message's hash, so that any
// equivalent message dispatched to the object activates it.
func (o *Object) SetHandler(msg *Message, m Method) *Object {
	return o.SetHandlerHash(msg.HashCode(), m)
}

// SetHandlerHash registers a handler under a hash. Setting a nil handler
// removes it.
func (o *Object) SetHandlerHash(h Hash, m Method) *Object {
	o.mu.Lock()
	if m == nil {
		delete(o.handlers, h)
	} else {
		o.handlers[h] = m
	}
	o.mu.Unlock()
	return o
}

// GetLocalSlot finds a slot on the object itself, not checking its protos.
func (o *Object) GetLocalSlot(name string) (interface{}, bool) {
	o.mu.RLock()
	v, ok := o.slots[name]
	o.mu.RUnlock()
	return v, ok
}

// GetSlot finds a slot on the object or its protos. The search is depth-first
// and visits each object once, so cyclic proto graphs are safe. Returns the
// value and the object which owns it, or nil and nil if there is no such slot.
func (o *Object) GetSlot(name string) (value interface{}, owner *Object) {
	o.walk(func(p *Object) bool {
		if v, ok := p.GetLocalSlot(name); ok {
			value, owner = v, p
			return false
		}
		return true
	})
	return value, owner
}

// Slot implements Responder.
func (o *Object) Slot(name string) (interface{}, bool) {
	v, owner := o.GetSlot(name)
	return v, owner != nil
}

// HandlerFor implements HashResponder. The search order is that of GetSlot.
func (o *Object) HandlerFor(h Hash) (m Method, ok bool) {
	o.walk(func(p *Object) bool {
		p.mu.RLock()
		m, ok = p.handlers[h]
		p.mu.RUnlock()
		return !ok
	})
	return m, ok
}

// SlotNames returns the sorted names of the object's own slots.
func (o *Object) SlotNames() []string {
	o.mu.RLock()
	r := make([]string, 0, len(o.slots))
	for k := range o.slots {
		r = append(r, k)
	}
	o.mu.RUnlock()
	sort.Strings(r)
	return r
}

// Protos returns a copy of the object's protos.
func (o *Object) Protos() []*Object {
	o.mu.RLock()
	r := append([]*Object(nil), o.protos...)
	o.mu.RUnlock()
	return r
}

// SetProtos replaces the object's protos.
func (o *Object) SetProtos(protos ...*Object) *Object {
	o.mu.Lock()
	o.protos = append([]*Object(nil), protos...)
	o.mu.Unlock()
	return o
}

// AppendProto adds a proto to the end of the object's protos.
func (o *Object) AppendProto(proto *Object) *Object {
	o.mu.Lock()
	o.protos = append(o.protos, proto)
	o.mu.Unlock()
	return o
}

// IsKindOf evaluates whether the object has kind as any of its ancestors, or
// is itself kind.
func (o *Object) IsKindOf(kind *Object) bool {
	if o == nil {
		return false
	}
	found := false
	o.walk(func(p *Object) bool {
		found = p == kind
		return !found
	})
	return found
}

// walk visits the object and then its protos depth-first, each at most once,
// until f returns false. A nil object has nothing to visit.
func (o *Object) walk(f func(*Object) bool) {
	if o == nil {
		return
	}
	set := contains.Set{}
	set.Add(o.UniqueID())
	stack := []*Object{o}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !f(p) {
			return
		}
		protos := p.Protos()
		// Push in reverse so the first proto is visited first.
		for i := len(protos) - 1; i >= 0; i-- {
			if set.Add(protos[i].UniqueID()) {
				stack = append(stack, protos[i])
			}
		}
	}
}

// objcounter is the global counter for object IDs. All accesses to this must
// be atomic.
var objcounter uintptr

// nextObject increments the object counter and returns its value as a unique
// ID for a new object.
func nextObject() uintptr {
	return atomic.AddUintptr(&objcounter, 1)
}
