package internal

import (
	"sync"
	"sync/atomic"
)

// An Extension overrides dispatch for every message with a given hash,
// regardless of the subject.
type Extension func(subject interface{}, msg *Message) (interface{}, error)

// Extensions is a table of Extensions keyed by message hash. Dispatch
// consults it before any receiver-provided handler.
type Extensions struct {
	mu    sync.RWMutex
	table map[Hash]Extension
}

// NewExtensions creates an empty extension table.
func NewExtensions() *Extensions {
	return &Extensions{table: map[Hash]Extension{}}
}

// Register sets the extension for messages equivalent to msg. Returns e.
func (e *Extensions) Register(msg *Message, fn Extension) *Extensions {
	return e.RegisterHash(msg.HashCode(), fn)
}

// RegisterHash sets the extension for messages with hash h. Returns e.
func (e *Extensions) RegisterHash(h Hash, fn Extension) *Extensions {
	e.mu.Lock()
	e.table[h] = fn
	e.mu.Unlock()
	return e
}

// Unregister removes the extension for messages equivalent to msg.
func (e *Extensions) Unregister(msg *Message) {
	e.mu.Lock()
	delete(e.table, msg.HashCode())
	e.mu.Unlock()
}

// Lookup finds the extension for msg.
func (e *Extensions) Lookup(msg *Message) (Extension, bool) {
	e.mu.RLock()
	fn, ok := e.table[msg.HashCode()]
	e.mu.RUnlock()
	return fn, ok
}

// Len returns the number of registered extensions.
func (e *Extensions) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.table)
}

// Register registers a core extension installer. Each installer is called in
// the order it is registered when the core table is created, or by
// InstallCore. Register should be called from within init funcs. Panics if the
// core table has already been created.
func Register(f func(*Extensions)) {
	if haveCore.Load() {
		panic("msgscript/internal: Register must be called before the core extension table is used")
	}
	coreExt = append(coreExt, f)
}

// CoreExtensions returns the process-wide extension table, creating it and
// running every registered installer on first use.
func CoreExtensions() *Extensions {
	coreOnce.Do(func() {
		haveCore.Store(true)
		core = InstallCore(NewExtensions())
	})
	return core
}

// InstallCore runs every registered installer on e and returns e. Tests use
// this to obtain an isolated table carrying the built-in extensions.
func InstallCore(e *Extensions) *Extensions {
	for _, f := range coreExt {
		f(e)
	}
	return e
}

var (
	// coreExt is a list of core extension installers that have been
	// registered.
	coreExt = make([]func(*Extensions), 0, 4)
	// core is the process-wide extension table.
	core     *Extensions
	coreOnce sync.Once
	// haveCore becomes true once the core table exists.
	haveCore atomic.Bool
)
