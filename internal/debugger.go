package internal

import (
	"log/slog"
	"sync/atomic"
)

// SetDebug enables or disables dispatch tracing for the context. Contexts
// created afterward with c as their parent inherit the setting.
func (c *ExecutionContext) SetDebug(on bool) {
	var v uint32
	if on {
		v = 1
	}
	atomic.StoreUint32(&c.debug, v)
}

// Debugging returns whether dispatch tracing is enabled.
func (c *ExecutionContext) Debugging() bool {
	return atomic.LoadUint32(&c.debug) != 0
}

// DebugDispatch does nothing if debugging is disabled for the context;
// otherwise, it logs the dispatch about to execute at index i.
func (c *ExecutionContext) DebugDispatch(i int, d *Dispatch) {
	if atomic.LoadUint32(&c.debug) != 0 {
		c.debugDispatchSlow(i, d)
	}
}

// debugDispatchSlow is an outlined path of DebugDispatch.
func (c *ExecutionContext) debugDispatchSlow(i int, d *Dispatch) {
	if c.Logger == nil {
		return
	}
	c.Logger.Debug("dispatch",
		slog.String("context", c.id.String()),
		slog.Int("index", i),
		slog.String("subject", typeName(d.subject)),
		slog.String("message", d.message.String()),
		slog.String("kind", d.message.kind.String()),
	)
}
