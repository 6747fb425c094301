package internal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// State is the execution state of an ExecutionContext.
type State int

// Execution states.
const (
	// Idle contexts have never run.
	Idle State = iota
	// Running contexts are executing dispatches.
	Running
	// Paused contexts stopped at a pause request and can be resumed at the
	// first dispatch which did not execute.
	Paused
	// Completed contexts executed through the end of their dispatch list.
	Completed
)

var stateNames = [...]string{"idle", "running", "paused", "completed"}

// String returns the name of the state.
func (s State) String() string {
	if s < Idle || s > Completed {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// An ExecutionContext is an ordered, appendable list of dispatches which can
// be executed, paused cooperatively between dispatches, and resumed.
//
// Execution is single-threaded. Pause only records a request; the request is
// honored before the next dispatch begins, never during one.
type ExecutionContext struct {
	// Extensions is the extension table used to resolve dispatches. If nil,
	// the core table is used.
	Extensions *Extensions
	// Logger receives dispatch traces while debugging is enabled. If nil,
	// traces are discarded.
	Logger *slog.Logger

	id       uuid.UUID
	parent   *ExecutionContext
	catchers map[Hash]Catcher

	dispatches []*Dispatch
	state      State
	pausedAt   int
	// pauseRequest is set by Pause and consumed at the next yield point.
	pauseRequest bool
	last         Result

	// debug is an atomic flag controlling whether dispatches are traced.
	debug uint32
}

// NewExecutionContext creates an idle context. parent may be nil. A child
// context records its parent for stack inspection and throw/catch, but never
// delegates execution to it. The child shares its parent's extension table
// and logger.
func NewExecutionContext(parent *ExecutionContext) *ExecutionContext {
	c := &ExecutionContext{
		id:       uuid.New(),
		parent:   parent,
		catchers: map[Hash]Catcher{},
		pausedAt: -1,
	}
	if parent != nil {
		c.Extensions = parent.Extensions
		c.Logger = parent.Logger
		c.debug = atomic.LoadUint32(&parent.debug)
	}
	return c
}

// ID returns the context's unique identifier.
func (c *ExecutionContext) ID() uuid.UUID {
	return c.id
}

// Parent returns the enclosing context, or nil.
func (c *ExecutionContext) Parent() *ExecutionContext {
	return c.parent
}

// Add appends dispatches to the end of the list.
func (c *ExecutionContext) Add(ds ...*Dispatch) {
	c.dispatches = append(c.dispatches, ds...)
}

// Dispatches returns a copy of the dispatch list.
func (c *ExecutionContext) Dispatches() []*Dispatch {
	return append([]*Dispatch(nil), c.dispatches...)
}

// Len returns the number of dispatches.
func (c *ExecutionContext) Len() int {
	return len(c.dispatches)
}

// State returns the context's execution state.
func (c *ExecutionContext) State() State {
	return c.state
}

// Running returns whether the context is executing.
func (c *ExecutionContext) Running() bool {
	return c.state == Running
}

// Paused returns whether the context is paused.
func (c *ExecutionContext) Paused() bool {
	return c.state == Paused
}

// PausedAt returns the index of the next dispatch to execute if the context
// is paused.
func (c *ExecutionContext) PausedAt() (int, bool) {
	if c.state != Paused {
		return 0, false
	}
	return c.pausedAt, true
}

// LastResult returns the result of the most recently executed dispatch.
func (c *ExecutionContext) LastResult() Result {
	return c.last
}

// Pause requests that execution stop before the next dispatch. It does not
// interrupt a dispatch in progress. If the context is not running, the next
// execution pauses before its first dispatch.
func (c *ExecutionContext) Pause() {
	c.pauseRequest = true
}

// Execute runs every dispatch from the first. Dispatches which ran in earlier
// executions run again.
func (c *ExecutionContext) Execute() (Result, error) {
	return c.ResumeAtContext(context.Background(), 0)
}

// ExecuteContext is Execute with a context checked between dispatches.
func (c *ExecutionContext) ExecuteContext(ctx context.Context) (Result, error) {
	return c.ResumeAtContext(ctx, 0)
}

// Resume continues a paused context from its pause point.
func (c *ExecutionContext) Resume() (Result, error) {
	return c.ResumeContext(context.Background())
}

// ResumeContext is Resume with a context checked between dispatches.
func (c *ExecutionContext) ResumeContext(ctx context.Context) (Result, error) {
	at, ok := c.PausedAt()
	if !ok {
		return Result{}, ErrNotPaused
	}
	return c.ResumeAtContext(ctx, at)
}

// ResumeAt runs dispatches starting from index.
func (c *ExecutionContext) ResumeAt(index int) (Result, error) {
	return c.ResumeAtContext(context.Background(), index)
}

// ResumeAtContext runs dispatches starting from index. Before each dispatch,
// it honors a pending pause request, and it pauses with ctx's error if ctx is
// done. The result is that of the last dispatch executed, or the zero Result
// if the list is empty. A dispatch error stops execution; the context is then
// paused at the failed dispatch so that it may be retried. The same holds if
// a dispatch panics; the panic is not recovered.
//
// index must be a valid position in the dispatch list, or 0 for an empty list;
// otherwise the error is an *InvalidIndexError.
func (c *ExecutionContext) ResumeAtContext(ctx context.Context, index int) (Result, error) {
	if c.state == Running {
		return Result{}, ErrRunning
	}
	if err := c.checkIndex(index); err != nil {
		return Result{}, err
	}
	c.state = Running
	c.pausedAt = -1
	c.last = Result{}
	ext := c.Extensions
	if ext == nil {
		ext = CoreExtensions()
	}
	i := index
	// A panicking dispatch leaves the context paused at that dispatch rather
	// than running forever.
	defer func() {
		if c.state == Running {
			c.pauseAt(i)
		}
	}()
	// The length is read on every step since dispatches may append to the
	// list while it runs.
	for ; i < len(c.dispatches); i++ {
		if c.pauseRequest {
			c.pauseAt(i)
			return c.last, nil
		}
		if err := ctx.Err(); err != nil {
			c.pauseAt(i)
			return c.last, errors.Wrapf(err, "execution context %s stopped at %d", c.id, i)
		}
		d := c.dispatches[i]
		c.DebugDispatch(i, d)
		r, err := d.ExecuteIn(ext)
		if err != nil {
			c.pauseAt(i)
			return c.last, errors.Wrapf(err, "dispatch %d", i)
		}
		c.last = r
	}
	c.pauseRequest = false
	c.state = Completed
	return c.last, nil
}

// checkIndex validates a start or step index against the dispatch list.
func (c *ExecutionContext) checkIndex(index int) error {
	n := len(c.dispatches)
	if n == 0 && index == 0 {
		return nil
	}
	if index < 0 || index >= n {
		return &InvalidIndexError{Index: index, Len: n}
	}
	return nil
}

// pauseAt consumes the pause request and records the resume point.
func (c *ExecutionContext) pauseAt(index int) {
	c.pauseRequest = false
	c.pausedAt = index
	c.state = Paused
}

// Stack returns the chain of contexts from c to the root.
func (c *ExecutionContext) Stack() []*ExecutionContext {
	var r []*ExecutionContext
	for p := c; p != nil; p = p.parent {
		r = append(r, p)
	}
	return r
}

// StackString renders the context chain, innermost first, one per line.
func (c *ExecutionContext) StackString() string {
	var b strings.Builder
	for _, p := range c.Stack() {
		b.WriteString(p.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// String returns a one-line description of the context.
func (c *ExecutionContext) String() string {
	if at, ok := c.PausedAt(); ok {
		return fmt.Sprintf("context %s %s at %d/%d", c.id, c.state, at, len(c.dispatches))
	}
	return fmt.Sprintf("context %s %s (%d dispatches)", c.id, c.state, len(c.dispatches))
}
