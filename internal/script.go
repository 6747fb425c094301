package internal

import (
	"context"
	"log/slog"
)

// A Script composes a Binding and an ExecutionContext: variables are looked
// up and assigned in the binding, and dispatches sent to the script run in the
// context.
type Script struct {
	binding *Binding
	context *ExecutionContext
}

// ScriptOptions configures BuildScriptWith.
type ScriptOptions struct {
	// Extensions is the extension table for the script and its children. If
	// nil, the core table is used.
	Extensions *Extensions
	// Logger receives dispatch traces when Debug is set.
	Logger *slog.Logger
	// Debug enables dispatch tracing.
	Debug bool
	// Self is the global receiver. If nil, a new lobby object whose proto is
	// Native is created.
	Self interface{}
}

// BuildScript creates a script with a fresh global binding and a fresh
// top-level execution context holding the given dispatches.
func BuildScript(dispatches ...*Dispatch) *Script {
	return BuildScriptWith(ScriptOptions{}, dispatches...)
}

// BuildScriptWith creates a script with a fresh global binding and top-level
// execution context, configured by opts.
func BuildScriptWith(opts ScriptOptions, dispatches ...*Dispatch) *Script {
	self := opts.Self
	if self == nil {
		self = NewLobby()
	}
	ctx := NewExecutionContext(nil)
	ctx.Extensions = opts.Extensions
	ctx.Logger = opts.Logger
	ctx.SetDebug(opts.Debug)
	ctx.Add(dispatches...)
	return &Script{
		binding: NewGlobalBinding(self).Set("context", ctx),
		context: ctx,
	}
}

// NewLobby creates a global receiver object. Its only proto is Native.
func NewLobby() *Object {
	return NamedObject("Lobby", nil, Native)
}

// Binding returns the script's binding.
func (s *Script) Binding() *Binding {
	return s.binding
}

// Context returns the script's execution context.
func (s *Script) Context() *ExecutionContext {
	return s.context
}

// Self returns the script's current receiver.
func (s *Script) Self() interface{} {
	return s.binding.Self()
}

// Get looks up a variable.
func (s *Script) Get(name string) (interface{}, error) {
	return s.binding.Get(name)
}

// Set assigns a variable in the script's binding and returns the value.
func (s *Script) Set(name string, value interface{}) interface{} {
	s.binding.Set(name, value)
	return value
}

// SetGlobal assigns a variable in the root binding and returns the value.
func (s *Script) SetGlobal(name string, value interface{}) interface{} {
	s.binding.SetGlobal(name, value)
	return value
}

// Send appends a dispatch to the script and returns it.
func (s *Script) Send(d *Dispatch) *Dispatch {
	s.context.Add(d)
	return d
}

// AddDispatch is Send.
func (s *Script) AddDispatch(d *Dispatch) *Dispatch {
	return s.Send(d)
}

// Dispatch creates a dispatch of msg to subject and sends it.
func (s *Script) Dispatch(subject interface{}, msg *Message) *Dispatch {
	return s.Send(NewDispatch(subject, msg))
}

// Run executes the script's dispatches from the first and returns the result
// of the last.
func (s *Script) Run() (Result, error) {
	return s.context.Execute()
}

// RunContext is Run with a context checked between dispatches.
func (s *Script) RunContext(ctx context.Context) (Result, error) {
	return s.context.ExecuteContext(ctx)
}

// Continue resumes a paused script.
func (s *Script) Continue() (Result, error) {
	return s.context.Resume()
}

// Pause requests that the script stop before its next dispatch.
func (s *Script) Pause() {
	s.context.Pause()
}

// ChildOptions configures Script.Child.
type ChildOptions struct {
	// Lexical gives the child a fresh binding frame whose parent is the
	// script's binding. Otherwise the child shares the script's binding.
	Lexical bool
	// Self is the child's receiver for a lexical child. If nil, the child
	// keeps the script's receiver.
	Self interface{}
}

// Child derives a script whose execution context is nested in s's. The child
// starts with no dispatches.
func (s *Script) Child(opts ChildOptions) *Script {
	ctx := NewExecutionContext(s.context)
	b := s.binding
	if opts.Lexical {
		self := opts.Self
		if self == nil {
			self = s.Self()
		}
		b = b.Child().Set("context", ctx).Set("self", self)
	}
	return &Script{binding: b, context: ctx}
}

// Then runs the script, passing its result to onSuccess or any error to
// onFailure. onFailure may be nil, in which case errors are discarded.
func (s *Script) Then(onSuccess func(Result), onFailure func(error)) {
	r, err := s.Run()
	if err != nil {
		if onFailure != nil {
			onFailure(err)
		}
		return
	}
	onSuccess(r)
}
