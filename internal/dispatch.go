package internal

import (
	"fmt"

	"github.com/pkg/errors"
)

// Result is the outcome of a dispatch. Exactly one of Value and Missing is
// meaningful: if Missing is non-nil, no strategy resolved the message and
// Value is nil.
type Result struct {
	Value   interface{}
	Missing *MethodMissing
}

// OK returns whether the dispatch resolved.
func (r Result) OK() bool {
	return r.Missing == nil
}

// Err returns the method-missing condition as an error, or nil if the
// dispatch resolved.
func (r Result) Err() error {
	if r.Missing == nil {
		return nil
	}
	return r.Missing
}

// String returns a representation of the result.
func (r Result) String() string {
	if r.Missing != nil {
		return r.Missing.Error()
	}
	return fmt.Sprint(r.Value)
}

// A Dispatch is a deferred invocation of a message against a subject. The
// subject may itself be a *Dispatch, in which case it is executed first and
// its result becomes the receiver.
type Dispatch struct {
	subject interface{}
	message *Message
	meta    Meta
}

// NewDispatch creates a dispatch. If meta is given, the first one becomes the
// dispatch's metadata.
func NewDispatch(subject interface{}, msg *Message, meta ...Meta) *Dispatch {
	d := &Dispatch{subject: subject, message: msg}
	if len(meta) > 0 {
		d.meta = meta[0].clone()
	}
	return d
}

// Subject returns the dispatch's receiver, possibly another dispatch.
func (d *Dispatch) Subject() interface{} {
	return d.subject
}

// Message returns the dispatch's message.
func (d *Dispatch) Message() *Message {
	return d.message
}

// Meta returns a copy of the dispatch's metadata.
func (d *Dispatch) Meta() Meta {
	return d.meta.clone()
}

// WithMeta returns a copy of the dispatch carrying different metadata.
func (d *Dispatch) WithMeta(meta Meta) *Dispatch {
	return &Dispatch{subject: d.subject, message: d.message, meta: meta.clone()}
}

// ThenSend creates a dispatch of msg to the result of d.
func (d *Dispatch) ThenSend(msg *Message) *Dispatch {
	return NewDispatch(d, msg)
}

// Execute resolves the dispatch using the core extension table.
func (d *Dispatch) Execute() (Result, error) {
	return d.ExecuteIn(CoreExtensions())
}

// ExecuteIn resolves the dispatch using the given extension table. The
// strategies, in order of precedence, are:
//
//  1. an extension registered for the message's hash;
//  2. a handler the subject registered for the message's hash;
//  3. for fixed-arity messages, a handler the subject registered for the
//     message's name hash, i.e. a variadic handler;
//  4. the subject's property named by the message, read directly for unary
//     messages and called with the arguments otherwise.
//
// If no strategy applies, the result's Missing field describes the failure and
// the error is nil. Errors are reserved for failures raised by handlers.
func (d *Dispatch) ExecuteIn(ext *Extensions) (Result, error) {
	subject := d.subject
	if inner, ok := subject.(*Dispatch); ok {
		r, err := inner.ExecuteIn(ext)
		if err != nil || !r.OK() {
			return r, err
		}
		subject = r.Value
	}
	msg := d.message

	if ext != nil {
		if fn, ok := ext.Lookup(msg); ok {
			return d.wrap(fn(subject, msg))
		}
	}

	if hr, ok := subject.(HashResponder); ok {
		if m, ok := hr.HandlerFor(msg.HashCode()); ok {
			return d.wrap(m(subject, msg.params...))
		}
		if msg.kind == Param {
			if m, ok := hr.HandlerFor(msg.NameHash()); ok {
				return d.wrap(m(subject, msg.params...))
			}
		}
	}

	prop, ok := lookupProperty(subject, msg.name)
	if !ok {
		return Result{Missing: &MethodMissing{Subject: subject, Name: msg.name, Args: msg.Arguments()}}, nil
	}
	if msg.IsUnary() {
		return Result{Value: prop}, nil
	}
	if !IsCallable(prop) {
		return Result{}, &NotCallableError{Subject: subject, Name: msg.name}
	}
	return d.wrap(callValue(subject, prop, msg.params))
}

// wrap converts a handler's return values to a Result, annotating errors with
// the message that raised them.
func (d *Dispatch) wrap(v interface{}, err error) (Result, error) {
	if err != nil {
		return Result{}, errors.Wrapf(err, "dispatching %s", d.message)
	}
	return Result{Value: v}, nil
}

// Then executes the dispatch, passing its result to onSuccess or any error to
// onFailure. onFailure may be nil, in which case errors are discarded.
func (d *Dispatch) Then(onSuccess func(Result), onFailure func(error)) {
	r, err := d.Execute()
	if err != nil {
		if onFailure != nil {
			onFailure(err)
		}
		return
	}
	onSuccess(r)
}

// String returns a representation of the dispatch.
func (d *Dispatch) String() string {
	switch s := d.subject.(type) {
	case *Dispatch:
		return fmt.Sprintf("(%v) %v", s, d.message)
	case *Object:
		return fmt.Sprintf("%s %v", typeName(s), d.message)
	}
	return fmt.Sprintf("%v %v", d.subject, d.message)
}
