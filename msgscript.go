package msgscript

import "github.com/zephyrtronium/msgscript/internal"

// Hash is a structural identity code.
type Hash = internal.Hash

// Hasher is implemented by values which provide their own structural hash.
type Hasher = internal.Hasher

// Kind is the call shape of a message.
type Kind = internal.Kind

// Meta is side-channel metadata attached to messages, dispatches, and
// variables.
type Meta = internal.Meta

// A Message describes an operation and its call shape independently of any
// receiver. Messages are immutable.
type Message = internal.Message

// KeywordArg is a single keyword and its argument.
type KeywordArg = internal.KeywordArg

// Keywords is the ordered argument set of a keyword message.
type Keywords = internal.Keywords

// Method is a handler for a message.
type Method = internal.Method

// Slots is a set of named properties.
type Slots = internal.Slots

// Handlers is a set of Methods keyed by message hash.
type Handlers = internal.Handlers

// HashResponder is implemented by receivers that register handlers under
// message hashes.
type HashResponder = internal.HashResponder

// Responder is implemented by receivers with named properties.
type Responder = internal.Responder

// Object is a general receiver with named slots, hash-keyed handlers, and
// protos.
type Object = internal.Object

// A Binding is a lexical scope frame mapping names to values.
type Binding = internal.Binding

// A Dispatch is a deferred invocation of a message against a subject.
type Dispatch = internal.Dispatch

// Result is the outcome of a dispatch.
type Result = internal.Result

// An Extension overrides dispatch for every message with a given hash.
type Extension = internal.Extension

// Extensions is a table of Extensions keyed by message hash.
type Extensions = internal.Extensions

// An ExecutionContext is an ordered list of dispatches which can be executed,
// paused, and resumed.
type ExecutionContext = internal.ExecutionContext

// State is the execution state of an ExecutionContext.
type State = internal.State

// A Catcher handles a thrown object.
type Catcher = internal.Catcher

// A Script composes a Binding and an ExecutionContext.
type Script = internal.Script

// ScriptOptions configures BuildScriptWith.
type ScriptOptions = internal.ScriptOptions

// ChildOptions configures Script.Child.
type ChildOptions = internal.ChildOptions

// Number is a numeric value extracted from an arbitrary Go number.
type Number = internal.Number

// Error types.
type (
	UnknownVariableError = internal.UnknownVariableError
	InvalidIndexError    = internal.InvalidIndexError
	UncaughtThrowError   = internal.UncaughtThrowError
	MethodMissing        = internal.MethodMissing
	NotCallableError     = internal.NotCallableError
)

// Message kinds.
const (
	Unary    = internal.Unary
	Prefix   = internal.Prefix
	Binary   = internal.Binary
	Param    = internal.Param
	VarParam = internal.VarParam
	Keyword  = internal.Keyword
)

// Execution states.
const (
	Idle      = internal.Idle
	Running   = internal.Running
	Paused    = internal.Paused
	Completed = internal.Completed
)

// Sentinel errors.
var (
	ErrRunning   = internal.ErrRunning
	ErrNotPaused = internal.ErrNotPaused
)

// Native is the host helper object providing sum, max, min, and concat.
var Native = internal.Native

// StringHash computes the structural hash of a string.
func StringHash(s string) Hash {
	return internal.StringHash(s)
}

// HashCombine mixes h into seed.
func HashCombine(seed, h Hash) Hash {
	return internal.HashCombine(seed, h)
}

// HashCode computes the structural hash of an arbitrary value.
func HashCode(v interface{}) Hash {
	return internal.HashCode(v)
}

// UnaryMessage creates a zero-argument message.
func UnaryMessage(name string) *Message {
	return internal.UnaryMessage(name)
}

// PostfixMessage is UnaryMessage.
func PostfixMessage(name string) *Message {
	return internal.PostfixMessage(name)
}

// PrefixMessage creates a zero-argument message with prefix call syntax.
func PrefixMessage(name string) *Message {
	return internal.PrefixMessage(name)
}

// BinaryMessage creates a message with a single operand.
func BinaryMessage(name string, other interface{}) *Message {
	return internal.BinaryMessage(name, other)
}

// ParamMessage creates a fixed-arity message.
func ParamMessage(name string, params ...interface{}) *Message {
	return internal.ParamMessage(name, params...)
}

// VarParamMessage creates a variable-arity message.
func VarParamMessage(name string, params ...interface{}) *Message {
	return internal.VarParamMessage(name, params...)
}

// KeywordMessage creates a keyword message. Panics if no keywords are given.
func KeywordMessage(kws ...KeywordArg) *Message {
	return internal.KeywordMessage(kws...)
}

// NewObject creates a new object with the given slots and protos.
func NewObject(slots Slots, protos ...*Object) *Object {
	return internal.NewObject(slots, protos...)
}

// NamedObject creates a new object with a type name.
func NamedObject(name string, slots Slots, protos ...*Object) *Object {
	return internal.NamedObject(name, slots, protos...)
}

// NewGlobalBinding creates an independent root binding with self set.
func NewGlobalBinding(self interface{}) *Binding {
	return internal.NewGlobalBinding(self)
}

// NewDispatch creates a dispatch of msg to subject.
func NewDispatch(subject interface{}, msg *Message, meta ...Meta) *Dispatch {
	return internal.NewDispatch(subject, msg, meta...)
}

// NewExtensions creates an empty extension table.
func NewExtensions() *Extensions {
	return internal.NewExtensions()
}

// CoreExtensions returns the process-wide extension table.
func CoreExtensions() *Extensions {
	return internal.CoreExtensions()
}

// InstallCore installs every registered built-in extension into e.
func InstallCore(e *Extensions) *Extensions {
	return internal.InstallCore(e)
}

// NewExecutionContext creates an idle context with an optional parent.
func NewExecutionContext(parent *ExecutionContext) *ExecutionContext {
	return internal.NewExecutionContext(parent)
}

// BuildScript creates a script with a fresh global binding and execution
// context.
func BuildScript(dispatches ...*Dispatch) *Script {
	return internal.BuildScript(dispatches...)
}

// BuildScriptWith creates a script configured by opts.
func BuildScriptWith(opts ScriptOptions, dispatches ...*Dispatch) *Script {
	return internal.BuildScriptWith(opts, dispatches...)
}

// NewLobby creates a global receiver object whose proto is Native.
func NewLobby() *Object {
	return internal.NewLobby()
}

// Call calls fn, a Method or any Go function, with self as the receiver.
func Call(self, fn interface{}, args ...interface{}) (interface{}, error) {
	return internal.Call(self, fn, args...)
}

// ToNumber converts any Go integer or float to a Number.
func ToNumber(v interface{}) (Number, bool) {
	return internal.ToNumber(v)
}

// Sum adds numbers.
func Sum(args ...interface{}) (interface{}, error) {
	return internal.Sum(args...)
}
