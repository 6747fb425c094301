package internal

import (
	"fmt"
	"strings"
)

// Kind is the call shape of a message.
type Kind int

// Message kinds.
const (
	// Unary messages take no arguments. Postfix messages are unary.
	Unary Kind = iota
	// Prefix messages take no arguments. They differ from Unary only in the
	// call-site syntax they describe.
	Prefix
	// Binary messages take exactly one operand, which participates in the
	// message's hash.
	Binary
	// Param messages take a fixed number of arguments.
	Param
	// VarParam messages take any number of arguments. Their hash ignores
	// arity.
	VarParam
	// Keyword messages take an ordered set of named arguments.
	Keyword
)

var kindNames = [...]string{"unary", "prefix", "binary", "param", "varparam", "keyword"}

// String returns the name of the kind.
func (k Kind) String() string {
	if k < Unary || k > Keyword {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Meta is side-channel metadata attached to messages, dispatches, and
// variables. It never participates in identity.
type Meta map[string]interface{}

// clone returns a shallow copy of m.
func (m Meta) clone() Meta {
	if m == nil {
		return nil
	}
	r := make(Meta, len(m))
	for k, v := range m {
		r[k] = v
	}
	return r
}

// A Message describes an operation and its call shape independently of any
// receiver. Messages are immutable once created; use the constructor
// functions to obtain them.
type Message struct {
	// name is the operation name.
	name string
	// kind is the call shape.
	kind Kind
	// params are the message's arguments.
	params []interface{}
	// hash is the structural identity, computed at construction.
	hash Hash
	// meta is the message's metadata.
	meta Meta
}

// UnaryMessage creates a zero-argument message.
func UnaryMessage(name string) *Message {
	return &Message{name: name, kind: Unary, hash: StringHash(name)}
}

// PostfixMessage is UnaryMessage.
func PostfixMessage(name string) *Message {
	return UnaryMessage(name)
}

// PrefixMessage creates a zero-argument message with prefix call syntax. It
// hashes identically to the unary message of the same name.
func PrefixMessage(name string) *Message {
	return &Message{name: name, kind: Prefix, hash: StringHash(name)}
}

// BinaryMessage creates a message with a single operand. Unlike other kinds,
// the operand's hash is part of the message's identity.
func BinaryMessage(name string, other interface{}) *Message {
	return &Message{
		name:   name,
		kind:   Binary,
		params: []interface{}{other},
		hash:   HashCombine(StringHash(name), HashCode(other)),
	}
}

// ParamMessage creates a fixed-arity message. Two parameterized messages with
// the same name and the same number of arguments are equivalent.
func ParamMessage(name string, params ...interface{}) *Message {
	return &Message{
		name:   name,
		kind:   Param,
		params: copyArgs(params),
		hash:   HashCombine(StringHash(name), Hash(len(params))),
	}
}

// VarParamMessage creates a variable-arity message. All variably
// parameterized messages of the same name are equivalent, and they share a
// hash with unary messages of that name.
func VarParamMessage(name string, params ...interface{}) *Message {
	return &Message{
		name:   name,
		kind:   VarParam,
		params: copyArgs(params),
		hash:   StringHash(name),
	}
}

// KeywordMessage creates a keyword message. The message's name is the first
// keyword, its hash combines all keywords in order, and its single argument is
// the Keywords value holding every keyword and its argument. Panics if no
// keywords are given.
func KeywordMessage(kws ...KeywordArg) *Message {
	if len(kws) == 0 {
		panic("msgscript: keyword message requires at least one keyword")
	}
	k := make(Keywords, len(kws))
	copy(k, kws)
	keys := make([]interface{}, len(k))
	for i, kw := range k {
		keys[i] = kw.Key
	}
	return &Message{
		name:   k[0].Key,
		kind:   Keyword,
		params: []interface{}{k},
		hash:   ArrayHash(keys),
	}
}

// KeywordArg is a single keyword and its argument.
type KeywordArg struct {
	Key   string
	Value interface{}
}

// Keywords is the ordered argument set of a keyword message.
type Keywords []KeywordArg

// Get returns the argument for the given keyword.
func (k Keywords) Get(key string) (interface{}, bool) {
	for _, kw := range k {
		if kw.Key == key {
			return kw.Value, true
		}
	}
	return nil, false
}

// Keys returns the keywords in order.
func (k Keywords) Keys() []string {
	r := make([]string, len(k))
	for i, kw := range k {
		r[i] = kw.Key
	}
	return r
}

func copyArgs(args []interface{}) []interface{} {
	if len(args) == 0 {
		return nil
	}
	r := make([]interface{}, len(args))
	copy(r, args)
	return r
}

// WithMeta returns a copy of the message carrying different metadata.
func (m *Message) WithMeta(meta Meta) *Message {
	r := *m
	r.meta = meta.clone()
	return &r
}

// Name returns the message's operation name.
func (m *Message) Name() string {
	return m.name
}

// Kind returns the message's call shape.
func (m *Message) Kind() Kind {
	return m.kind
}

// HashCode returns the message's structural identity. The hash of a nil
// message is 0.
func (m *Message) HashCode() Hash {
	if m == nil {
		return 0
	}
	return m.hash
}

// NameHash returns the hash of the message's name alone, ignoring arity and
// operands.
func (m *Message) NameHash() Hash {
	return StringHash(m.name)
}

// IsUnary returns whether the message takes no arguments, in which case
// dispatching it to a plain property reads the property instead of calling it.
func (m *Message) IsUnary() bool {
	return m.kind == Unary || m.kind == Prefix
}

// Arity returns the number of arguments the message carries.
func (m *Message) Arity() int {
	return len(m.params)
}

// Arguments returns a copy of the message's arguments.
func (m *Message) Arguments() []interface{} {
	return copyArgs(m.params)
}

// ArgAt returns the argument at position n, or nil if the position is out of
// bounds.
func (m *Message) ArgAt(n int) interface{} {
	if 0 <= n && n < len(m.params) {
		return m.params[n]
	}
	return nil
}

// Meta returns a copy of the message's metadata.
func (m *Message) Meta() Meta {
	return m.meta.clone()
}

// Equal returns whether two messages are dispatch-equivalent.
func (m *Message) Equal(other *Message) bool {
	return m.HashCode() == other.HashCode()
}

// String returns a representation of the message resembling its call site.
func (m *Message) String() string {
	switch m.kind {
	case Unary:
		return m.name
	case Prefix:
		return m.name + "_"
	case Binary:
		return fmt.Sprintf("%s %v", m.name, m.params[0])
	case Keyword:
		var b strings.Builder
		for i, kw := range m.params[0].(Keywords) {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%s: %v", kw.Key, kw.Value)
		}
		return b.String()
	}
	args := make([]string, len(m.params))
	for i, p := range m.params {
		args[i] = fmt.Sprint(p)
	}
	if m.kind == VarParam {
		return fmt.Sprintf("%s(%s...)", m.name, strings.Join(args, ", "))
	}
	return fmt.Sprintf("%s(%s)", m.name, strings.Join(args, ", "))
}
