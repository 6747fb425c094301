// Package program reads YAML descriptions of msgscript programs and builds
// them into scripts. A program is a list of variables and a list of
// dispatches:
//
//	variables:
//	  x: 3
//	dispatches:
//	  - subject: native
//	    message: {kind: param, name: sum, args: [4, {var: x}]}
//
// Subjects may be the strings native or self, a variable reference
// {var: name}, a nested dispatch {dispatch: {subject: ..., message: ...}},
// or any other literal. Arguments may be variable references, times written
// as {time: 2006-01-02T15:04:05Z}, quoted literals written as {lit: value},
// or plain YAML values. Variable references resolve when the program is
// built.
package program

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/zephyrtronium/msgscript"
)

// Program is a parsed program file.
type Program struct {
	// Variables are assigned in order in the script's global binding before
	// any dispatch is built.
	Variables yaml.MapSlice `yaml:"variables,omitempty"`
	// Dispatches are the top-level dispatches of the script.
	Dispatches []Dispatch `yaml:"dispatches"`
}

// Dispatch describes one dispatch.
type Dispatch struct {
	Subject interface{}            `yaml:"subject"`
	Message Message                `yaml:"message"`
	Meta    map[string]interface{} `yaml:"meta,omitempty"`
}

// Message describes a message. Kind is one of unary, postfix, prefix,
// binary, param, varparam, or keyword. Keyword messages take their
// arguments from Keywords, in order, and ignore Name and Args.
type Message struct {
	Kind     string        `yaml:"kind"`
	Name     string        `yaml:"name"`
	Args     []interface{} `yaml:"args,omitempty"`
	Keywords yaml.MapSlice `yaml:"keywords,omitempty"`
}

// Parse decodes a program. Unknown fields are errors.
func Parse(r io.Reader) (*Program, error) {
	dec := yaml.NewDecoder(r)
	dec.SetStrict(true)
	var p Program
	if err := dec.Decode(&p); err != nil {
		if err == io.EOF {
			return nil, errors.New("program: empty program")
		}
		return nil, errors.Wrap(err, "program: decoding")
	}
	return &p, nil
}

// Load parses the program in the named file.
func Load(path string) (*Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "program")
	}
	defer f.Close()
	p, err := Parse(f)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return p, nil
}

// Build creates a script from the program. Variables are assigned first so
// that later variables and every dispatch may refer to earlier ones. Errors
// name the variable or dispatch index which could not be built.
func (p *Program) Build(opts msgscript.ScriptOptions) (*msgscript.Script, error) {
	s := msgscript.BuildScriptWith(opts)
	b := s.Binding()
	for _, v := range p.Variables {
		name, ok := v.Key.(string)
		if !ok {
			return nil, errors.Errorf("program: variable name %v is not a string", v.Key)
		}
		x, err := resolveArg(v.Value, b)
		if err != nil {
			return nil, errors.Wrapf(err, "program: variable %s", name)
		}
		s.Set(name, x)
	}
	for i, d := range p.Dispatches {
		dd, err := d.build(b)
		if err != nil {
			return nil, errors.Wrapf(err, "program: dispatch %d", i)
		}
		s.Send(dd)
	}
	return s, nil
}

func (d *Dispatch) build(b *msgscript.Binding) (*msgscript.Dispatch, error) {
	subject, err := resolveSubject(d.Subject, b)
	if err != nil {
		return nil, errors.Wrap(err, "subject")
	}
	msg, err := d.Message.build(b)
	if err != nil {
		return nil, errors.Wrap(err, "message")
	}
	if d.Meta != nil {
		return msgscript.NewDispatch(subject, msg, msgscript.Meta(d.Meta)), nil
	}
	return msgscript.NewDispatch(subject, msg), nil
}

func (m *Message) build(b *msgscript.Binding) (*msgscript.Message, error) {
	if m.Kind == "keyword" {
		if len(m.Keywords) == 0 {
			return nil, errors.New("keyword message has no keywords")
		}
		kws := make([]msgscript.KeywordArg, len(m.Keywords))
		for i, kw := range m.Keywords {
			key, ok := kw.Key.(string)
			if !ok {
				return nil, errors.Errorf("keyword %v is not a string", kw.Key)
			}
			v, err := resolveArg(kw.Value, b)
			if err != nil {
				return nil, errors.Wrapf(err, "keyword %s", key)
			}
			kws[i] = msgscript.KeywordArg{Key: key, Value: v}
		}
		return msgscript.KeywordMessage(kws...), nil
	}
	if m.Name == "" {
		return nil, errors.New("message has no name")
	}
	args := make([]interface{}, len(m.Args))
	for i, a := range m.Args {
		v, err := resolveArg(a, b)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %d", i)
		}
		args[i] = v
	}
	switch m.Kind {
	case "unary", "":
		if len(args) != 0 {
			return nil, errors.Errorf("%s message %s takes no arguments, have %d", orUnary(m.Kind), m.Name, len(args))
		}
		return msgscript.UnaryMessage(m.Name), nil
	case "postfix":
		if len(args) != 0 {
			return nil, errors.Errorf("postfix message %s takes no arguments, have %d", m.Name, len(args))
		}
		return msgscript.PostfixMessage(m.Name), nil
	case "prefix":
		if len(args) != 0 {
			return nil, errors.Errorf("prefix message %s takes no arguments, have %d", m.Name, len(args))
		}
		return msgscript.PrefixMessage(m.Name), nil
	case "binary":
		if len(args) != 1 {
			return nil, errors.Errorf("binary message %s takes 1 argument, have %d", m.Name, len(args))
		}
		return msgscript.BinaryMessage(m.Name, args[0]), nil
	case "param":
		return msgscript.ParamMessage(m.Name, args...), nil
	case "varparam":
		return msgscript.VarParamMessage(m.Name, args...), nil
	}
	return nil, errors.Errorf("unknown message kind %q", m.Kind)
}

func orUnary(kind string) string {
	if kind == "" {
		return "unary"
	}
	return kind
}
