// Package invoke provides the variadic invoke extension, which applies a
// function subject to the message's arguments:
//
//	msgscript.NewDispatch(func(x int) int { return x + 1 }, msgscript.VarParamMessage("invoke", 3))
package invoke

import (
	"github.com/pkg/errors"

	"github.com/zephyrtronium/msgscript"
	"github.com/zephyrtronium/msgscript/internal"
)

// Name is the name of the message the extension answers.
const Name = "invoke"

func init() {
	internal.Register(install)
}

func install(e *msgscript.Extensions) {
	e.Register(msgscript.VarParamMessage(Name), Invoke)
}

// Invoke calls subject, which must be a msgscript.Method or a Go function,
// with msg's arguments.
func Invoke(subject interface{}, msg *msgscript.Message) (interface{}, error) {
	if !internal.IsCallable(subject) {
		return nil, errors.Errorf("msgscript: cannot invoke %T", subject)
	}
	return msgscript.Call(subject, subject, msg.Arguments()...)
}
