// Package date provides the strftime extension on time.Time subjects. The
// format directives are those of ANSI C; see
// https://godoc.org/gitlab.com/variadico/lctime for the full list.
package date

import (
	"time"

	"github.com/pkg/errors"
	"gitlab.com/variadico/lctime"

	"github.com/zephyrtronium/msgscript"
	"github.com/zephyrtronium/msgscript/internal"
)

// DefaultFormat is the format used when strftime receives no arguments.
const DefaultFormat = "%Y-%m-%d %H:%M:%S"

func init() {
	internal.Register(install)
}

func install(e *msgscript.Extensions) {
	e.Register(msgscript.VarParamMessage("strftime"), Strftime)
}

// Strftime formats a time.Time subject. The optional first argument is the
// format string.
func Strftime(subject interface{}, msg *msgscript.Message) (interface{}, error) {
	var d time.Time
	switch s := subject.(type) {
	case time.Time:
		d = s
	case *time.Time:
		if s == nil {
			return nil, errors.New("msgscript: strftime on nil time")
		}
		d = *s
	default:
		return nil, errors.Errorf("msgscript: strftime requires a time, not %T", subject)
	}
	format := DefaultFormat
	switch msg.Arity() {
	case 0: // do nothing
	case 1:
		f, ok := msg.ArgAt(0).(string)
		if !ok {
			return nil, errors.Errorf("msgscript: argument 0 to strftime must be a string, not %T", msg.ArgAt(0))
		}
		format = f
	default:
		return nil, errors.Errorf("msgscript: strftime takes at most 1 argument, have %d", msg.Arity())
	}
	return lctime.Strftime(format, d), nil
}
