// Package coreext loads every built-in extension. Import it for its side
// effects before the first dispatch:
//
//	import _ "github.com/zephyrtronium/msgscript/coreext"
package coreext

import (
	// importing for side effects
	_ "github.com/zephyrtronium/msgscript/coreext/arith"
	_ "github.com/zephyrtronium/msgscript/coreext/date"
	_ "github.com/zephyrtronium/msgscript/coreext/invoke"
)
