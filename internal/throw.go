package internal

// A Catcher handles a thrown object.
type Catcher func(thrown interface{}) (interface{}, error)

// Catch registers a catcher for objects structurally equal to tag, i.e. with
// the same HashCode. A later registration for an equal tag replaces the
// earlier one.
func (c *ExecutionContext) Catch(tag interface{}, catcher Catcher) {
	c.catchers[HashCode(tag)] = catcher
}

// FindCatch finds the catcher for obj in c or its nearest ancestor which has
// one. If no context in the chain has a catcher, the error is an
// *UncaughtThrowError.
func (c *ExecutionContext) FindCatch(obj interface{}) (Catcher, error) {
	h := HashCode(obj)
	for p := c; p != nil; p = p.parent {
		if f, ok := p.catchers[h]; ok {
			return f, nil
		}
	}
	return nil, &UncaughtThrowError{Object: obj}
}

// Throw unwinds the context: if c is running, it requests a pause so that no
// further dispatches in c run, then activates the catcher for obj and returns
// its result. Throwing from within a dispatch stops the context before its
// next dispatch. An uncaught throw requests nothing; the error is returned to
// the thrower.
func (c *ExecutionContext) Throw(obj interface{}) (interface{}, error) {
	f, err := c.FindCatch(obj)
	if err != nil {
		return nil, err
	}
	if c.state == Running {
		c.Pause()
	}
	return f(obj)
}
