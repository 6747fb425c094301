/*
Package msgscript implements a small message-dispatch scripting engine.

Programs are not parsed from text. Instead, a host builds them from values:
a Message describes an operation and its call shape, a Dispatch pairs a
Message with a subject to receive it, and a Script collects dispatches into an
ExecutionContext and runs them in order against a Binding of variables.

	script := msgscript.BuildScript()
	script.Send(msgscript.NewDispatch(msgscript.Native, msgscript.ParamMessage("sum", 3, 4)))
	result, err := script.Run() // result.Value is int64(7)

# Messages

Each message has a structural hash which serves as its dispatch key. Unary and
prefix messages hash by name. Parameterized messages hash by name and arity,
so sum(1) and sum(1, 2) are different keys while sum(1, 2) and sum(3, 4) are
the same. Variably parameterized messages hash by name alone, which lets a
single variadic handler answer every arity that has no handler of its own.
Binary messages hash by name and operand, so a receiver can register distinct
handlers per operand. Keyword messages hash by their ordered keywords.

# Dispatch

A dispatch resolves its message against its subject with these strategies, in
order:

 1. an Extension registered for the message hash in the extension table;
 2. a handler the subject registered for the message hash;
 3. for parameterized messages, a handler registered for the name hash;
 4. the subject's property with the message's name, read for unary
    messages and called otherwise.

Receivers take part in the first three strategies by implementing
HashResponder; *Object does. Any Go value can be a receiver for the fourth:
message names map to exported methods and fields in camel case, to keys of
string-keyed maps, and Go functions respond to call and apply.

If nothing resolves, the dispatch does not fail. Its Result carries a
MethodMissing describing the subject, name, and arguments, and callers decide
whether that is an error.

# Execution

An ExecutionContext runs its dispatches in insertion order. Pause requests a
stop before the next dispatch; the context records where it stopped, and
Resume continues from there. Pausing is cooperative and never interrupts a
dispatch in progress. Execute always starts over from the first dispatch.

Contexts nest. A Script's Child has a context whose parent is the script's, and
Throw in a nested context finds the nearest catcher registered with Catch in
the chain, or fails with an UncaughtThrowError.

# Extensions

Packages under coreext register built-in extensions from their init
functions; blank-import coreext to load all of them. The process-wide table
returned by CoreExtensions is created on first use. Tests and embedders who
want isolation can build their own with NewExtensions and InstallCore and pass
it through ScriptOptions.
*/
package msgscript
