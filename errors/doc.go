/*
Package errors implements the error handling used across the ledger and its extensions.

Every error returned to a client is expected to wrap one of the registered root errors.
A root error carries an ABCI code, so that a client can tell kinds of failures apart
without parsing the message. Reuse the errors declared here where possible and register
a custom one (Register(code, description)) only when an extension needs its own kind,
as x/offer does for its protocol failures.

Wrap the error at the point of creation (ErrXyz.New, errors.Wrap) so a stack trace is
attached. Only the innermost wrap records a stack trace.

Formatting:
	%s is just the error message
	%+v is the message followed by the stack trace of the creation point
*/
package errors
