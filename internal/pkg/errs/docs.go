// Package errs provides the error vocabulary shared by the marketplace domain,
// application and adapter layers.
//
// Each error kind follows the same pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired) usable with errors.Is
//   - A struct type carrying the details (parameter name, offending value, state)
//   - Constructor functions with and without cause
//   - Unwrap() returning the sentinel
//
// Kinds and the HTTP status the inbound adapter maps them to:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: 400
//   - ObjectNotFoundError: 404 (also used for entities owned by someone else)
//   - InvalidStateError: 400, the message names the current state
//   - ConflictError: 409, raised by optimistic version checks
//   - UpstreamError: 502, a dependent service failed
package errs
