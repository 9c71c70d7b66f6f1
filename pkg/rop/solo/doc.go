// Package solo contains single-value, synchronous combinators over
// Result[T, E]. These are the counterparts of package fut: identical
// branching and pass-through behavior, with plain blocking step functions
// instead of async steps. Unless a step genuinely needs to resolve
// asynchronously, prefer these.
//
// Highlights:
// - Succeed/Failed: construct Result[T, E]
// - Map/MapOr/MapOrElse/MapErr: transform one payload or collapse both
// - Inspect/InspectErr: side effects that leave the result untouched
// - AndThen/OrElse: switch to a new Result (OrElse recovers failures)
// - UnwrapOrElse/IsSuccessAnd/IsErrAnd: reduce to a plain value
// - Try/Validate/AndValidate/Finally: bridges for (value, error) code
package solo
