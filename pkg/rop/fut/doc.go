// Package fut provides async-aware single-value combinators over
// Result[T, E]. Each operation mirrors its synchronous counterpart in
// package solo, except that the supplied step is an async Step: invoking
// it starts the computation and the combinator awaits its channel with a
// single receive.
//
// Evaluation rule shared by every operation: branch on the active variant
// first, synchronously; only when the variant matches the operation's
// target branch is the step invoked and awaited. The non-matching payload
// is passed through as-is, with its metadata, and no future is ever built
// for it. A step therefore runs at most once per call and never
// speculatively (MapOrElse runs exactly one of its two steps).
//
// Key operations:
// - Map/MapOr/MapOrElse/MapErr: transform the success or failure payload
// - Inspect/InspectErr: side effects that leave the result untouched
// - AndThen/OrElse: switch to a new Result (OrElse is the recovery path)
// - UnwrapOrElse/IsSuccessAnd/IsErrAnd: collapse to a plain value
// - Go/GoEffect/GoPredicate/Ready: lift plain functions and values into steps
//
// Cancellation is not owned by this package: the combinator forwards ctx
// into the step untouched and awaits with a plain receive. A step that
// wants timeout or cancel behavior resolves its channel accordingly.
package fut
