// Package chain provides a minimal fluent Chain[T, E] for composing the
// async combinators of package fut without branching at each step.
//
// It keeps the API surface small:
// - Start/FromValue: create a Chain from a Result[T, E] or a value
// - Then/Map/MapErr: compose result-returning or transforming steps
// - OrElse: recover a failure into a new Result
// - Ensure/EnsureErr: trigger side effects without changing the result
// - Check: test the success value, false on any failure
// - UnwrapOr/UnwrapOrElse/Finally: reduce to a concrete value
//
// Methods are same-type by construction (Go methods cannot introduce type
// parameters); steps that change the success or failure type go through
// the fut functions directly.
package chain
