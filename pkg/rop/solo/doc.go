// Package solo contains single-value, synchronous helpers that produce and
// consume rop.Outcome values.
//
// Highlights:
// - Succeed/Fail: construct Outcome[S, E]
// - Validate: turn a predicate over a value into Outcome[T, error]
// - Try: call a function (Out, error) and convert error to failure
// - DoubleTee: side effects on either branch, outcome returned unchanged
// - Finally/FinallyVoid: reduce to a concrete value via success/failure handlers
package solo
