// Package solo contains single-value, synchronous primitives that transform
// one channel of an Outcome or Option and carry the other through untouched.
//
// Highlights:
// - Map: transform the success value
// - MapErr: transform the failure value
// - DoubleMap: transform whichever channel is present
// - MapOption: transform a present value, keep absence
// - Finally/FinallyOption: reduce to a concrete value via handlers
//
// Converted outcomes keep the id and creation time of their input.
package solo
