// Package conv defines the conversion capability used by the into package.
//
// A conversion is total and cannot fail. It is expressed in one of two ways:
// - Into[To]: a method constraint; a type converts itself via Into() To and the
//   relationship is checked at compile time
// - Converter[From, To]: a single-method contract injected at the call site, for
//   source types that cannot carry a method (builtins, foreign types)
//
// Func adapts a plain function; Identity, Numeric, Method and Compose build
// common converters; ToError and Wrap convert failure payloads into error.
package conv
