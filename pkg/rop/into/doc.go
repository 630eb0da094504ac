// Package into converts the channels of an Outcome or Option through a known
// conversion, so call sites do not spell out a mapping closure.
//
// Every operation comes in two forms. The short form (Err, Res, Map,
// MapOption) relies on the source type implementing conv.Into and only needs
// the target type spelled out:
//
//	o := rop.Failure[int, ParseError](ParseError{Line: 3})
//	r := into.Err[AppError](o) // rop.Outcome[int, AppError]
//
// The With form (ErrWith, ResWith, MapWith, MapOptionWith) takes a
// conv.Converter, which covers builtins and foreign types:
//
//	into.MapOptionWith(rop.Some[uint8](5), conv.Numeric[uint8, int32]())
//
// Operations never fail and never change the variant held. Only the converter
// for the channel actually present is invoked.
package into
