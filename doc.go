package chronos

// Package chronos provides:
//
// - Immutable calendar/time value types (Offset, Instant, Date, TimeOfDay, OffsetDateTime)
// - A Calendar capability with proleptic Gregorian and Julian systems included
// - A stable error model via Issue (code, message, structured params)
// - Two total orders over OffsetDateTime (CompareByLocal, CompareByInstant)
//
// Design policy:
// - Keep only the value model in the root package; zone lookup lives under tz/,
//   text and JSON projections under codec/.
// - Every fallible operation returns an error; there are no silent clamps and
//   no panics in the public API.
// - Values are plain comparably-small structs; arithmetic never uses floating point.
//
// Typical usage:
//
//	date, err := chronos.NewDate(chronos.Gregorian, 2013, 3, 4)
//	tod, err := chronos.NewTimeOfDay(20, 21, 0)
//	off, err := chronos.OffsetFromHours(1)
//	odt, err := chronos.NewOffsetDateTime(date, tod, off)
//
//	inst := odt.ToInstant()
//	moved, err := odt.WithOffset(chronos.MustOffsetFromHours(-7))
