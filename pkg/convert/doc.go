// Package convert parses strings into Go scalars without returning errors.
//
// Try reports success with a boolean, TryPtr models optional values with a
// nil pointer, and OrDefault falls back to a caller supplied value:
//
//	port := convert.OrDefault("8080", 80)          // 8080
//	ratio, ok := convert.Try[float64](" 0.75 ")    // 0.75, true
//	limit, ok := convert.TryPtr[int]("")           // nil, false
//	when, ok := convert.Try[time.Time]("2024-03-05")
package convert
