// Package uni measures and transcodes Unicode text stored as slices of
// code units.
//
// The NUL-terminated entry points (UnitLen, Len, StrLen) take a slice that
// holds a zero unit somewhere and stop at the first one; the slice bounds
// only guard the scan. The bounded entry points (CountLen, CountAndMiddle,
// the indexers and ToUTF8) use the slice length or an explicit unit count.
//
// Unit types come from package unit. Code point counts of variable-width
// encodings count the units that are not UTF-8 continuation bytes or UTF-16
// trail surrogates; on valid input that is exactly the number of code
// points.
package uni
