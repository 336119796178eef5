// Package unit models the storage units of the supported Unicode encodings.
//
// Every multi-byte unit type is a defined unsigned integer whose value is the
// unit's raw storage representation, loaded in host byte order. A Char16BE
// holding 'A' therefore has the raw value 0x4100 on a little-endian host and
// 0x0041 on a big-endian one. Conversions between orders always byte-swap
// explicitly; no memory is ever reinterpreted in place.
//
// Build values from host-order integers with the New* constructors and read
// them back with AsHost. Plain conversions such as Char16BE(x) take x as the
// raw representation.
package unit
