// Package assert holds precondition checks that only fire in debug builds.
//
// Build with -tags unidebug to turn them on. Release builds compile every
// check down to nothing; callers guard expensive conditions with Enabled.
package assert

// True panics with msg when cond is false and assertions are enabled.
func True(cond bool, msg string) {
	if Enabled && !cond {
		panic("unicount: assertion failed: " + msg)
	}
}

// NotEmpty panics when a slice that must hold at least one unit is empty.
func NotEmpty(n int, what string) {
	if Enabled && n == 0 {
		panic("unicount: assertion failed: expected non-empty " + what)
	}
}
