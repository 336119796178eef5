package ascii

type class uint8

const (
	classControl class = 1 << iota
	classSpace
	classBlank
	classPunct
	classDigit
	classUpper
	classLower

	classAlpha = classUpper | classLower
	classAlnum = classAlpha | classDigit
	classGraph = classAlnum | classPunct
)

// classes is indexed by byte; bytes outside 7-bit ASCII have no class.
var classes = func() (t [256]class) {
	for c := 0; c < 0x80; c++ {
		switch {
		case c < 0x20 || c == 0x7F:
			t[c] |= classControl
		case c >= '0' && c <= '9':
			t[c] |= classDigit
		case c >= 'A' && c <= 'Z':
			t[c] |= classUpper
		case c >= 'a' && c <= 'z':
			t[c] |= classLower
		case c != ' ':
			t[c] |= classPunct
		}
	}
	for _, c := range []byte(" \t\n\v\f\r") {
		t[c] |= classSpace
	}
	t[' '] |= classBlank
	t['\t'] |= classBlank
	return t
}()

func is[C ~byte](c C, m class) bool { return classes[c]&m != 0 }

// IsControl reports whether c is 0x00-0x1F or DEL.
func IsControl[C ~byte](c C) bool { return is(c, classControl) }

// IsAlpha reports whether c is an ASCII letter.
func IsAlpha[C ~byte](c C) bool { return is(c, classAlpha) }

// IsDigit reports whether c is one of '0' to '9'.
func IsDigit[C ~byte](c C) bool { return is(c, classDigit) }

// IsAlnum reports whether c is an ASCII letter or digit.
func IsAlnum[C ~byte](c C) bool { return is(c, classAlnum) }

func IsLower[C ~byte](c C) bool { return is(c, classLower) }

func IsUpper[C ~byte](c C) bool { return is(c, classUpper) }

// IsPunct reports whether c is printable and neither a letter, a digit nor
// a space.
func IsPunct[C ~byte](c C) bool { return is(c, classPunct) }

// IsGraph reports whether c is printable and not a space.
func IsGraph[C ~byte](c C) bool { return is(c, classGraph) }

// IsSpace reports whether c is one of ' ', '\t', '\n', '\v', '\f' and '\r'.
func IsSpace[C ~byte](c C) bool { return is(c, classSpace) }

// IsBlank reports whether c is a space or a tab.
func IsBlank[C ~byte](c C) bool { return is(c, classBlank) }

// ToUpper maps 'a'-'z' to 'A'-'Z' and returns any other byte unchanged.
func ToUpper[C ~byte](c C) C {
	if IsLower(c) {
		return c - 0x20
	}
	return c
}

// ToLower maps 'A'-'Z' to 'a'-'z' and returns any other byte unchanged.
func ToLower[C ~byte](c C) C {
	if IsUpper(c) {
		return c + 0x20
	}
	return c
}
