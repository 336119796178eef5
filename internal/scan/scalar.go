package scan

import "github.com/mhr3/unicount/unit"

func len8Scalar(s []byte) (points, units int) {
	i := 0
	for ; s[i] != 0; i++ {
		if !unit.IsTrail(s[i]) {
			points++
		}
	}
	return points, i
}

func len16Scalar(s []uint16, swap bool) (points, units int) {
	i := 0
	for ; s[i] != 0; i++ {
		if !isTrail16(s[i], swap) {
			points++
		}
	}
	return points, i
}

func unitLen8Scalar(s []byte) int {
	i := 0
	for s[i] != 0 {
		i++
	}
	return i
}

func unitLen16Scalar(s []uint16) int {
	i := 0
	for s[i] != 0 {
		i++
	}
	return i
}

func unitLen32Scalar(s []uint32) int {
	i := 0
	for s[i] != 0 {
		i++
	}
	return i
}
