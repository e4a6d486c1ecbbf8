package mathutil

import "golang.org/x/exp/constraints"

// EuclideanMod returns a mod b in the range 0 <= r < |b|.
// Go's % keeps the sign of the dividend, so -11 % 5 is -1 while
// EuclideanMod(-11, 5) is 4.
func EuclideanMod[T constraints.Signed](a, b T) T {
	r := a % b
	if r >= 0 {
		return r
	}
	if b < 0 {
		return r - b
	}
	return r + b
}
