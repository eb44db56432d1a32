package memutils

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

var ErrNotPowerOfTwo = errors.New("value is not a power of two")

func CheckPow2[T constraints.Integer](number T, name string) error {
	if number <= 0 || number&(number-1) != 0 {
		return errors.Wrapf(ErrNotPowerOfTwo, "%s is %d", name, number)
	}
	return nil
}

// AlignUp rounds value up to the next multiple of alignment, which must be a power of two.
func AlignUp[T constraints.Unsigned](value, alignment T) T {
	return (value + alignment - 1) &^ (alignment - 1)
}

// DivRoundUp returns the number of blocks of size block needed to cover value.
func DivRoundUp[T constraints.Unsigned](value, block T) T {
	return (value + block - 1) / block
}
