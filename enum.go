package diligent

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// enumEntry binds one safe enum value to its native constant and display name. Every
// enum keeps a table of these indexed by the safe value.
type enumEntry[N constraints.Integer] struct {
	native N
	name   string
}

func enumString[E constraints.Integer, N constraints.Integer](table []enumEntry[N], e E) string {
	if e < 0 || int(e) >= len(table) {
		return fmt.Sprintf("%T(%d)", e, int64(e))
	}
	return table[e].name
}

func enumToNative[E constraints.Integer, N constraints.Integer](table []enumEntry[N], e E) N {
	if e < 0 || int(e) >= len(table) {
		panic(fmt.Sprintf("diligent: invalid %T value %d", e, int64(e)))
	}
	return table[e].native
}

// enumFromNative panics on a native value the table does not know. The count
// assertions next to each table make that a binding/engine version mismatch.
func enumFromNative[E constraints.Integer, N constraints.Integer](table []enumEntry[N], n N, first int) E {
	for i := first; i < len(table); i++ {
		if table[i].native == n {
			return E(i)
		}
	}
	panic(fmt.Sprintf("diligent: unknown native %T value %d", n, int64(n)))
}

func enumMarshalText[E constraints.Integer, N constraints.Integer](table []enumEntry[N], e E) ([]byte, error) {
	if e < 0 || int(e) >= len(table) {
		return nil, errors.Newf("invalid %T value %d", e, int64(e))
	}
	return []byte(table[e].name), nil
}

func enumUnmarshalText[E constraints.Integer, N constraints.Integer](table []enumEntry[N], e *E, text []byte, first int) error {
	str := string(text)
	for i := first; i < len(table); i++ {
		if table[i].name == str {
			*e = E(i)
			return nil
		}
	}
	return errors.Newf("%q is not a valid %T", str, *e)
}
