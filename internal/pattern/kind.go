package pattern

import (
	"fmt"

	"github.com/san-kum/attractor/internal/dynamo"
)

// Kind enumerates the closed set of patterns.
type Kind int

const (
	Standard Kind = iota
	Star
	Aurora
	Fractal
	Quantum
	Lorenz
	Rossler
	Henon
	Ikeda
	numKinds
)

var kindNames = [numKinds]string{
	Standard: "standard",
	Star:     "star",
	Aurora:   "aurora",
	Fractal:  "fractal",
	Quantum:  "quantum",
	Lorenz:   "lorenz",
	Rossler:  "rossler",
	Henon:    "henon",
	Ikeda:    "ikeda",
}

func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

func (k Kind) Valid() bool { return k >= 0 && k < numKinds }

// ParseKind resolves a pattern name.
func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return Standard, fmt.Errorf("%w: %q", dynamo.ErrUnknownPattern, name)
}

// Kinds lists every pattern in declaration order.
func Kinds() []Kind {
	out := make([]Kind, numKinds)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", dynamo.ErrUnknownPattern, int(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
