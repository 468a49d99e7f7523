package address

import (
	"fmt"
	"strings"
)

// Type is the kind of account a payload identifies. It is derived from the payload.
type Type uint8

const (
	// TypeInvalid is the type of payloads outside of the known ranges.
	TypeInvalid Type = iota
	// TypeNull is the type of the all-zero payload.
	TypeNull
	// TypeBuiltin is the type of internal contracts.
	TypeBuiltin
	// TypeUser is the type of externally owned accounts.
	TypeUser
	// TypeContract is the type of deployed contracts.
	TypeContract
)

var typeNames = [...]string{
	TypeInvalid:  "invalid",
	TypeNull:     "null",
	TypeBuiltin:  "builtin",
	TypeUser:     "user",
	TypeContract: "contract",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// ParseType returns the type with the given name, ignoring case.
func ParseType(name string) (Type, error) {
	for t, n := range typeNames {
		// non ascii folds are longer than their ascii counterparts
		if len(n) == len(name) && strings.EqualFold(n, name) {
			return Type(t), nil
		}
	}
	return TypeInvalid, fmt.Errorf("%w: unknown type %q", ErrInvalidType, name)
}

// Classify returns the type of a payload.
func Classify(p Payload) Type {
	if p == (Payload{}) {
		return TypeNull
	}
	switch p[0] & 0xf0 {
	case 0x00:
		return TypeBuiltin
	case 0x10:
		return TypeUser
	case 0x80:
		return TypeContract
	}
	return TypeInvalid
}
