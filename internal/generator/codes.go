package generator

import "github.com/oklog/ulid/v2"

// FixedUserCode is the code assigned to every user by FixedCodes.
// Because the store is keyed by code, each create overwrites the
// previous occupant, capping the store at one live user.
const FixedUserCode = "aaaaaa"

// CodeGenerator produces the primary-key code for a new user.
type CodeGenerator interface {
	Code() string
}

// FixedCodes returns the same code for every user. This is the
// documented default behavior of the service.
type FixedCodes struct{}

// Code returns the fixed user code.
func (FixedCodes) Code() string {
	return FixedUserCode
}

// ULIDCodes returns a unique, lexicographically sortable code per user,
// making the list endpoint return a growing collection. Enabled via
// USER_CODE_MODE=unique.
type ULIDCodes struct{}

// Code returns a fresh ULID.
func (ULIDCodes) Code() string {
	return ulid.Make().String()
}
