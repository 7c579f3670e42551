package blood

import (
	"net/url"
	"strings"

	dErrors "bloodlink/pkg/domain-errors"
)

// Type is one of the eight canonical ABO/Rh blood types.
type Type string

const (
	ONeg  Type = "O-"
	OPos  Type = "O+"
	ANeg  Type = "A-"
	APos  Type = "A+"
	BNeg  Type = "B-"
	BPos  Type = "B+"
	ABNeg Type = "AB-"
	ABPos Type = "AB+"
)

// All lists the canonical types in their fixed display order.
var All = []Type{ONeg, OPos, ANeg, APos, BNeg, BPos, ABNeg, ABPos}

// compatibility maps a patient type to the donor types it may receive from.
// The relation is directed and not symmetric: O- donates to everyone but only
// receives from O-.
var compatibility = map[Type][]Type{
	ONeg:  {ONeg},
	OPos:  {ONeg, OPos},
	ANeg:  {ONeg, ANeg},
	APos:  {ONeg, OPos, ANeg, APos},
	BNeg:  {ONeg, BNeg},
	BPos:  {ONeg, OPos, BNeg, BPos},
	ABNeg: {ONeg, ANeg, BNeg, ABNeg},
	ABPos: {ONeg, OPos, ANeg, APos, BNeg, BPos, ABNeg, ABPos},
}

// Normalize canonicalizes raw caller input ("o+", " AB- ", "O%2B") into a
// canonical Type. Returns CodeInvalidBloodType when the value is not one of
// the eight canonical types after normalization.
func Normalize(raw string) (Type, error) {
	// PathUnescape rather than QueryUnescape: a literal '+' is part of the
	// type name, not an encoded space.
	if unescaped, err := url.PathUnescape(raw); err == nil {
		raw = unescaped
	}
	raw = strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(raw), " ", ""))

	t := Type(raw)
	if _, ok := compatibility[t]; !ok {
		return "", dErrors.New(dErrors.CodeInvalidBloodType, "invalid blood group")
	}
	return t, nil
}

// CompatibleDonorTypes returns the fixed ordered set of donor types a patient
// of the given type may receive from.
func CompatibleDonorTypes(patient Type) ([]Type, error) {
	types, ok := compatibility[patient]
	if !ok {
		return nil, dErrors.New(dErrors.CodeInvalidBloodType, "invalid blood group")
	}
	out := make([]Type, len(types))
	copy(out, types)
	return out, nil
}

// Valid reports whether t is one of the eight canonical types.
func Valid(t Type) bool {
	_, ok := compatibility[t]
	return ok
}
