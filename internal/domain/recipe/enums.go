package recipe

import (
	"fmt"
	"strings"
)

// TasteProfile is a flavor tag attached to a recipe.
type TasteProfile string

const (
	TasteSweet  TasteProfile = "SWEET"
	TasteSour   TasteProfile = "SOUR"
	TasteBitter TasteProfile = "BITTER"
	TasteSalty  TasteProfile = "SALTY"
	TasteUmami  TasteProfile = "UMAMI"
	TasteHot    TasteProfile = "HOT"
)

var tasteProfiles = map[TasteProfile]struct{}{
	TasteSweet:  {},
	TasteSour:   {},
	TasteBitter: {},
	TasteSalty:  {},
	TasteUmami:  {},
	TasteHot:    {},
}

// Valid reports whether t is one of the known taste profiles.
func (t TasteProfile) Valid() bool {
	_, ok := tasteProfiles[t]
	return ok
}

// ParseTasteProfile parses a case-insensitive taste profile name.
func ParseTasteProfile(s string) (TasteProfile, error) {
	t := TasteProfile(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: unknown taste profile %q", ErrInvalidArgument, s)
	}
	return t, nil
}

// Visibility controls who can see a recipe.
type Visibility string

const (
	Public      Visibility = "PUBLIC"
	FriendsOnly Visibility = "FRIENDS_ONLY"
	Private     Visibility = "PRIVATE"
)

// Valid reports whether v is a known visibility.
func (v Visibility) Valid() bool {
	switch v {
	case Public, FriendsOnly, Private:
		return true
	}
	return false
}

// ParseVisibility parses a case-insensitive visibility name.
func ParseVisibility(s string) (Visibility, error) {
	v := Visibility(strings.ToUpper(strings.TrimSpace(s)))
	if !v.Valid() {
		return "", fmt.Errorf("%w: unknown visibility %q", ErrInvalidArgument, s)
	}
	return v, nil
}

// BiologicalSex selects the Widmark distribution ratio. The zero value means
// the attribute was never set.
type BiologicalSex string

const (
	SexUnset  BiologicalSex = ""
	SexMale   BiologicalSex = "MALE"
	SexFemale BiologicalSex = "FEMALE"
)

// ParseBiologicalSex parses a case-insensitive biological sex. The empty
// string parses to SexUnset.
func ParseBiologicalSex(s string) (BiologicalSex, error) {
	b := BiologicalSex(strings.ToUpper(strings.TrimSpace(s)))
	switch b {
	case SexUnset, SexMale, SexFemale:
		return b, nil
	}
	return SexUnset, fmt.Errorf("%w: unknown biological sex %q", ErrInvalidArgument, s)
}
