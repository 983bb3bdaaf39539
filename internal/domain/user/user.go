// Package user models the account that creates and drinks recipes. Only the
// attributes the recipe aggregate consumes are validated here.
package user

import (
	"fmt"
	"math"

	"github.com/gmaschi/go-recipes-social/internal/domain/recipe"
	"github.com/gmaschi/go-recipes-social/pkg/tools/validators"
)

var _ recipe.Consumer = (*User)(nil)

type User struct {
	username      string
	email         string
	biologicalSex recipe.BiologicalSex
	weightInKg    float64
}

// New creates a user. Biological sex and weight may be left unset; recipes
// refuse to estimate a BAC for such a user.
func New(username, email string, biologicalSex recipe.BiologicalSex, weightInKg float64) (*User, error) {
	if !validators.Username(username) {
		return nil, fmt.Errorf("%w: invalid username %q", recipe.ErrInvalidArgument, username)
	}
	u := &User{username: username}
	if err := u.SetEmail(email); err != nil {
		return nil, err
	}
	if err := u.SetBiologicalSex(biologicalSex); err != nil {
		return nil, err
	}
	if err := u.SetWeightInKg(weightInKg); err != nil {
		return nil, err
	}
	return u, nil
}

func (u *User) Username() string { return u.username }

func (u *User) Email() string { return u.email }

func (u *User) SetEmail(email string) error {
	if !validators.Email(email) {
		return fmt.Errorf("%w: invalid email", recipe.ErrInvalidArgument)
	}
	u.email = email
	return nil
}

// BiologicalSex is nil-safe so a missing user reads as a missing attribute.
func (u *User) BiologicalSex() recipe.BiologicalSex {
	if u == nil {
		return recipe.SexUnset
	}
	return u.biologicalSex
}

func (u *User) SetBiologicalSex(sex recipe.BiologicalSex) error {
	switch sex {
	case recipe.SexUnset, recipe.SexMale, recipe.SexFemale:
		u.biologicalSex = sex
		return nil
	}
	return fmt.Errorf("%w: unknown biological sex %q", recipe.ErrInvalidArgument, sex)
}

// WeightInKg returns 0 when the weight is unknown.
func (u *User) WeightInKg() float64 {
	if u == nil {
		return 0
	}
	return u.weightInKg
}

func (u *User) SetWeightInKg(weightInKg float64) error {
	if !(weightInKg >= 0) || math.IsInf(weightInKg, 1) {
		return fmt.Errorf("%w: weight in kg must be a finite non-negative number, got %v", recipe.ErrInvalidArgument, weightInKg)
	}
	u.weightInKg = weightInKg
	return nil
}
