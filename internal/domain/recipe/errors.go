package recipe

import "errors"

// Sentinel errors returned by the recipe aggregate. They are always wrapped
// with a message naming the offending field, so match them with errors.Is.
var (
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrDuplicateName       = errors.New("ingredients have duplicate names")
	ErrTooFewIngredients   = errors.New("a recipe needs at least 2 ingredients")
	ErrDuplicateStepNumber = errors.New("steps have duplicate step numbers")
	ErrNotSet              = errors.New("not set")
	ErrMissingAttribute    = errors.New("missing attribute")
)
