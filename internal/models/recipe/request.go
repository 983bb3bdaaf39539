package recipeModel

type (
	IngredientRequest struct {
		Name       string  `json:"name" binding:"required"`
		VolumeInMl float64 `json:"volume_in_ml"`
		Abv        float64 `json:"abv"`
	}

	StepRequest struct {
		StepNumber  int    `json:"step_number" binding:"required,min=1,max=2147483647"`
		Description string `json:"description" binding:"required"`
	}

	CreateRequest struct {
		Title         string              `json:"title" binding:"required"`
		Description   string              `json:"description"`
		TasteProfiles []string            `json:"taste_profiles"`
		Visibility    string              `json:"visibility" binding:"required"`
		Ingredients   []IngredientRequest `json:"ingredients" binding:"required,dive"`
		Steps         []StepRequest       `json:"steps" binding:"required,dive"`
	}

	GetRequest struct {
		ID string `uri:"id" binding:"required,uuid"`
	}

	// UpdateRequest changes only the fields that are present
	UpdateRequest struct {
		Title         *string  `json:"title"`
		Description   *string  `json:"description"`
		TasteProfiles []string `json:"taste_profiles"`
		Visibility    *string  `json:"visibility"`
	}

	DeleteRequest struct {
		ID string `uri:"id" binding:"required,uuid"`
	}

	ListRequest struct {
		PageID   int32 `form:"page_id" binding:"required,min=1"`
		PageSize int32 `form:"page_size" binding:"required,min=5,max=10"`
	}

	ReplaceIngredientsRequest struct {
		Ingredients []IngredientRequest `json:"ingredients" binding:"dive"`
	}

	IngredientURI struct {
		ID    string `uri:"id" binding:"required,uuid"`
		Index int    `uri:"index" binding:"min=0"`
	}

	EditIngredientRequest struct {
		Name       *string  `json:"name"`
		VolumeInMl *float64 `json:"volume_in_ml"`
		Abv        *float64 `json:"abv"`
	}

	ReplaceStepsRequest struct {
		Steps []StepRequest `json:"steps" binding:"dive"`
	}

	StepURI struct {
		ID         string `uri:"id" binding:"required,uuid"`
		StepNumber int    `uri:"step" binding:"required,min=1,max=2147483647"`
	}

	RewriteStepRequest struct {
		Description string `json:"description" binding:"required"`
	}

	VersionURI struct {
		ID      string `uri:"id" binding:"required,uuid"`
		Version int32  `uri:"version" binding:"required,min=1"`
	}
)
