package userModel

import "time"

type (
	CreateResponse struct {
		Username       string    `json:"username"`
		HashedPassword string    `json:"-"`
		Email          string    `json:"-"`
		BiologicalSex  string    `json:"biological_sex,omitempty"`
		WeightInKg     float64   `json:"weight_in_kg,omitempty"`
		CreatedAt      time.Time `json:"created_at"`
		UpdatedAt      time.Time `json:"-"`
	}

	GetResponse struct {
		Username       string    `json:"username"`
		HashedPassword string    `json:"-"`
		Email          string    `json:"email"`
		BiologicalSex  string    `json:"biological_sex,omitempty"`
		WeightInKg     float64   `json:"weight_in_kg,omitempty"`
		CreatedAt      time.Time `json:"created_at"`
		UpdatedAt      time.Time `json:"updated_at"`
	}

	UpdateResponse struct {
		Username       string    `json:"username"`
		HashedPassword string    `json:"-"`
		Email          string    `json:"email"`
		BiologicalSex  string    `json:"biological_sex,omitempty"`
		WeightInKg     float64   `json:"weight_in_kg,omitempty"`
		CreatedAt      time.Time `json:"created_at"`
		UpdatedAt      time.Time `json:"updated_at"`
	}

	ListResponse struct {
		Username       string    `json:"username"`
		HashedPassword string    `json:"-"`
		Email          string    `json:"email"`
		BiologicalSex  string    `json:"-"`
		WeightInKg     float64   `json:"-"`
		CreatedAt      time.Time `json:"created_at"`
		UpdatedAt      time.Time `json:"updated_at"`
	}

	LoginResponse struct {
		AccessToken string      `json:"access_token"`
		User        GetResponse `json:"user"`
	}
)
