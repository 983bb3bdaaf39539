package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type Store interface {
	Querier
	RecipeAggregate(ctx context.Context, id uuid.UUID) (RecipeAggregate, error)
	CreateRecipeTx(ctx context.Context, arg CreateRecipeTxParams) (RecipeAggregate, error)
	UpdateRecipeTx(ctx context.Context, arg UpdateRecipeTxParams) (RecipeAggregate, error)
	ReplaceIngredientsTx(ctx context.Context, arg ReplaceIngredientsTxParams) (RecipeAggregate, error)
	ReplaceStepsTx(ctx context.Context, arg ReplaceStepsTxParams) (RecipeAggregate, error)
}

type PostgresqlStore struct {
	db *sql.DB
	*Queries
}

func NewStore(db *sql.DB) PostgresqlStore {
	return PostgresqlStore{
		db:      db,
		Queries: New(db),
	}
}

// RecipeAggregate is a recipe row with its ingredient and step rows in order
type RecipeAggregate struct {
	Recipe      Recipe       `json:"recipe"`
	Ingredients []Ingredient `json:"ingredients"`
	Steps       []Step       `json:"steps"`
}

type (
	CreateRecipeTxParams struct {
		Recipe      CreateRecipeParams
		Ingredients []CreateIngredientParams
		Steps       []CreateStepParams
	}

	UpdateRecipeTxParams struct {
		Recipe      UpdateRecipeParams
		Ingredients []CreateIngredientParams
		Steps       []CreateStepParams
	}

	ReplaceIngredientsTxParams struct {
		RecipeID    uuid.UUID
		Ingredients []CreateIngredientParams
		UpdatedAt   time.Time
	}

	ReplaceStepsTxParams struct {
		RecipeID  uuid.UUID
		Steps     []CreateStepParams
		UpdatedAt time.Time
	}
)

// execTx runs fn inside a database transaction
func (store PostgresqlStore) execTx(ctx context.Context, fn func(*Queries) error) error {
	tx, err := store.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	q := New(tx)
	err = fn(q)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx err: %v, rb err: %v", err, rbErr)
		}
		return err
	}

	return tx.Commit()
}

// RecipeAggregate loads a recipe and fetches its ingredients and steps concurrently
func (store PostgresqlStore) RecipeAggregate(ctx context.Context, id uuid.UUID) (RecipeAggregate, error) {
	var agg RecipeAggregate

	recipe, err := store.GetRecipe(ctx, id)
	if err != nil {
		return agg, err
	}
	agg.Recipe = recipe

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ingredients, err := store.ListIngredients(gctx, id)
		agg.Ingredients = ingredients
		return err
	})
	g.Go(func() error {
		steps, err := store.ListSteps(gctx, id)
		agg.Steps = steps
		return err
	})
	if err := g.Wait(); err != nil {
		return RecipeAggregate{}, err
	}

	return agg, nil
}

// CreateRecipeTx inserts a recipe with its ingredients and steps
func (store PostgresqlStore) CreateRecipeTx(ctx context.Context, arg CreateRecipeTxParams) (RecipeAggregate, error) {
	var result RecipeAggregate

	err := store.execTx(ctx, func(q *Queries) error {
		var err error

		result.Recipe, err = q.CreateRecipe(ctx, arg.Recipe)
		if err != nil {
			return err
		}

		result.Ingredients, err = createIngredients(ctx, q, arg.Recipe.ID, arg.Ingredients)
		if err != nil {
			return err
		}

		result.Steps, err = createSteps(ctx, q, arg.Recipe.ID, arg.Steps)
		return err
	})

	return result, err
}

// UpdateRecipeTx rewrites a recipe row and both of its collections
func (store PostgresqlStore) UpdateRecipeTx(ctx context.Context, arg UpdateRecipeTxParams) (RecipeAggregate, error) {
	var result RecipeAggregate

	err := store.execTx(ctx, func(q *Queries) error {
		var err error

		result.Recipe, err = q.UpdateRecipe(ctx, arg.Recipe)
		if err != nil {
			return err
		}

		if err = q.DeleteIngredients(ctx, arg.Recipe.ID); err != nil {
			return err
		}
		result.Ingredients, err = createIngredients(ctx, q, arg.Recipe.ID, arg.Ingredients)
		if err != nil {
			return err
		}

		if err = q.DeleteSteps(ctx, arg.Recipe.ID); err != nil {
			return err
		}
		result.Steps, err = createSteps(ctx, q, arg.Recipe.ID, arg.Steps)
		return err
	})

	return result, err
}

// ReplaceIngredientsTx swaps the whole ingredient list of a recipe
func (store PostgresqlStore) ReplaceIngredientsTx(ctx context.Context, arg ReplaceIngredientsTxParams) (RecipeAggregate, error) {
	var result RecipeAggregate

	err := store.execTx(ctx, func(q *Queries) error {
		err := q.TouchRecipe(ctx, TouchRecipeParams{ID: arg.RecipeID, UpdatedAt: arg.UpdatedAt})
		if err != nil {
			return err
		}

		if err = q.DeleteIngredients(ctx, arg.RecipeID); err != nil {
			return err
		}
		if _, err = createIngredients(ctx, q, arg.RecipeID, arg.Ingredients); err != nil {
			return err
		}

		result, err = loadAggregate(ctx, q, arg.RecipeID)
		return err
	})

	return result, err
}

// ReplaceStepsTx swaps the whole step list of a recipe
func (store PostgresqlStore) ReplaceStepsTx(ctx context.Context, arg ReplaceStepsTxParams) (RecipeAggregate, error) {
	var result RecipeAggregate

	err := store.execTx(ctx, func(q *Queries) error {
		err := q.TouchRecipe(ctx, TouchRecipeParams{ID: arg.RecipeID, UpdatedAt: arg.UpdatedAt})
		if err != nil {
			return err
		}

		if err = q.DeleteSteps(ctx, arg.RecipeID); err != nil {
			return err
		}
		if _, err = createSteps(ctx, q, arg.RecipeID, arg.Steps); err != nil {
			return err
		}

		result, err = loadAggregate(ctx, q, arg.RecipeID)
		return err
	})

	return result, err
}

func createIngredients(ctx context.Context, q *Queries, recipeID uuid.UUID, args []CreateIngredientParams) ([]Ingredient, error) {
	ingredients := make([]Ingredient, 0, len(args))
	for idx, arg := range args {
		arg.RecipeID = recipeID
		arg.Position = int32(idx)
		ingredient, err := q.CreateIngredient(ctx, arg)
		if err != nil {
			return nil, err
		}
		ingredients = append(ingredients, ingredient)
	}
	return ingredients, nil
}

func createSteps(ctx context.Context, q *Queries, recipeID uuid.UUID, args []CreateStepParams) ([]Step, error) {
	steps := make([]Step, 0, len(args))
	for idx, arg := range args {
		arg.RecipeID = recipeID
		arg.Position = int32(idx)
		step, err := q.CreateStep(ctx, arg)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	return steps, nil
}

func loadAggregate(ctx context.Context, q *Queries, id uuid.UUID) (RecipeAggregate, error) {
	var (
		agg RecipeAggregate
		err error
	)

	agg.Recipe, err = q.GetRecipe(ctx, id)
	if err != nil {
		return agg, err
	}
	agg.Ingredients, err = q.ListIngredients(ctx, id)
	if err != nil {
		return agg, err
	}
	agg.Steps, err = q.ListSteps(ctx, id)
	return agg, err
}
