package aggregates

import (
	"context"

	"github.com/yungbote/foodmap-backend/internal/domain/directory"
)

var FoodResourceAggregateContract = Contract{
	Name:             "Directory.FoodResourceAggregate",
	WriteTxOwnership: WriteTxOwnedByAggregate,
	ReadPolicy:       ReadPolicyInvariantScoped,
	Notes:            "Owns the food resource row, its tag links and its seven business hours rows.",
}

// FoodResourceAggregate reads and writes a food resource together with its tags and hours.
//
// Failures are *aggregates.Error with CodeNotFound, CodeValidation or a persistence code
// (CodeConflict, CodePreconditionFailed, CodeRetryable, CodePersistence).
type FoodResourceAggregate interface {
	Aggregate

	// ListAll returns every aggregate, or an empty slice.
	ListAll(ctx context.Context) ([]directory.FoodResourceView, error)

	GetByID(ctx context.Context, id uint) (directory.FoodResourceView, error)

	// Insert creates the resource, reuses or creates its tags and writes exactly seven hours rows.
	Insert(ctx context.Context, in directory.FoodResourceInput) (directory.FoodResourceView, error)

	// Update replaces the resource's scalars, tag links and hours in place.
	Update(ctx context.Context, id uint, in directory.FoodResourceInput) (directory.FoodResourceView, error)

	// Delete removes the resource with its tag links and hours. Shared tags and days remain.
	Delete(ctx context.Context, id uint) error
}
