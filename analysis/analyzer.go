// Package analysis holds the plant analysis contract and the built-in
// simulated analyzer
package analysis

import (
	"context"

	"agritech/plantcare-api/storage"
)

// Result is what an analyzer says about an uploaded plant image.
type Result struct {
	Name             string `json:"name"`
	CareInstructions string `json:"careInstructions"`
}

type Analyzer interface {
	Analyze(ctx context.Context, stored storage.StoredFile) (Result, error)
}

// Static returns the same simulated result for every stored image.
// Real deployments swap this for a remote vision client behind the
// same interface.
type Static struct{}

func (Static) Analyze(_ context.Context, _ storage.StoredFile) (Result, error) {
	return Result{
		Name:             "Sample Plant",
		CareInstructions: "Water daily, keep in sunlight.",
	}, nil
}
