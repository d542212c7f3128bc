package algorithm

import (
	"context"
	"fmt"
	"slices"

	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"
)

// Step is a single stage of a Pipeline.
// It receives the current state of the sequence,
// and returns the next state together with the lines describing what it did.
type Step[T any] struct {
	Name string
	Do   func(ctx context.Context, vs []T) (next []T, report []string, err error)
}

// Pipeline threads a sequence through its steps in order.
type Pipeline[T any] []Step[T]

// Result is the outcome of a single Step.
type Result[T any] struct {
	Step   string
	Report []string
	State  []T
}

// Run executes the steps one after the other, passing the state of the previous step to the next.
// The input is never modified.
// On failure, the results of the already completed steps are returned along with the error.
func (p Pipeline[T]) Run(ctx context.Context, vs []T) ([]Result[T], error) {
	var (
		state   = slices.Clone(vs)
		results = make([]Result[T], 0, len(p))
	)
	for _, step := range p {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		logger.Debug(ctx, "running algorithm step",
			logging.Field("step", step.Name),
			logging.Field("length", len(state)))

		next, report, err := step.Do(ctx, slices.Clone(state))
		if err != nil {
			return results, fmt.Errorf("%s: %w", step.Name, err)
		}
		state = next
		results = append(results, Result[T]{
			Step:   step.Name,
			Report: report,
			State:  slices.Clone(state),
		})
	}
	return results, nil
}
