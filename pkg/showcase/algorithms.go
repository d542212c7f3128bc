package showcase

import (
	"context"
	"fmt"
	"slices"

	"go.llib.dev/containershowcase/pkg/algorithm"
	"go.llib.dev/containershowcase/pkg/render"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"
)

const (
	eraseTarget = 4
	countTarget = 2
)

const refLo = "https://pkg.go.dev/github.com/samber/lo"

type algorithmDemo struct {
	step      algorithm.Step[int]
	advice    string
	reference string
}

var algorithmDemos = []algorithmDemo{
	{
		step: algorithm.Step[int]{
			Name: "sort",
			Do: func(ctx context.Context, vs []int) ([]int, []string, error) {
				sorted := algorithm.SortAscending(vs)
				return sorted, []string{"Sorted slice: " + render.Seq(slices.Values(sorted))}, nil
			},
		},
		advice:    "Use sort to order the elements of a container ascending.",
		reference: "https://pkg.go.dev/slices#Sort",
	},
	{
		step: algorithm.Step[int]{
			Name: "min and max",
			Do: func(ctx context.Context, vs []int) ([]int, []string, error) {
				lowest, highest, err := algorithm.FindExtremes(vs)
				if err != nil {
					return nil, nil, err
				}
				return vs, []string{
					fmt.Sprintf("Minimum element: %d", lowest),
					fmt.Sprintf("Maximum element: %d", highest),
				}, nil
			},
		},
		advice:    "Use min and max to find the smallest and the largest element of a container.",
		reference: refLo,
	},
	{
		step: algorithm.Step[int]{
			Name: "find and erase",
			Do: func(ctx context.Context, vs []int) ([]int, []string, error) {
				next, ok := algorithm.FindAndRemoveFirst(vs, eraseTarget)
				report := fmt.Sprintf("Element %d not found.", eraseTarget)
				if ok {
					report = fmt.Sprintf("Element %d erased.", eraseTarget)
				}
				logger.Debug(ctx, "find and erase", logging.Field("found", ok))
				return next, []string{report, elements("Slice", render.Seq(slices.Values(next)))}, nil
			},
		},
		advice:    "Use find to search for a specific element in a container, and erase to remove it.",
		reference: refLo,
	},
	{
		step: algorithm.Step[int]{
			Name: "count",
			Do: func(ctx context.Context, vs []int) ([]int, []string, error) {
				n := algorithm.CountEqual(vs, countTarget)
				return vs, []string{fmt.Sprintf("Count of %ds: %d", countTarget, n)}, nil
			},
		},
		advice:    "Use count to count the occurrences of a value in a container.",
		reference: refLo,
	},
	{
		step: algorithm.Step[int]{
			Name: "transform",
			Do: func(ctx context.Context, vs []int) ([]int, []string, error) {
				squared := algorithm.MapSquare(vs)
				return squared, []string{"Transformed slice: " + render.Seq(slices.Values(squared))}, nil
			},
		},
		advice:    "Use transform to apply an operation on each element of a container and store the result.",
		reference: refLo,
	},
	{
		step: algorithm.Step[int]{
			Name: "accumulate",
			Do: func(ctx context.Context, vs []int) ([]int, []string, error) {
				return vs, []string{fmt.Sprintf("Sum of elements: %d", algorithm.SumAll(vs))}, nil
			},
		},
		advice:    "Use accumulate to compute the sum of the elements in a container.",
		reference: refLo,
	},
}

// Algorithms threads numbers through the algorithm steps:
// sort, min and max, find and erase, count, transform and accumulate.
// When a step fails, the sections of the completed steps are returned along with the error.
func Algorithms(ctx context.Context, numbers []int) ([]Section, error) {
	var pipeline algorithm.Pipeline[int]
	for _, demo := range algorithmDemos {
		pipeline = append(pipeline, demo.step)
	}
	results, err := pipeline.Run(ctx, numbers)
	sections := make([]Section, 0, len(results))
	for i, result := range results {
		sections = append(sections, Section{
			Title:     result.Step,
			Body:      result.Report,
			Advice:    algorithmDemos[i].advice,
			Reference: algorithmDemos[i].reference,
		})
	}
	if err != nil {
		return sections, fmt.Errorf("algorithm showcase: %w", err)
	}
	return sections, nil
}
