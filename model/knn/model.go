// Package knn classifies a query text by ranking every training example
// with a similarity strategy and letting the k nearest vote.
package knn

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/trknhr/zipknn/model"
)

// DefaultKFraction is the share of the training set that votes.
const DefaultKFraction = 0.3

type Classifier struct {
	examples    []model.TrainingExample
	sim         model.Similarity
	kFraction   float64
	parallelism int
}

type Option func(*Classifier)

// WithKFraction overrides the share of the training set that votes.
func WithKFraction(f float64) Option {
	return func(c *Classifier) { c.kFraction = f }
}

// WithParallelism bounds how many similarity computations run at once.
func WithParallelism(n int) Option {
	return func(c *Classifier) { c.parallelism = n }
}

func New(examples []model.TrainingExample, sim model.Similarity, opts ...Option) (*Classifier, error) {
	if len(examples) == 0 {
		return nil, model.ErrEmptyTrainingSet
	}
	c := &Classifier{
		examples:    append([]model.TrainingExample(nil), examples...),
		sim:         sim,
		kFraction:   DefaultKFraction,
		parallelism: runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if math.IsNaN(c.kFraction) || c.kFraction <= 0 {
		return nil, fmt.Errorf("invalid k fraction %v", c.kFraction)
	}
	if c.parallelism < 1 {
		c.parallelism = 1
	}
	return c, nil
}

// K reports how many neighbors vote: round(n * kFraction) clamped to
// [1, n]. The lower clamp keeps tiny training sets from producing an
// empty vote.
func (c *Classifier) K() int {
	k := int(math.Round(float64(len(c.examples)) * c.kFraction))
	if k < 1 {
		k = 1
	}
	if k > len(c.examples) {
		k = len(c.examples)
	}
	return k
}

// Rank scores every training example against the query and returns the
// ranking sorted by score descending. The sort is stable, so equal
// scores keep training-set order. Scoring fans out across at most
// parallelism goroutines; results land in fixed slots, so the ranking
// is identical to a serial run.
func (c *Classifier) Rank(ctx context.Context, query string) ([]model.Ranked, error) {
	if len(c.examples) == 0 {
		return nil, model.ErrEmptyTrainingSet
	}

	scores := make([]float64, len(c.examples))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.parallelism)
	for i, ex := range c.examples {
		i, ex := i, ex
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			s, err := c.sim.Score(ex.Text, query)
			if err != nil {
				return fmt.Errorf("score example %d: %w", i, err)
			}
			scores[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ranked := make([]model.Ranked, len(c.examples))
	for i, ex := range c.examples {
		ranked[i] = model.Ranked{Label: ex.Label, Score: scores[i]}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked, nil
}

// Neighbors returns the top-k prefix of the ranking.
func (c *Classifier) Neighbors(ctx context.Context, query string) ([]model.Ranked, error) {
	ranked, err := c.Rank(ctx, query)
	if err != nil {
		return nil, err
	}
	return ranked[:c.K()], nil
}

// Predict assigns the majority label among the k nearest neighbors.
// Equal counts go to the label whose first member ranks highest, so the
// outcome never depends on map iteration order. A similarity error
// aborts the prediction and propagates unchanged.
func (c *Classifier) Predict(ctx context.Context, query string) (string, error) {
	neighbors, err := c.Neighbors(ctx, query)
	if err != nil {
		return "", err
	}

	counts := make(map[string]int, len(neighbors))
	var order []string
	for _, n := range neighbors {
		if _, seen := counts[n.Label]; !seen {
			order = append(order, n.Label)
		}
		counts[n.Label]++
	}

	best := order[0]
	for _, label := range order[1:] {
		if counts[label] > counts[best] {
			best = label
		}
	}
	return best, nil
}
