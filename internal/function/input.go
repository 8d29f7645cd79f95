package function

import (
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Input aggregates a neuron's weighted incoming values into a single
// pre-activation scalar.
//
// The slice holds one weighted input per incoming connection, in connection
// order, including the bias connection if the neuron has one.
type Input interface {
	Name() string
	Aggregate(weighted []float64) float64
}

// WeightedSum sums the weighted inputs. It is the only aggregation the
// gradient-descent rule in package learn is derived for.
var WeightedSum Input = weightedSum{}

// InputByName looks up an input function by its name (case-insensitive).
func InputByName(name string) (Input, error) {
	if strings.EqualFold(name, WeightedSum.Name()) {
		return WeightedSum, nil
	}
	return nil, errors.Wrapf(ErrUnknown, "input function %q", name)
}

type weightedSum struct{}

func (weightedSum) Name() string { return "weighted_sum" }

func (weightedSum) Aggregate(weighted []float64) float64 {
	return floats.Sum(weighted)
}
