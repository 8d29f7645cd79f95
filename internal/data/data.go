// Package data maps attribute-described instances onto network inputs and
// targets.
//
// A Schema lists input attributes and one output attribute. Numeric and
// binary attributes become a single input neuron named after the attribute.
// Categorical attributes with three or more values are expanded one-hot into
// a neuron per "name=value" pair. A numeric output becomes one output neuron;
// a categorical output becomes one output neuron per value.
//
// Instances store categorical values as the index of the value, so an
// Instance is a plain vector of float64.
package data

import (
	"math"

	"github.com/pkg/errors"

	"github.com/born-ml/wann/internal/network"
)

// Kind is an attribute's value type.
type Kind int

// Attribute kinds.
const (
	Numeric Kind = iota
	Categorical
)

func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Categorical:
		return "categorical"
	default:
		return "unknown"
	}
}

// Attribute describes one column of a data set.
type Attribute struct {
	Name   string
	Kind   Kind
	Values []string // enumerated values, categorical only
}

// NumericAttribute returns a numeric attribute.
func NumericAttribute(name string) Attribute {
	return Attribute{Name: name, Kind: Numeric}
}

// CategoricalAttribute returns a categorical attribute with the given values.
func CategoricalAttribute(name string, values ...string) Attribute {
	return Attribute{Name: name, Kind: Categorical, Values: values}
}

// OneHot reports whether the attribute expands into one input per value.
func (a Attribute) OneHot() bool {
	return a.Kind == Categorical && len(a.Values) >= 3
}

// InputNames returns the names of the input neurons for this attribute.
func (a Attribute) InputNames() []string {
	if !a.OneHot() {
		return []string{a.Name}
	}
	names := make([]string, len(a.Values))
	for i, v := range a.Values {
		names[i] = a.Name + "=" + v
	}
	return names
}

// index converts a categorical value to a value index.
func (a Attribute) index(v float64) (int, error) {
	if v != math.Trunc(v) {
		return 0, errors.Wrapf(network.ErrInvalidArgument, "%s: value %g is not an index", a.Name, v)
	}
	if v < 0 || v >= float64(len(a.Values)) {
		return 0, errors.Wrapf(network.ErrIndexOutOfRange, "%s: value index %g (have %d values)", a.Name, v, len(a.Values))
	}
	return int(v), nil
}

func (a Attribute) validate() error {
	if a.Name == "" {
		return errors.Wrap(network.ErrInvalidArgument, "attribute has no name")
	}
	switch a.Kind {
	case Numeric:
		if len(a.Values) > 0 {
			return errors.Wrapf(network.ErrInvalidArgument, "%s: numeric attribute with values", a.Name)
		}
	case Categorical:
		if len(a.Values) == 0 {
			return errors.Wrapf(network.ErrInvalidArgument, "%s: categorical attribute without values", a.Name)
		}
		seen := make(map[string]struct{}, len(a.Values))
		for _, v := range a.Values {
			if _, ok := seen[v]; ok {
				return errors.Wrapf(network.ErrInvalidArgument, "%s: duplicate value %q", a.Name, v)
			}
			seen[v] = struct{}{}
		}
	default:
		return errors.Wrapf(network.ErrInvalidArgument, "%s: unknown kind %d", a.Name, a.Kind)
	}
	return nil
}

// Instance is one row: a value per input attribute, in schema order, and
// the output attribute's value.
type Instance struct {
	Values []float64
	Class  float64
}
