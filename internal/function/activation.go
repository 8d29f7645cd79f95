// Package function implements the pluggable math contracts of a network:
// activation functions, input-aggregation functions and error functions.
//
// Each contract is a small interface with a closed set of named variants.
// Variants are stateless values and safe to share between layers and networks.
package function

import (
	"math"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknown is returned when a function name does not match any variant.
var ErrUnknown = errors.New("unknown function")

// Activation is a differentiable scalar function applied to a neuron's
// pre-activation value.
//
// Derivative is evaluated at the pre-activation point, not at the output.
type Activation interface {
	// Name returns the lowercase identifier used in configuration.
	Name() string

	// Apply computes f(x).
	Apply(x float64) float64

	// Derivative computes f'(x).
	Derivative(x float64) float64
}

// Activation variants.
var (
	Linear   Activation = linear{}
	Sigmoid  Activation = sigmoid{}
	Tanh     Activation = tanh{}
	ReLU     Activation = relu{}
	Softplus Activation = softplus{}
)

var activations = []Activation{Linear, Sigmoid, Tanh, ReLU, Softplus}

// ActivationByName looks up an activation variant by its name (case-insensitive).
func ActivationByName(name string) (Activation, error) {
	for _, a := range activations {
		if strings.EqualFold(a.Name(), name) {
			return a, nil
		}
	}
	return nil, errors.Wrapf(ErrUnknown, "activation %q", name)
}

// linear is the identity: f(x) = x.
type linear struct{}

func (linear) Name() string { return "linear" }
func (linear) Apply(x float64) float64 { return x }
func (linear) Derivative(float64) float64 { return 1 }

// sigmoid is the logistic function: σ(x) = 1 / (1 + exp(-x)).
type sigmoid struct{}

func (sigmoid) Name() string { return "sigmoid" }

func (sigmoid) Apply(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// Derivative uses σ'(x) = σ(x)(1 - σ(x)).
func (s sigmoid) Derivative(x float64) float64 {
	y := s.Apply(x)
	return y * (1 - y)
}

// tanh squashes to (-1, 1).
type tanh struct{}

func (tanh) Name() string { return "tanh" }
func (tanh) Apply(x float64) float64 { return math.Tanh(x) }

func (tanh) Derivative(x float64) float64 {
	y := math.Tanh(x)
	return 1 - y*y
}

// relu is max(0, x). The derivative at 0 is taken as 0.
type relu struct{}

func (relu) Name() string { return "relu" }

func (relu) Apply(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0
}

func (relu) Derivative(x float64) float64 {
	if x > 0 {
		return 1
	}
	return 0
}

// softplus is the smooth ReLU: ln(1 + exp(x)). Its derivative is σ(x).
type softplus struct{}

func (softplus) Name() string { return "softplus" }

func (softplus) Apply(x float64) float64 {
	// log1p(exp(x)) overflows for large x where the result is x anyway.
	if x > 30 {
		return x
	}
	return math.Log1p(math.Exp(x))
}

func (softplus) Derivative(x float64) float64 {
	return sigmoid{}.Apply(x)
}
