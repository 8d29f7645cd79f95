package network

import (
	"math/rand"

	"github.com/born-ml/wann/internal/function"
	"github.com/born-ml/wann/internal/parallel"
)

// Config describes a network's topology. It is validated once by New and
// not retained afterwards.
//
// Example (2-2-1 network with bias on every non-input neuron):
//
//	cfg := network.Config{
//	    Inputs: []string{"x1", "x2"},
//	    Hidden: []network.LayerConfig{{Size: 2, Bias: true}},
//	    Output: network.LayerConfig{Size: 1, Bias: true},
//	    Seed:   42,
//	}
//	net, err := network.New(cfg)
type Config struct {
	Name string

	// Inputs names the input neurons, one per input value.
	Inputs []string

	// Hidden layers, first to last. May be empty.
	Hidden []LayerConfig

	// Output layer. Required.
	Output LayerConfig

	// Rand draws initial weights. If nil, rand.New(rand.NewSource(Seed)) is used.
	Rand *rand.Rand
	Seed int64

	// Parallel controls within-layer evaluation. The zero value is sequential.
	Parallel parallel.Config

	// Rule is the learning rule used by Train. It may also be set later with SetRule.
	Rule Rule
}

// LayerConfig describes one non-input layer.
//
// The neuron count comes from Neurons, Names or Size, in that order of
// precedence; any of them given together must agree.
type LayerConfig struct {
	Name string

	// Size is the number of fully connected neurons.
	Size int

	// Names fixes neuron names (and the neuron count).
	Names []string

	// Neurons gives explicit per-neuron settings.
	Neurons []NeuronConfig

	// Activation defaults to sigmoid for hidden layers and linear for the output layer.
	Activation function.Activation

	// Input defaults to function.WeightedSum.
	Input function.Input

	// Bias adds a random-weight bias connection to neurons built from Size or Names.
	Bias bool
}

// NeuronConfig describes one neuron of a non-input layer.
type NeuronConfig struct {
	Name string

	// Connections lists explicit incoming connections from the previous
	// layer. If empty, the neuron connects to every previous neuron with a
	// random weight in [-1, 1).
	Connections []ConnectionConfig

	// Bias adds a bias connection with a random weight in [-1, 1).
	Bias bool

	// BiasWeight adds a bias connection with this exact weight. Implies Bias.
	BiasWeight *float64
}

// ConnectionConfig is one explicit incoming connection.
type ConnectionConfig struct {
	From   int // index of the source neuron in the previous layer
	Weight float64
}

// BiasWeight returns a pointer to w, for NeuronConfig.BiasWeight.
func BiasWeight(w float64) *float64 {
	return &w
}
