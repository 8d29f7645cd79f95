// Package network implements a strictly layered feed-forward neural network.
//
// A Network owns an arena of neurons and connections addressed by stable
// integer IDs. Layers group neuron IDs in order; connections record their
// source and destination IDs. Topology is built once by New and never
// changes; a learning rule mutates connection weights only.
//
// Basic usage:
//
//	net, err := network.New(network.Config{
//	    Inputs: []string{"x1", "x2"},
//	    Hidden: []network.LayerConfig{{Size: 2, Bias: true}},
//	    Output: network.LayerConfig{Size: 1, Bias: true},
//	    Seed:   1,
//	})
//	if err != nil {
//	    return err
//	}
//	out, err := net.Evaluate([]float64{0, 1})
//
// A Network is not safe for concurrent use.
package network

import (
	"slices"

	"github.com/pkg/errors"

	"github.com/born-ml/wann/internal/parallel"
)

// Sample is one training instance in network terms: one value per input
// neuron and a class value.
//
// For a single-output network Class is the regression target. For a
// multi-output network it is the index of the correct output neuron.
type Sample struct {
	Inputs []float64
	Class  float64
}

// Rule trains a network over a list of samples and returns the error of
// each epoch.
type Rule interface {
	Apply(n *Network, samples []Sample) ([]float64, error)
}

// Network is an ordered sequence of layers plus a constant bias neuron.
type Network struct {
	name       string
	a          *arena
	layers     []*Layer
	bias       NeuronID
	rule       Rule
	epochError []float64
	parallel   parallel.Config
}

// Name returns the network's name.
func (n *Network) Name() string {
	return n.name
}

// Size returns the number of layers, input and output included.
func (n *Network) Size() int {
	return len(n.layers)
}

// Layer returns the i-th layer; 0 is the input layer.
func (n *Network) Layer(i int) (*Layer, error) {
	if i < 0 || i >= len(n.layers) {
		return nil, indexError("layer", i, len(n.layers))
	}
	return n.layers[i], nil
}

// Layers returns the layers in order.
func (n *Network) Layers() []*Layer {
	return slices.Clone(n.layers)
}

// InputLayer returns the first layer.
func (n *Network) InputLayer() *Layer {
	return n.layers[0]
}

// OutputLayer returns the last layer.
func (n *Network) OutputLayer() *Layer {
	return n.layers[len(n.layers)-1]
}

// Bias returns the bias neuron. Its value is always 1.
func (n *Network) Bias() *Neuron {
	return &n.a.neurons[n.bias]
}

// Neuron returns the neuron with the given ID.
func (n *Network) Neuron(id NeuronID) (*Neuron, error) {
	if id < 0 || int(id) >= len(n.a.neurons) {
		return nil, indexError("neuron", int(id), len(n.a.neurons))
	}
	return &n.a.neurons[id], nil
}

// Connection returns the connection with the given ID.
func (n *Network) Connection(id ConnectionID) (*Connection, error) {
	if id < 0 || int(id) >= len(n.a.conns) {
		return nil, indexError("connection", int(id), len(n.a.conns))
	}
	return &n.a.conns[id], nil
}

// NumNeurons returns the number of neurons, bias included.
func (n *Network) NumNeurons() int {
	return len(n.a.neurons)
}

// NumConnections returns the number of connections.
func (n *Network) NumConnections() int {
	return len(n.a.conns)
}

// Weights returns a snapshot of every connection weight, indexed by ConnectionID.
func (n *Network) Weights() []float64 {
	w := make([]float64, len(n.a.conns))
	for i := range n.a.conns {
		w[i] = n.a.conns[i].weight
	}
	return w
}

// Evaluate installs inputs on the input layer, evaluates every layer in
// order and returns the output layer's values.
//
// Given the same inputs and weights the result is bit-identical across calls.
func (n *Network) Evaluate(inputs []float64) ([]float64, error) {
	in := n.InputLayer()
	if len(inputs) != in.Len() {
		return nil, errors.Wrapf(ErrInvalidArgument, "got %d inputs, network has %d", len(inputs), in.Len())
	}

	in.set(inputs)
	for _, l := range n.layers[1:] {
		l.Evaluate()
	}

	return n.OutputLayer().Values(), nil
}

// SetRule sets the learning rule used by Train.
func (n *Network) SetRule(r Rule) {
	n.rule = r
}

// Rule returns the configured learning rule, or nil.
func (n *Network) Rule() Rule {
	return n.rule
}

// Train runs the learning rule over samples and records the per-epoch error.
//
// If the rule fails part way, weight updates already applied stay in place
// and the previous epoch error is kept.
func (n *Network) Train(samples []Sample) error {
	if n.rule == nil {
		return errors.Wrap(ErrInvalidConfiguration, "missing learning rule")
	}

	epochError, err := n.rule.Apply(n, samples)
	if err != nil {
		return errors.Wrap(err, "train")
	}

	n.epochError = epochError
	return nil
}

// EpochError returns a copy of the per-epoch error from the last
// successful Train, or an empty slice.
func (n *Network) EpochError() []float64 {
	if n.epochError == nil {
		return []float64{}
	}
	return slices.Clone(n.epochError)
}

func (n *Network) String() string {
	return n.name
}
