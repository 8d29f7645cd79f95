package network

import (
	"slices"

	"github.com/born-ml/wann/internal/function"
	"github.com/born-ml/wann/internal/parallel"
)

// Layer is an ordered group of neurons sharing an input function and an
// activation function.
//
// Neuron order fixes output vector positions. The input layer has no input
// function; its values are installed by Network.Evaluate.
type Layer struct {
	name       string
	index      int
	net        *Network
	neurons    []NeuronID
	activation function.Activation
	input      function.Input

	pre     []float64   // pre-activations from the last Evaluate
	scratch [][]float64 // per-neuron weighted inputs, reused across calls
}

// Name returns the layer's name.
func (l *Layer) Name() string {
	return l.name
}

// Index returns the layer's position in the network.
func (l *Layer) Index() int {
	return l.index
}

// Len returns the number of neurons.
func (l *Layer) Len() int {
	return len(l.neurons)
}

// Neurons returns a copy of the layer's neuron IDs, in order.
func (l *Layer) Neurons() []NeuronID {
	return slices.Clone(l.neurons)
}

// Neuron returns the i-th neuron of the layer.
func (l *Layer) Neuron(i int) (*Neuron, error) {
	if i < 0 || i >= len(l.neurons) {
		return nil, indexError("neuron", i, len(l.neurons))
	}
	return &l.net.a.neurons[l.neurons[i]], nil
}

// Activation returns the layer's activation function.
func (l *Layer) Activation() function.Activation {
	return l.activation
}

// InputFunction returns the layer's input function, nil for the input layer.
func (l *Layer) InputFunction() function.Input {
	return l.input
}

// Previous returns the preceding layer, nil for the input layer.
func (l *Layer) Previous() *Layer {
	if l.index == 0 {
		return nil
	}
	return l.net.layers[l.index-1]
}

// Network returns the owning network.
func (l *Layer) Network() *Network {
	return l.net
}

// Values returns the neurons' current outputs, in order.
func (l *Layer) Values() []float64 {
	v := make([]float64, len(l.neurons))
	for i, id := range l.neurons {
		v[i] = l.net.a.neurons[id].value
	}
	return v
}

// PreActivations returns a copy of the pre-activation values computed by
// the most recent Evaluate. For the input layer these are the installed
// input values.
func (l *Layer) PreActivations() []float64 {
	return slices.Clone(l.pre)
}

// Evaluate computes every neuron's value from the previous layer's current
// outputs: value = activation(input(weighted inputs)).
//
// The input layer is left as is.
func (l *Layer) Evaluate() {
	if l.index == 0 {
		return
	}

	a := l.net.a
	parallel.For(len(l.neurons), func(i int) {
		n := &a.neurons[l.neurons[i]]
		buf := l.scratch[i]
		for j, c := range n.incoming {
			buf[j] = a.conns[c].WeightedInput()
		}
		x := l.input.Aggregate(buf)
		l.pre[i] = x
		n.value = l.activation.Apply(x)
	}, l.net.parallel)
}

// set installs values on an input layer.
func (l *Layer) set(values []float64) {
	for i, id := range l.neurons {
		l.net.a.neurons[id].value = values[i]
	}
	copy(l.pre, values)
}

func (l *Layer) String() string {
	return l.name
}
