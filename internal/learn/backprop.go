package learn

import (
	"math"

	"github.com/pkg/errors"

	"github.com/born-ml/wann/internal/network"
)

// Backpropagation is plain per-instance gradient descent.
//
// For each sample it evaluates the network, then walks layers from output to
// first hidden. Each neuron gets a local error term
//
//	output: δ = (target - prediction) * f'(pre)
//	hidden: δ = Σ(δ_dst * w) * f'(pre)   over outgoing connections
//
// and its incoming weights are updated right away with w += lr * δ * input.
// Because updates are immediate, a hidden neuron's term is computed from the
// already updated weights of the layer above.
//
// Targets are one-hot over output neurons when the network has more than one
// output, and the raw class value otherwise.
type Backpropagation struct {
	cfg   Config
	terms []float64 // local error term by NeuronID, for the current sample
}

// NewBackpropagation creates a backpropagation rule. Zero Config fields take
// the package defaults.
func NewBackpropagation(cfg Config) *Backpropagation {
	return &Backpropagation{cfg: cfg.withDefaults()}
}

// Config returns the rule's configuration with defaults applied.
func (b *Backpropagation) Config() Config {
	return b.cfg
}

// Apply trains n over samples. It implements network.Rule.
func (b *Backpropagation) Apply(n *network.Network, samples []network.Sample) ([]float64, error) {
	return Run(n, samples, b.cfg, b)
}

// LearnInstance runs one forward and one backward pass over s.
func (b *Backpropagation) LearnInstance(n *network.Network, s network.Sample) ([]float64, error) {
	out := n.OutputLayer()
	target, err := Target(out.Len(), s.Class)
	if err != nil {
		return nil, err
	}

	distribution, err := n.Evaluate(s.Inputs)
	if err != nil {
		return nil, err
	}

	errs := make([]float64, len(distribution))
	for i := range distribution {
		errs[i] = target[i] - distribution[i]
	}

	// Every neuron is written before it is read, the reset only keeps
	// terms from leaking between samples.
	if len(b.terms) != n.NumNeurons() {
		b.terms = make([]float64, n.NumNeurons())
	} else {
		clear(b.terms)
	}

	pre := out.PreActivations()
	for i, id := range out.Neurons() {
		term := errs[i] * out.Activation().Derivative(pre[i])
		if err := b.update(n, id, term); err != nil {
			return nil, err
		}
	}

	for li := n.Size() - 2; li > 0; li-- {
		l, err := n.Layer(li)
		if err != nil {
			return nil, err
		}

		pre := l.PreActivations()
		for j, id := range l.Neurons() {
			sum, err := b.propagated(n, id)
			if err != nil {
				return nil, err
			}
			if err := b.update(n, id, sum*l.Activation().Derivative(pre[j])); err != nil {
				return nil, err
			}
		}
	}

	return errs, nil
}

// propagated sums δ_dst * w over the neuron's outgoing connections.
func (b *Backpropagation) propagated(n *network.Network, id network.NeuronID) (float64, error) {
	nr, err := n.Neuron(id)
	if err != nil {
		return 0, err
	}

	var sum float64
	for _, cid := range nr.Outgoing() {
		c, err := n.Connection(cid)
		if err != nil {
			return 0, err
		}
		sum += b.terms[c.Destination()] * c.Weight()
	}
	return sum, nil
}

// update stores the neuron's term and applies it to its incoming weights.
func (b *Backpropagation) update(n *network.Network, id network.NeuronID, term float64) error {
	b.terms[id] = term

	nr, err := n.Neuron(id)
	if err != nil {
		return err
	}
	for _, cid := range nr.Incoming() {
		c, err := n.Connection(cid)
		if err != nil {
			return err
		}
		c.UpdateWeight(b.cfg.LearningRate * term * c.Input())
	}
	return nil
}

// Target builds the training target for a network with size outputs.
//
// With one output the class value is the target. With more, class must be
// an integer index into the outputs and the target is one-hot.
func Target(size int, class float64) ([]float64, error) {
	if size < 1 {
		return nil, errors.Wrapf(network.ErrInvalidArgument, "output size %d", size)
	}
	if size == 1 {
		return []float64{class}, nil
	}

	if class != math.Trunc(class) {
		return nil, errors.Wrapf(network.ErrInvalidArgument, "class %g is not an index", class)
	}
	if class < 0 || class >= float64(size) {
		return nil, errors.Wrapf(network.ErrIndexOutOfRange, "class index %g (have %d outputs)", class, size)
	}

	target := make([]float64, size)
	target[int(class)] = 1
	return target, nil
}
