package network

import (
	"fmt"
	"math/rand"

	"github.com/pkg/errors"

	"github.com/born-ml/wann/internal/function"
)

// Layer names given to layers built without one.
const (
	InputLayerName  = "Input Layer"
	OutputLayerName = "Output Layer"
	BiasNeuronName  = "Bias"
)

// New validates cfg and builds a network.
//
// All validation happens before any neuron is created, so an error never
// leaves a partial network behind. The returned network's topology is fixed;
// only weights change afterwards.
func New(cfg Config) (*Network, error) {
	plan, err := planLayers(cfg)
	if err != nil {
		return nil, err
	}

	rng := cfg.Rand
	if rng == nil {
		//nolint:gosec // Weight initialization is not security-critical.
		rng = rand.New(rand.NewSource(cfg.Seed))
	}

	n := &Network{
		name:     cfg.Name,
		a:        &arena{},
		rule:     cfg.Rule,
		parallel: cfg.Parallel,
	}
	n.bias = n.a.addNeuron(BiasNeuronName)
	n.a.neurons[n.bias].value = 1

	input := n.addLayer(InputLayerName, function.Linear, nil)
	for _, name := range cfg.Inputs {
		input.neurons = append(input.neurons, n.a.addNeuron(name))
	}
	input.pre = make([]float64, len(input.neurons))

	for _, p := range plan {
		n.buildLayer(p, rng)
	}

	return n, nil
}

// layerPlan is a validated LayerConfig with defaults applied.
type layerPlan struct {
	name       string
	activation function.Activation
	input      function.Input
	neurons    []NeuronConfig
}

func planLayers(cfg Config) ([]layerPlan, error) {
	if len(cfg.Inputs) == 0 {
		return nil, errors.Wrap(ErrInvalidConfiguration, "network has no inputs")
	}
	if err := checkNames(InputLayerName, cfg.Inputs); err != nil {
		return nil, err
	}

	plan := make([]layerPlan, 0, len(cfg.Hidden)+1)
	prev := len(cfg.Inputs)

	for i, lc := range cfg.Hidden {
		name := lc.Name
		if name == "" {
			name = fmt.Sprintf("Hidden Layer %d", i+1)
		}
		p, err := planLayer(lc, name, function.Sigmoid, prev, func(j int) string {
			return fmt.Sprintf("Hidden %d.%d", i+1, j+1)
		})
		if err != nil {
			return nil, err
		}
		if len(p.neurons) == 0 {
			return nil, errors.Wrapf(ErrInvalidArgument, "%s: layer has no neurons", name)
		}
		plan = append(plan, p)
		prev = len(p.neurons)
	}

	name := cfg.Output.Name
	if name == "" {
		name = OutputLayerName
	}
	p, err := planLayer(cfg.Output, name, function.Linear, prev, func(j int) string {
		return fmt.Sprintf("Output %d", j+1)
	})
	if err != nil {
		return nil, err
	}
	if len(p.neurons) == 0 {
		return nil, errors.Wrap(ErrInvalidConfiguration, "empty network: output layer has no neurons")
	}

	return append(plan, p), nil
}

func planLayer(lc LayerConfig, name string, act function.Activation, prev int, defaultName func(int) string) (layerPlan, error) {
	p := layerPlan{name: name, activation: lc.Activation, input: lc.Input}
	if p.activation == nil {
		p.activation = act
	}
	if p.input == nil {
		p.input = function.WeightedSum
	}

	if lc.Size < 0 {
		return p, errors.Wrapf(ErrInvalidArgument, "%s: negative size %d", name, lc.Size)
	}

	switch {
	case len(lc.Neurons) > 0:
		if lc.Size != 0 && lc.Size != len(lc.Neurons) {
			return p, errors.Wrapf(ErrInvalidArgument, "%s: size %d does not match %d neurons", name, lc.Size, len(lc.Neurons))
		}
		if len(lc.Names) != 0 && len(lc.Names) != len(lc.Neurons) {
			return p, errors.Wrapf(ErrInvalidArgument, "%s: %d names for %d neurons", name, len(lc.Names), len(lc.Neurons))
		}
		p.neurons = make([]NeuronConfig, len(lc.Neurons))
		copy(p.neurons, lc.Neurons)
		for j := range p.neurons {
			if p.neurons[j].Name == "" && len(lc.Names) > 0 {
				p.neurons[j].Name = lc.Names[j]
			}
		}
	case len(lc.Names) > 0:
		if lc.Size != 0 && lc.Size != len(lc.Names) {
			return p, errors.Wrapf(ErrInvalidArgument, "%s: size %d does not match %d names", name, lc.Size, len(lc.Names))
		}
		p.neurons = make([]NeuronConfig, len(lc.Names))
		for j := range p.neurons {
			p.neurons[j] = NeuronConfig{Name: lc.Names[j], Bias: lc.Bias}
		}
	default:
		p.neurons = make([]NeuronConfig, lc.Size)
		for j := range p.neurons {
			p.neurons[j] = NeuronConfig{Bias: lc.Bias}
		}
	}

	names := make([]string, len(p.neurons))
	for j := range p.neurons {
		if p.neurons[j].Name == "" {
			p.neurons[j].Name = defaultName(j)
		}
		names[j] = p.neurons[j].Name

		if err := checkConnections(name, p.neurons[j], prev); err != nil {
			return p, err
		}
	}

	return p, checkNames(name, names)
}

func checkNames(layer string, names []string) error {
	seen := make(map[string]struct{}, len(names))
	for _, s := range names {
		if s == "" {
			return errors.Wrapf(ErrInvalidArgument, "%s: empty neuron name", layer)
		}
		if _, ok := seen[s]; ok {
			return errors.Wrapf(ErrInvalidArgument, "%s: duplicate neuron name %q", layer, s)
		}
		seen[s] = struct{}{}
	}
	return nil
}

func checkConnections(layer string, nc NeuronConfig, prev int) error {
	seen := make(map[int]struct{}, len(nc.Connections))
	for _, c := range nc.Connections {
		if c.From < 0 || c.From >= prev {
			return errors.Wrapf(indexError("source neuron", c.From, prev), "%s: neuron %q", layer, nc.Name)
		}
		if _, ok := seen[c.From]; ok {
			return errors.Wrapf(ErrInvalidArgument, "%s: neuron %q connects twice from %d", layer, nc.Name, c.From)
		}
		seen[c.From] = struct{}{}
	}
	return nil
}

func (n *Network) addLayer(name string, act function.Activation, in function.Input) *Layer {
	l := &Layer{
		name:       name,
		index:      len(n.layers),
		net:        n,
		activation: act,
		input:      in,
	}
	n.layers = append(n.layers, l)
	return l
}

// buildLayer creates the neurons of p and their incoming connections.
// Weights are drawn from rng in neuron order, then connection order.
func (n *Network) buildLayer(p layerPlan, rng *rand.Rand) {
	prev := n.layers[len(n.layers)-1]
	l := n.addLayer(p.name, p.activation, p.input)

	for _, nc := range p.neurons {
		id := n.a.addNeuron(nc.Name)

		if len(nc.Connections) > 0 {
			for _, c := range nc.Connections {
				n.a.connect(prev.neurons[c.From], id, c.Weight)
			}
		} else {
			for _, src := range prev.neurons {
				n.a.connect(src, id, uniform(rng))
			}
		}

		switch {
		case nc.BiasWeight != nil:
			n.a.connect(n.bias, id, *nc.BiasWeight)
		case nc.Bias:
			n.a.connect(n.bias, id, uniform(rng))
		}

		n.a.link(id)
		l.neurons = append(l.neurons, id)
		l.scratch = append(l.scratch, make([]float64, len(n.a.neurons[id].incoming)))
	}
	l.pre = make([]float64, len(l.neurons))
}

// uniform draws a weight in [-1, 1).
func uniform(rng *rand.Rand) float64 {
	return 2*rng.Float64() - 1
}
