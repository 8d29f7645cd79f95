package data

import (
	"slices"

	"github.com/pkg/errors"

	"github.com/born-ml/wann/internal/network"
)

// Schema describes a data set's input attributes and output attribute.
type Schema struct {
	name   string
	inputs []Attribute
	output Attribute
	names  []string // input neuron names
}

// NewSchema validates the attributes and returns a schema.
//
// Attribute names must be unique and the expanded input neuron names must
// not collide.
func NewSchema(name string, inputs []Attribute, output Attribute) (*Schema, error) {
	if len(inputs) == 0 {
		return nil, errors.Wrap(network.ErrInvalidArgument, "schema has no input attributes")
	}
	if err := output.validate(); err != nil {
		return nil, errors.Wrap(err, "output")
	}

	s := &Schema{
		name:   name,
		inputs: slices.Clone(inputs),
		output: output,
	}

	seen := map[string]struct{}{output.Name: {}}
	for _, a := range inputs {
		if err := a.validate(); err != nil {
			return nil, err
		}
		if _, ok := seen[a.Name]; ok {
			return nil, errors.Wrapf(network.ErrInvalidArgument, "duplicate attribute %q", a.Name)
		}
		seen[a.Name] = struct{}{}
		s.names = append(s.names, a.InputNames()...)
	}

	unique := make(map[string]struct{}, len(s.names))
	for _, n := range s.names {
		if _, ok := unique[n]; ok {
			return nil, errors.Wrapf(network.ErrInvalidArgument, "input name %q produced twice", n)
		}
		unique[n] = struct{}{}
	}

	return s, nil
}

// Name returns the schema's name.
func (s *Schema) Name() string {
	return s.name
}

// Inputs returns the input attributes.
func (s *Schema) Inputs() []Attribute {
	return slices.Clone(s.inputs)
}

// Output returns the output attribute.
func (s *Schema) Output() Attribute {
	return s.output
}

// InputNames returns the input neuron names, in order.
func (s *Schema) InputNames() []string {
	return slices.Clone(s.names)
}

// OutputNames returns the output neuron names: the attribute name for a
// numeric output, the values for a categorical one.
func (s *Schema) OutputNames() []string {
	if s.output.Kind == Numeric {
		return []string{s.output.Name}
	}
	return slices.Clone(s.output.Values)
}

// Config returns a network configuration with the schema's inputs and
// outputs and the given hidden layers. Other fields are left zero for the
// caller to fill.
func (s *Schema) Config(hidden ...network.LayerConfig) network.Config {
	return network.Config{
		Name:   s.name,
		Inputs: s.InputNames(),
		Hidden: hidden,
		Output: network.LayerConfig{Names: s.OutputNames()},
	}
}

// Check verifies that n's input and output neurons are named as the schema
// expects.
func (s *Schema) Check(n *network.Network) error {
	if err := checkLayer(n, n.InputLayer(), s.names); err != nil {
		return err
	}
	return checkLayer(n, n.OutputLayer(), s.OutputNames())
}

func checkLayer(n *network.Network, l *network.Layer, want []string) error {
	if l.Len() != len(want) {
		return errors.Wrapf(network.ErrInvalidArgument, "%s: %d neurons, schema has %d", l.Name(), l.Len(), len(want))
	}
	for i, id := range l.Neurons() {
		nr, err := n.Neuron(id)
		if err != nil {
			return err
		}
		if nr.Name() != want[i] {
			return errors.Wrapf(network.ErrInvalidArgument, "%s: neuron %d is %q, schema expects %q", l.Name(), i, nr.Name(), want[i])
		}
	}
	return nil
}

// Encode converts an instance's attribute values to input neuron values.
//
// Numeric values are passed through. A binary attribute feeds its value
// index to a single neuron. A one-hot attribute sets 1 on the neuron of its
// value and 0 on the others. Categorical values must be valid indices.
func (s *Schema) Encode(inst Instance) ([]float64, error) {
	if len(inst.Values) != len(s.inputs) {
		return nil, errors.Wrapf(network.ErrInvalidArgument, "instance has %d values, schema has %d attributes", len(inst.Values), len(s.inputs))
	}

	out := make([]float64, 0, len(s.names))
	for i, a := range s.inputs {
		v := inst.Values[i]
		if a.Kind != Categorical {
			out = append(out, v)
			continue
		}

		idx, err := a.index(v)
		if err != nil {
			return nil, err
		}
		if !a.OneHot() {
			out = append(out, float64(idx))
			continue
		}
		for j := range a.Values {
			if j == idx {
				out = append(out, 1)
			} else {
				out = append(out, 0)
			}
		}
	}
	return out, nil
}

// Sample encodes an instance for training.
func (s *Schema) Sample(inst Instance) (network.Sample, error) {
	in, err := s.Encode(inst)
	if err != nil {
		return network.Sample{}, err
	}

	if s.output.Kind == Categorical {
		if _, err := s.output.index(inst.Class); err != nil {
			return network.Sample{}, errors.Wrap(err, "class")
		}
	}

	return network.Sample{Inputs: in, Class: inst.Class}, nil
}

// Samples encodes every instance. It stops at the first malformed one.
func (s *Schema) Samples(insts []Instance) ([]network.Sample, error) {
	out := make([]network.Sample, len(insts))
	for i, inst := range insts {
		sample, err := s.Sample(inst)
		if err != nil {
			return nil, errors.Wrapf(err, "instance %d", i)
		}
		out[i] = sample
	}
	return out, nil
}

// Predict evaluates n on inst and returns the output values.
func (s *Schema) Predict(n *network.Network, inst Instance) ([]float64, error) {
	in, err := s.Encode(inst)
	if err != nil {
		return nil, err
	}
	return n.Evaluate(in)
}
