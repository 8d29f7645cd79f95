package network

import "slices"

// NeuronID addresses a neuron inside its network's arena.
type NeuronID int

// Neuron is a named computation node.
//
// Incoming connections are owned by the neuron. The outgoing list holds the
// IDs of connections owned by downstream neurons and is only used for
// reverse traversal.
type Neuron struct {
	id       NeuronID
	name     string
	value    float64
	incoming []ConnectionID
	outgoing []ConnectionID
	a        *arena
}

// ID returns the neuron's arena index.
func (n *Neuron) ID() NeuronID {
	return n.id
}

// Name returns the neuron's name, unique within its layer.
func (n *Neuron) Name() string {
	return n.name
}

// Value returns the neuron's current output.
func (n *Neuron) Value() float64 {
	return n.value
}

// Incoming returns a copy of the incoming connection IDs, in order.
// A bias connection, if any, is last.
func (n *Neuron) Incoming() []ConnectionID {
	return slices.Clone(n.incoming)
}

// Outgoing returns a copy of the outgoing connection IDs.
func (n *Neuron) Outgoing() []ConnectionID {
	return slices.Clone(n.outgoing)
}

// Weights returns the incoming connection weights, in incoming order.
func (n *Neuron) Weights() []float64 {
	w := make([]float64, len(n.incoming))
	for i, c := range n.incoming {
		w[i] = n.a.conns[c].weight
	}
	return w
}

func (n *Neuron) String() string {
	return n.name
}

// arena holds every neuron and connection of one network. Both slices are
// filled once by New and never resized afterwards, so IDs are stable.
type arena struct {
	neurons []Neuron
	conns   []Connection
}

func (a *arena) addNeuron(name string) NeuronID {
	id := NeuronID(len(a.neurons))
	a.neurons = append(a.neurons, Neuron{id: id, name: name, a: a})
	return id
}

// connect appends a connection to dst's incoming list. The source's
// outgoing list is left untouched; see link.
func (a *arena) connect(src, dst NeuronID, weight float64) {
	id := ConnectionID(len(a.conns))
	a.conns = append(a.conns, Connection{id: id, source: src, destination: dst, weight: weight, a: a})
	a.neurons[dst].incoming = append(a.neurons[dst].incoming, id)
}

// link registers every incoming connection of dst with its source neuron.
// It must run exactly once per neuron, after all its connections exist.
func (a *arena) link(dst NeuronID) {
	for _, c := range a.neurons[dst].incoming {
		src := a.conns[c].source
		a.neurons[src].outgoing = append(a.neurons[src].outgoing, c)
	}
}
