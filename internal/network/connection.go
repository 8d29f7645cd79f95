package network

import "fmt"

// ConnectionID addresses a connection inside its network's arena.
type ConnectionID int

// Connection is a directed weighted edge between two neurons.
//
// Endpoints are fixed at construction; only the weight changes, and only
// through UpdateWeight.
type Connection struct {
	id          ConnectionID
	source      NeuronID
	destination NeuronID
	weight      float64
	a           *arena
}

// ID returns the connection's arena index.
func (c *Connection) ID() ConnectionID {
	return c.id
}

// Source returns the neuron the connection reads from.
func (c *Connection) Source() NeuronID {
	return c.source
}

// Destination returns the neuron that owns the connection.
func (c *Connection) Destination() NeuronID {
	return c.destination
}

// Weight returns the current weight.
func (c *Connection) Weight() float64 {
	return c.weight
}

// Input returns the source neuron's current value.
func (c *Connection) Input() float64 {
	return c.a.neurons[c.source].value
}

// WeightedInput returns Input() * Weight().
func (c *Connection) WeightedInput() float64 {
	return c.Input() * c.weight
}

// UpdateWeight adds delta to the weight.
//
// The delta is applied as is: any learning rate scaling is the caller's.
func (c *Connection) UpdateWeight(delta float64) {
	c.weight += delta
}

func (c *Connection) String() string {
	return fmt.Sprintf("%s -> %s: %g", c.a.neurons[c.source].name, c.a.neurons[c.destination].name, c.weight)
}
