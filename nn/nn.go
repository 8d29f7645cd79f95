// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/wann/internal/function"
	"github.com/born-ml/wann/internal/network"
	"github.com/born-ml/wann/internal/parallel"
)

// Graph

// Network is a layered feed-forward network.
type Network = network.Network

// Layer is an ordered group of neurons.
type Layer = network.Layer

// Neuron is a named computation node.
type Neuron = network.Neuron

// NeuronID addresses a neuron within its network.
type NeuronID = network.NeuronID

// Connection is a directed weighted edge between two neurons.
type Connection = network.Connection

// ConnectionID addresses a connection within its network.
type ConnectionID = network.ConnectionID

// Sample is one training instance: input values and a class value.
type Sample = network.Sample

// Rule trains a network; see package learn.
type Rule = network.Rule

// Configuration

// Config describes a network's topology.
type Config = network.Config

// LayerConfig describes one non-input layer.
type LayerConfig = network.LayerConfig

// NeuronConfig describes one neuron with explicit connections.
type NeuronConfig = network.NeuronConfig

// ConnectionConfig is one explicit incoming connection.
type ConnectionConfig = network.ConnectionConfig

// New validates cfg and builds a network.
//
// Example:
//
//	net, err := nn.New(nn.Config{
//	    Inputs: []string{"a", "b"},
//	    Output: nn.LayerConfig{Size: 1, Bias: true},
//	    Seed:   1,
//	})
func New(cfg Config) (*Network, error) {
	return network.New(cfg)
}

// BiasWeight returns a pointer to w, for NeuronConfig.BiasWeight.
func BiasWeight(w float64) *float64 {
	return network.BiasWeight(w)
}

// ParallelConfig controls within-layer evaluation, for Config.Parallel.
type ParallelConfig = parallel.Config

// DefaultParallelConfig enables parallelism on multi-core machines.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// SequentialParallelConfig never spawns goroutines.
func SequentialParallelConfig() ParallelConfig {
	return parallel.Sequential()
}

// Errors
var (
	ErrInvalidArgument      = network.ErrInvalidArgument
	ErrInvalidConfiguration = network.ErrInvalidConfiguration
	ErrIndexOutOfRange      = network.ErrIndexOutOfRange
)

// Functions

// Activation is a differentiable activation function.
type Activation = function.Activation

// Input aggregates weighted inputs into a pre-activation value.
type Input = function.Input

// Error summarizes a vector of errors.
type Error = function.Error

// Activation functions.
var (
	Linear   = function.Linear
	Sigmoid  = function.Sigmoid
	Tanh     = function.Tanh
	ReLU     = function.ReLU
	Softplus = function.Softplus
)

// WeightedSum sums weighted inputs.
var WeightedSum = function.WeightedSum

// Error functions.
var (
	RMSE = function.RMSE
	MSE  = function.MSE
	MAE  = function.MAE
	SSE  = function.SSE
)

// ActivationByName looks up an activation function by name.
func ActivationByName(name string) (Activation, error) {
	return function.ActivationByName(name)
}

// ErrorByName looks up an error function by name.
func ErrorByName(name string) (Error, error) {
	return function.ErrorByName(name)
}
