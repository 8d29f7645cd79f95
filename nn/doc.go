// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides a small layered feed-forward neural network.
//
// # Overview
//
// This package contains:
//   - Network, Layer, Neuron, Connection: the computation graph
//   - Config, LayerConfig, NeuronConfig: explicit topology description
//   - Activations: Linear, Sigmoid, Tanh, ReLU, Softplus
//   - Input functions: WeightedSum
//   - Error functions: RMSE, MSE, MAE, SSE
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/wann/learn"
//	    "github.com/born-ml/wann/nn"
//	)
//
//	func main() {
//	    net, err := nn.New(nn.Config{
//	        Inputs: []string{"x1", "x2"},
//	        Hidden: []nn.LayerConfig{{Size: 2, Bias: true, Activation: nn.Sigmoid}},
//	        Output: nn.LayerConfig{Size: 1, Bias: true, Activation: nn.Linear},
//	        Seed:   42,
//	        Rule:   learn.NewBackpropagation(learn.Config{Epochs: 2000, LearningRate: 0.3}),
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // Train, then evaluate
//	    if err := net.Train(samples); err != nil {
//	        log.Fatal(err)
//	    }
//	    out, err := net.Evaluate([]float64{1, 0})
//	}
//
// # Topology
//
// Every non-input neuron is either fully connected to the previous layer with
// random weights in [-1, 1), or connected to an explicit list of previous
// neurons with fixed weights. A neuron may add a connection from the
// network's bias neuron, whose value is always 1.
//
// Weights are drawn from Config.Rand, or from a source seeded with
// Config.Seed, so the same Config always builds the same network.
//
// # Errors
//
// Errors wrap ErrInvalidArgument, ErrInvalidConfiguration or
// ErrIndexOutOfRange; test them with errors.Is.
package nn
