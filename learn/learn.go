// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package learn provides training rules for nn networks.
//
// Example usage:
//
//	bp := learn.NewBackpropagation(learn.Config{
//	    Epochs:       500,
//	    LearningRate: 0.3,
//	})
//	net.SetRule(bp)
//	if err := net.Train(samples); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(net.EpochError())
package learn

import (
	"github.com/born-ml/wann/internal/learn"
	"github.com/born-ml/wann/internal/network"
)

// Config holds training hyperparameters.
type Config = learn.Config

// Strategy updates a network from a single sample.
type Strategy = learn.Strategy

// Backpropagation is per-instance gradient descent.
type Backpropagation = learn.Backpropagation

// Defaults applied to zero Config fields.
const (
	DefaultEpochs       = learn.DefaultEpochs
	DefaultLearningRate = learn.DefaultLearningRate
)

// NewBackpropagation creates a backpropagation rule.
func NewBackpropagation(cfg Config) *Backpropagation {
	return learn.NewBackpropagation(cfg)
}

// Run trains n with a custom strategy and returns the per-epoch error.
func Run(n *network.Network, samples []network.Sample, cfg Config, s Strategy) ([]float64, error) {
	return learn.Run(n, samples, cfg, s)
}

// Target builds the one-hot (or scalar) training target for a class value.
func Target(size int, class float64) ([]float64, error) {
	return learn.Target(size, class)
}
