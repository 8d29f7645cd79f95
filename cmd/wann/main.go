// Package main provides the wann CLI.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/born-ml/wann/internal/function"
	"github.com/born-ml/wann/internal/learn"
	"github.com/born-ml/wann/internal/network"
	"github.com/born-ml/wann/internal/parallel"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("wann %s\n", version)
	case "xor":
		if err := runXOR(os.Args[2:]); err != nil {
			log.Fatalf("xor: %v", err)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("wann - feed-forward networks trained by backpropagation")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  xor        Train a network on XOR and print its predictions")
}

var xorSamples = []network.Sample{
	{Inputs: []float64{0, 0}, Class: 0},
	{Inputs: []float64{0, 1}, Class: 1},
	{Inputs: []float64{1, 0}, Class: 1},
	{Inputs: []float64{1, 1}, Class: 0},
}

func runXOR(args []string) error {
	fs := flag.NewFlagSet("xor", flag.ContinueOnError)
	epochs := fs.Int("epochs", 2000, "Number of training epochs")
	lr := fs.Float64("lr", 0.3, "Learning rate")
	hidden := fs.Int("hidden", 2, "Hidden layer size")
	activation := fs.String("activation", "sigmoid", "Hidden layer activation")
	errorFn := fs.String("error", "rmse", "Epoch error function")
	seed := fs.Int64("seed", 1, "Random seed for initial weights")
	par := fs.Bool("parallel", false, "Evaluate neurons of a layer in parallel")
	verbose := fs.Bool("v", false, "Log every epoch")
	if err := fs.Parse(args); err != nil {
		return err
	}

	act, err := function.ActivationByName(*activation)
	if err != nil {
		return err
	}
	ef, err := function.ErrorByName(*errorFn)
	if err != nil {
		return err
	}

	cfg := learn.Config{Epochs: *epochs, LearningRate: *lr, ErrorFunction: ef}
	if *verbose {
		cfg.Logger = log.New(os.Stderr, "", log.LstdFlags)
	}

	netCfg := network.Config{
		Name:   "xor",
		Inputs: []string{"x1", "x2"},
		Hidden: []network.LayerConfig{{Size: *hidden, Bias: true, Activation: act}},
		Output: network.LayerConfig{Names: []string{"xor"}, Bias: true},
		Seed:   *seed,
		Rule:   learn.NewBackpropagation(cfg),
	}
	if *par {
		netCfg.Parallel = parallel.DefaultConfig()
	}

	net, err := network.New(netCfg)
	if err != nil {
		return err
	}

	log.Printf("training %s: %d layers, %d connections, %d epochs", net.Name(), net.Size(), net.NumConnections(), *epochs)
	if err := net.Train(xorSamples); err != nil {
		return err
	}

	epochError := net.EpochError()
	if len(epochError) > 0 {
		log.Printf("final %s: %.6f", ef.Name(), epochError[len(epochError)-1])
	}

	for _, s := range xorSamples {
		out, err := net.Evaluate(s.Inputs)
		if err != nil {
			return err
		}
		fmt.Printf("%v -> %.4f (want %v)\n", s.Inputs, out[0], s.Class)
	}
	return nil
}
