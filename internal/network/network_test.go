package network

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/wann/internal/function"
	"github.com/born-ml/wann/internal/parallel"
)

func xorConfig(seed int64) Config {
	return Config{
		Name:   "xor",
		Inputs: []string{"x1", "x2"},
		Hidden: []LayerConfig{{Size: 2, Bias: true}},
		Output: LayerConfig{Size: 1, Bias: true},
		Seed:   seed,
	}
}

func TestNew_Topology(t *testing.T) {
	n, err := New(xorConfig(1))
	require.NoError(t, err)

	assert.Equal(t, "xor", n.Name())
	assert.Equal(t, 3, n.Size())
	assert.Equal(t, InputLayerName, n.InputLayer().Name())
	assert.Equal(t, "Hidden Layer 1", n.layers[1].Name())
	assert.Equal(t, OutputLayerName, n.OutputLayer().Name())

	// bias + 2 + 2 + 1
	assert.Equal(t, 6, n.NumNeurons())
	// hidden: 2 * (2 + bias), output: 2 + bias
	assert.Equal(t, 9, n.NumConnections())

	assert.Equal(t, function.Linear, n.InputLayer().Activation())
	assert.Nil(t, n.InputLayer().InputFunction())
	assert.Equal(t, function.Sigmoid, n.layers[1].Activation())
	assert.Equal(t, function.WeightedSum, n.layers[1].InputFunction())
	assert.Equal(t, function.Linear, n.OutputLayer().Activation())

	assert.Nil(t, n.InputLayer().Previous())
	assert.Same(t, n.InputLayer(), n.layers[1].Previous())
	assert.Same(t, n, n.OutputLayer().Network())

	out, err := n.OutputLayer().Neuron(0)
	require.NoError(t, err)
	assert.Equal(t, "Output 1", out.Name())

	h, err := n.layers[1].Neuron(1)
	require.NoError(t, err)
	assert.Equal(t, "Hidden 1.2", h.Name())
}

func TestNew_RandomWeightsInRange(t *testing.T) {
	n, err := New(Config{
		Inputs: []string{"a", "b", "c"},
		Hidden: []LayerConfig{{Size: 16, Bias: true}, {Size: 8}},
		Output: LayerConfig{Size: 4, Bias: true},
		Seed:   7,
	})
	require.NoError(t, err)

	for _, w := range n.Weights() {
		assert.GreaterOrEqual(t, w, -1.0)
		assert.Less(t, w, 1.0)
	}
}

func TestNew_SeedReproducible(t *testing.T) {
	a, err := New(xorConfig(99))
	require.NoError(t, err)
	b, err := New(xorConfig(99))
	require.NoError(t, err)
	c, err := New(xorConfig(100))
	require.NoError(t, err)

	assert.Equal(t, a.Weights(), b.Weights())
	assert.NotEqual(t, a.Weights(), c.Weights())

	// An injected source takes precedence over Seed.
	cfg := xorConfig(0)
	cfg.Rand = rand.New(rand.NewSource(99))
	d, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, a.Weights(), d.Weights())
}

func TestNew_ExplicitConnections(t *testing.T) {
	n, err := New(Config{
		Inputs: []string{"a", "b", "c"},
		Output: LayerConfig{
			Neurons: []NeuronConfig{
				{Name: "y", Connections: []ConnectionConfig{{From: 2, Weight: 0.25}, {From: 0, Weight: -0.5}}, BiasWeight: BiasWeight(0.75)},
				{Name: "z", Connections: []ConnectionConfig{{From: 1, Weight: 2}}},
			},
		},
	})
	require.NoError(t, err)

	y, err := n.OutputLayer().Neuron(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.25, -0.5, 0.75}, y.Weights())

	in := y.Incoming()
	require.Len(t, in, 3)
	first, err := n.Connection(in[0])
	require.NoError(t, err)
	src, err := n.InputLayer().Neuron(2)
	require.NoError(t, err)
	assert.Equal(t, src.ID(), first.Source())
	assert.Equal(t, y.ID(), first.Destination())

	last, err := n.Connection(in[2])
	require.NoError(t, err)
	assert.Equal(t, n.Bias().ID(), last.Source())
	assert.Equal(t, "Bias -> y: 0.75", last.String())

	z, err := n.OutputLayer().Neuron(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{2}, z.Weights())

	out, err := n.Evaluate([]float64{1, 3, 4})
	require.NoError(t, err)
	assert.InDelta(t, 0.25*4-0.5*1+0.75, out[0], 1e-12)
	assert.InDelta(t, 6.0, out[1], 1e-12)
}

func TestNew_OutgoingRegisteredOnce(t *testing.T) {
	n, err := New(xorConfig(3))
	require.NoError(t, err)

	seen := make(map[ConnectionID]int)
	for id := 0; id < n.NumNeurons(); id++ {
		nr, err := n.Neuron(NeuronID(id))
		require.NoError(t, err)
		for _, c := range nr.Outgoing() {
			seen[c]++
			conn, err := n.Connection(c)
			require.NoError(t, err)
			assert.Equal(t, nr.ID(), conn.Source())
		}
	}

	assert.Len(t, seen, n.NumConnections())
	for c, count := range seen {
		assert.Equal(t, 1, count, "connection %d", c)
	}

	// Bias feeds 2 hidden + 1 output neuron.
	assert.Len(t, n.Bias().Outgoing(), 3)
	assert.Empty(t, n.Bias().Incoming())
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"no inputs", Config{Output: LayerConfig{Size: 1}}, ErrInvalidConfiguration},
		{"no output", Config{Inputs: []string{"a"}}, ErrInvalidConfiguration},
		{"empty hidden", Config{Inputs: []string{"a"}, Hidden: []LayerConfig{{}}, Output: LayerConfig{Size: 1}}, ErrInvalidArgument},
		{"negative size", Config{Inputs: []string{"a"}, Output: LayerConfig{Size: -1}}, ErrInvalidArgument},
		{"duplicate input", Config{Inputs: []string{"a", "a"}, Output: LayerConfig{Size: 1}}, ErrInvalidArgument},
		{"empty input name", Config{Inputs: []string{""}, Output: LayerConfig{Size: 1}}, ErrInvalidArgument},
		{"size and names disagree", Config{Inputs: []string{"a"}, Output: LayerConfig{Size: 2, Names: []string{"y"}}}, ErrInvalidArgument},
		{"source out of range", Config{
			Inputs: []string{"a"},
			Output: LayerConfig{Neurons: []NeuronConfig{{Connections: []ConnectionConfig{{From: 1}}}}},
		}, ErrIndexOutOfRange},
		{"duplicate source", Config{
			Inputs: []string{"a"},
			Output: LayerConfig{Neurons: []NeuronConfig{{Connections: []ConnectionConfig{{From: 0}, {From: 0}}}}},
		}, ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := New(tt.cfg)
			assert.Nil(t, n)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLookupErrors(t *testing.T) {
	n, err := New(xorConfig(1))
	require.NoError(t, err)

	_, err = n.Layer(3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = n.Layer(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = n.OutputLayer().Neuron(1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = n.Neuron(NeuronID(n.NumNeurons()))
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = n.Connection(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	l, err := n.Layer(2)
	require.NoError(t, err)
	assert.Same(t, n.OutputLayer(), l)
}

func TestEvaluate_WrongInputCount(t *testing.T) {
	n, err := New(xorConfig(1))
	require.NoError(t, err)

	_, err = n.Evaluate([]float64{1})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestEvaluate_Deterministic(t *testing.T) {
	n, err := New(Config{
		Inputs: []string{"a", "b", "c"},
		Hidden: []LayerConfig{{Size: 5, Bias: true, Activation: function.Tanh}},
		Output: LayerConfig{Size: 3, Activation: function.Sigmoid},
		Seed:   11,
	})
	require.NoError(t, err)

	in := []float64{0.3, -1.2, 4}
	first, err := n.Evaluate(in)
	require.NoError(t, err)

	_, err = n.Evaluate([]float64{9, 9, 9})
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := n.Evaluate(in)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestEvaluate_ZeroWeights(t *testing.T) {
	zero := func(prev, size int) []NeuronConfig {
		ns := make([]NeuronConfig, size)
		for i := range ns {
			for j := 0; j < prev; j++ {
				ns[i].Connections = append(ns[i].Connections, ConnectionConfig{From: j, Weight: 0})
			}
		}
		return ns
	}

	n, err := New(Config{
		Inputs: []string{"a", "b"},
		Hidden: []LayerConfig{{Neurons: zero(2, 3)}},
		Output: LayerConfig{Neurons: zero(3, 2), Activation: function.Sigmoid},
	})
	require.NoError(t, err)

	for _, in := range [][]float64{{0, 0}, {1, -7}, {123, 0.5}} {
		out, err := n.Evaluate(in)
		require.NoError(t, err)
		assert.Equal(t, []float64{0.5, 0.5}, out)
		assert.Equal(t, []float64{0.5, 0.5, 0.5}, n.layers[1].Values())
		assert.Equal(t, []float64{0, 0, 0}, n.layers[1].PreActivations())
	}
}

func TestEvaluate_PreActivationsCached(t *testing.T) {
	n, err := New(Config{
		Inputs: []string{"x"},
		Output: LayerConfig{
			Neurons:    []NeuronConfig{{Connections: []ConnectionConfig{{From: 0, Weight: 2}}, BiasWeight: BiasWeight(-1)}},
			Activation: function.Sigmoid,
		},
	})
	require.NoError(t, err)

	out, err := n.Evaluate([]float64{1.5})
	require.NoError(t, err)

	pre := n.OutputLayer().PreActivations()
	assert.Equal(t, []float64{2.0}, pre)
	assert.InDelta(t, 1/(1+math.Exp(-2)), out[0], 1e-12)
	assert.Equal(t, []float64{1.5}, n.InputLayer().PreActivations())

	// Mutating the returned copy does not affect the layer.
	pre[0] = 100
	assert.Equal(t, []float64{2.0}, n.OutputLayer().PreActivations())
}

func TestEvaluate_ParallelMatchesSequential(t *testing.T) {
	cfg := Config{
		Inputs: []string{"a", "b", "c", "d"},
		Hidden: []LayerConfig{{Size: 64, Bias: true}, {Size: 32, Bias: true}},
		Output: LayerConfig{Size: 10},
		Seed:   5,
	}
	seq, err := New(cfg)
	require.NoError(t, err)

	cfg.Parallel = parallel.Config{Enabled: true, Workers: 4, MinNeurons: 4}
	par, err := New(cfg)
	require.NoError(t, err)

	in := []float64{0.1, 0.2, -0.3, 0.4}
	want, err := seq.Evaluate(in)
	require.NoError(t, err)
	got, err := par.Evaluate(in)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestBiasConstant(t *testing.T) {
	n, err := New(xorConfig(2))
	require.NoError(t, err)

	assert.Equal(t, 1.0, n.Bias().Value())
	assert.Equal(t, BiasNeuronName, n.Bias().Name())

	for _, in := range [][]float64{{0, 0}, {-5, 5}, {1, 1}} {
		_, err := n.Evaluate(in)
		require.NoError(t, err)
		assert.Equal(t, 1.0, n.Bias().Value())
	}
}

func TestDefensiveCopies(t *testing.T) {
	n, err := New(xorConfig(4))
	require.NoError(t, err)

	out, err := n.OutputLayer().Neuron(0)
	require.NoError(t, err)

	in := out.Incoming()
	in[0] = 1000
	assert.NotEqual(t, ConnectionID(1000), out.Incoming()[0])

	ids := n.OutputLayer().Neurons()
	ids[0] = 1000
	assert.NotEqual(t, NeuronID(1000), n.OutputLayer().Neurons()[0])

	layers := n.Layers()
	layers[0] = nil
	assert.NotNil(t, n.InputLayer())
}

func TestConnection_UpdateWeight(t *testing.T) {
	n, err := New(Config{
		Inputs: []string{"x"},
		Output: LayerConfig{Neurons: []NeuronConfig{{Connections: []ConnectionConfig{{From: 0, Weight: 0.5}}}}},
	})
	require.NoError(t, err)

	_, err = n.Evaluate([]float64{3})
	require.NoError(t, err)

	c, err := n.Connection(0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, c.Input())
	assert.Equal(t, 1.5, c.WeightedInput())

	c.UpdateWeight(0.25)
	c.UpdateWeight(-1)
	assert.Equal(t, -0.25, c.Weight())
}

// stepRule adds a fixed delta to every weight once per epoch.
type stepRule struct {
	epochs int
	fail   bool
}

func (r stepRule) Apply(n *Network, samples []Sample) ([]float64, error) {
	out := make([]float64, r.epochs)
	for e := range out {
		for i := 0; i < n.NumConnections(); i++ {
			c, err := n.Connection(ConnectionID(i))
			if err != nil {
				return nil, err
			}
			c.UpdateWeight(0.1)
		}
		out[e] = float64(len(samples))
	}
	if r.fail {
		return nil, errors.New("boom")
	}
	return out, nil
}

func TestTrain(t *testing.T) {
	n, err := New(xorConfig(8))
	require.NoError(t, err)

	assert.Empty(t, n.EpochError())
	assert.ErrorIs(t, n.Train(nil), ErrInvalidConfiguration)

	before := n.Weights()
	n.SetRule(stepRule{epochs: 3})
	require.NoError(t, n.Train([]Sample{{}, {}}))

	assert.Equal(t, []float64{2, 2, 2}, n.EpochError())
	after := n.Weights()
	for i := range before {
		assert.InDelta(t, before[i]+0.3, after[i], 1e-12)
	}

	// A failing rule keeps its weight updates and the previous epoch error.
	n.SetRule(stepRule{epochs: 1, fail: true})
	require.Error(t, n.Train(nil))
	assert.Equal(t, []float64{2, 2, 2}, n.EpochError())
	assert.InDelta(t, before[0]+0.4, n.Weights()[0], 1e-12)
}

func TestTopologyImmutable(t *testing.T) {
	n, err := New(xorConfig(6))
	require.NoError(t, err)
	n.SetRule(stepRule{epochs: 2})

	type edge struct{ src, dst NeuronID }
	snapshot := func() ([]int, []edge) {
		var sizes []int
		for _, l := range n.Layers() {
			sizes = append(sizes, l.Len())
		}
		edges := make([]edge, n.NumConnections())
		for i := range edges {
			c, err := n.Connection(ConnectionID(i))
			require.NoError(t, err)
			edges[i] = edge{c.Source(), c.Destination()}
		}
		return sizes, edges
	}

	sizes, edges := snapshot()
	for i := 0; i < 3; i++ {
		_, err := n.Evaluate([]float64{1, 0})
		require.NoError(t, err)
		require.NoError(t, n.Train([]Sample{{Inputs: []float64{0, 1}, Class: 1}}))
	}
	gotSizes, gotEdges := snapshot()

	assert.Equal(t, sizes, gotSizes)
	assert.Equal(t, edges, gotEdges)
	assert.Equal(t, 3, n.Size())
}
