// Package learn trains networks with per-instance gradient descent.
//
// Run is the fixed training loop: for each epoch, every sample is passed in
// order to a Strategy, and the per-output errors of all samples are reduced
// to one epoch error by the configured error function. There is no
// shuffling and no early stopping.
//
// Backpropagation is the Strategy shipped with this package. It also
// implements network.Rule, so it can be installed on a network directly:
//
//	bp := learn.NewBackpropagation(learn.Config{Epochs: 500, LearningRate: 0.3})
//	net.SetRule(bp)
//	if err := net.Train(samples); err != nil {
//	    return err
//	}
//	fmt.Println(net.EpochError())
package learn

import (
	"log"

	"github.com/pkg/errors"

	"github.com/born-ml/wann/internal/function"
	"github.com/born-ml/wann/internal/network"
)

// Defaults applied to zero Config fields.
const (
	DefaultEpochs       = 10
	DefaultLearningRate = 0.3
)

// DefaultErrorFunction summarizes an epoch when Config.ErrorFunction is nil.
var DefaultErrorFunction = function.RMSE

// Config holds training hyperparameters.
type Config struct {
	Epochs        int            // Number of passes over the samples (default: 10)
	LearningRate  float64        // Step size (default: 0.3)
	ErrorFunction function.Error // Epoch error summary (default: RMSE)

	// Logger receives one line per epoch. Nil disables logging.
	Logger *log.Logger
}

func (c Config) withDefaults() Config {
	if c.Epochs == 0 {
		c.Epochs = DefaultEpochs
	}
	if c.LearningRate == 0 {
		c.LearningRate = DefaultLearningRate
	}
	if c.ErrorFunction == nil {
		c.ErrorFunction = DefaultErrorFunction
	}
	return c
}

func (c Config) validate() error {
	if c.Epochs < 0 {
		return errors.Wrapf(network.ErrInvalidArgument, "negative epoch count %d", c.Epochs)
	}
	if c.LearningRate < 0 {
		return errors.Wrapf(network.ErrInvalidArgument, "negative learning rate %g", c.LearningRate)
	}
	return nil
}

// Strategy updates a network from a single sample and returns the
// per-output error (target - prediction) observed before the update.
type Strategy interface {
	LearnInstance(n *network.Network, s network.Sample) ([]float64, error)
}

// Run trains n for cfg.Epochs epochs, visiting samples in order, and
// returns one error value per epoch.
//
// A failure part way through leaves the weight updates of earlier samples
// in place.
func Run(n *network.Network, samples []network.Sample, cfg Config, s Strategy) ([]float64, error) {
	if n == nil {
		return nil, errors.Wrap(network.ErrInvalidArgument, "nil network")
	}
	if s == nil {
		return nil, errors.Wrap(network.ErrInvalidArgument, "nil strategy")
	}
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	epochError := make([]float64, cfg.Epochs)
	errs := make([]float64, 0, len(samples)*n.OutputLayer().Len())

	for epoch := range epochError {
		errs = errs[:0]
		for i, sample := range samples {
			e, err := s.LearnInstance(n, sample)
			if err != nil {
				return nil, errors.Wrapf(err, "epoch %d, sample %d", epoch, i)
			}
			errs = append(errs, e...)
		}

		epochError[epoch] = cfg.ErrorFunction.Compute(errs)
		if cfg.Logger != nil {
			cfg.Logger.Printf("epoch %d/%d: %s=%.6f", epoch+1, cfg.Epochs, cfg.ErrorFunction.Name(), epochError[epoch])
		}
	}

	return epochError, nil
}
