package function

import (
	"math"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Error reduces a vector of per-output errors (target - prediction) to a
// single scalar. It is not differentiated by the learning rule; it only
// summarizes an epoch.
//
// Compute of an empty vector is 0.
type Error interface {
	Name() string
	Compute(errs []float64) float64
}

// Error variants.
var (
	RMSE Error = rmse{} // root-mean-square error
	MSE  Error = mse{}  // mean squared error
	MAE  Error = mae{}  // mean absolute error
	SSE  Error = sse{}  // sum of squared errors
)

var errorFunctions = []Error{RMSE, MSE, MAE, SSE}

// ErrorByName looks up an error function by its name (case-insensitive).
func ErrorByName(name string) (Error, error) {
	for _, e := range errorFunctions {
		if strings.EqualFold(e.Name(), name) {
			return e, nil
		}
	}
	return nil, errors.Wrapf(ErrUnknown, "error function %q", name)
}

type sse struct{}

func (sse) Name() string { return "sse" }

func (sse) Compute(errs []float64) float64 {
	return floats.Dot(errs, errs)
}

type mse struct{}

func (mse) Name() string { return "mse" }

func (mse) Compute(errs []float64) float64 {
	if len(errs) == 0 {
		return 0
	}
	return floats.Dot(errs, errs) / float64(len(errs))
}

type rmse struct{}

func (rmse) Name() string { return "rmse" }

func (rmse) Compute(errs []float64) float64 {
	return math.Sqrt(mse{}.Compute(errs))
}

type mae struct{}

func (mae) Name() string { return "mae" }

func (mae) Compute(errs []float64) float64 {
	if len(errs) == 0 {
		return 0
	}
	return floats.Norm(errs, 1) / float64(len(errs))
}
