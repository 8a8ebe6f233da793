package regression

import (
	"fmt"

	"github.com/san-kum/incline/internal/incline"
	"gonum.org/v1/gonum/stat"
)

type LinearFit struct {
	Slope     float64
	Intercept float64
	R2        float64
}

func (f LinearFit) Eval(h float64) float64 {
	return f.Slope*h + f.Intercept
}

func (f LinearFit) String() string {
	return fmt.Sprintf("v = %.2fh + %.2f", f.Slope, f.Intercept)
}

func Linear(h, v []float64) (LinearFit, error) {
	if err := checkData(h, v); err != nil {
		return LinearFit{}, &incline.FitError{Stage: "linear", Wrapped: err}
	}
	if stat.Variance(h, nil) == 0 {
		return LinearFit{}, &incline.FitError{Stage: "linear", Wrapped: fmt.Errorf("%w: constant heights", incline.ErrDegenerateData)}
	}

	alpha, beta := stat.LinearRegression(h, v, nil, false)
	return LinearFit{
		Slope:     beta,
		Intercept: alpha,
		R2:        stat.RSquared(h, v, nil, alpha, beta),
	}, nil
}

func checkData(h, v []float64) error {
	if len(h) != len(v) {
		return fmt.Errorf("%w: %d heights, %d speeds", incline.ErrDegenerateData, len(h), len(v))
	}
	if len(h) < 2 {
		return fmt.Errorf("%w: need at least 2 points, got %d", incline.ErrDegenerateData, len(h))
	}
	return nil
}
