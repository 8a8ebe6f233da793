package regression

import (
	"fmt"
	"math"

	"github.com/san-kum/incline/internal/incline"
	"gonum.org/v1/gonum/mat"
)

const (
	maxIterations = 200
	stepTolerance = 1e-12
	maxDamping    = 1e16
)

type PowerFit struct {
	Coeff    float64
	Exponent float64
}

func (f PowerFit) Eval(h float64) float64 {
	return f.Coeff * math.Pow(h, f.Exponent)
}

func (f PowerFit) String() string {
	return fmt.Sprintf("v = %.2fh^%.2f", f.Coeff, f.Exponent)
}

// Power fits v = A·h^p starting from A = 1, p = 1. Heights must be positive.
func Power(h, v []float64) (PowerFit, error) {
	if err := checkData(h, v); err != nil {
		return PowerFit{}, &incline.FitError{Stage: "power", Wrapped: err}
	}
	for _, x := range h {
		if x <= 0 {
			return PowerFit{}, &incline.FitError{Stage: "power", Wrapped: fmt.Errorf("%w: non-positive height %g", incline.ErrDegenerateData, x)}
		}
	}

	n := len(h)
	params := []float64{1, 1}
	lambda := 1e-3
	cost := sse(h, v, params)

	jac := mat.NewDense(n, 2, nil)
	res := mat.NewVecDense(n, nil)

	for iter := 0; iter < maxIterations; iter++ {
		a, p := params[0], params[1]
		for i, x := range h {
			xp := math.Pow(x, p)
			jac.Set(i, 0, xp)
			jac.Set(i, 1, a*xp*math.Log(x))
			res.SetVec(i, v[i]-a*xp)
		}

		var jtj mat.Dense
		jtj.Mul(jac.T(), jac)
		var g mat.VecDense
		g.MulVec(jac.T(), res)

		for {
			damped := mat.DenseCopyOf(&jtj)
			for k := 0; k < 2; k++ {
				damped.Set(k, k, jtj.At(k, k)*(1+lambda))
			}

			var delta mat.VecDense
			if err := delta.SolveVec(damped, &g); err != nil {
				lambda *= 10
			} else {
				trial := []float64{a + delta.AtVec(0), p + delta.AtVec(1)}
				if c := sse(h, v, trial); c < cost {
					params, cost = trial, c
					lambda /= 10
					if math.Abs(delta.AtVec(0)) <= stepTolerance*(math.Abs(a)+stepTolerance) &&
						math.Abs(delta.AtVec(1)) <= stepTolerance*(math.Abs(p)+stepTolerance) {
						return PowerFit{Coeff: params[0], Exponent: params[1]}, nil
					}
					break
				}
				lambda *= 10
			}

			// No downhill step left at machine precision: already at the minimum.
			if lambda > maxDamping {
				return PowerFit{Coeff: params[0], Exponent: params[1]}, nil
			}
		}
	}

	return PowerFit{}, &incline.FitError{Stage: "power", Wrapped: fmt.Errorf("%w after %d iterations", incline.ErrNoConvergence, maxIterations)}
}

func sse(h, v, params []float64) float64 {
	sum := 0.0
	for i, x := range h {
		r := v[i] - params[0]*math.Pow(x, params[1])
		sum += r * r
	}
	return sum
}
