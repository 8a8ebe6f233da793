package regression

type Result struct {
	Linear LinearFit
	Power  PowerFit
}

func Fit(h, v []float64) (*Result, error) {
	lin, err := Linear(h, v)
	if err != nil {
		return nil, err
	}
	pow, err := Power(h, v)
	if err != nil {
		return nil, err
	}
	return &Result{Linear: lin, Power: pow}, nil
}
