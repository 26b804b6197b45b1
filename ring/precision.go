package ring

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// PrecisionStats summarizes the entrywise relative errors between two sequences.
type PrecisionStats struct {
	MaxRelErr    float64
	MeanRelErr   float64
	MedianRelErr float64
	StdRelErr    float64
}

func (p PrecisionStats) String() string {
	return fmt.Sprintf("max=%.3e mean=%.3e median=%.3e std=%.3e", p.MaxRelErr, p.MeanRelErr, p.MedianRelErr, p.StdRelErr)
}

// magnitude prefers the Euclidean norm of elements exposing one (see Complex.Modulus).
func magnitude[T Element[T]](x T) float64 {
	if m, ok := any(x).(interface{ Modulus() float64 }); ok {
		return m.Modulus()
	}
	return x.Abs()
}

// RelativeError returns |want - have| / |want|, or |want - have| if want has a null magnitude.
func RelativeError[T Element[T]](want, have T) float64 {
	diff := magnitude(want.Sub(have))
	if m := magnitude(want); m != 0 {
		return diff / m
	}
	return diff
}

// ApproxEqual returns true if want and have have the same length and every
// pair of entries has a relative error of at most maxRelErr.
func ApproxEqual[T Element[T]](want, have []T, maxRelErr float64) bool {
	if len(want) != len(have) {
		return false
	}
	for i := range want {
		if !(RelativeError(want[i], have[i]) <= maxRelErr) {
			return false
		}
	}
	return true
}

// ApproxEqualPoly returns true if want and have share the same ring degree
// and their coefficients are ApproxEqual.
func ApproxEqualPoly[T Element[T]](want, have Poly[T], maxRelErr float64) bool {
	return want.N() == have.N() && ApproxEqual(want.coeffs, have.coeffs, maxRelErr)
}

// ApproxEqualVector returns true if want and have share the same shape
// and their entries are ApproxEqualPoly.
func ApproxEqualVector[T Element[T]](want, have Vector[T], maxRelErr float64) bool {
	if want.N() != have.N() || want.Len() != have.Len() {
		return false
	}
	for i := range want.polys {
		if !ApproxEqualPoly(want.polys[i], have.polys[i], maxRelErr) {
			return false
		}
	}
	return true
}

// GetPrecisionStats returns the statistics of the entrywise relative errors between want and have.
func GetPrecisionStats[T Element[T]](want, have []T) (p PrecisionStats, err error) {

	if err = checkDimension(CoefficientCount, len(want), len(have)); err != nil {
		return p, fmt.Errorf("cannot GetPrecisionStats: %w", err)
	}

	errs := make([]float64, len(want))
	for i := range want {
		errs[i] = RelativeError(want[i], have[i])
	}

	if p.MaxRelErr, err = stats.Max(errs); err != nil {
		return p, fmt.Errorf("cannot GetPrecisionStats: %w", err)
	}

	if p.MeanRelErr, err = stats.Mean(errs); err != nil {
		return p, fmt.Errorf("cannot GetPrecisionStats: %w", err)
	}

	if p.MedianRelErr, err = stats.Median(errs); err != nil {
		return p, fmt.Errorf("cannot GetPrecisionStats: %w", err)
	}

	if p.StdRelErr, err = stats.StandardDeviation(errs); err != nil {
		return p, fmt.Errorf("cannot GetPrecisionStats: %w", err)
	}

	return p, nil
}
