package graphics

import (
	"errors"
	"fmt"
)

// ErrSingularTransform is matched by every *SingularTransformError.
var ErrSingularTransform = errors.New("singular transform")

// SingularTransformError reports an inversion requested on a transform
// whose determinant is (near) zero.
type SingularTransformError struct {
	Matrix Matrix
	Det    float64
}

func (e *SingularTransformError) Error() string {
	return fmt.Sprintf("singular transform %v (det %g)", [6]float64(e.Matrix), e.Det)
}

// Is makes errors.Is(err, ErrSingularTransform) succeed.
func (e *SingularTransformError) Is(target error) bool {
	return target == ErrSingularTransform
}
