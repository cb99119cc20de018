package taper

import (
	"errors"
	"fmt"
)

var (
	errEmptyCoeffs      = errors.New("taper coefficients must not be empty")
	errMismatchedLength = errors.New("samples and coefficients must have same length")
)

func validateHalfLen(halfLen int) error {
	if halfLen <= 0 {
		return fmt.Errorf("taper half-length must be > 0: %d", halfLen)
	}
	return nil
}
