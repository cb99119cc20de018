package fft

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidLength reports an engine length that is not a power of two.
	ErrInvalidLength = errors.New("fft: length must be a power of two")
	// ErrLengthMismatch reports buffers that do not match the engine length.
	ErrLengthMismatch = errors.New("fft: buffer length does not match engine length")
)

// Engine is a fixed-size FFT plan with precomputed twiddle tables.
// It is not safe for concurrent use of the same buffers, but carries no
// mutable state itself, so one engine may serve multiple goroutines that
// transform distinct buffers.
type Engine struct {
	n      int
	stages int
	cos    []float64
	sin    []float64
}

// New creates an engine for transforms of length n. n must be a power of
// two.
func New(n int) (*Engine, error) {
	stages := 0
	for 1<<stages < n {
		stages++
	}
	if n < 1 || n != 1<<stages {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLength, n)
	}

	e := &Engine{
		n:      n,
		stages: stages,
		cos:    make([]float64, n/2),
		sin:    make([]float64, n/2),
	}
	for i := 0; i < n/2; i++ {
		e.cos[i] = math.Cos(-2 * math.Pi * float64(i) / float64(n))
		e.sin[i] = math.Sin(-2 * math.Pi * float64(i) / float64(n))
	}
	return e, nil
}

// Len returns the transform length.
func (e *Engine) Len() int {
	return e.n
}

// Transform runs the forward FFT in place over the real parts re and
// imaginary parts im. Both slices must have the engine length.
func (e *Engine) Transform(re, im []float64) error {
	if err := e.checkBuffers(re, im); err != nil {
		return err
	}
	e.transform(re, im, false)
	return nil
}

// Inverse runs the inverse FFT in place, using conjugated twiddle factors
// and scaling the result by 1/n.
func (e *Engine) Inverse(re, im []float64) error {
	if err := e.checkBuffers(re, im); err != nil {
		return err
	}
	e.transform(re, im, true)

	scale := 1 / float64(e.n)
	for i := range re {
		re[i] *= scale
		im[i] *= scale
	}
	return nil
}

func (e *Engine) checkBuffers(re, im []float64) error {
	if len(re) != e.n || len(im) != e.n {
		return fmt.Errorf("%w: re %d, im %d, engine %d", ErrLengthMismatch, len(re), len(im), e.n)
	}
	return nil
}

func (e *Engine) transform(re, im []float64, inverse bool) {
	n := e.n

	// Bit-reversal permutation.
	j := 0
	half := n / 2
	for i := 1; i < n-1; i++ {
		k := half
		for j >= k {
			j -= k
			k /= 2
		}
		j += k
		if i < j {
			re[i], re[j] = re[j], re[i]
			im[i], im[j] = im[j], im[i]
		}
	}

	// Butterfly stages. Stage s combines blocks of size n1 into n2 = 2*n1,
	// stepping the twiddle index by 2^(stages-s-1).
	n2 := 1
	for s := 0; s < e.stages; s++ {
		n1 := n2
		n2 += n2
		a := 0

		for j := 0; j < n1; j++ {
			c := e.cos[a]
			si := e.sin[a]
			if inverse {
				si = -si
			}
			a += 1 << (e.stages - s - 1)

			for k := j; k < n; k += n2 {
				t1 := c*re[k+n1] - si*im[k+n1]
				t2 := si*re[k+n1] + c*im[k+n1]
				re[k+n1] = re[k] - t1
				im[k+n1] = im[k] - t2
				re[k] += t1
				im[k] += t2
			}
		}
	}
}

// Transform is a one-shot forward FFT for callers without a reusable engine.
func Transform(re, im []float64) error {
	e, err := New(len(re))
	if err != nil {
		return err
	}
	return e.Transform(re, im)
}
