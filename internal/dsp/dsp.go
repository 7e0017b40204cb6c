// Package dsp holds radar cube processing for layouts under evaluation.
// Currently only the fast-time range transform is implemented; Doppler
// and angle processing consume the virtual array geometry and are not
// wired up yet.
package dsp

import (
	"fmt"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Cube is one radar data cube of complex baseband samples, indexed
// (chirp, sample, receiver), stored chirp-major.
type Cube struct {
	Chirps    int
	Samples   int
	Receivers int
	Data      []complex128
}

// NewCube allocates a zeroed cube with the given dimensions.
func NewCube(chirps, samples, receivers int) Cube {
	return Cube{
		Chirps:    chirps,
		Samples:   samples,
		Receivers: receivers,
		Data:      make([]complex128, chirps*samples*receivers),
	}
}

// At returns the sample for the given chirp, fast-time index and
// receiver.
func (c Cube) At(chirp, sample, receiver int) complex128 {
	return c.Data[c.index(chirp, sample, receiver)]
}

// Set stores a sample at the given chirp, fast-time index and receiver.
func (c Cube) Set(chirp, sample, receiver int, v complex128) {
	c.Data[c.index(chirp, sample, receiver)] = v
}

func (c Cube) index(chirp, sample, receiver int) int {
	return (chirp*c.Samples+sample)*c.Receivers + receiver
}

func (c Cube) validate() error {
	if c.Chirps <= 0 || c.Samples <= 0 || c.Receivers <= 0 {
		return fmt.Errorf("cube dimensions must be positive, got %dx%dx%d",
			c.Chirps, c.Samples, c.Receivers)
	}
	if want := c.Chirps * c.Samples * c.Receivers; len(c.Data) != want {
		return fmt.Errorf("cube data length %d does not match dimensions %dx%dx%d (want %d)",
			len(c.Data), c.Chirps, c.Samples, c.Receivers, want)
	}
	return nil
}

// RangeProfile applies an FFT along fast time (the sample axis) for
// every chirp/receiver pair, turning raw ADC samples into range bins.
// The input cube is not modified.
func RangeProfile(c Cube) (Cube, error) {
	if err := c.validate(); err != nil {
		return Cube{}, err
	}

	out := NewCube(c.Chirps, c.Samples, c.Receivers)
	fft := fourier.NewCmplxFFT(c.Samples)
	src := make([]complex128, c.Samples)
	for chirp := 0; chirp < c.Chirps; chirp++ {
		for rx := 0; rx < c.Receivers; rx++ {
			for s := 0; s < c.Samples; s++ {
				src[s] = c.At(chirp, s, rx)
			}
			dst := fft.Coefficients(nil, src)
			for s, v := range dst {
				out.Set(chirp, s, rx, v)
			}
		}
	}
	return out, nil
}
