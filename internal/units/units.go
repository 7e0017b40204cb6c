// Package units converts between half-wavelength element spacing units
// and physical distance at a design frequency.
package units

// SpeedOfLight is the propagation speed used for wavelength conversion,
// in metres per second.
const SpeedOfLight = 299792458.0

// IsValidFrequency checks that a design frequency is usable for
// conversion.
func IsValidFrequency(frequencyHz float64) bool {
	return frequencyHz > 0
}

// Wavelength returns the free-space wavelength in metres at the given
// frequency.
func Wavelength(frequencyHz float64) float64 {
	return SpeedOfLight / frequencyHz
}

// HalfWavelength returns the size of one position unit (lambda/2) in
// metres at the given frequency.
func HalfWavelength(frequencyHz float64) float64 {
	return Wavelength(frequencyHz) / 2
}

// ToMeters converts a distance in half-wavelength units to metres.
func ToMeters(halfWavelengths, frequencyHz float64) float64 {
	return halfWavelengths * HalfWavelength(frequencyHz)
}

// FromMeters converts a distance in metres to half-wavelength units.
func FromMeters(meters, frequencyHz float64) float64 {
	return meters / HalfWavelength(frequencyHz)
}
