package kernel

import (
	"errors"
	"fmt"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// cubicCentimetersPerCubicMeter converts parcel dimensions given in
// centimeters into cubic meters.
const cubicCentimetersPerCubicMeter = 1_000_000.0

// ErrBoxDimensionsAreNotConstructed is returned when attempting to use
// improperly initialized BoxDimensions.
var ErrBoxDimensionsAreNotConstructed = errs.NewValueIsRequiredError(
	"box dimensions must be created via NewBoxDimensions constructor")

// BoxDimensions represents the physical size of a parcel in centimeters.
// It is an immutable value object; the parcel volume in cubic meters is
// always derived from the three dimensions and never stored independently,
// so it cannot drift from them.
//
// Example:
//
//	dims, err := kernel.NewBoxDimensions(100, 200, 200)
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(dims.VolumeM3()) // Output: 4
type BoxDimensions struct { //nolint:recvcheck //using for validation
	lengthCm float64
	widthCm  float64
	heightCm float64
	guard    guard.ConstructorGuard
}

// NewBoxDimensions creates BoxDimensions from length, width and height in
// centimeters. All three dimensions must be strictly positive. Returns an
// aggregated validation error otherwise.
func NewBoxDimensions(lengthCm float64, widthCm float64, heightCm float64) (BoxDimensions, error) {
	d := BoxDimensions{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setDimension("length_cm", &d.lengthCm, lengthCm),
		d.setDimension("width_cm", &d.widthCm, widthCm),
		d.setDimension("height_cm", &d.heightCm, heightCm),
	); err != nil {
		return BoxDimensions{}, err
	}

	return d, nil
}

// Validate checks if the BoxDimensions were properly constructed.
func (d BoxDimensions) Validate() error {
	return d.guard.Validate(ErrBoxDimensionsAreNotConstructed)
}

// LengthCm returns the parcel length in centimeters.
func (d BoxDimensions) LengthCm() float64 {
	return d.lengthCm
}

// WidthCm returns the parcel width in centimeters.
func (d BoxDimensions) WidthCm() float64 {
	return d.widthCm
}

// HeightCm returns the parcel height in centimeters.
func (d BoxDimensions) HeightCm() float64 {
	return d.heightCm
}

// VolumeM3 returns the parcel volume in cubic meters, recomputed from the
// dimensions on every call: length · width · height / 1,000,000.
func (d BoxDimensions) VolumeM3() float64 {
	return d.lengthCm * d.widthCm * d.heightCm / cubicCentimetersPerCubicMeter
}

// String returns a human-readable "LxWxH cm" representation.
func (d BoxDimensions) String() string {
	return fmt.Sprintf("BoxDimensions(%gx%gx%g cm)", d.lengthCm, d.widthCm, d.heightCm)
}

// IsEqual compares two dimension sets for equality.
func (d BoxDimensions) IsEqual(other BoxDimensions) (bool, error) {
	if err := errors.Join(d.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return d.lengthCm == other.lengthCm &&
		d.widthCm == other.widthCm &&
		d.heightCm == other.heightCm, nil
}

// setDimension validates and assigns a single dimension.
func (d *BoxDimensions) setDimension(name string, target *float64, value float64) error {
	if value <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%g is not greater than 0", value))
	}

	*target = value
	return nil
}
