// Package measure provides conversions between the physical units used for
// label dimensions. Label styles are expressed in inches or centimeters;
// all rendering happens in PostScript points.
package measure

// Conversion constants between points, inches and centimeters.
const (
	PointsPerInch = 72.0
	CmPerInch     = 2.54
	PointsPerCm   = PointsPerInch / CmPerInch
)

// InchesToPoints converts inches to points (1/72 inch).
func InchesToPoints(in float64) float64 {
	return in * PointsPerInch
}

// CmToPoints converts centimeters to points.
func CmToPoints(cm float64) float64 {
	return cm * PointsPerCm
}

// PointsToInches converts points to inches.
func PointsToInches(pt float64) float64 {
	return pt / PointsPerInch
}

// PointsToCm converts points to centimeters.
func PointsToCm(pt float64) float64 {
	return pt / PointsPerCm
}
