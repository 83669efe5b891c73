// Package report renders validation results as a paginated letter-size PDF.
package report

// PointsPerInch is the PDF user-space resolution.
// 1 inch = 72 points, 1 inch = 2.54 cm.
const PointsPerInch = 72.0

// CMPerInch is the number of centimetres per inch.
const CMPerInch = 2.54

// CM converts centimetres to points.
// All layout constants are written in centimetres and converted here.
func CM(v float64) float64 {
	return v * PointsPerInch / CMPerInch
}
