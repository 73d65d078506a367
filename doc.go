// Package ang provides an angle type that carries its unit.
//
// An Angle holds its value either in radians or in degrees and
// converts between the two whenever an operation mixes them:
//
//	a := ang.Degrees(90.0)
//	b := ang.Radians(math.Pi / 2)
//	a.Equal(b)                 // true
//	a.Add(b).InDegrees()       // 180
//	ang.MinDist(ang.Degrees(350.0), ang.Degrees(10.0)).InDegrees() // 20
//
// Angles are generic over their payload kind. Conversion, arithmetic,
// comparison and normalization work for every integer and float kind,
// trigonometry, distances, means and approximate comparisons are
// restricted to float kinds.
package ang
