package particle

import "math"

// Vec3 — точка или вектор в пространстве поля.
type Vec3 struct {
	X, Y, Z float64
}

// Euler — углы поворота в радианах, порядок применения XYZ (сначала Z, затем Y, затем X).
type Euler struct {
	X, Y, Z float64
}

// Matrix3 — матрица поворота по строкам.
type Matrix3 [9]float64

// Matrix строит матрицу поворота Rx*Ry*Rz.
func (e Euler) Matrix() Matrix3 {
	sx, cx := math.Sincos(e.X)
	sy, cy := math.Sincos(e.Y)
	sz, cz := math.Sincos(e.Z)
	return Matrix3{
		cy * cz, -cy * sz, sy,
		cx*sz + sx*sy*cz, cx*cz - sx*sy*sz, -sx * cy,
		sx*sz - cx*sy*cz, sx*cz + cx*sy*sz, cx * cy,
	}
}

// Apply поворачивает вектор.
func (m Matrix3) Apply(v Vec3) Vec3 {
	return Vec3{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		Y: m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		Z: m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}
