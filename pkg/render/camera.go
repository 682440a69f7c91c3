// pkg/render/camera.go
package render

import (
	"math"

	"go-particle-field/internal/config"
	"go-particle-field/internal/particle"
)

// Camera — перспективная камера на оси z, смотрит в сторону -z.
type Camera struct {
	FOV       float64 // вертикальный угол обзора в градусах
	Near, Far float64
	Z         float64
	Width     int
	Height    int

	focal float64
}

// NewCamera создаёт камеру со стандартными параметрами для экрана width x height.
func NewCamera(width, height int) *Camera {
	c := &Camera{
		FOV:  config.CameraFOV,
		Near: config.CameraNear,
		Far:  config.CameraFar,
		Z:    config.CameraZ,
	}
	c.Resize(width, height)
	return c
}

// Resize обновляет размер экрана и пересчитывает фокус.
func (c *Camera) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	c.Width, c.Height = width, height
	c.focal = 1 / math.Tan(c.FOV*math.Pi/360)
}

// Aspect возвращает отношение ширины к высоте.
func (c *Camera) Aspect() float64 {
	return float64(c.Width) / float64(c.Height)
}

// Depth возвращает расстояние от камеры до точки вдоль оси взгляда.
func (c *Camera) Depth(v particle.Vec3) float64 {
	return c.Z - v.Z
}

// Project переводит точку мира в пиксели экрана. ok=false, если точка вне пирамиды видимости.
func (c *Camera) Project(v particle.Vec3) (sx, sy, depth float64, ok bool) {
	depth = c.Depth(v)
	if depth < c.Near || depth > c.Far {
		return 0, 0, depth, false
	}
	ndcX := c.focal / c.Aspect() * v.X / depth
	ndcY := c.focal * v.Y / depth
	if math.Abs(ndcX) > 1.1 || math.Abs(ndcY) > 1.1 {
		return 0, 0, depth, false
	}
	sx = (ndcX + 1) * 0.5 * float64(c.Width)
	sy = (1 - ndcY) * 0.5 * float64(c.Height)
	return sx, sy, depth, true
}
