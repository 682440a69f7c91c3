// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 800
	MaxDeltaTime = 0.06

	// Количество частиц зависит от класса устройства и читается один раз при создании
	ParticleCountConstrained = 1500
	ParticleCountDefault     = 3800
	ConstrainedMaxWidth      = 768 // как media query (max-width: 768px)

	FieldCubeSide = 15.0
	PhaseStep     = 0.01 // шаг времени за кадр, не зависит от реального времени

	RotationStepX = 0.0005
	RotationStepY = 0.001
	RotationStepZ = 0.0003

	TiltFactor   = 0.0001 // пиксели смещения курсора -> радианы наклона
	TiltDuration = 2.0    // секунды

	FadeInDuration = 0.5

	CameraFOV  = 75.0
	CameraNear = 0.1
	CameraFar  = 1000.0
	CameraZ    = 5.0

	PointSizeScale = 300.0
	PointSizeMax   = 100.0
	FadeDistance   = 50.0
	SpriteSize     = 64 // размер текстуры точки в пикселях

	PageSections = 4    // высота виртуальной страницы в экранах
	ScrollSpeed  = 60.0 // пикселей на единицу колеса

	IndicatorOffsetX = 30
	IndicatorRadius  = 8.0
	HUDFontSize      = 12.0

	StreamAddr       = "localhost:8090"
	StreamTickRate   = 60
	StreamMaxClients = 100
)

var (
	BackgroundColor = color.RGBA{8, 8, 16, 255}
	ActiveColor     = color.RGBA{50, 205, 50, 255}
	InactiveColor   = color.RGBA{220, 60, 60, 255}
	IndicatorStroke = color.RGBA{240, 240, 240, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
)
