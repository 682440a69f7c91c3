// cmd/field_viewer_raylib/main.go
package main

import (
	"fmt"
	"math"
	"os"

	game "go-particle-field/internal/app"
	"go-particle-field/internal/config"
	"go-particle-field/internal/event"
	"go-particle-field/internal/logging"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/spf13/cobra"
)

var (
	settingsPath string
	seed         int64
	constrained  bool
)

func run(cmd *cobra.Command, args []string) error {
	settings, err := config.Load(settingsPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		settings.Seed = seed
	}
	if cmd.Flags().Changed("constrained") {
		settings.Constrained = constrained
	}
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	logger, err := logging.New(settings.Logging.Level)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	// --- Инициализация ---
	width, height := settings.Window.Width, settings.Window.Height
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(width), int32(height), "Raylib Field Viewer | Mouse - Tilt, Wheel - Scroll")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	fieldApp := game.NewFieldApp(settings, width, height, logger)

	// --- Камера как у поля: z = 5, вертикальный обзор 75° ---
	camera := rl.Camera3D{
		Position:   rl.NewVector3(0, 0, float32(config.CameraZ)),
		Target:     rl.NewVector3(0, 0, 0),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       float32(config.CameraFOV),
		Projection: rl.CameraPerspective,
	}

	set := fieldApp.Field.Set
	scene := fieldApp.Scene()
	focal := 1 / math.Tan(config.CameraFOV*math.Pi/360)

	// --- Главный цикл ---
	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			width, height = rl.GetScreenWidth(), rl.GetScreenHeight()
			fieldApp.Resize(width, height)
		}

		// до входа курсора в окно позиция мыши не передаётся
		if rl.IsCursorOnScreen() {
			mouse := rl.GetMousePosition()
			fieldApp.PointerTracker.Move(int(mouse.X), int(mouse.Y), event.PointerMouse)
		}
		if wheel := rl.GetMouseWheelMove(); wheel != 0 {
			fieldApp.ScrollSystem.Scroll(float64(-wheel))
		}
		if rl.IsKeyPressed(rl.KeyHome) {
			fieldApp.ScrollSystem.ScrollTo(0)
		}

		dt := math.Min(float64(rl.GetFrameTime()), config.MaxDeltaTime)
		fieldApp.Update(dt)

		// --- Отрисовка: снимок последнего активного шага ---
		f := fieldApp.Field
		radiusScale := float32(config.PointSizeScale / (focal * float64(height)))

		rl.BeginDrawing()
		rl.ClearBackground(config.BackgroundColor)

		rl.BeginMode3D(camera)
		rl.BeginBlendMode(rl.BlendAdditive)
		for _, p := range scene.Points {
			c := rl.NewColor(p.Color[0], p.Color[1], p.Color[2], p.Color[3])
			rl.DrawSphereEx(rl.NewVector3(p.X, p.Y, p.Z), p.Size*radiusScale, 3, 4, c)
		}
		rl.EndBlendMode()
		rl.EndMode3D()

		// Индикатор ворот
		stateColor := config.ActiveColor
		if !f.Active() {
			stateColor = config.InactiveColor
		}
		cx := int32(width - config.IndicatorOffsetX)
		rl.DrawCircle(cx, config.IndicatorOffsetX, config.IndicatorRadius+1, config.IndicatorStroke)
		rl.DrawCircle(cx, config.IndicatorOffsetX, config.IndicatorRadius, stateColor)

		rl.DrawFPS(10, 10)
		rl.DrawText(fmt.Sprintf("Particles: %d  Scroll: %.0f", set.Count, fieldApp.ScrollSystem.Position()), 10, 32, 16, config.TextLightColor)
		rl.EndDrawing()
	}
	return nil
}

var rootCmd = &cobra.Command{
	Use:          "field-viewer",
	Short:        "Particle field rendered in 3D with raylib",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&settingsPath, "config", "c", "field.yaml", "settings file (YAML)")
	flags.Int64Var(&seed, "seed", 0, "particle seed, 0 for time-based")
	flags.BoolVar(&constrained, "constrained", false, "use the small particle count")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
