// cmd/field/main.go
package main

import (
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	game "go-particle-field/internal/app"
	"go-particle-field/internal/config"
	"go-particle-field/internal/logging"
	"go-particle-field/internal/state"
	"go-particle-field/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	settingsPath string
	seed         int64
	constrained  bool
	reduceMotion bool
	verbose      bool
	pprofAddr    string
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	width, height  int
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != a.width || outsideHeight != a.height {
		a.width, a.height = outsideWidth, outsideHeight
		a.stateMachine.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

var rootCmd = &cobra.Command{
	Use:   "field",
	Short: "Animated particle field in a desktop window",
	Long: `Opens a window with the particle field.

Move the mouse (or touch) to bend and tilt the field. Scroll the wheel,
arrow keys or PageUp/PageDown to move the virtual page: once the first
section leaves the screen the field pauses, and it resumes when you scroll
back. F3 or a click on the corner dot toggles the debug overlay.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&settingsPath, "config", "c", "field.yaml", "settings file (YAML)")
	flags.Int64Var(&seed, "seed", 0, "particle seed, 0 for time-based")
	flags.BoolVar(&constrained, "constrained", false, "use the small particle count")
	flags.BoolVar(&reduceMotion, "reduce-motion", false, "keep the field static")
	flags.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	flags.StringVar(&pprofAddr, "pprof", "", "serve net/http/pprof on this address")
}

func run(cmd *cobra.Command, args []string) error {
	settings, err := config.Load(settingsPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("seed") {
		settings.Seed = seed
	}
	if flags.Changed("constrained") {
		settings.Constrained = constrained
	}
	if flags.Changed("reduce-motion") {
		settings.ReduceMotion = reduceMotion
	}
	if verbose {
		settings.Logging.Level = "debug"
	}
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	logger, err := logging.New(settings.Logging.Level)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if pprofAddr != "" {
		go func() {
			logger.Info("pprof listening", zap.String("addr", pprofAddr))
			if err := http.ListenAndServe(pprofAddr, nil); err != nil {
				logger.Warn("pprof stopped", zap.Error(err))
			}
		}()
	}

	face, err := ui.LoadFace(config.HUDFontSize)
	if err != nil {
		return err
	}

	width, height := settings.Window.Width, settings.Window.Height
	fieldApp := game.NewFieldApp(settings, width, height, logger)

	sm := state.NewStateMachine()
	fieldState := state.NewFieldState(sm, fieldApp, face, logger)
	if settings.ReduceMotion {
		sm.SetState(fieldState)
	} else {
		sm.SetState(state.NewFadeInState(sm, fieldState))
	}

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		width:          width,
		height:         height,
	}
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(settings.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(app); err != nil {
		return fmt.Errorf("game loop failed: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
