// cmd/field_term/main.go
package main

import (
	"fmt"
	"os"
	"time"

	game "go-particle-field/internal/app"
	"go-particle-field/internal/config"
	"go-particle-field/internal/event"
	"go-particle-field/internal/logging"
	"go-particle-field/pkg/render"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	settingsPath string
	seed         int64
	constrained  bool
	logLevel     string
)

// Terminal рисует поле полублоками: одна ячейка — два пикселя по вертикали.
type Terminal struct {
	screen tcell.Screen
	app    *game.FieldApp
	pixels [][3]int
	cols   int
	rows   int
	logger *zap.Logger
}

func NewTerminal(settings *config.Settings, logger *zap.Logger) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.HideCursor()

	t := &Terminal{screen: screen, logger: logger}
	t.cols, t.rows = screen.Size()
	t.app = game.NewFieldApp(settings, t.cols, t.rows*2, logger)
	t.pixels = make([][3]int, t.cols*t.rows*2)
	return t, nil
}

func (t *Terminal) resize() {
	t.screen.Sync()
	t.cols, t.rows = t.screen.Size()
	t.app.Resize(t.cols, t.rows*2)
	t.pixels = make([][3]int, t.cols*t.rows*2)
}

// handleInput возвращает false, когда пора выходить
func (t *Terminal) handleInput(ev tcell.Event) bool {
	scroll := t.app.ScrollSystem
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyDown:
			scroll.Scroll(1)
		case tcell.KeyUp:
			scroll.Scroll(-1)
		case tcell.KeyPgDn:
			scroll.Scroll(float64(t.rows*2) / scroll.Speed())
		case tcell.KeyPgUp:
			scroll.Scroll(-float64(t.rows*2) / scroll.Speed())
		case tcell.KeyHome:
			scroll.ScrollTo(0)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'j':
				scroll.Scroll(1)
			case 'k':
				scroll.Scroll(-1)
			}
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		t.app.PointerTracker.Move(x, y*2, event.PointerMouse)
		buttons := ev.Buttons()
		if buttons&tcell.WheelDown != 0 {
			scroll.Scroll(1)
		}
		if buttons&tcell.WheelUp != 0 {
			scroll.Scroll(-1)
		}
	case *tcell.EventResize:
		t.resize()
	}
	return true
}

func (t *Terminal) draw() {
	for i := range t.pixels {
		t.pixels[i] = [3]int{}
	}
	height := t.rows * 2
	for _, p := range t.app.Frame().Points {
		x, y := int(p.X), int(p.Y)
		if x < 0 || x >= t.cols || y < 0 || y >= height {
			continue
		}
		c := render.Shade(float64(p.R), float64(p.G), float64(p.B), render.CenterBoost(p), float64(p.Alpha))
		px := &t.pixels[y*t.cols+x]
		px[0] += int(c.R)
		px[1] += int(c.G)
		px[2] += int(c.B)
	}

	bg := config.BackgroundColor
	for row := 0; row < t.rows; row++ {
		for col := 0; col < t.cols; col++ {
			top := t.pixels[(row*2)*t.cols+col]
			bottom := t.pixels[(row*2+1)*t.cols+col]
			style := tcell.StyleDefault.
				Foreground(cellColor(top, bg.R, bg.G, bg.B)).
				Background(cellColor(bottom, bg.R, bg.G, bg.B))
			t.screen.SetContent(col, row, '▀', nil, style)
		}
	}

	status := "● active"
	statusColor := config.ActiveColor
	if !t.app.Field.Active() {
		status = "● paused"
		statusColor = config.InactiveColor
	}
	line := fmt.Sprintf(" %s  scroll %4.0f  q to quit ", status, t.app.ScrollSystem.Position())
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(statusColor.R), int32(statusColor.G), int32(statusColor.B)))
	for i, r := range []rune(line) {
		if i >= t.cols {
			break
		}
		t.screen.SetContent(i, 0, r, nil, style)
	}
	t.screen.Show()
}

// cellColor складывает фон с накопленным светом (аддитивное смешение)
func cellColor(px [3]int, r, g, b uint8) tcell.Color {
	return tcell.NewRGBColor(
		int32(min(255, int(r)+px[0])),
		int32(min(255, int(g)+px[1])),
		int32(min(255, int(b)+px[2])),
	)
}

func (t *Terminal) run() {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !t.handleInput(ev) {
				return
			}
		case now := <-ticker.C:
			dt := min(now.Sub(last).Seconds(), config.MaxDeltaTime)
			last = now
			t.app.Update(dt)
			t.draw()
		}
	}
}

func (t *Terminal) cleanup() {
	t.screen.Fini()
}

var rootCmd = &cobra.Command{
	Use:          "field-term",
	Short:        "Particle field in the terminal",
	Long:         "Renders the particle field with half-block cells. Mouse moves the field, wheel or j/k scroll the page.",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&settingsPath, "config", "c", "field.yaml", "settings file (YAML)")
	flags.Int64Var(&seed, "seed", 0, "particle seed, 0 for time-based")
	flags.BoolVar(&constrained, "constrained", true, "use the small particle count")
	flags.StringVar(&logLevel, "log-level", "error", "log level; logs go to stderr under the screen")
}

func run(cmd *cobra.Command, args []string) error {
	settings, err := config.Load(settingsPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		settings.Seed = seed
	}
	settings.Constrained = constrained
	settings.Logging.Level = logLevel
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	logger, err := logging.New(settings.Logging.Level)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	term, err := NewTerminal(settings, logger)
	if err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer term.cleanup()
	term.run()
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
