package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/sim"
)

// Scene glyphs
const (
	GroundChar      = '▀'
	PlayerChar      = '█'
	FilteredChar    = '▓'
	HazardChar      = '▒'
	BonusCanChar    = '▣'
	CollectibleChar = '◆'
	ParticleChar    = '✦'
	DustChar        = '*'
	LifeChar        = '♥'
)

// hudRows is the number of rows above the playfield.
const hudRows = 1

// overlay carries the screen state that is not part of the snapshot.
type overlay struct {
	phase      Phase
	selected   config.Difficulty
	finalScore int
	fact       string
	banner     string
}

// scene maps world units onto terminal cells and draws a snapshot.
type scene struct {
	world config.WorldConfig
}

func newScene(cfg config.RunnerConfig) scene {
	return scene{world: cfg.World}
}

// cellRect converts a world-space box to the covering cell rectangle.
// Every visible entity covers at least one cell.
func (sc scene) cellRect(dst *core.Screen, x, y, w, h float64) core.Rect {
	sx := float64(dst.Width()) / sc.world.Width
	sy := float64(dst.Height()-hudRows) / sc.world.Height

	x0 := int(math.Floor(x * sx))
	x1 := int(math.Ceil((x + w) * sx))
	y0 := int(math.Floor(y*sy)) + hudRows
	y1 := int(math.Ceil((y+h)*sy)) + hudRows
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

func (sc scene) point(dst *core.Screen, x, y float64) (int, int) {
	r := sc.cellRect(dst, x, y, 0, 0)
	return r.X, r.Y
}

func fillRect(dst *core.Screen, r core.Rect, ch rune, c core.Color) {
	r = r.Clip(dst.Width(), dst.Height())
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			dst.SetColored(x, y, ch, c)
		}
	}
}

// draw renders the whole frame.
func (sc scene) draw(dst *core.Screen, snap sim.Snapshot, ov overlay) {
	dst.Clear()

	_, groundRow := sc.point(dst, 0, sc.world.GroundY)
	for x := 0; x < dst.Width(); x++ {
		dst.SetColored(x, groundRow, GroundChar, core.ColorGray)
	}

	for _, e := range snap.Obstacles {
		sc.drawObstacle(dst, e)
	}
	for _, e := range snap.Collectibles {
		r := sc.cellRect(dst, e.X, e.Y, e.W, e.H)
		fillRect(dst, r, CollectibleChar, core.ColorBrightCyan)
	}
	for _, e := range snap.Powerups {
		sc.drawPowerup(dst, e)
	}

	sc.drawPlayer(dst, snap.Player)

	for _, fx := range snap.Effects {
		sc.drawEffect(dst, fx)
	}

	sc.drawHUD(dst, snap)

	if ov.banner != "" && ov.phase == PhasePlaying {
		dst.DrawTextColored((dst.Width()-len(ov.banner))/2, hudRows+1, ov.banner, core.ColorBrightYellow)
	}

	switch ov.phase {
	case PhaseTitle:
		drawPanel(dst, core.ColorBrightCyan,
			"CAN RUNNER",
			"",
			fmt.Sprintf("Difficulty: %s  (d to change)", ov.selected.Title()),
			fmt.Sprintf("High score: %d", snap.HighScore),
			"",
			"SPACE jump   P pause   Q quit",
			"Press ENTER to start",
		)
	case PhasePlaying:
		if snap.Paused {
			drawPanel(dst, core.ColorBrightWhite, "PAUSED", "", "Press P to resume")
		}
	case PhaseGameOver:
		lines := []string{
			"GAME OVER",
			"",
			fmt.Sprintf("Score: %d   Best: %d", ov.finalScore, snap.HighScore),
		}
		if ov.fact != "" {
			lines = append(lines, "")
			lines = append(lines, wrapText(ov.fact, max(20, dst.Width()-12))...)
		}
		lines = append(lines, "", "R restart   B title   Q quit")
		drawPanel(dst, core.ColorBrightRed, lines...)
	}
}

func (sc scene) drawPlayer(dst *core.Screen, p sim.Player) {
	r := sc.cellRect(dst, p.X, p.Y, p.W, p.H)
	ch, color := PlayerChar, core.ColorBrightGreen
	if p.Filtered {
		ch, color = FilteredChar, core.ColorBrightBlue
	}
	if p.Distressed {
		color = core.ColorRed
	}
	fillRect(dst, r, ch, color)

	// Face on the leading edge
	face := 'o'
	if p.Distressed {
		face = 'x'
	}
	dst.SetColored(r.Right()-1, r.Y, face, core.ColorBrightWhite)
}

func (sc scene) drawObstacle(dst *core.Screen, e sim.Entity) {
	r := sc.cellRect(dst, e.X, e.Y, e.W, e.H)
	switch e.Obstacle {
	case sim.ObstacleHazard:
		fillRect(dst, r, HazardChar, core.ColorOrange)
	case sim.ObstacleBonusCan:
		fillRect(dst, r, BonusCanChar, core.ColorBrightYellow)
	}
}

func (sc scene) drawPowerup(dst *core.Screen, e sim.Entity) {
	r := sc.cellRect(dst, e.X, e.Y, e.W, e.H)
	switch e.Powerup {
	case sim.PowerupFilter:
		fillRect(dst, r, 'F', core.ColorBlue)
	case sim.PowerupSpeedBoost:
		fillRect(dst, r, '»', core.ColorMagenta)
	case sim.PowerupExtraLife:
		fillRect(dst, r, LifeChar, core.ColorBrightRed)
	}
}

func (sc scene) drawEffect(dst *core.Screen, fx sim.Effect) {
	cx, cy := sc.point(dst, fx.X, fx.Y)
	p := fx.Progress()

	switch fx.Kind {
	case sim.EffectStomp:
		dst.SetColored(cx-1, cy, DustChar, core.ColorGray)
		dst.SetColored(cx+1, cy, DustChar, core.ColorGray)
	case sim.EffectBonus:
		text := fx.Bonus.String()
		dst.DrawTextColored(cx-len(text)/2, cy-1-int(p*2), text, core.ColorYellow)
	case sim.EffectCelebration, sim.EffectMilestone:
		color := core.ColorBrightMagenta
		if fx.Kind == sim.EffectMilestone {
			color = core.ColorBrightYellow
		}
		radius := 1 + p*6
		for i := 0; i < 8; i++ {
			a := float64(i) * math.Pi / 4
			x := cx + int(math.Round(math.Cos(a)*radius*2))
			y := cy + int(math.Round(math.Sin(a)*radius))
			dst.SetColored(x, y, ParticleChar, color)
		}
	}
}

func (sc scene) drawHUD(dst *core.Screen, snap sim.Snapshot) {
	left := fmt.Sprintf(" Score: %d  Best: %d  ", snap.Score, snap.HighScore)
	dst.DrawTextColored(0, 0, left, core.ColorBrightWhite)

	x := len(left)
	for i := 0; i < snap.Lives && i < 10; i++ {
		dst.SetColored(x+i, 0, LifeChar, core.ColorBrightRed)
	}
	if snap.Lives > 10 {
		dst.DrawTextColored(x+10, 0, fmt.Sprintf("+%d", snap.Lives-10), core.ColorBrightRed)
	}

	right := fmt.Sprintf(" %s  Spd %.0f ", snap.Difficulty.Title(), snap.Speed)
	if a := snap.Powerup; a != nil {
		right = fmt.Sprintf(" %s %s %.1fs ", a.Kind, powerBar(a.Remaining, 5), a.Remaining) + right
	}
	dst.DrawTextColored(dst.Width()-len([]rune(right)), 0, right, core.ColorCyan)
}

// powerBar draws a one-cell-per-second meter.
func powerBar(remaining float64, cells int) string {
	full := int(math.Ceil(remaining))
	if full > cells {
		full = cells
	}
	if full < 0 {
		full = 0
	}
	return strings.Repeat("▮", full) + strings.Repeat("▯", cells-full)
}

// drawPanel draws a centered box with one line of text per row.
// The first line is the title and takes the accent color.
func drawPanel(dst *core.Screen, accent core.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > width {
			width = n
		}
	}
	boxW := width + 4
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, l := range lines {
		color := core.ColorDefault
		if i == 0 {
			color = accent
		}
		x := box.X + (boxW-len([]rune(l)))/2
		dst.DrawTextColored(x, box.Y+1+i, l, color)
	}
}

// wrapText breaks text on spaces into lines of at most width runes.
func wrapText(text string, width int) []string {
	var lines []string
	var line []rune
	for _, word := range strings.Fields(text) {
		w := []rune(word)
		if len(line) > 0 && len(line)+1+len(w) > width {
			lines = append(lines, string(line))
			line = line[:0]
		}
		if len(line) > 0 {
			line = append(line, ' ')
		}
		line = append(line, w...)
	}
	if len(line) > 0 {
		lines = append(lines, string(line))
	}
	return lines
}
