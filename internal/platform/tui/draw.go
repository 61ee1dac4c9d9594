package tui

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/game"
)

// Glyphs for each entity.
var (
	alienGlyphs = map[game.AlienKind]string{
		game.AlienUFO:     "<O>",
		game.AlienShip:    `/W\`,
		game.AlienFighter: "}X{",
	}
	obstacleGlyphs = map[game.ObstacleKind]rune{
		game.ObstacleAsteroid: '@',
		game.ObstacleEnemy:    '¤',
	}
	shapeGlyphs = map[game.Shape]rune{
		game.ShapeCircle:   'o',
		game.ShapeStar:     '*',
		game.ShapeTriangle: '^',
		game.ShapeRect:     '#',
	}
)

const (
	playerGlyph = `/^\`
	bulletGlyph = '|'
	dangerGlyph = '·'
)

// viewport maps world coordinates onto the playfield rows of a screen.
// Row 0 is reserved for the HUD.
type viewport struct {
	sx, sy float64
}

func newViewport(s *core.Screen, w game.Geometry) viewport {
	rows := max(s.Height()-1, 1)
	return viewport{
		sx: float64(s.Width()) / w.Width,
		sy: float64(rows) / w.Height,
	}
}

func (v viewport) cell(x, y float64) (int, int) {
	return int(x * v.sx), 1 + int(y*v.sy)
}

// Draw paints a snapshot onto the screen.
func Draw(s *core.Screen, snap game.Snapshot) {
	s.Clear()
	p := snap.Palette

	switch snap.State {
	case game.StateMenu:
		drawMenu(s, snap)
	case game.StateSettings:
		drawSettings(s, snap)
	case game.StateLeaderboard:
		drawLeaderboard(s, snap)
	default:
		drawPlayfield(s, snap)
		drawHUD(s, snap)
		switch snap.State {
		case game.StatePaused:
			drawOverlay(s, p.Accent, p.Text, "PAUSED", "", "P resume   R restart   ESC menu")
		case game.StateGameOver:
			drawGameOver(s, snap)
		}
	}
}

func drawPlayfield(s *core.Screen, snap game.Snapshot) {
	p := snap.Palette
	v := newViewport(s, snap.World)

	for _, d := range snap.Backdrop {
		x, y := v.cell(d.X, d.Y)
		s.SetColored(x, y, shapeGlyphs[d.Shape], d.Color)
	}

	_, dy := v.cell(0, snap.World.DangerLine)
	for x := range s.Width() {
		if x%2 == 0 {
			s.SetColored(x, dy, dangerGlyph, core.ColorGray)
		}
	}

	for _, a := range snap.Aliens {
		x, y := v.cell(a.X+snap.World.AlienW/2, a.Y+snap.World.AlienH/2)
		s.DrawTextColored(x-1, y, alienGlyphs[a.Kind], p.Enemy)
	}

	for _, o := range snap.Obstacles {
		x, y := v.cell(o.X, o.Y)
		s.SetColored(x, y, obstacleGlyphs[o.Kind], o.Tint)
	}

	for _, b := range snap.Bullets {
		x, y := v.cell(b.X+snap.World.BulletW/2, b.Y)
		s.SetColored(x, y, bulletGlyph, p.Bullet)
	}

	pl := snap.Player
	x, y := v.cell(pl.Rect().Center())
	s.DrawTextColored(x-1, y, playerGlyph, p.Player)
}

func drawHUD(s *core.Screen, snap game.Snapshot) {
	p := snap.Palette
	s.FillRect(0, 0, s.Width(), 1, ' ', p.Text)

	left := fmt.Sprintf(" SCORE %d  HI %d  LEVEL %d", snap.Score, snap.HighScore, snap.Level)
	right := fmt.Sprintf("TIME %s  ACC %.0f%%  %s ", formatClock(snap.Elapsed), snap.Accuracy, snap.Difficulty)
	s.DrawTextColored(0, 0, left, p.Text)
	s.DrawTextColored(s.Width()-len([]rune(right)), 0, right, p.Accent)
}

func drawGameOver(s *core.Screen, snap game.Snapshot) {
	p := snap.Palette
	headline := ""
	if snap.NewHighScore {
		headline = "NEW HIGH SCORE!"
	}
	stats := fmt.Sprintf("Score %d   Time %s   Accuracy %.1f%%   Level %d",
		snap.Score, formatClock(snap.Elapsed), snap.Accuracy, snap.Level)

	w := max(len([]rune(stats)), 34) + 4
	h := 7
	x := (s.Width() - w) / 2
	y := (s.Height() - h) / 2

	s.FillRect(x, y, w, h, ' ', p.Text)
	s.DrawBox(x, y, w, h, p.Accent)
	s.DrawTextCentered(y+1, "GAME OVER", p.Enemy)
	s.DrawTextCentered(y+2, headline, p.Accent)
	s.DrawTextCentered(y+3, stats, p.Text)
	s.DrawTextCentered(y+5, "R play again   ESC menu   Q quit", p.Text)
}

// drawOverlay draws a small centred box with a title, a line and a hint.
func drawOverlay(s *core.Screen, frame, text core.Color, title, line, hint string) {
	w := max(len([]rune(hint)), len([]rune(line)), len([]rune(title))) + 6
	h := 5
	x := (s.Width() - w) / 2
	y := (s.Height() - h) / 2

	s.FillRect(x, y, w, h, ' ', text)
	s.DrawBox(x, y, w, h, frame)
	s.DrawTextCentered(y+1, title, frame)
	s.DrawTextCentered(y+2, line, text)
	s.DrawTextCentered(y+3, hint, text)
}

func drawMenu(s *core.Screen, snap game.Snapshot) {
	p := snap.Palette
	top := max((s.Height()-len(game.MenuItems)*2-8)/2, 0)

	s.DrawTextCentered(top, "S P A C E   I N V A D E R S", p.Enemy)
	s.DrawTextCentered(top+2, fmt.Sprintf("HIGH SCORE %d", snap.HighScore), p.Accent)

	for i, item := range game.MenuItems {
		c, label := p.Text, "  "+item+"  "
		if i == snap.MenuIndex {
			c, label = p.Player, "> "+item+" <"
		}
		s.DrawTextCentered(top+5+i*2, label, c)
	}

	s.DrawTextCentered(top+6+len(game.MenuItems)*2,
		fmt.Sprintf("%s  ·  %s", snap.Difficulty, snap.Theme), p.Text)
}

func drawSettings(s *core.Screen, snap game.Snapshot) {
	p := snap.Palette
	top := max((s.Height()-12)/2, 0)

	s.DrawTextCentered(top, "SETTINGS", p.Accent)

	values := []string{snap.Theme.String(), snap.Difficulty.String(), ""}
	for i, item := range game.SettingsItems {
		label := item
		if values[i] != "" {
			label = fmt.Sprintf("%-11s < %s >", item, values[i])
		}
		c := p.Text
		if i == snap.SettingsIndex {
			c, label = p.Player, "> "+label
		} else {
			label = "  " + label
		}
		s.DrawTextCentered(top+3+i*2, label, c)
	}

	prof := config.ProfileFor(snap.Difficulty)
	s.DrawTextCentered(top+10, fmt.Sprintf("%d x %d aliens  ·  speed x%.1f  ·  points x%.1f",
		prof.AlienRows, prof.AlienCols, prof.AlienSpeedMultiplier, prof.PointsMultiplier), p.Text)

	// Swatches of the active palette
	colors := snap.Palette.Colors()
	x := (s.Width() - len(colors)*3) / 2
	for i, c := range colors[1:] {
		s.FillRect(x+i*3, top+12, 2, 1, '█', c)
	}
}

// drawLeaderboard is the plain-text leaderboard used for screenshots.
// The interactive view renders a table instead.
func drawLeaderboard(s *core.Screen, snap game.Snapshot) {
	p := snap.Palette
	s.DrawTextCentered(1, "LEADERBOARD", p.Accent)
	if len(snap.Leaderboard) == 0 {
		s.DrawTextCentered(3, "No scores yet. Go play!", p.Text)
		return
	}
	s.DrawTextCentered(3, fmt.Sprintf("%-4s %7s %6s %6s %5s %-6s %-16s",
		"#", "SCORE", "TIME", "ACC", "LVL", "DIFF", "DATE"), p.Text)
	for i, e := range snap.Leaderboard {
		line := fmt.Sprintf("%-4d %7d %6s %5.1f%% %5d %-6s %-16s",
			i+1, e.Score, formatClock(time.Duration(e.Time)*time.Second), e.Accuracy, e.Level, e.Difficulty, e.Date)
		c := p.Text
		if i == 0 {
			c = p.Player
		}
		s.DrawTextCentered(4+i, line, c)
	}
}

// formatClock renders a duration as mm:ss.
func formatClock(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
