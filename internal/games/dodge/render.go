package dodge

import (
	"fmt"
	"math"

	"github.com/vovakirdan/cookie-arcade/internal/core"
	"github.com/vovakirdan/cookie-arcade/internal/particles"
)

// Visual characters for rendering
const (
	PlayerChar  = '█'
	MonsterChar = '▓'
	EyeChar     = 'o'
	MouthChar   = '▼'
	RockChar    = '◆'
	GroundChar  = '═'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	vp := core.NewViewport(g.cfg.World, dst.Width(), dst.Height())

	dst.DrawHLine(0, dst.Height()-1, dst.Width(), GroundChar, core.ColorLane)

	g.drawMonster(dst, vp)

	for _, p := range g.drool.Items() {
		vp.Point(dst, p.X, p.Y, particles.Glyph(p.Alpha), core.ColorDrool)
	}

	for _, o := range g.obstacles.Obstacles() {
		vp.FillBox(dst, o.Box(), RockChar, core.ColorRock)
	}

	vp.FillBox(dst, g.player, PlayerChar, core.ColorPlayer)

	// HUD
	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", g.score), core.ColorHUD)
	if g.difficulty.IsEnabled() {
		chance := g.obstacles.DropChance(g.score, g.tickCount)
		levelText := fmt.Sprintf(" Drop: %.0f%% ", chance*100)
		dst.DrawTextColored(dst.Width()-len(levelText)-2, 0, levelText, core.ColorHUD)
	}

	if g.phase == core.PhaseOver {
		dst.DrawMessageBox("GAME OVER",
			g.message,
			fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

func (g *Game) drawMonster(dst *core.Screen, vp core.Viewport) {
	g.monster.Frame++
	m := g.monster.Box
	cx, cy := m.Center()

	vp.FillBox(dst, m, MonsterChar, core.ColorMonster)

	ex := math.Sin(float64(g.monster.Frame)/7) * m.W * 0.08
	ey := math.Cos(float64(g.monster.Frame)/8) * m.H * 0.1
	vp.Point(dst, cx-m.W*0.25+ex, cy-m.H*0.15+ey, EyeChar, core.ColorMonsterEye)
	vp.Point(dst, cx+m.W*0.25+ex, cy-m.H*0.15+ey, EyeChar, core.ColorMonsterEye)

	vp.Point(dst, cx, m.Bottom()-1, MouthChar, core.ColorAlert)
}
