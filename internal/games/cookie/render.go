package cookie

import (
	"fmt"
	"math"

	"github.com/vovakirdan/cookie-arcade/internal/core"
	"github.com/vovakirdan/cookie-arcade/internal/particles"
)

// Visual characters for rendering
const (
	CookieChar  = '●'
	ChipChar    = '•'
	MonsterChar = '█'
	EyeChar     = 'o'
	MouthChar   = '▬'
	BiteChar    = '◣'
	RockChar    = '▒'
	StinkyChar  = '▓'
	StinkMark   = '~'
	LaneChar    = '·'
)

// Render draws the current game state to the screen.
// The monster animation counter is the only state it touches.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	vp := core.NewViewport(g.cfg.World, dst.Width(), dst.Height())

	g.drawLanes(dst, vp)

	for _, o := range g.obstacles.Obstacles() {
		g.drawObstacle(dst, vp, o)
	}

	for _, p := range g.stink.Items() {
		vp.Point(dst, p.X, p.Y, particles.Glyph(p.Alpha), core.ColorStink)
	}

	g.drawCookie(dst, vp)
	g.drawMonster(dst, vp)

	// HUD
	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", g.score), core.ColorHUD)
	if g.difficulty.IsEnabled() {
		speed := g.difficulty.Speed(g.cfg.Obstacles.Speed, g.score, g.tickCount)
		levelText := fmt.Sprintf(" Spd: %.1f ", speed)
		dst.DrawTextColored(dst.Width()-len(levelText)-2, 0, levelText, core.ColorHUD)
	}

	if g.phase == core.PhaseOver {
		dst.DrawMessageBox("GAME OVER",
			g.message,
			fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

func (g *Game) drawLanes(dst *core.Screen, vp core.Viewport) {
	for _, y := range g.cfg.Lanes {
		row := vp.Row(y)
		for x := 0; x < dst.Width(); x += 3 {
			dst.SetColored(x, row, LaneChar, core.ColorLane)
		}
	}
}

func (g *Game) drawObstacle(dst *core.Screen, vp core.Viewport, o Obstacle) {
	if o.Kind == KindStinky {
		vp.FillBox(dst, o.Box(), StinkyChar, core.ColorStink)
		r := vp.BoxRect(o.Box())
		dst.SetColored(r.X+r.W/2, r.Y-1, StinkMark, core.ColorStink)
		return
	}
	vp.FillBox(dst, o.Box(), RockChar, core.ColorRock)
}

func (g *Game) drawCookie(dst *core.Screen, vp core.Viewport) {
	p := g.player
	vp.FillCircle(dst, p.X, p.Y, p.Radius, CookieChar, core.ColorCookie)

	// Chocolate chips
	vp.Point(dst, p.X-p.Radius*0.4, p.Y-p.Radius*0.3, ChipChar, core.ColorChip)
	vp.Point(dst, p.X+p.Radius*0.35, p.Y, ChipChar, core.ColorChip)
	vp.Point(dst, p.X-p.Radius*0.1, p.Y+p.Radius*0.45, ChipChar, core.ColorChip)
}

func (g *Game) drawMonster(dst *core.Screen, vp core.Viewport) {
	g.monster.Frame++
	m := g.monster

	vp.FillCircle(dst, m.X, m.Y, m.Radius, MonsterChar, core.ColorMonster)

	// Eyes wander with the frame counter
	ex := math.Sin(float64(m.Frame)/7) * m.Radius * 0.2
	ey := math.Cos(float64(m.Frame)/8) * m.Radius * 0.15
	vp.Point(dst, m.X-m.Radius*0.35+ex, m.Y-m.Radius*0.35+ey, EyeChar, core.ColorMonsterEye)
	vp.Point(dst, m.X+m.Radius*0.35+ex, m.Y-m.Radius*0.35+ey, EyeChar, core.ColorMonsterEye)

	mouth := MouthChar
	if m.Catching {
		mouth = BiteChar
	}
	vp.Point(dst, m.X+m.Radius*0.5, m.Y+m.Radius*0.4, mouth, core.ColorAlert)
}
