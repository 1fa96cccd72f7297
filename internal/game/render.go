package game

import (
	"fmt"

	"github.com/vovakirdan/paranoid/internal/core"
)

// Minimum terminal size for a playable field.
const (
	minScreenW = 60
	minScreenH = 22

	hudWidth = 16
)

// viewport maps simulation pixels onto a rectangle of screen cells.
type viewport struct {
	x0, y0     int
	cols, rows int
	bd         Boundary
}

func (v viewport) cellX(px float64) int {
	c := int((px - v.bd.InnerLeft) / v.bd.Width() * float64(v.cols))
	return v.x0 + core.Clamp(c, 0, v.cols-1)
}

func (v viewport) cellY(py float64) int {
	r := int((v.bd.InnerTop - py) / v.bd.Height() * float64(v.rows))
	return v.y0 + core.Clamp(r, 0, v.rows-1)
}

// spanX returns the inclusive cell range covered by a box horizontally.
func (v viewport) spanX(b core.Box) (int, int) {
	return v.cellX(b.Left()), v.cellX(b.Right())
}

var brickColors = map[BrickKind]core.Color{
	BrickRed:       core.ColorRed,
	BrickBlue:      core.ColorBlue,
	BrickGreen:     core.ColorGreen,
	BrickAqua:      core.ColorCyan,
	BrickGrey:      core.ColorGray,
	BrickRedLine:   core.ColorBrightRed,
	BrickBlueLine:  core.ColorBrightBlue,
	BrickGreenLine: core.ColorBrightGreen,
	BrickAquaLine:  core.ColorBrightCyan,
	BrickGreyLine:  core.ColorWhite,
	BrickPink2:     core.ColorMagenta,
	BrickPink1:     core.ColorMagenta,
	BrickRedBlue2:  core.ColorBrightMagenta,
	BrickRedBlue1:  core.ColorBrightMagenta,
	BrickMulti4:    core.ColorYellow,
	BrickMulti3:    core.ColorYellow,
	BrickMulti2:    core.ColorYellow,
	BrickMulti1:    core.ColorYellow,
	BrickWall:      core.ColorGray,
	BrickWallRight: core.ColorGray,
	BrickSolid:     core.ColorWhite,
	BrickBonusB:    core.ColorBrightYellow,
	BrickBonusO:    core.ColorBrightYellow,
	BrickBonusN:    core.ColorBrightYellow,
	BrickBonusU:    core.ColorBrightYellow,
	BrickBonusS:    core.ColorBrightYellow,
	BrickBarrier:   core.ColorBrightWhite,
}

var iconGlyphs = map[IconKind]rune{
	IconLengthen:   'L',
	IconShorten:    'S',
	IconMagnet:     'M',
	IconScore:      '$',
	IconShoot:      'G',
	IconSplit:      '2',
	IconLife:       '+',
	IconBarrier:    '=',
	IconAdvance:    'A',
	IconSpeedUp:    '^',
	IconSlowDown:   'v',
	IconInvincible: 'I',
}

// Render draws the field, entities, HUD, and phase overlays.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.level == nil {
		return
	}

	if g.screenTooSmall || dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need at least %dx%d", minScreenW, minScreenH))
		return
	}

	lv := g.level
	vp := viewport{
		x0:   1,
		y0:   1,
		cols: dst.Width() - hudWidth - 3,
		rows: dst.Height() - 2,
		bd:   lv.Boundary,
	}

	dst.DrawBox(core.Rect{X: 0, Y: 0, W: vp.cols + 2, H: vp.rows + 2})

	g.renderBricks(dst, vp)
	g.renderEntities(dst, vp)
	g.renderHUD(dst, vp)
	g.renderOverlay(dst, vp)
}

func (g *Game) renderBricks(dst *core.Screen, vp viewport) {
	for _, br := range g.level.Bricks {
		if br.Destroyed {
			continue
		}

		color, ok := brickColors[br.Kind]
		if !ok {
			color = core.ColorWhite
		}

		glyph := '█'
		switch {
		case br.SafetyBarrier:
			glyph = '─'
		case !br.Breakable:
			glyph = '▒'
		case br.Stage > 0:
			glyph = '▓' // Damaged multi-stage brick
		}

		y := vp.cellY(br.Box.CY)
		x1, x2 := vp.spanX(br.Box)
		for x := x1; x <= x2; x++ {
			dst.SetColored(x, y, glyph, color)
		}

		// Bonus bricks show their letter so the order can be planned
		if br.Letter != "" {
			dst.SetColored((x1+x2)/2, y, rune(br.Letter[0]), core.ColorBrightYellow)
		}
	}
}

func (g *Game) renderEntities(dst *core.Screen, vp viewport) {
	lv := g.level

	py := vp.cellY(lv.Paddle.Box.CY)
	px1, px2 := vp.spanX(lv.Paddle.Box)
	for x := px1; x <= px2; x++ {
		dst.SetColored(x, py, '▀', core.ColorBrightWhite)
	}

	for _, bl := range lv.Bullets {
		if !bl.Gone {
			dst.SetColored(vp.cellX(bl.Box.CX), vp.cellY(bl.Box.CY), '|', core.ColorBrightYellow)
		}
	}

	for _, ic := range lv.Icons {
		if ic.Gone {
			continue
		}
		glyph, ok := iconGlyphs[ic.Kind]
		if !ok {
			glyph = '?'
		}
		dst.SetColored(vp.cellX(ic.Box.CX), vp.cellY(ic.Box.CY), glyph, core.ColorBrightGreen)
	}

	for _, ball := range lv.Balls {
		if ball.Gone {
			continue
		}
		glyph := '●'
		color := core.ColorBrightWhite
		if ball.Invincible {
			glyph = '◉'
			color = core.ColorBrightYellow
		}
		dst.SetColored(vp.cellX(ball.Box.CX), vp.cellY(ball.Box.CY), glyph, color)
	}
}

func (g *Game) renderHUD(dst *core.Screen, vp viewport) {
	lv := g.level
	x := vp.x0 + vp.cols + 2

	dst.DrawText(x, 1, "SCORE")
	dst.DrawTextColored(x, 2, fmt.Sprintf("%d", g.session.DisplayScore), core.ColorBrightCyan)
	dst.DrawText(x, 4, "LEVEL")
	dst.DrawTextColored(x, 5, fmt.Sprintf("%d", g.session.LevelNumber), core.ColorBrightCyan)
	dst.DrawText(x, 7, "LIVES")
	dst.DrawTextColored(x, 8, fmt.Sprintf("%d", g.session.Lives), core.ColorBrightCyan)

	// Bonus letters light up as they are collected; the bonus score
	// replaces them at the end of the level.
	if lv.LevelComplete && lv.Elapsed > PauseTime {
		dst.DrawText(x, 10, "BONUS")
		dst.DrawTextColored(x, 11, fmt.Sprintf("%d", lv.BonusScore), core.ColorBrightGreen)
	} else {
		for i, letter := range "BONUS" {
			color := core.ColorGray
			for _, got := range lv.BonusOrder {
				if got == letter {
					color = core.ColorBrightGreen
					break
				}
			}
			dst.SetColored(x+i*2, 10, letter, color)
		}
	}

	if g.mode == ModeDemo {
		dst.DrawTextColored(x, 13, "DEMO", core.ColorGray)
		return
	}

	switch {
	case g.paused:
		dst.DrawText(x, 13, "PAUSED")
	case lv.LevelComplete || lv.GameOver:
		// No hint during the exit transitions
	case lv.Paddle.ShooterArmed:
		dst.DrawText(x, 13, "SPACE")
		dst.DrawText(x, 14, "to shoot")
	case lv.Paddle.Magnetic:
		dst.DrawText(x, 13, "SPACE")
		dst.DrawText(x, 14, "to release")
	case !lv.GameIsActive:
		dst.DrawText(x, 13, "SPACE")
		dst.DrawText(x, 14, "to start")
	default:
		dst.DrawText(x, 13, "ESC")
		dst.DrawText(x, 14, "to pause")
	}
}

func (g *Game) renderOverlay(dst *core.Screen, vp viewport) {
	lv := g.level

	switch {
	case lv.GameOver && lv.Elapsed > PauseTime+TransitionTime:
		g.drawCenteredBox(dst, vp, []string{"GAME OVER"})

	case lv.LevelComplete && lv.Elapsed > PauseTime:
		g.drawCenteredBox(dst, vp, []string{"LEVEL", "COMPLETE"})

	case g.won:
		g.drawCenteredBox(dst, vp, []string{"YOU WIN"})
	}
}

func (g *Game) drawCenteredBox(dst *core.Screen, vp viewport, lines []string) {
	boxW := 0
	for _, l := range lines {
		boxW = core.Max(boxW, len(l))
	}
	boxW += 6
	boxH := len(lines) + 2

	x := vp.x0 + (vp.cols-boxW)/2
	y := vp.y0 + (vp.rows-boxH)/2

	r := core.Rect{X: x, Y: y, W: boxW, H: boxH}
	dst.DrawRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r)
	for i, l := range lines {
		dst.DrawText(x+(boxW-len(l))/2, y+1+i, l)
	}
}
