package game

import "github.com/vovakirdan/paranoid/internal/core"

// BrickKind identifies a brick type from the level grids.
type BrickKind int

const (
	BrickNone BrickKind = iota

	// Plain bricks, 100 points.
	BrickRed
	BrickBlue
	BrickGreen
	BrickAqua
	BrickGrey

	// Line bricks, 150 points.
	BrickRedLine
	BrickBlueLine
	BrickGreenLine
	BrickAquaLine
	BrickGreyLine

	// Multi-stage bricks, 200 points per hit. The "1" variants are the
	// same brick entered part-way through its damage progression.
	BrickPink2
	BrickPink1
	BrickRedBlue2
	BrickRedBlue1
	BrickMulti4
	BrickMulti3
	BrickMulti2
	BrickMulti1

	// Picture bricks, 250 points.
	BrickUKFlag
	BrickKenyaFlag
	BrickCup
	BrickBBB
	BrickFNM
	BrickSmiling
	BrickFrowning
	BrickGreyLeft
	BrickGreyRight

	// Wall bricks, 50 points.
	BrickWall
	BrickWallRight

	// Unbreakable.
	BrickSolid

	// Bonus-letter bricks, 100 points plus their letter.
	BrickBonusB
	BrickBonusO
	BrickBonusN
	BrickBonusU
	BrickBonusS

	// Safety barrier, spawned at runtime by an icon, never from a grid.
	BrickBarrier
)

type brickSpec struct {
	score     int
	stages    int
	breakable bool
	letter    string
}

var brickSpecs = map[BrickKind]brickSpec{
	BrickRed:   {score: 100, stages: 1, breakable: true},
	BrickBlue:  {score: 100, stages: 1, breakable: true},
	BrickGreen: {score: 100, stages: 1, breakable: true},
	BrickAqua:  {score: 100, stages: 1, breakable: true},
	BrickGrey:  {score: 100, stages: 1, breakable: true},

	BrickRedLine:   {score: 150, stages: 1, breakable: true},
	BrickBlueLine:  {score: 150, stages: 1, breakable: true},
	BrickGreenLine: {score: 150, stages: 1, breakable: true},
	BrickAquaLine:  {score: 150, stages: 1, breakable: true},
	BrickGreyLine:  {score: 150, stages: 1, breakable: true},

	BrickPink2:    {score: 200, stages: 2, breakable: true},
	BrickPink1:    {score: 200, stages: 1, breakable: true},
	BrickRedBlue2: {score: 200, stages: 2, breakable: true},
	BrickRedBlue1: {score: 200, stages: 1, breakable: true},
	BrickMulti4:   {score: 200, stages: 4, breakable: true},
	BrickMulti3:   {score: 200, stages: 3, breakable: true},
	BrickMulti2:   {score: 200, stages: 2, breakable: true},
	BrickMulti1:   {score: 200, stages: 1, breakable: true},

	BrickUKFlag:    {score: 250, stages: 1, breakable: true},
	BrickKenyaFlag: {score: 250, stages: 1, breakable: true},
	BrickCup:       {score: 250, stages: 1, breakable: true},
	BrickBBB:       {score: 250, stages: 1, breakable: true},
	BrickFNM:       {score: 250, stages: 1, breakable: true},
	BrickSmiling:   {score: 250, stages: 1, breakable: true},
	BrickFrowning:  {score: 250, stages: 1, breakable: true},
	BrickGreyLeft:  {score: 250, stages: 1, breakable: true},
	BrickGreyRight: {score: 250, stages: 1, breakable: true},

	BrickWall:      {score: 50, stages: 1, breakable: true},
	BrickWallRight: {score: 50, stages: 1, breakable: true},

	BrickSolid: {},

	BrickBonusB: {score: 100, stages: 1, breakable: true, letter: "B"},
	BrickBonusO: {score: 100, stages: 1, breakable: true, letter: "O"},
	BrickBonusN: {score: 100, stages: 1, breakable: true, letter: "N"},
	BrickBonusU: {score: 100, stages: 1, breakable: true, letter: "U"},
	BrickBonusS: {score: 100, stages: 1, breakable: true, letter: "S"},

	BrickBarrier: {},
}

// Brick is a typed rectangle in the level grid. A brick already hit during
// the current contiguous overlap must not be hit again; the HasBeenHit
// latch clears once the brick no longer overlaps any ball or bullet.
type Brick struct {
	Box  core.Box
	Kind BrickKind

	Breakable     bool
	SafetyBarrier bool

	Stage  int // Hits taken so far
	Stages int // Hits until destroyed
	Score  int
	Letter string
	Icon   IconKind // Released into the level on the first hit

	HasBeenHit bool
	Destroyed  bool
}

// NewBrick creates a grid brick at the given row and column. Row 0 is the
// top row, directly under the boundary's inner top edge.
func NewBrick(kind BrickKind, row, col int, bd Boundary) *Brick {
	spec := brickSpecs[kind]

	b := &Brick{
		Kind:      kind,
		Breakable: spec.breakable,
		Stages:    spec.stages,
		Score:     spec.score,
		Letter:    spec.letter,
		Box:       core.NewBox(0, 0, BrickWidth, BrickHeight),
	}
	b.Box.CY = bd.InnerTop - BrickMargin - BrickHeight/2 - (BrickMargin+BrickHeight)*float64(row)
	b.Box.SetLeft(bd.InnerLeft + BrickMargin + (BrickMargin+BrickWidth)*float64(col))
	return b
}

// NewSafetyBarrier creates the transient barrier brick that blocks ball
// fall-through, spanning the whole field just above the inner bottom.
func NewSafetyBarrier(bd Boundary) *Brick {
	return &Brick{
		Kind:          BrickBarrier,
		SafetyBarrier: true,
		Box:           core.NewBox(bd.CenterX, bd.InnerBottom+7, PlayingFieldWidth, BarrierHeight),
	}
}

// Update clears the hit latch once nothing overlaps the brick anymore.
// Without this a brick would award points every frame of a slow pass.
func (b *Brick) Update(lv *Level) {
	if !b.HasBeenHit {
		return
	}
	for _, ball := range lv.Balls {
		if !ball.Gone && b.Box.Overlaps(ball.Box) {
			return
		}
	}
	for _, bullet := range lv.Bullets {
		if !bullet.Gone && b.Box.Overlaps(bullet.Box) {
			return
		}
	}
	b.HasBeenHit = false
}

// Hit applies the hit side effect: advance the damage stage, award score,
// collect a bonus letter, release the attached icon. Unbreakable bricks
// only re-emit a hit sound.
func (b *Brick) Hit(lv *Level) {
	switch {
	case b.Breakable && !b.HasBeenHit:
		b.HasBeenHit = true

		b.Stage++
		if b.Stage >= b.Stages {
			b.Destroyed = true
		}

		lv.session.Score += b.Score
		lv.emit(b.hitSound(), NormalVolume, 0)

		if b.Letter != "" {
			lv.BonusOrder += b.Letter
		}

		// Deploy the attached icon only once
		if b.Icon != IconNone {
			lv.Icons = append(lv.Icons, NewIcon(b.Icon, b.Box.CX, b.Box.CY))
			b.Icon = IconNone
		}

	case !b.Breakable:
		lv.emit(b.hitSound(), NormalVolume, 0)
	}
}

func (b *Brick) hitSound() string {
	switch {
	case b.SafetyBarrier:
		return SoundHitBarrier
	case !b.Breakable:
		return SoundHitSolid
	case b.Letter != "":
		return SoundHitBonus
	default:
		return SoundHitBrick
	}
}
