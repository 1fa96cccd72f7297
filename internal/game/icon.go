package game

import "github.com/vovakirdan/paranoid/internal/core"

// IconKind identifies a falling power-up collectible.
type IconKind int

const (
	IconNone IconKind = iota
	IconLengthen
	IconShorten
	IconMagnet
	IconScore
	IconShoot
	IconSplit
	IconLife
	IconBarrier
	IconAdvance
	IconSpeedUp
	IconSlowDown
	IconInvincible
)

// String returns a short name for the icon kind.
func (k IconKind) String() string {
	switch k {
	case IconLengthen:
		return "lengthen"
	case IconShorten:
		return "shorten"
	case IconMagnet:
		return "magnet"
	case IconScore:
		return "score"
	case IconShoot:
		return "shoot"
	case IconSplit:
		return "split"
	case IconLife:
		return "life"
	case IconBarrier:
		return "barrier"
	case IconAdvance:
		return "advance"
	case IconSpeedUp:
		return "speedup"
	case IconSlowDown:
		return "slowdown"
	case IconInvincible:
		return "invincible"
	default:
		return "none"
	}
}

// Icon is a falling collectible released from a destroyed brick. On paddle
// contact it activates exactly once and is destroyed.
type Icon struct {
	Box  core.Box
	Kind IconKind
	Gone bool
}

// NewIcon creates an icon at the given position (the parent brick's center).
func NewIcon(kind IconKind, cx, cy float64) *Icon {
	return &Icon{
		Box:  core.NewBox(cx, cy, IconSize, IconSize),
		Kind: kind,
	}
}

// Update drops the icon, activates it on paddle contact, and despawns it
// below the field.
func (ic *Icon) Update(lv *Level, dt float64) {
	ic.Box.CY += float64(int(-IconSpeed * dt))

	if ic.Box.Overlaps(lv.Paddle.Box) {
		ic.Activate(lv)
		lv.emit(SoundCollectIcon, NormalVolume, 0)
		ic.Gone = true
		return
	}

	if ic.Box.Top() < lv.Boundary.InnerBottom {
		ic.Gone = true
	}
}

// Activate applies the icon's effect to the level, paddle, and balls.
// Effects that change global progress (magnetism, level advance) are inert
// in demo levels.
func (ic *Icon) Activate(lv *Level) {
	switch ic.Kind {
	case IconLengthen:
		lv.resizePaddle(true)

	case IconShorten:
		lv.resizePaddle(false)

	case IconMagnet:
		if !lv.Demo {
			lv.Paddle.Magnetic = true
		}

	case IconScore:
		lv.session.Score += 5000
		lv.emit(SoundAddingBonus, NormalVolume, 0)

	case IconShoot:
		lv.Paddle.ShooterArmed = true

	case IconSplit:
		lv.Paddle.SplitCharges += 3

	case IconLife:
		lv.session.Lives++

	case IconBarrier:
		lv.Bricks = append(lv.Bricks, NewSafetyBarrier(lv.Boundary))

	case IconAdvance:
		if !lv.Demo {
			lv.levelIsComplete()
		}

	case IconSpeedUp:
		// Speeding up also drops magnetism so the effect is felt now
		lv.Paddle.Magnetic = false
		lv.Paddle.ReleaseMagneticBalls(lv)

		for _, ball := range lv.Balls {
			if !ball.Gone {
				ball.ChangeSpeed(true)
			}
		}

	case IconSlowDown:
		for _, ball := range lv.Balls {
			if !ball.Gone {
				ball.ChangeSpeed(false)
			}
		}

	case IconInvincible:
		lv.Paddle.InvincibleCharges += 3

		// Upgrade any currently-stuck normal balls right away, each one
		// consuming a charge
		stuck := lv.Paddle.MagneticBalls
		for i, ball := range stuck {
			if !ball.Invincible {
				upgraded := ball.convertTo(lv, true, true)
				stuck[i] = upgraded
				lv.Paddle.InvincibleCharges--
			}
		}
	}
}
