package game

import "github.com/vovakirdan/paranoid/internal/core"

// Bullet is fired upward from the paddle when the shooter is armed. It is
// destroyed on its first brick contact, hitting every overlapping brick.
type Bullet struct {
	Box  core.Box
	Gone bool
}

// NewBullet spawns a bullet at the paddle's top center.
func NewBullet(lv *Level) *Bullet {
	b := &Bullet{
		Box: core.NewBox(lv.Paddle.Box.CX, 0, BulletWidth, BulletHeight),
	}
	b.Box.SetBottom(lv.Paddle.Box.Top())
	return b
}

// Update moves the bullet and resolves brick contact.
func (b *Bullet) Update(lv *Level, dt float64) {
	b.Box.CY += float64(int(BulletSpeed * dt))

	var hits []*Brick
	for _, br := range lv.Bricks {
		if !br.Destroyed && b.Box.Overlaps(br.Box) {
			hits = append(hits, br)
		}
	}

	if len(hits) > 0 {
		b.Gone = true
		for _, br := range hits {
			br.Hit(lv)
		}
		return
	}

	if b.Box.Bottom() > lv.Boundary.InnerTop {
		b.Gone = true
	}
}
