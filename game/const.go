package game

import "image/color"

// Palette used for effects spawned by the simulation.
var (
	ColorEnemy        = color.RGBA{0xe7, 0x4c, 0x3c, 0xff}
	ColorPlayer       = color.RGBA{0x2e, 0xcc, 0x71, 0xff}
	ColorPlayerHit    = color.RGBA{0xf3, 0x9c, 0x12, 0xff}
	ColorLevelUp      = color.RGBA{0xf1, 0xc4, 0x0f, 0xff}
	ColorPlayerShot   = color.RGBA{0xf3, 0x9c, 0x12, 0xff}
	ColorEnemyShot    = color.RGBA{0xe7, 0x4c, 0x3c, 0xff}
	ColorInvulnerable = color.RGBA{0xec, 0xf0, 0xf1, 0xff}
)

// Positioned is anything with a world position.
type Positioned interface {
	GetPosition() (x, y float64)
}

var (
	_ Positioned = (*Player)(nil)
	_ Positioned = (*Enemy)(nil)
	_ Positioned = (*Bullet)(nil)
	_ Positioned = (*PowerUp)(nil)
	_ Positioned = (*Particle)(nil)
	_ Positioned = (*Explosion)(nil)
)

// Viewport maps world coordinates onto a smaller or offset surface, such as a minimap.
type Viewport struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

// NewMinimap fits an arena of the given width into a surface of minimapWidth pixels
// placed at (offsetX, offsetY).
func NewMinimap(arenaWidth, minimapWidth, offsetX, offsetY float64) Viewport {
	return Viewport{
		Scale:   minimapWidth / arenaWidth,
		OffsetX: offsetX,
		OffsetY: offsetY,
	}
}

// WorldToScreen converts world coordinates to surface coordinates.
func (v Viewport) WorldToScreen(worldX, worldY float64) (screenX, screenY float64) {
	return worldX*v.Scale + v.OffsetX, worldY*v.Scale + v.OffsetY
}

// Project converts the position of e to surface coordinates.
func (v Viewport) Project(e Positioned) (screenX, screenY float64) {
	return v.WorldToScreen(e.GetPosition())
}
