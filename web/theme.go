//go:build js
// +build js

package web

import (
	"image/color"
	"strconv"
)

// Theme holds the canvas styling.
var Theme = struct {
	// Arena
	BackgroundColor string
	GridColor       string
	GridStep        float64

	// Tanks
	PlayerBody   string
	PlayerBarrel string
	EnemyBody    string
	EnemyBarrel  string
	BarrelWidth  float64
	ShieldStroke string

	// Health bars
	HealthBarBackground string
	HealthBarBorder     string
	HealthBarHeight     float64
	HealthBarGap        float64

	// Minimap
	MinimapWidth      float64
	MinimapMargin     float64
	MinimapBackground string
	MinimapBorder     string

	// Text
	OverlayFont string
	PausedFont  string
	TextColor   string
}{
	BackgroundColor: "#1a1a2e",
	GridColor:       "rgba(255,255,255,0.05)",
	GridStep:        50,

	PlayerBody:   "#2ecc71",
	PlayerBarrel: "#27ae60",
	EnemyBody:    "#e74c3c",
	EnemyBarrel:  "#c0392b",
	BarrelWidth:  8,
	ShieldStroke: "#9b59b6",

	HealthBarBackground: "rgba(0,0,0,0.6)",
	HealthBarBorder:     "#ffffff",
	HealthBarHeight:     5,
	HealthBarGap:        10,

	MinimapWidth:      150,
	MinimapMargin:     10,
	MinimapBackground: "rgba(0,0,0,0.5)",
	MinimapBorder:     "rgba(255,255,255,0.4)",

	OverlayFont: "12px monospace",
	PausedFont:  "bold 48px sans-serif",
	TextColor:   "#ecf0f1",
}

// rgba formats c as a CSS color with the given alpha in [0, 1].
func rgba(c color.RGBA, alpha float64) string {
	return "rgba(" + strconv.Itoa(int(c.R)) + "," + strconv.Itoa(int(c.G)) + "," +
		strconv.Itoa(int(c.B)) + "," + strconv.FormatFloat(alpha, 'f', 3, 64) + ")"
}

// healthColor picks a bar color for a health fraction in [0, 1].
func healthColor(frac float64) string {
	switch {
	case frac > 0.75:
		return "#00ff00"
	case frac > 0.5:
		return "#88ff00"
	case frac > 0.25:
		return "#ffff00"
	default:
		return "#ff0000"
	}
}
