// Package ebitengeom converts between affine matrices and ebiten.GeoM values,
// so that a composed transform can be used to draw images.
package ebitengeom

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/xform/gm"
)

// ToGeoM converts the affine matrix m into an ebiten.GeoM.
// The bottom row of m is ignored.
func ToGeoM(m gm.Mat3[float64]) ebiten.GeoM {
	var g ebiten.GeoM

	for row := range 2 {
		for col := range 3 {
			g.SetElement(row, col, m[row][col])
		}
	}

	return g
}

// FromGeoM converts an ebiten.GeoM into an affine matrix.
func FromGeoM(g ebiten.GeoM) gm.Mat3[float64] {
	var m gm.Mat3[float64]

	for row := range 2 {
		for col := range 3 {
			m[row][col] = g.Element(row, col)
		}
	}

	m[2][2] = 1

	return m
}
