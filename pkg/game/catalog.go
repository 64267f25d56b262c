package game

import (
	"image/color"

	"github.com/cbodonnell/tetris/pkg/game/types"
)

// PieceDefinition is an immutable catalog entry.
type PieceDefinition struct {
	Kind  types.PieceKind
	Shape types.Shape
	Color color.RGBA
}

// catalog holds the seven tetrominoes in their spawn orientation, using the
// tightest bounding box for each shape.
var catalog = []PieceDefinition{
	{
		Kind:  types.PieceKindI,
		Shape: types.ParseShape("####"),
		Color: color.RGBA{R: 0, G: 240, B: 240, A: 255},
	},
	{
		Kind: types.PieceKindO,
		Shape: types.ParseShape(
			"##",
			"##",
		),
		Color: color.RGBA{R: 240, G: 240, B: 0, A: 255},
	},
	{
		Kind: types.PieceKindT,
		Shape: types.ParseShape(
			".#.",
			"###",
		),
		Color: color.RGBA{R: 160, G: 0, B: 240, A: 255},
	},
	{
		Kind: types.PieceKindS,
		Shape: types.ParseShape(
			"##.",
			".##",
		),
		Color: color.RGBA{R: 0, G: 240, B: 0, A: 255},
	},
	{
		Kind: types.PieceKindZ,
		Shape: types.ParseShape(
			".##",
			"##.",
		),
		Color: color.RGBA{R: 240, G: 0, B: 0, A: 255},
	},
	{
		Kind: types.PieceKindJ,
		Shape: types.ParseShape(
			"#..",
			"###",
		),
		Color: color.RGBA{R: 0, G: 0, B: 240, A: 255},
	},
	{
		Kind: types.PieceKindL,
		Shape: types.ParseShape(
			"..#",
			"###",
		),
		Color: color.RGBA{R: 240, G: 160, B: 0, A: 255},
	},
}

// Catalog returns a copy of every piece definition. The shapes are cloned so
// callers cannot alter the static table.
func Catalog() []PieceDefinition {
	defs := make([]PieceDefinition, len(catalog))
	for i, def := range catalog {
		defs[i] = PieceDefinition{
			Kind:  def.Kind,
			Shape: def.Shape.Clone(),
			Color: def.Color,
		}
	}
	return defs
}

// Definition looks up the catalog entry for a kind.
func Definition(kind types.PieceKind) (PieceDefinition, bool) {
	for _, def := range catalog {
		if def.Kind == kind {
			return PieceDefinition{Kind: def.Kind, Shape: def.Shape.Clone(), Color: def.Color}, true
		}
	}
	return PieceDefinition{}, false
}

// PieceColor returns the display color of a kind. Empty and unknown kinds
// are transparent.
func PieceColor(kind types.PieceKind) color.RGBA {
	for _, def := range catalog {
		if def.Kind == kind {
			return def.Color
		}
	}
	return color.RGBA{}
}
