package gm

type Rect struct {
	Min, Max Vec
}

func RectWithPoints(a, b Vec) Rect {
	return Rect{
		Min: Vec{
			X: min(a.X, b.X),
			Y: min(a.Y, b.Y),
		},
		Max: Vec{
			X: max(a.X, b.X),
			Y: max(a.Y, b.Y),
		},
	}
}

func RectWithSize(size Vec) Rect {
	return Rect{
		Min: VecZero,
		Max: size,
	}
}

func (r Rect) Size() Vec {
	return r.Max.Sub(r.Min)
}

func (r Rect) TopLeft() Vec {
	return r.Min
}

func (r Rect) TopRight() Vec {
	return Vec{X: r.Max.X, Y: r.Min.Y}
}

func (r Rect) BottomLeft() Vec {
	return Vec{X: r.Min.X, Y: r.Max.Y}
}

func (r Rect) BottomRight() Vec {
	return r.Max
}

// Extend returns the smallest rectangle containing both r and p.
func (r Rect) Extend(p Vec) Rect {
	return Rect{
		Min: Vec{X: min(r.Min.X, p.X), Y: min(r.Min.Y, p.Y)},
		Max: Vec{X: max(r.Max.X, p.X), Y: max(r.Max.Y, p.Y)},
	}
}
