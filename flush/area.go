package flush

import "image"

// Area is a rectangle with inclusive corners, the way renderers report
// dirty regions.
type Area struct {
	X1, Y1, X2, Y2 int32
}

// AreaFromRect converts a half open image.Rectangle.
func AreaFromRect(r image.Rectangle) Area {
	return Area{
		X1: int32(r.Min.X),
		Y1: int32(r.Min.Y),
		X2: int32(r.Max.X - 1),
		Y2: int32(r.Max.Y - 1),
	}
}

func (a Area) Width() int  { return int(a.X2-a.X1) + 1 }
func (a Area) Height() int { return int(a.Y2-a.Y1) + 1 }

// Size is the number of pixels covered, 0 for inverted areas.
func (a Area) Size() int {
	if a.X2 < a.X1 || a.Y2 < a.Y1 {
		return 0
	}
	return a.Width() * a.Height()
}

func (a Area) Rect() image.Rectangle {
	return image.Rect(int(a.X1), int(a.Y1), int(a.X2)+1, int(a.Y2)+1)
}
