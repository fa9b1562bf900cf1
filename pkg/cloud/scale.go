package cloud

// Default font size bounds, matching the f11..f48 classes of the stock
// stylesheet.
const (
	MinFont = 11
	MaxFont = 48
)

// Scale maps occurrence counts onto a discrete font size range.
type Scale struct {
	MinFont int
	MaxFont int
}

// DefaultScale is the [MinFont, MaxFont] range the generator ships with.
var DefaultScale = Scale{MinFont: MinFont, MaxFont: MaxFont}

// Size returns the font size for a word occurring count times within a
// subset bounded by minCount and maxCount. Interpolation is linear with
// integer truncation, so minCount lands exactly on MinFont and maxCount
// exactly on MaxFont. When every selected word shares one count there is no
// spread to draw and the minimum size is used.
func (s Scale) Size(count, minCount, maxCount int) int {
	if maxCount == minCount {
		return s.MinFont
	}
	return (s.MaxFont-s.MinFont)*(count-minCount)/(maxCount-minCount) + s.MinFont
}
