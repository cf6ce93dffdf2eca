package edss

// ScaleValue is one step on the 0-10 half-point disability scale. It is an
// opaque label: no arithmetic is performed on it after lookup.
type ScaleValue string

const (
	Scale0   ScaleValue = "0"
	Scale1   ScaleValue = "1"
	Scale1_5 ScaleValue = "1.5"
	Scale2   ScaleValue = "2"
	Scale2_5 ScaleValue = "2.5"
	Scale3   ScaleValue = "3"
	Scale3_5 ScaleValue = "3.5"
	Scale4   ScaleValue = "4"
	Scale4_5 ScaleValue = "4.5"
	Scale5   ScaleValue = "5"
	Scale5_5 ScaleValue = "5.5"
	Scale6   ScaleValue = "6"
	Scale6_5 ScaleValue = "6.5"
	Scale7   ScaleValue = "7"
	Scale7_5 ScaleValue = "7.5"
	Scale8   ScaleValue = "8"
	Scale8_5 ScaleValue = "8.5"
	Scale9   ScaleValue = "9"
	Scale9_5 ScaleValue = "9.5"
	Scale10  ScaleValue = "10"
)

func (v ScaleValue) Valid() bool {
	return v.Steps() >= 0
}

// Steps returns the number of half-point steps from the bottom of the scale,
// or -1 for a value not on the scale. Useful for ordering comparisons.
func (v ScaleValue) Steps() int {
	switch v {
	case Scale0:
		return 0
	case Scale1:
		return 2
	case Scale1_5:
		return 3
	case Scale2:
		return 4
	case Scale2_5:
		return 5
	case Scale3:
		return 6
	case Scale3_5:
		return 7
	case Scale4:
		return 8
	case Scale4_5:
		return 9
	case Scale5:
		return 10
	case Scale5_5:
		return 11
	case Scale6:
		return 12
	case Scale6_5:
		return 13
	case Scale7:
		return 14
	case Scale7_5:
		return 15
	case Scale8:
		return 16
	case Scale8_5:
		return 17
	case Scale9:
		return 18
	case Scale9_5:
		return 19
	case Scale10:
		return 20
	}
	return -1
}
