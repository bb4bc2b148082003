package ray

import "strings"

// Color is one of the marker colors the inspector understands.
type Color string

const (
	Green  Color = "green"
	Orange Color = "orange"
	Red    Color = "red"
	Purple Color = "purple"
	Blue   Color = "blue"
	Gray   Color = "gray"
)

// ResolveColor maps a free-form name to a Color. Matching is
// case-insensitive, "grey" is accepted, and anything unrecognized is Gray.
func ResolveColor(name string) Color {
	switch c := Color(strings.ToLower(name)); c {
	case Green, Orange, Red, Purple, Blue, Gray:
		return c
	case "grey":
		return Gray
	default:
		return Gray
	}
}
