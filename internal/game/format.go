package game

import "fmt"

// FormatTime renders whole seconds as zero-padded MM:SS. Values past 100
// minutes simply widen the field.
func FormatTime(units int) string {
	return fmt.Sprintf("%02d:%02d", units/60, units%60)
}
