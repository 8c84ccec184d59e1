package utils

import (
	"fmt"
)

// FormatBytes formats a byte count for messages shown to the admin (KiB, MiB, GiB)
func FormatBytes(bytes int64) string {
	const (
		KiB int64 = 1024
		MiB       = KiB * 1024
		GiB       = MiB * 1024
	)

	switch {
	case bytes >= GiB:
		return fmt.Sprintf("%.1f GiB", float64(bytes)/float64(GiB))
	case bytes >= MiB:
		return fmt.Sprintf("%.1f MiB", float64(bytes)/float64(MiB))
	case bytes >= KiB:
		return fmt.Sprintf("%.1f KiB", float64(bytes)/float64(KiB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
