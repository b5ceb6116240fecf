package internal

import "fmt"

// FormatBytes renders a byte count with a binary-unit summary.
func FormatBytes(n uint64) string {
	if n < 1024 {
		return fmt.Sprintf("%d Bytes", n)
	}
	units := []string{"KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}
	z := 0
	v := float64(n) / 1024
	for v >= 1024 && z < len(units)-1 {
		z++
		v /= 1024
	}
	return fmt.Sprintf("%.2f %s (%d Bytes)", v, units[z], n)
}
