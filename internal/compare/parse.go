package compare

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	leadingIntRe = regexp.MustCompile(`(\d+)`)
	storageRe    = regexp.MustCompile(`(?i)([\d.]+)\s*(GB|TB)`)
	wattageRe    = regexp.MustCompile(`(?i)(\d+)\s*W`)
)

// ParseLeadingInt returns the first run of digits in s, or 0.
func ParseLeadingInt(s string) float64 {
	m := leadingIntRe.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return float64(n)
}

// ParseStorageGB normalizes a capacity such as "1.5 TB" to gigabytes.
func ParseStorageGB(s string) float64 {
	m := storageRe.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	if strings.EqualFold(m[2], "TB") {
		n *= 1024
	}
	return n
}

// ParseWattage reads values like "750W" or "650 W".
func ParseWattage(s string) float64 {
	m := wattageRe.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return float64(n)
}
