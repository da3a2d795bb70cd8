package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"time"
)

var orderNumberPattern = regexp.MustCompile(`^ORD-\d{8}-\d{6}-\d{3}-\d{4}$`)

// FormatOrderNumber renders ORD-YYYYMMDD-HHMMSS-mmm-RRRR for t in UTC.
func FormatOrderNumber(t time.Time, suffix int64) string {
	t = t.UTC()
	return fmt.Sprintf("ORD-%s-%03d-%04d",
		t.Format("20060102-150405"), t.Nanosecond()/int(time.Millisecond), suffix%10000)
}

// GenerateOrderNumber stamps the current time with a random 4-digit suffix.
func GenerateOrderNumber() string {
	now := time.Now()
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return FormatOrderNumber(now, now.UnixNano())
	}
	return FormatOrderNumber(now, n.Int64())
}

func IsOrderNumber(s string) bool {
	return orderNumberPattern.MatchString(s)
}
