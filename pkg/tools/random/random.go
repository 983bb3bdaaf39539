package random

import (
	"math/rand"
	"strings"
	"time"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

func init() {
	rand.Seed(time.Now().UnixNano())
}

// String returns a random string of n characters
func String(n int) string {
	var sb strings.Builder
	k := len(alphabet)
	for i := 0; i < n; i++ {
		c := alphabet[rand.Intn(k)]
		sb.WriteByte(c)
	}
	return sb.String()
}

// Email returns a random email
func Email() string {
	return String(10) + "@example.com"
}

// StringSlice creates a slice of length n containing distinct random strings
func StringSlice(n int) []string {
	seen := make(map[string]struct{}, n)
	ss := make([]string, 0, n)
	for len(ss) < n {
		s := String(10)
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		ss = append(ss, s)
	}
	return ss
}

// Int returns a random integer between min and max, both included
func Int(min, max int) int {
	return min + rand.Intn(max-min+1)
}

// Float returns a random float in [min, max)
func Float(min, max float64) float64 {
	return min + rand.Float64()*(max-min)
}

// Time returns a random UTC time within the last year, truncated to the microsecond
func Time() time.Time {
	offset := time.Duration(rand.Int63n(int64(365 * 24 * time.Hour)))
	return time.Now().UTC().Add(-offset).Truncate(time.Microsecond)
}
