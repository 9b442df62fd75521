package utils

import (
	rndm "math/rand"
	"slices"
	"strconv"
	"time"
)

// --- Random String and ID Generators ---

var letterRunes = []rune("abcdefghijklmnopqrstuvwxyz0123456789_ABCDEFGHIJKLMNOPQRSTUVWXYZ")

// GenerateRandomString creates a random alphanumeric string of length n.
func GenerateRandomString(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letterRunes[rndm.Intn(len(letterRunes))]
	}
	return string(b)
}

// TimestampID returns a unix-millisecond identity string. User
// listings use these so they never collide with the small sequential
// seed ids.
func TimestampID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// --- Slice Helpers ---

func Contains(slice []string, value string) bool {
	return slices.Contains(slice, value)
}
