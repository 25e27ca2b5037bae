package utils

import (
	"encoding/binary"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// ReceiptNumberPrefix is stamped on every generated receipt number.
const ReceiptNumberPrefix = "ASH"

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// Slugify converts a string to a URL-friendly slug
func Slugify(s string) string {
	// Convert to lowercase
	s = strings.ToLower(s)

	// Replace spaces with hyphens
	s = strings.ReplaceAll(s, " ", "-")

	// Remove non-alphanumeric characters except hyphens
	reg := regexp.MustCompile("[^a-z0-9-]")
	s = reg.ReplaceAllString(s, "")

	// Remove multiple consecutive hyphens
	reg = regexp.MustCompile("-+")
	s = reg.ReplaceAllString(s, "-")

	// Trim hyphens from start and end
	s = strings.Trim(s, "-")

	return s
}

// GenerateReceiptNumber generates a candidate receipt number such as
// "ASH483920". Uniqueness is enforced by the caller against the database.
func GenerateReceiptNumber() string {
	id := uuid.New()
	n := binary.BigEndian.Uint32(id[:4]) % 1000000
	return fmt.Sprintf("%s%06d", ReceiptNumberPrefix, n)
}

// IsReceiptNumber reports whether s looks like a generated receipt number.
func IsReceiptNumber(s string) bool {
	if !strings.HasPrefix(s, ReceiptNumberPrefix) {
		return false
	}
	rest := s[len(ReceiptNumberPrefix):]
	if rest == "" {
		return false
	}
	for _, c := range rest {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
