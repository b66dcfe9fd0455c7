package utils

import (
	"strings"

	"github.com/drone/go-scm/scm"
	"github.com/google/uuid"
)

// GenerateUUID generates uuid v4
func GenerateUUID() string {
	uuidV4 := uuid.New() // panics on error
	return strings.Map(func(r rune) rune {
		if r == '-' {
			return -1
		}
		return r
	}, uuidV4.String())
}

// Min returns the smaller of x or y.
func Min(x, y int) int {
	if x > y {
		return y
	}
	return x
}

// Max returns the larger of x or y.
func Max(x, y int) int {
	if x < y {
		return y
	}
	return x
}

// GetAuthorName utility function to identify name in a more reliable manner from scm
func GetAuthorName(author *scm.Signature) string {
	if author.Login != "" {
		return author.Login
	}
	return author.Name
}

// IsValidRepoSlug reports whether slug has the form owner/name.
func IsValidRepoSlug(slug string) bool {
	owner, name := scm.Split(slug)
	return owner != "" && name != "" && !strings.Contains(name, "/")
}

// CoalesceString returns the first non blank value.
func CoalesceString(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
