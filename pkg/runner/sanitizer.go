package runner

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"unicode"
	"unicode/utf8"
)

var (
	// DefaultMaxWordSize is 4KB (conservative default)
	DefaultMaxWordSize = 4096
	// EnvMaxWordSize is the environment variable to override the default
	EnvMaxWordSize = "RIBBON_MAX_WORD_SIZE"
)

var (
	ErrWordTooLarge = errors.New("word exceeds maximum allowed size")
	ErrInvalidUTF8  = errors.New("word contains invalid UTF-8 sequences")
	ErrControlChar  = errors.New("word contains control characters")
)

// SanitizeWord checks a word received from outside (CLI argument, HTTP body)
// before it reaches a tape. Unlike free text, a word is never altered: every
// symbol counts, so offending input is rejected rather than cleaned.
// Reserved markers are left for the engine to reject.
func SanitizeWord(word string) (string, error) {
	limit := getMaxWordSize()
	if len(word) > limit {
		return "", fmt.Errorf("%w: size=%d limit=%d", ErrWordTooLarge, len(word), limit)
	}

	if !utf8.ValidString(word) {
		return "", ErrInvalidUTF8
	}

	// Control characters would corrupt terminal output and logs.
	for i, r := range word {
		if unicode.IsControl(r) {
			return "", fmt.Errorf("%w: %U at byte %d", ErrControlChar, r, i)
		}
	}
	return word, nil
}

func getMaxWordSize() int {
	if val := os.Getenv(EnvMaxWordSize); val != "" {
		if size, err := strconv.Atoi(val); err == nil && size > 0 {
			return size
		}
	}
	return DefaultMaxWordSize
}
