package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Email validation pattern, applied after lower-casing
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`

	// Phone pattern - Indian country code followed by exactly 10 digits
	PhonePattern = `^\+91-\d{10}$`

	// Name validation max length
	NameMaxLength = 50
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Email *regexp.Regexp
	Phone *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
	Phone: regexp.MustCompile(PhonePattern),
}
