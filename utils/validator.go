package utils

import "regexp"

// Validation patterns for the public RSVP form. Phone numbers follow the
// Brazilian mobile mask (DD) DDDDD-DDDD; unformatted digit strings are
// rejected on purpose so the stored values stay uniform.
var (
	rePhone = regexp.MustCompile(`^\(\d{2}\) \d{5}-\d{4}$`)
	reEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	reLink  = regexp.MustCompile(`^https?://`)
)

// ValidPhone reports whether phone matches the (DD) DDDDD-DDDD mask.
func ValidPhone(phone string) bool {
	return rePhone.MatchString(phone)
}

// ValidEmail reports whether email looks like an address.
func ValidEmail(email string) bool {
	return reEmail.MatchString(email)
}

// ValidLink reports whether link is an http(s) URL.
func ValidLink(link string) bool {
	return reLink.MatchString(link)
}
