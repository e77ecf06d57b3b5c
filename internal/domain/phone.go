package domain

import "strings"

// Unknown is the display value for empty fields.
const Unknown = "Unknown"

// FormatPhone renders a phone number for display. Irish (+353) and Ukrainian
// (+380) international numbers and 9-digit Irish mobile numbers get grouped;
// anything else is returned as given.
func FormatPhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" || phone == Unknown {
		return Unknown
	}

	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)

	switch {
	case strings.HasPrefix(digits, "353") && len(digits) == 11:
		return "+353 " + digits[3:5] + " " + digits[5:8] + " " + digits[8:]
	case strings.HasPrefix(digits, "380") && len(digits) == 12:
		return "+380 " + digits[3:5] + " " + digits[5:8] + " " + digits[8:]
	case len(digits) == 9 && (strings.HasPrefix(digits, "08") || strings.HasPrefix(digits, "83")):
		if !strings.HasPrefix(digits, "0") {
			digits = "0" + digits
		}
		return digits[:3] + " " + digits[3:6] + " " + digits[6:]
	}
	return phone
}
