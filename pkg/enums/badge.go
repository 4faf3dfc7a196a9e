package enums

import "fmt"

// Badge is the visual variant used when rendering a status pill.
type Badge string

const (
	BadgeSuccess Badge = "success"
	BadgeInfo    Badge = "info"
	BadgeWarning Badge = "warning"
	BadgeDanger  Badge = "danger"
	BadgeUnknown Badge = "unknown"
)

var validBadges = []Badge{
	BadgeSuccess,
	BadgeInfo,
	BadgeWarning,
	BadgeDanger,
	BadgeUnknown,
}

// String implements fmt.Stringer.
func (b Badge) String() string {
	return string(b)
}

// IsValid reports whether the value is a known Badge.
func (b Badge) IsValid() bool {
	for _, candidate := range validBadges {
		if candidate == b {
			return true
		}
	}
	return false
}

// ParseBadge converts raw input into a Badge.
func ParseBadge(value string) (Badge, error) {
	for _, candidate := range validBadges {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid badge %q", value)
}
