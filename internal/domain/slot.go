package domain

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrInvalidTimeSlot is returned for empty, oversized or non-printable slot labels
var ErrInvalidTimeSlot = errors.New("domain: invalid time slot")

// NormalizeTimeSlot trims the label and collapses inner whitespace, so that
// "18:00 - 19:00" and " 18:00  -  19:00" occupy the same slot in the unique index.
func NormalizeTimeSlot(label string) (string, error) {
	slot := strings.Join(strings.Fields(label), " ")
	if slot == "" {
		return "", fmt.Errorf("%w: label is empty", ErrInvalidTimeSlot)
	}
	if utf8.RuneCountInString(slot) > MaxTimeSlotLength {
		return "", fmt.Errorf("%w: label is longer than %d characters", ErrInvalidTimeSlot, MaxTimeSlotLength)
	}
	for _, r := range slot {
		if !unicode.IsPrint(r) {
			return "", fmt.Errorf("%w: label contains non-printable characters", ErrInvalidTimeSlot)
		}
	}
	return slot, nil
}
