// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidGapPenalty matches every *InvalidGapPenaltyError.
var ErrInvalidGapPenalty = errors.New("gap penalty not in integer format")

// InvalidGapPenaltyError reports gap-penalty text that is not an integer.
type InvalidGapPenaltyError struct {
	Value string
}

func (e *InvalidGapPenaltyError) Error() string {
	return fmt.Sprintf("gap penalty %q not in integer format", e.Value)
}

// Unwrap lets errors.Is(err, ErrInvalidGapPenalty) succeed.
func (e *InvalidGapPenaltyError) Unwrap() error { return ErrInvalidGapPenalty }

// ParseGapPenalty parses s as an integer and normalizes it to <= 0: the
// engine only accepts non-positive penalties, users usually type a cost.
func ParseGapPenalty(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &InvalidGapPenaltyError{Value: s}
	}
	if v > 0 {
		v = -v
	}

	return v, nil
}
