package model

import (
	"fmt"
	"strconv"
	"strings"
)

// FlexInt is an integer that unmarshals from either a JSON number or a
// numeric string ("3" and 3 are equivalent). API clients send both forms.
type FlexInt int

// UnmarshalJSON accepts 3, "3" and " 3 "; anything else is an error.
func (f *FlexInt) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(strings.Trim(strings.TrimSpace(string(b)), `"`))
	if s == "null" || s == "" {
		return fmt.Errorf("must be a valid number, got %s", string(b))
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("must be a valid number, got %s", string(b))
	}
	*f = FlexInt(n)
	return nil
}

// Int returns the plain int value.
func (f FlexInt) Int() int { return int(f) }
