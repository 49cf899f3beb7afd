package restaurant

import (
	"fmt"

	"arribaeats/internal/pkg/errs"
)

// FoodStyle is the fixed set of cuisine styles a restaurant can declare.
//
// FoodStyle is a value object that validates membership and provides the
// display name used for presentation and for style-based sorting.
type FoodStyle int

const (
	// StyleUnknown represents an invalid or undefined style.
	// This value (0) helps catch uninitialized FoodStyle values.
	StyleUnknown FoodStyle = iota

	// StyleItalian is Italian cuisine.
	StyleItalian
	// StyleFrench is French cuisine.
	StyleFrench
	// StyleChinese is Chinese cuisine.
	StyleChinese
	// StyleJapanese is Japanese cuisine.
	StyleJapanese
	// StyleAmerican is American cuisine.
	StyleAmerican
	// StyleAustralian is Australian cuisine.
	StyleAustralian
)

// getStyleStrings returns a map of FoodStyle values to their display names.
func getStyleStrings() map[FoodStyle]string {
	return map[FoodStyle]string{
		StyleUnknown:    "Unknown",
		StyleItalian:    "Italian",
		StyleFrench:     "French",
		StyleChinese:    "Chinese",
		StyleJapanese:   "Japanese",
		StyleAmerican:   "American",
		StyleAustralian: "Australian",
	}
}

// getValidStyleStrings returns a map of only valid FoodStyle values.
func getValidStyleStrings() map[FoodStyle]string {
	//nolint:exhaustive // StyleUnknown is intentionally excluded as it's invalid
	return map[FoodStyle]string{
		StyleItalian:    "Italian",
		StyleFrench:     "French",
		StyleChinese:    "Chinese",
		StyleJapanese:   "Japanese",
		StyleAmerican:   "American",
		StyleAustralian: "Australian",
	}
}

// Validate checks if the FoodStyle value is a member of the fixed set.
func (s FoodStyle) Validate() error {
	if _, ok := getValidStyleStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("style", fmt.Errorf("%d is not a valid food style", s))
	}
	return nil
}

// String returns the display name of the style.
// This method implements the fmt.Stringer interface and is safe to call on
// any FoodStyle value, including invalid ones.
func (s FoodStyle) String() string {
	if str, ok := getStyleStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ParseFoodStyle resolves a display name to its FoodStyle value.
// Returns a validation error for names outside the fixed set.
func ParseFoodStyle(name string) (FoodStyle, error) {
	for style, str := range getValidStyleStrings() {
		if str == name {
			return style, nil
		}
	}
	return StyleUnknown, errs.NewValueIsInvalidErrorWithCause("style", fmt.Errorf("%q is not a valid food style", name))
}
