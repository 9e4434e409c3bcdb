package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Category tags a goal with what it is saved for.
//
// Electronics and accessories are micro-goal tags, everything else is a
// macro goal.
type Category string

const (
	CategoryRetirement  Category = "Retirement"
	CategoryEducation   Category = "Education"
	CategoryHousing     Category = "Housing"
	CategoryVehicle     Category = "Vehicle"
	CategoryTravel      Category = "Travel"
	CategoryOther       Category = "Other"
	CategoryElectronics Category = "Electronics"
	CategoryAccessories Category = "Accessories"
)

// Categories returns all valid goal categories.
func Categories() []Category {
	return []Category{
		CategoryRetirement,
		CategoryEducation,
		CategoryHousing,
		CategoryVehicle,
		CategoryTravel,
		CategoryOther,
		CategoryElectronics,
		CategoryAccessories,
	}
}

var ErrInvalidCategory = errors.New("the category must be one of: Retirement, Education, Housing, Vehicle, Travel, Other, Electronics, Accessories")

// ParseCategory parses a string into a Category. Parsing is case-insensitive.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if strings.EqualFold(strings.TrimSpace(s), string(c)) {
			return c, nil
		}
	}

	return "", fmt.Errorf("%w, got %q", ErrInvalidCategory, s)
}

// Valid reports whether the category is one of the defined values.
func (c Category) Valid() bool {
	for _, valid := range Categories() {
		if c == valid {
			return true
		}
	}

	return false
}

// IsMicro reports whether the category tags a micro goal.
func (c Category) IsMicro() bool {
	return c == CategoryElectronics || c == CategoryAccessories
}

func (c Category) String() string {
	return string(c)
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// Unknown categories are rejected at bind time.
func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	if s == "" {
		*c = ""
		return nil
	}

	parsed, err := ParseCategory(s)
	if err != nil {
		return err
	}

	*c = parsed
	return nil
}

// UnmarshalParam implements gin's binding.BindUnmarshaler for query
// and URI parameters. An empty parameter binds to the zero value.
func (c *Category) UnmarshalParam(param string) error {
	if param == "" {
		*c = ""
		return nil
	}

	parsed, err := ParseCategory(param)
	if err != nil {
		return err
	}

	*c = parsed
	return nil
}
