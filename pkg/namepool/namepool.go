// Package namepool holds the fixed name lists the generator draws from
package namepool

import (
	"errors"
	"fmt"
)

// ErrUnknownCategory is returned when a tag does not name a pool
var ErrUnknownCategory = errors.New("unknown name category")

// Category selects a name pool
type Category int

// Category constants
const (
	Female Category = iota
	Male
	Surnames
)

var tags = map[Category]string{
	Female:   "female",
	Male:     "male",
	Surnames: "surnames",
}

var pools = map[Category][]string{
	Female:   {"Berthefried", "Tatiana", "Hildeburg", "Lily", "Daisy"},
	Male:     {"Bilbo", "Frodo", "Theodulph", "Lotho"},
	Surnames: {"Baggins", "Lightfoot", "Boulderhill", "Brockhouse", "Boffin"},
}

// String returns the category tag
func (c Category) String() string {
	if tag, ok := tags[c]; ok {
		return tag
	}

	return fmt.Sprintf("Category(%d)", int(c))
}

// Categories returns every category in declaration order
func Categories() []Category {
	return []Category{Female, Male, Surnames}
}

// ParseCategory returns the category for a tag
func ParseCategory(tag string) (Category, error) {
	for _, c := range Categories() {
		if tags[c] == tag {
			return c, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, tag)
}

// Pool returns a copy of the names in category c.
// An invalid category yields an empty slice.
func Pool(c Category) []string {
	names := pools[c]
	cp := make([]string, len(names))
	copy(cp, names)
	return cp
}

// Fetch returns the pool for a category tag.
// Unknown tags yield an empty slice, not an error.
func Fetch(tag string) []string {
	c, err := ParseCategory(tag)
	if err != nil {
		return []string{}
	}

	return Pool(c)
}
