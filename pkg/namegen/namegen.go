// Package namegen builds random hobbit names from the pools in namepool
package namegen

import (
	"errors"
	"fmt"
	"hobbitname-server/internal/rng"
	"hobbitname-server/pkg/namepool"
)

// ErrInvalidArgument is the parent of every input error returned by this package
var ErrInvalidArgument = errors.New("invalid argument")

// ErrEmptyPool is returned when picking from an empty list
var ErrEmptyPool = fmt.Errorf("%w: cannot pick from an empty pool", ErrInvalidArgument)

// ErrInvalidGender is returned when a gender tag is not recognized
var ErrInvalidGender = fmt.Errorf("%w: gender must be male or female", ErrInvalidArgument)

// Gender selects the first name pool
type Gender int

// Gender constants. AnyGender picks male or female at random.
const (
	AnyGender Gender = iota
	Male
	Female
)

// String returns the gender tag, or an empty string for AnyGender
func (g Gender) String() string {
	switch g {
	case Male:
		return "male"
	case Female:
		return "female"
	}

	return ""
}

// ParseGender parses a gender tag. An empty tag is AnyGender.
func ParseGender(tag string) (Gender, error) {
	switch tag {
	case "":
		return AnyGender, nil
	case "male":
		return Male, nil
	case "female":
		return Female, nil
	}

	return AnyGender, fmt.Errorf("%w (got %q)", ErrInvalidGender, tag)
}

func (g Gender) category() namepool.Category {
	if g == Female {
		return namepool.Female
	}

	return namepool.Male
}

// PickRandom returns a uniformly chosen element of list
func PickRandom(r rng.Generator, list []string) (string, error) {
	if len(list) == 0 {
		return "", ErrEmptyPool
	}

	return list[r.Intn(len(list))], nil
}

// Generator creates full names
type Generator struct {
	rng rng.Generator

	// OnGenerate, if set, is called with the resolved gender of every name
	OnGenerate func(g Gender)
}

// New returns a generator backed by r. A nil r uses crypto/rand.
func New(r rng.Generator) *Generator {
	if r == nil {
		r = rng.Crypto{}
	}

	return &Generator{rng: r}
}

// Resolve returns g, or a random choice of Male or Female if g is AnyGender
func (gen *Generator) Resolve(g Gender) (Gender, error) {
	switch g {
	case Male, Female:
		return g, nil
	case AnyGender:
		if gen.rng.Intn(2) == 0 {
			return Male, nil
		}

		return Female, nil
	}

	return AnyGender, fmt.Errorf("%w (got Gender(%d))", ErrInvalidGender, int(g))
}

// Generate returns a "First Last" name
func (gen *Generator) Generate(g Gender) (string, error) {
	resolved, err := gen.Resolve(g)
	if err != nil {
		return "", err
	}

	first, err := PickRandom(gen.rng, namepool.Pool(resolved.category()))
	if err != nil {
		return "", err
	}

	last, err := PickRandom(gen.rng, namepool.Pool(namepool.Surnames))
	if err != nil {
		return "", err
	}

	if gen.OnGenerate != nil {
		gen.OnGenerate(resolved)
	}

	return first + " " + last, nil
}

// GenerateN returns n names. With AnyGender each name picks its own gender.
func (gen *Generator) GenerateN(g Gender, n int) ([]string, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: count must be at least 1 (got %d)", ErrInvalidArgument, n)
	}

	names := make([]string, 0, n)
	for i := 0; i < n; i++ {
		name, err := gen.Generate(g)
		if err != nil {
			return nil, err
		}

		names = append(names, name)
	}

	return names, nil
}

var defaultGenerator = New(rng.Crypto{})

// Generate returns a "First Last" name using crypto/rand
func Generate(g Gender) (string, error) {
	return defaultGenerator.Generate(g)
}
