package textmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContains(t *testing.T) {
	cases := []struct {
		haystack, needle string
		want             bool
	}{
		{"Tomatoes", "tom", true},
		{"Tomatoes", "TOMA", true},
		{"Jalapeño", "jalapeno", true},
		{"Crème fraîche", "creme", true},
		{"Olive Oil", "", true},
		{"Olive Oil", "flour", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Contains(c.haystack, c.needle), "%q en %q", c.needle, c.haystack)
	}
}

func TestFold(t *testing.T) {
	assert.Equal(t, "chicken breast", Fold("Chicken Breast"))
	assert.Equal(t, "pina", Fold("Piña"))
}
