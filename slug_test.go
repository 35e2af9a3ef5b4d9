package groomdir_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wtlin/groomdir"
)

func TestSluggifier_Slugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "lowercases and hyphenates",
			in:   "Happy Paws Grooming",
			want: "happy-paws-grooming",
		},
		{
			name: "collapses punctuation runs",
			in:   "Paws & Claws -- Spa!",
			want: "paws-claws-spa",
		},
		{
			name: "strips diacritics",
			in:   "Café Chien",
			want: "cafe-chien",
		},
		{
			name: "keeps CJK characters",
			in:   "毛小孩沙龍",
			want: "毛小孩沙龍",
		},
		{
			name: "mixed script with spaces",
			in:   "汪汪 Pet Salon",
			want: "汪汪-pet-salon",
		},
		{
			name: "empty name falls back",
			in:   "★☆★",
			want: "shop",
		},
		{
			name: "trims leading and trailing separators",
			in:   " (Happy Paws) ",
			want: "happy-paws",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := groomdir.NewSluggifier()
			assert.Equal(t, tt.want, s.Slugify(tt.in))
		})
	}
}

func TestSluggifier_CollisionsGetNumericSuffixes(t *testing.T) {
	t.Parallel()

	s := groomdir.NewSluggifier()

	assert.Equal(t, "happy-paws", s.Slugify("Happy Paws"))
	assert.Equal(t, "happy-paws-2", s.Slugify("happy paws"))
	assert.Equal(t, "happy-paws-3", s.Slugify("HAPPY PAWS!"))
}

func TestSluggifier_SuffixSkipsTakenSlugs(t *testing.T) {
	t.Parallel()

	s := groomdir.NewSluggifier()

	// A literal "-2" name occupies the first suffix slot.
	assert.Equal(t, "happy-paws-2", s.Slugify("Happy Paws 2"))
	assert.Equal(t, "happy-paws", s.Slugify("Happy Paws"))
	assert.Equal(t, "happy-paws-3", s.Slugify("Happy Paws"))
}

func TestSluggifier_EmptyNameCollisions(t *testing.T) {
	t.Parallel()

	s := groomdir.NewSluggifier()

	assert.Equal(t, "shop", s.Slugify(""))
	assert.Equal(t, "shop-2", s.Slugify("!!!"))
}
