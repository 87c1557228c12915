package collections_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-clique/collections"
)

const propertyRounds = 200

// randomCollection builds a collection with a letters-only head and tail so
// the default digits pattern finds exactly one numeral per item.
func randomCollection(f *gofakeit.Faker, padding, maxIndex, size int) *collections.Collection {
	c := collections.New(f.LetterN(uint(f.Number(1, 8)))+"_", "."+f.LetterN(3), padding)
	for c.Count() < size {
		c.Indexes().Add(f.Number(0, maxIndex))
	}
	return c
}

func TestPropertyAddedItemsAreMembers(t *testing.T) {
	f := gofakeit.New(1)
	for round := 0; round < propertyRounds; round++ {
		c := randomCollection(f, f.Number(0, 5), 9999, 0)
		item := c.Render(f.Number(0, 9999))
		if _, ok := c.Match(item); !ok {
			require.Error(t, c.Add(item))
			continue
		}
		require.NoError(t, c.Add(item))
		before := c.Indexes().Values()
		require.NoError(t, c.Add(item))
		assert.Equal(t, before, c.Indexes().Values(), "add must be idempotent")
		assert.True(t, c.Contains(item))

		require.NoError(t, c.Remove(item))
		assert.False(t, c.Contains(item))
		require.ErrorIs(t, c.Remove(item), collections.ErrNotPresent)
	}
}

func TestPropertyFormatParseRoundTrip(t *testing.T) {
	f := gofakeit.New(2)
	for round := 0; round < propertyRounds; round++ {
		c := randomCollection(f, f.Number(0, 6), 500, f.Number(0, 40))
		parsed, err := collections.Parse(c.Format())
		require.NoError(t, err, c.Format())
		assert.True(t, c.Equal(parsed), "%#v != %#v", c, parsed)
	}
}

func TestPropertySeparateCoversHolesAndRuns(t *testing.T) {
	f := gofakeit.New(3)
	for round := 0; round < propertyRounds; round++ {
		c := randomCollection(f, 0, 300, f.Number(1, 60))
		parts := c.Separate()

		total := 0
		for i, part := range parts {
			assert.True(t, part.IsContiguous())
			total += part.Count()
			if i > 0 {
				prevMax, _ := parts[i-1].Indexes().Max()
				lo, _ := part.Indexes().Min()
				assert.Greater(t, lo, prevMax+1, "runs must be maximal and ascending")
			}
		}
		assert.Equal(t, c.Count(), total)

		holes := c.Holes()
		lo, _ := c.Indexes().Min()
		hi, _ := c.Indexes().Max()
		assert.Equal(t, hi-lo+1, c.Count()+holes.Count())
		assert.Equal(t, holes.Count() == 0, c.IsContiguous())
	}
}

func TestPropertyAssembleRecoversPaddedCollection(t *testing.T) {
	f := gofakeit.New(4)
	for round := 0; round < propertyRounds; round++ {
		want := randomCollection(f, 4, 999, f.Number(2, 30))
		items := want.Items()
		f.ShuffleStrings(items)

		cols, remainder, err := collections.Assemble(items, collections.DefaultAssembleOptions())
		require.NoError(t, err)
		require.Len(t, cols, 1, "%v", items)
		assert.True(t, want.Equal(cols[0]), "%#v != %#v", cols[0], want)
		assert.Empty(t, remainder)
	}
}
