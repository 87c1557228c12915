package collections_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-clique/collections"
)

func TestFormat(t *testing.T) {
	c := padded(1, 2, 3, 7, 9, 10, 11, 12)
	cases := []struct {
		pattern, want string
	}{
		{"{head}", "/head."},
		{"{padding}", "%04d"},
		{"{tail}", ".ext"},
		{"{range}", "1-12"},
		{"{ranges}", "1-3, 7, 9-12"},
		{"{holes}", "4-6, 8"},
		{"{head}{padding}{tail} [{ranges}]", "/head.%04d.ext [1-3, 7, 9-12]"},
		{"literal (*.[x]) {unknown}", "literal (*.[x]) {unknown}"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, c.Format(tc.pattern), tc.pattern)
	}
}

func TestFormatDefault(t *testing.T) {
	assert.Equal(t, "/head.%d.ext [1-2]", unpadded(1, 2).Format())
	assert.Equal(t, "/head.%04d.ext []", padded().Format())
	assert.Equal(t, "/head.%04d.ext [5]", padded(5).String())
}

func TestFormatEmptyAndSingle(t *testing.T) {
	assert.Equal(t, "", padded().Format("{range}"))
	assert.Equal(t, "", padded().Format("{holes}"))
	assert.Equal(t, "7-7", padded(7).Format("{range}"))
	assert.Equal(t, "7", padded(7).Format("{ranges}"))
}

func TestFormatDoesNotRescanSubstitutions(t *testing.T) {
	c := collections.New("{tail}", "x", 0, 1)
	assert.Equal(t, "{tail}%dx", c.Format("{head}{padding}{tail}"))
}

func TestGoString(t *testing.T) {
	assert.Equal(t, `<Collection "/head.%04d.ext [1-2]">`, padded(1, 2).GoString())
}

// ─────────────────────────────────────────────────────────────────────────────
// Ordering
// ─────────────────────────────────────────────────────────────────────────────

func TestCompare(t *testing.T) {
	cases := []struct {
		name string
		a, b *collections.Collection
		want int
	}{
		{"equal", padded(1, 2), padded(2, 1), 0},
		{"head", collections.New("a", "z", 9), collections.New("b", "a", 0), -1},
		{"tail", collections.New("a", "b", 9), collections.New("a", "a", 0), 1},
		{"padding", collections.New("a", "a", 0, 9), collections.New("a", "a", 3, 1), -1},
		{"indexes", padded(1, 3), padded(1, 2, 9), 1},
		{"index prefix", padded(1), padded(1, 2), -1},
		{"nil first", nil, padded(), -1},
		{"nil last", padded(), nil, 1},
		{"both nil", nil, nil, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Compare(tc.b))
			assert.Equal(t, tc.want == 0, tc.a.Equal(tc.b))
			assert.Equal(t, tc.want < 0, tc.a.Less(tc.b))
		})
	}
}

func TestSort(t *testing.T) {
	cols := []*collections.Collection{
		collections.New("b", "", 0, 1),
		collections.New("a", "", 3, 1),
		collections.New("a", "", 0, 2),
		collections.New("a", "", 0, 1),
	}
	collections.Sort(cols)
	want := []string{"a%d [1]", "a%d [2]", "a%03d [1]", "b%d [1]"}
	for i, c := range cols {
		assert.Equal(t, want[i], c.String())
	}
}

func TestFingerprint(t *testing.T) {
	a := padded(1, 2, 3)
	b := padded(3, 2, 1)
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.Len(t, a.Fingerprint(), 64)

	assert.NotEqual(t, a.Fingerprint(), padded(1, 2).Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), unpadded(1, 2, 3).Fingerprint())
	assert.NotEqual(t,
		collections.New("ab", "c", 0).Fingerprint(),
		collections.New("a", "bc", 0).Fingerprint())
}
