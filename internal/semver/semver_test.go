package semver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCore(t *testing.T) {
	t.Run("parses plain versions", func(t *testing.T) {
		core, ok := ParseCore("1.2.3")
		require.True(t, ok)
		assert.Equal(t, []int{1, 2, 3}, core)
	})

	t.Run("strips pre-release suffix", func(t *testing.T) {
		core, ok := ParseCore("1.2.3-beta.1")
		require.True(t, ok)
		assert.Equal(t, []int{1, 2, 3}, core)
	})

	t.Run("accepts short and long cores", func(t *testing.T) {
		core, ok := ParseCore("2")
		require.True(t, ok)
		assert.Equal(t, []int{2}, core)

		core, ok = ParseCore("1.2.3.4")
		require.True(t, ok)
		assert.Equal(t, []int{1, 2, 3, 4}, core)
	})

	t.Run("soft-fails on non-numeric segments", func(t *testing.T) {
		for _, v := range []string{"abc", "1.x.0", "1..0", "", "1.2.3+build", "v1.2.3", "1.+2"} {
			_, ok := ParseCore(v)
			assert.False(t, ok, "expected %q to be malformed", v)
		}
	})

	t.Run("suffix after hyphen is ignored even if junk", func(t *testing.T) {
		core, ok := ParseCore("1.0.0-not.numeric.at.all")
		require.True(t, ok)
		assert.Equal(t, []int{1, 0, 0}, core)
	})
}

func TestCompare(t *testing.T) {
	t.Run("numeric ordering beats lexicographic", func(t *testing.T) {
		assert.Negative(t, Compare("1.2.0", "1.10.0"))
		assert.Negative(t, Compare("0.9.0", "0.10.0"))
		assert.Positive(t, Compare("2.0.0", "1.99.99"))
	})

	t.Run("shorter core that is a prefix sorts first", func(t *testing.T) {
		assert.Negative(t, Compare("1.2", "1.2.0"))
	})

	t.Run("malformed sorts after all well-formed", func(t *testing.T) {
		assert.Positive(t, Compare("abc", "99.99.99"))
		assert.Negative(t, Compare("0.0.1", "not-a-version"))
	})

	t.Run("raw string breaks ties between equal cores", func(t *testing.T) {
		// "1.0.0" and "1.0.0-beta" share the numeric core; the full
		// original text decides.
		assert.Negative(t, Compare("1.0.0", "1.0.0-beta"))
		assert.Equal(t, 0, Compare("1.0.0", "1.0.0"))
	})

	t.Run("malformed versions order by raw string", func(t *testing.T) {
		assert.Negative(t, Compare("apple", "banana"))
	})
}

func TestSortStrings(t *testing.T) {
	versions := []string{"1.10.0", "oops", "1.2.0", "0.15.0", "1.0.0-beta", "1.0.0", "alpha"}
	SortStrings(versions)
	assert.Equal(t, []string{"0.15.0", "1.0.0", "1.0.0-beta", "1.2.0", "1.10.0", "alpha", "oops"}, versions)
}

func TestLatest(t *testing.T) {
	t.Run("returns highest by sort key", func(t *testing.T) {
		latest, ok := Latest([]string{"1.0.0", "1.10.0", "1.2.0"})
		require.True(t, ok)
		assert.Equal(t, "1.10.0", latest)
	})

	t.Run("malformed wins over well-formed", func(t *testing.T) {
		latest, ok := Latest([]string{"1.0.0", "garbage"})
		require.True(t, ok)
		assert.Equal(t, "garbage", latest)
	})

	t.Run("empty input has no latest", func(t *testing.T) {
		_, ok := Latest(nil)
		assert.False(t, ok)
	})
}
