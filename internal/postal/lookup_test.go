package postal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "1500-463", Key("1500463"))
	assert.Equal(t, "1000-1", Key("1000001"))
	assert.Equal(t, "6000-84", Key("6000084"))
	assert.Equal(t, "4000-0", Key("4000000"))
}

func TestLocality(t *testing.T) {
	l := NewLookup()

	t.Run("exact_match_capitalized", func(t *testing.T) {
		name, ok := l.Locality("3000104")
		assert.True(t, ok)
		assert.Equal(t, "Coimbra", name)
	})

	t.Run("exact_match_beats_district", func(t *testing.T) {
		// 4400 is in the Porto range but the directory knows better.
		name, ok := l.Locality("4400103")
		assert.True(t, ok)
		assert.Equal(t, "Vila nova de gaia", name)
	})

	t.Run("leading_zero_extension", func(t *testing.T) {
		name, ok := l.Locality("6000084")
		assert.True(t, ok)
		assert.Equal(t, "Castelo branco", name)
	})

	t.Run("district_fallback", func(t *testing.T) {
		name, ok := l.Locality("1749067")
		assert.True(t, ok)
		assert.Equal(t, "Lisboa", name)
	})

	t.Run("not_seven_digits", func(t *testing.T) {
		_, ok := l.Locality("1500")
		assert.False(t, ok)
		_, ok = l.Locality("1500-463")
		assert.False(t, ok)
		_, ok = l.Locality("")
		assert.False(t, ok)
	})
}
