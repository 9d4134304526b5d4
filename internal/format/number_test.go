package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePTNumber(t *testing.T) {
	assert.Equal(t, 123.45, ParsePTNumber("123,45"))
	assert.Equal(t, 123.45, ParsePTNumber("123.45"))
	assert.Equal(t, 93.0, ParsePTNumber("93"))
	assert.Equal(t, -12.5, ParsePTNumber("-12,5"))

	// Currency symbols and spaces are stripped before parsing.
	assert.Equal(t, 1234.56, ParsePTNumber("1234,56 €"))

	assert.True(t, math.IsNaN(ParsePTNumber("")))
	assert.True(t, math.IsNaN(ParsePTNumber("abc")))
	assert.True(t, math.IsNaN(ParsePTNumber("--")))
}
