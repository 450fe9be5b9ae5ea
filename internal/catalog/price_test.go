package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePrice_SingleToken(t *testing.T) {
	n, ok := ParsePrice("€ 212,520 v.o.n. ex. BTW")
	assert.True(t, ok)
	assert.Equal(t, int64(212520), n)
}

func TestParsePrice_RangeTakesFirstToken(t *testing.T) {
	n, ok := ParsePrice("€212,520-€640,920")
	assert.True(t, ok)
	assert.Equal(t, int64(212520), n)

	n, ok = ParsePrice("€ 610,400 - € 640,920 v.o.n. ex. BTW")
	assert.True(t, ok)
	assert.Equal(t, int64(610400), n)
}

func TestParsePrice_NoNumber(t *testing.T) {
	n, ok := ParsePrice("prijs op aanvraag")
	assert.False(t, ok)
	assert.Equal(t, int64(0), n)

	n, ok = ParsePrice("")
	assert.False(t, ok)
	assert.Equal(t, int64(0), n)
}

// Plain numbers have no thousands separator; the full token must survive, not
// just its first three digits.
func TestParsePrice_PlainNumber(t *testing.T) {
	n, ok := ParsePrice("42500")
	assert.True(t, ok)
	assert.Equal(t, int64(42500), n)

	n, ok = ParsePrice("€ 5000 v.o.n.")
	assert.True(t, ok)
	assert.Equal(t, int64(5000), n)

	n, ok = ParsePrice("42500.75")
	assert.True(t, ok)
	assert.Equal(t, int64(42500), n)
}

func TestSortPrice_FallbackZero(t *testing.T) {
	assert.Equal(t, int64(0), SortPrice("nader te bepalen"))
	assert.Equal(t, int64(610400), SortPrice("€ 610,400 - € 640,920 v.o.n. ex. BTW"))
}

func TestTypeNumber(t *testing.T) {
	assert.Equal(t, 3, TypeNumber("Bedrijfsunit Type 3"))
	assert.Equal(t, 12, TypeNumber("Bedrijfsunit type 12"))
	assert.Equal(t, 0, TypeNumber("Opslagbox Type A"))
	assert.Equal(t, 0, TypeNumber("Opslagbox"))
}
