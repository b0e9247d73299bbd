package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoney(t *testing.T) {
	assert.Equal(t, "$0.00", Money(0))
	assert.Equal(t, "$19.00", Money(1900))
	assert.Equal(t, "$1,058.40", Money(105840))
	assert.Equal(t, "-$5.25", Money(-525))
}

func TestFilterRankedEmptyNeedleMatchesAll(t *testing.T) {
	idxs := FilterRanked("  ", []string{"a", "b", "c"})
	assert.Equal(t, []int{0, 1, 2}, idxs)
}

func TestFilterRanked(t *testing.T) {
	hay := []string{"Brooklyn Bagel Co.", "Greenpoint Grind", "Dog-Eared Books"}
	idxs := FilterRanked("bagel", hay)
	assert.Equal(t, []int{0}, idxs)

	idxs = FilterRanked("zzzz", hay)
	assert.Empty(t, idxs)
}

func TestNormalizeStripsDiacritics(t *testing.T) {
	out, err := Normalize("Café Cañón")
	assert.NoError(t, err)
	assert.Equal(t, "Cafe Canon", out)
}
