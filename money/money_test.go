package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "₹0", Format(0))
	assert.Equal(t, "₹200", Format(200))
	assert.Equal(t, "₹5,000", Format(5000))
}

func TestFormatNoFractionDigits(t *testing.T) {
	got := Format(3200)
	assert.NotContains(t, got, ".")
}
