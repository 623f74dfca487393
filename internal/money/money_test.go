package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	testCases := []struct {
		input    string
		expected Pence
	}{
		{"£12.50", 1250},
		{"12.50", 1250},
		{"12.5", 1250},
		{"12", 1200},
		{"£ 1,250.00", 125000},
		{"$9.99", 999},
		{"€20", 2000},
		{"  £0.01 ", 1},
		{"19.995", 2000}, // rounds to nearest penny
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParsePrice(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestParsePriceInvalid(t *testing.T) {
	for _, input := range []string{"", "   ", "£", "abc", "-5.00", "12.50GBP"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParsePrice(input)
			assert.Error(t, err)
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "£12.50", Pence(1250).Format())
	assert.Equal(t, "£0.05", Pence(5).Format())
	assert.Equal(t, "£0.00", Pence(0).Format())
}

func TestRoundTrip(t *testing.T) {
	for _, p := range []Pence{0, 1, 99, 100, 1250, 999999} {
		parsed, err := ParsePrice(p.Format())
		require.NoError(t, err)
		assert.Equal(t, p, parsed)
	}
}

func TestFromMajor(t *testing.T) {
	assert.Equal(t, Pence(1250), FromMajor(12.5))
	assert.Equal(t, Pence(500), FromMajor(5.004))
}
