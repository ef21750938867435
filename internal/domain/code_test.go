package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateProductCodeRunSegment(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		suffix string
	}{
		{"Single longest run", "aabcabcd", "-4abcd7"},
		{"Case is lowered before the scan", "AABCABCD", "-4abcd7"},
		{"Tying runs are concatenated", "abab", "-0abab3"},
		{"Single character", "z", "-0z0"},
		{"Empty name", "", "-00"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := GenerateProductCode(tc.input, time.Now())
			assert.True(t, strings.HasSuffix(code, tc.suffix),
				"code %q should end with %q", code, tc.suffix)
		})
	}
}

func TestGenerateProductCodeDeterministicSegments(t *testing.T) {
	t1 := time.UnixMilli(1700000000000)
	t2 := time.UnixMilli(1700000000001)

	c1 := GenerateProductCode("Espresso Machine", t1)
	c2 := GenerateProductCode("Espresso Machine", t2)

	// The fingerprint and run segments are pure functions of the name;
	// only the time segment differs.
	require.NotEqual(t, c1, c2)
	assert.Equal(t, c1[:7], c2[:7])

	i1 := strings.LastIndex(c1, "-")
	i2 := strings.LastIndex(c2, "-")
	assert.Equal(t, c1[i1:], c2[i2:])
}

func TestGenerateProductCodeShape(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	code := GenerateProductCode("aabcabcd", now)

	// {7 hex chars}{unix millis}-{start}{runs}{end}
	require.Len(t, code, 7+13+len("-4abcd7"))
	assert.Equal(t, "1700000000000-4abcd7", code[7:])
}

func TestFingerprintIsSevenHexChars(t *testing.T) {
	fp := fingerprint("Latte")
	require.Len(t, fp, 7)
	for _, c := range fp {
		assert.Contains(t, "0123456789abcdef", string(c))
	}
}

func TestFingerprintUsesOriginalCasing(t *testing.T) {
	assert.NotEqual(t, fingerprint("Latte"), fingerprint("latte"))
}
