package pkt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Property 8: string literal decoding.
func TestParseHexRunLiteralBackslash(t *testing.T) {
	out, err := ParseHexRun(`\`)
	assert.NoError(t, err)
	assert.Equal(t, []byte{'\\'}, out)
}

func TestParseHexRunPlainText(t *testing.T) {
	out, err := ParseHexRun("hello")
	assert.NoError(t, err)
	assert.Equal(t, []byte("hello"), out)
}

func TestParseHexRunMacAddress(t *testing.T) {
	out, err := ParseHexRun("|78:24:af:23:f0:a9|")
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x78, 0x24, 0xaf, 0x23, 0xf0, 0xa9}, out)
}

func TestParseHexRunMixedWithText(t *testing.T) {
	out, err := ParseHexRun("abc|de|ghi")
	assert.NoError(t, err)
	assert.Equal(t, []byte{'a', 'b', 'c', 0xde, 'g', 'h', 'i'}, out)
}

func TestParseHexRunOddDigits(t *testing.T) {
	_, err := ParseHexRun("|abc|")
	assert.ErrorIs(t, err, ErrOddHexRun)
}

func TestParseHexRunBadDigit(t *testing.T) {
	_, err := ParseHexRun("|zz|")
	assert.ErrorIs(t, err, ErrBadHexDigit)
}

func TestParseHexRunSeparatorsIgnored(t *testing.T) {
	out, err := ParseHexRun("|de.ad_be-ef|")
	assert.NoError(t, err)
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, out)
}
