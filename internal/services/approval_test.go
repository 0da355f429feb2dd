package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeWallet(t *testing.T) {
	assert.Equal(t, "0xabcdef", NormalizeWallet("  0xABCdef "))
	assert.Equal(t, "", NormalizeWallet("   "))
}

func TestNormalizeBalance(t *testing.T) {
	assert.Equal(t, "1234.56", NormalizeBalance(" 1234.56 "))
	assert.Equal(t, "0", NormalizeBalance(""))
	assert.Equal(t, "0", NormalizeBalance("12,5"))
	assert.Equal(t, "0", NormalizeBalance("drop table"))
}

func TestNormalizeBalanceNonDecimalForms(t *testing.T) {
	// ParseFloat accepts all of these, postgres numeric takes none verbatim
	assert.Equal(t, "16", NormalizeBalance("0x1p4"))
	assert.Equal(t, "1000", NormalizeBalance("1e3"))
	assert.Equal(t, "0", NormalizeBalance("Inf"))
	assert.Equal(t, "0", NormalizeBalance("-Inf"))
	assert.Equal(t, "0", NormalizeBalance("NaN"))
}
