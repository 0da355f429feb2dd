package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierForBalance(t *testing.T) {
	assert.Equal(t, TierBronze, TierForBalance("0"))
	assert.Equal(t, TierBronze, TierForBalance("999.99"))
	assert.Equal(t, TierSilver, TierForBalance("1000"))
	assert.Equal(t, TierSilver, TierForBalance("9999"))
	assert.Equal(t, TierGold, TierForBalance("10000"))
	assert.Equal(t, TierGold, TierForBalance("99999.5"))
	assert.Equal(t, TierWhale, TierForBalance("100000"))
	assert.Equal(t, TierWhale, TierForBalance("2500000"))
}

func TestTierForBalance_BadInput(t *testing.T) {
	assert.Equal(t, TierBronze, TierForBalance(""))
	assert.Equal(t, TierBronze, TierForBalance("not-a-number"))
	assert.Equal(t, TierBronze, TierForBalance("-50"))
}
