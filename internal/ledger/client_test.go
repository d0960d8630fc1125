package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidAddress(t *testing.T) {
	assert.True(t, IsValidAddress("GBVFTZL5HIPT4PFQVTZVIWR77V7LWYCXU4CLYWWHHOEXB64XPG5LDMTU"))

	assert.False(t, IsValidAddress(""))
	assert.False(t, IsValidAddress("not-an-address"))
	// Secret seeds start with S and must never be accepted as destinations
	assert.False(t, IsValidAddress("SBVFTZL5HIPT4PFQVTZVIWR77V7LWYCXU4CLYWWHHOEXB64XPG5LDMTU"))
	assert.False(t, IsValidAddress("GBVFTZL5HIPT4PFQVTZVIWR77V7LWYCXU4CLYWWHHOEXB64XPG5LDMT"))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "14.0000000", FormatAmount(14))
	assert.Equal(t, "2.0000000", FormatAmount(2))
	assert.Equal(t, "0.0000000", FormatAmount(0))
}
