package ip

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIPv4Hex(t *testing.T) {
	s := IPv4Hex()
	assert.Len(t, s, 8)
	_, err := hex.DecodeString(s)
	assert.NoError(t, err)
	assert.Equal(t, s, IPv4Hex())
}
