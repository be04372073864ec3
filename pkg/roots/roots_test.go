package roots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatformRootsUnconfigured(t *testing.T) {
	p := Platform()
	require.NotNil(t, p)

	assert.False(t, p.DefaultAppRootPath().Present())
	assert.False(t, p.DevWriteStoragePath().Present())
	assert.False(t, DefaultAppRootPath().Present())
	assert.False(t, DevWriteStoragePath().Present())
}

func TestUnconfiguredIsConstant(t *testing.T) {
	var p Provider = Unconfigured{}
	for i := 0; i < 3; i++ {
		assert.Equal(t, p.DefaultAppRootPath(), p.DefaultAppRootPath())
		_, ok := p.DevWriteStoragePath().Get()
		assert.False(t, ok)
	}
}
