package pathbuf

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferStore(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		value    string
		wantOK   bool
		want     string
	}{
		{name: "zero capacity", capacity: 0, value: "", wantOK: false},
		{name: "empty fits terminator", capacity: 1, value: "", wantOK: true, want: ""},
		{name: "exact fit", capacity: 5, value: "/bin", wantOK: true, want: "/bin"},
		{name: "no room for terminator", capacity: 4, value: "/bin", wantOK: false},
		{name: "roomy", capacity: 64, value: "/usr/bin/env", wantOK: true, want: "/usr/bin/env"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := New(tt.capacity)
			assert.Equal(t, tt.capacity, buf.Capacity())
			assert.Equal(t, tt.wantOK, buf.Store(tt.value))
			if tt.wantOK {
				assert.Equal(t, tt.want, buf.String())
				assert.Equal(t, byte(0), buf[len(tt.value)])
			}
		})
	}
}

func TestBufferStoreLeavesBufferOnFailure(t *testing.T) {
	buf := Buffer("abc")
	assert.False(t, buf.Store("abcd"))
	assert.Equal(t, "abc", string(buf))
}

func TestFits(t *testing.T) {
	assert.True(t, Fits(""))
	assert.True(t, Fits(strings.Repeat("x", MaxPathLength-1)))
	assert.False(t, Fits(strings.Repeat("x", MaxPathLength)))
}

func TestNewNegativeCapacity(t *testing.T) {
	assert.Equal(t, 0, New(-3).Capacity())
}

func TestOptional(t *testing.T) {
	var zero Optional
	assert.False(t, zero.Present())
	assert.Equal(t, "fallback", zero.OrElse("fallback"))
	assert.Equal(t, "<absent>", zero.String())

	some := Some("/srv/app")
	path, ok := some.Get()
	require.True(t, ok)
	assert.Equal(t, "/srv/app", path)
	assert.Equal(t, "/srv/app", some.OrElse("x"))

	assert.False(t, Some(strings.Repeat("a", MaxPathLength)).Present())
	assert.True(t, Some(strings.Repeat("a", MaxPathLength-1)).Present())
	assert.Equal(t, zero, None())
}

func TestOptionalJSON(t *testing.T) {
	out, err := json.Marshal(map[string]Optional{"root": None(), "exe": Some("/bin/sh")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"root": null, "exe": "/bin/sh"}`, string(out))
}
