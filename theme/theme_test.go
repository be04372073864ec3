package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewThemeWithName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: "kanagawa"},
		{in: "Kanagawa", want: "kanagawa"},
		{in: " terminal ", want: "terminal"},
		{in: "solarized", want: "kanagawa"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NewThemeWithName(tt.in).Name, "input %q", tt.in)
	}
}

func TestUseHonoursEnv(t *testing.T) {
	saved := DefaultTheme
	t.Cleanup(func() { DefaultTheme = saved })

	t.Setenv("SELFPATH_THEME", "terminal")
	Use("kanagawa")
	assert.Equal(t, "terminal", DefaultTheme.Name)

	t.Setenv("SELFPATH_THEME", "")
	Use("terminal")
	assert.Equal(t, "terminal", DefaultTheme.Name)
	Use("kanagawa")
	assert.Equal(t, "kanagawa", DefaultTheme.Name)
}

func TestNames(t *testing.T) {
	assert.ElementsMatch(t, []string{"kanagawa", "terminal"}, Names())
}
