package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigSections(t *testing.T) {
	require.Equal(t, []string{"Shell", "Display", "Logging", "Color Overrides"}, ConfigSections())

	grouped := ConfigKeysBySection()
	total := 0
	for _, name := range ConfigSections() {
		require.NotEmpty(t, grouped[name], name)
		total += len(grouped[name])
	}
	require.Equal(t, len(ConfigKeys), total)
}

func TestConfigKeys(t *testing.T) {
	def, ok := GetDefaultValue("prompt")
	require.True(t, ok)
	require.Equal(t, "argot> ", def)

	_, ok = GetDefaultValue("nope")
	require.False(t, ok)
	require.False(t, IsValidConfigKey("nope"))
	require.True(t, IsValidConfigKey("color_value"))

	names := ConfigKeyNames()
	require.Equal(t, "prompt", names[0])
	require.Len(t, names, len(ConfigKeys))
}

func TestColorOverrides(t *testing.T) {
	for _, key := range ConfigKeysBySection()["Color Overrides"] {
		require.True(t, key.Optional, key.Name)
		require.Empty(t, key.Default, key.Name)
		require.Contains(t, key.Description, "ANSI 0-255", key.Name)
	}
	header := ConfigKeys[configKeyIndex["color_header"]]
	require.Contains(t, header.Description, "'bold'")
}
