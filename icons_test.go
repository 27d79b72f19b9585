package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLucideNames(t *testing.T) {
	name, ok := LucideName(IconAward)
	require.True(t, ok)
	assert.Equal(t, "award", name)

	_, ok = LucideName(IconNone)
	assert.False(t, ok)
	assert.Equal(t, "sparkle", LucideNameOrDefault(Icon(200)))
	assert.Equal(t, "lucide-rocket", LucideSymbolID("rocket"))
}

func TestEveryIconHasALucideName(t *testing.T) {
	for i := IconTerminal; i <= IconCalendar; i++ {
		_, ok := LucideName(i)
		assert.True(t, ok, "icon %d", i)
	}
}

func TestIconJSON(t *testing.T) {
	data, err := json.Marshal(Achievement{Title: "talk", Icon: IconAward})
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"talk","date":"","icon":"award"}`, string(data))

	var a Achievement
	require.NoError(t, json.Unmarshal([]byte(`{"icon":"rocket"}`), &a))
	assert.Equal(t, IconRocket, a.Icon)

	assert.Error(t, json.Unmarshal([]byte(`{"icon":"unicorn"}`), &a))
}

func TestPlatformFor(t *testing.T) {
	assert.Equal(t, socialPlatform{Label: "GitHub", Icon: IconGitHub}, platformFor("github"))
	assert.Equal(t, socialPlatform{Label: "mastodon", Icon: IconLink}, platformFor("mastodon"))
}
