// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyGroups(t *testing.T) {
	assert.Contains(t, BasicKeys(), MidsceneRunDir)
	assert.Len(t, BasicKeys(), 4)
	assert.False(t, IsBasicKey(OpenAIAPIKey))
	assert.True(t, IsBasicKey(MidsceneDebugMode))

	assert.Contains(t, BooleanKeys(), MidsceneCache)
	assert.Contains(t, BooleanKeys(), MidsceneMCPUsePuppeteerMode)
	assert.True(t, IsBooleanKey(MidsceneMCPAndroidMode))
	assert.False(t, IsBooleanKey(MidsceneRunDir))

	assert.Contains(t, GlobalKeys(), MidscenePreferredLanguage)
	assert.Contains(t, GlobalKeys(), MidsceneCacheMaxFilenameLength)
	assert.Contains(t, StringKeys(), DockerContainer)
	assert.Contains(t, NumberKeys(), MidsceneCacheMaxFilenameLength)

	assert.Contains(t, ModelKeys(), MidsceneModelName)
	assert.Contains(t, ModelKeys(), MidsceneVQAModelName)
	assert.Contains(t, ModelKeys(), MidscenePlanningModelName)

	all := AllKeys()
	assert.Contains(t, all, MidsceneDangerouslyPrintAllConfig)
	assert.Contains(t, all, MidsceneModelName)
	assert.Contains(t, all, MidsceneRunDir)
}

// TestKeyGroups_ReturnCopies verifies that callers cannot mutate the catalog.
func TestKeyGroups_ReturnCopies(t *testing.T) {
	keys := BasicKeys()
	keys[0] = "MUTATED"

	assert.NotContains(t, BasicKeys(), "MUTATED")
	assert.False(t, IsBasicKey("MUTATED"))
}

// TestAllKeys_Unique verifies that no key is declared in two groups.
func TestAllKeys_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for _, k := range AllKeys() {
		assert.False(t, seen[k], "duplicate key %s", k)
		seen[k] = true
	}
}
