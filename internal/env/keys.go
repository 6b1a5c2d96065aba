// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package env

import "slices"

// Recognized environment keys. Names are case-sensitive.
const (
	MidsceneDebugMode       = "MIDSCENE_DEBUG_MODE"
	MidsceneDebugAIProfile  = "MIDSCENE_DEBUG_AI_PROFILE"
	MidsceneDebugAIResponse = "MIDSCENE_DEBUG_AI_RESPONSE"
	MidsceneRunDir          = "MIDSCENE_RUN_DIR"

	MidsceneCache               = "MIDSCENE_CACHE"
	MidsceneLangsmithDebug      = "MIDSCENE_LANGSMITH_DEBUG"
	MidsceneForceDeepThink      = "MIDSCENE_FORCE_DEEP_THINK"
	MidsceneMCPUsePuppeteerMode = "MIDSCENE_MCP_USE_PUPPETEER_MODE"
	MidsceneMCPAndroidMode      = "MIDSCENE_MCP_ANDROID_MODE"

	MidsceneCacheMaxFilenameLength = "MIDSCENE_CACHE_MAX_FILENAME_LENGTH"
	MidsceneReplanningCycleLimit   = "MIDSCENE_REPLANNING_CYCLE_LIMIT"

	DockerContainer           = "DOCKER_CONTAINER"
	MidsceneMCPChromePath     = "MIDSCENE_MCP_CHROME_PATH"
	MidsceneReportTagName     = "MIDSCENE_REPORT_TAG_NAME"
	MidscenePreferredLanguage = "MIDSCENE_PREFERRED_LANGUAGE"

	MidsceneModelName          = "MIDSCENE_MODEL_NAME"
	MidsceneVQAModelName       = "MIDSCENE_VQA_MODEL_NAME"
	MidscenePlanningModelName  = "MIDSCENE_PLANNING_MODEL_NAME"
	MidsceneGroundingModelName = "MIDSCENE_GROUNDING_MODEL_NAME"
	MidsceneOpenAIAPIKey       = "MIDSCENE_OPENAI_API_KEY"
	MidsceneOpenAIBaseURL      = "MIDSCENE_OPENAI_BASE_URL"
	OpenAIAPIKey               = "OPENAI_API_KEY"
	OpenAIBaseURL              = "OPENAI_BASE_URL"

	MidsceneOpenAIInitConfigJSON      = "MIDSCENE_OPENAI_INIT_CONFIG_JSON"
	MidsceneDangerouslyPrintAllConfig = "MIDSCENE_DANGEROUSLY_PRINT_ALL_CONFIG"

	// CI is set by most continuous-integration runners.
	CI = "CI"
)

var (
	basicKeys = []string{
		MidsceneDebugMode,
		MidsceneDebugAIProfile,
		MidsceneDebugAIResponse,
		MidsceneRunDir,
	}

	booleanKeys = []string{
		MidsceneCache,
		MidsceneLangsmithDebug,
		MidsceneForceDeepThink,
		MidsceneMCPUsePuppeteerMode,
		MidsceneMCPAndroidMode,
	}

	numberKeys = []string{
		MidsceneCacheMaxFilenameLength,
		MidsceneReplanningCycleLimit,
	}

	stringKeys = []string{
		DockerContainer,
		MidsceneMCPChromePath,
		MidsceneReportTagName,
		MidscenePreferredLanguage,
	}

	modelKeys = []string{
		MidsceneModelName,
		MidsceneVQAModelName,
		MidscenePlanningModelName,
		MidsceneGroundingModelName,
		MidsceneOpenAIAPIKey,
		MidsceneOpenAIBaseURL,
		OpenAIAPIKey,
		OpenAIBaseURL,
	}

	unusedKeys = []string{
		MidsceneOpenAIInitConfigJSON,
		MidsceneDangerouslyPrintAllConfig,
	}

	globalKeys = slices.Concat(basicKeys, booleanKeys, numberKeys, stringKeys)
	allKeys    = slices.Concat(globalKeys, modelKeys, unusedKeys)
)

// BasicKeys returns the allow-list of keys that are copied into a new
// configuration store and may be read through [Accessor.BasicValue].
func BasicKeys() []string { return slices.Clone(basicKeys) }

// BooleanKeys returns the keys whose values are flags.
func BooleanKeys() []string { return slices.Clone(booleanKeys) }

// NumberKeys returns the keys whose values are integers.
func NumberKeys() []string { return slices.Clone(numberKeys) }

// StringKeys returns the free-form string keys.
func StringKeys() []string { return slices.Clone(stringKeys) }

// GlobalKeys returns basic, boolean, number and string keys.
func GlobalKeys() []string { return slices.Clone(globalKeys) }

// ModelKeys returns the keys that select and reach a model provider.
func ModelKeys() []string { return slices.Clone(modelKeys) }

// AllKeys returns every declared key.
func AllKeys() []string { return slices.Clone(allKeys) }

// IsBasicKey reports whether key is on the basic allow-list.
func IsBasicKey(key string) bool { return slices.Contains(basicKeys, key) }

// IsBooleanKey reports whether key holds a flag.
func IsBooleanKey(key string) bool { return slices.Contains(booleanKeys, key) }
