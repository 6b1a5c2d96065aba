// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	envparse "github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/midscene-shared/internal/env"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Flag is a boolean setting parsed with [env.ToBoolean], so "no" and "0" are
// false and any other non-empty value is true.
type Flag bool

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Flag) UnmarshalText(text []byte) error {
	*f = Flag(env.ToBoolean(string(text)))
	return nil
}

// Settings is a typed view of the global keys as resolved by
// [Manager.Get].
//
// Struct tags:
//   - env      — key read from the resolved values (caarlos0/env).
//   - validate — constraints checked after parsing (go-playground/validator).
type Settings struct {
	// DebugMode enables verbose diagnostics.
	// Env: MIDSCENE_DEBUG_MODE
	DebugMode Flag `env:"MIDSCENE_DEBUG_MODE" yaml:"debug_mode"`

	// DebugAIProfile logs model call timings.
	// Env: MIDSCENE_DEBUG_AI_PROFILE
	DebugAIProfile Flag `env:"MIDSCENE_DEBUG_AI_PROFILE" yaml:"debug_ai_profile"`

	// DebugAIResponse logs raw model responses.
	// Env: MIDSCENE_DEBUG_AI_RESPONSE
	DebugAIResponse Flag `env:"MIDSCENE_DEBUG_AI_RESPONSE" yaml:"debug_ai_response"`

	// RunDir is the run directory name or absolute path.
	// Env: MIDSCENE_RUN_DIR
	RunDir string `env:"MIDSCENE_RUN_DIR" envDefault:"midscene_run" yaml:"run_dir" validate:"required"`

	Cache               Flag `env:"MIDSCENE_CACHE" yaml:"cache"`
	LangsmithDebug      Flag `env:"MIDSCENE_LANGSMITH_DEBUG" yaml:"langsmith_debug"`
	ForceDeepThink      Flag `env:"MIDSCENE_FORCE_DEEP_THINK" yaml:"force_deep_think"`
	MCPUsePuppeteerMode Flag `env:"MIDSCENE_MCP_USE_PUPPETEER_MODE" yaml:"mcp_use_puppeteer_mode"`
	MCPAndroidMode      Flag `env:"MIDSCENE_MCP_ANDROID_MODE" yaml:"mcp_android_mode"`

	// CacheMaxFilenameLength caps cache file names. Zero means no limit.
	// Env: MIDSCENE_CACHE_MAX_FILENAME_LENGTH
	CacheMaxFilenameLength int `env:"MIDSCENE_CACHE_MAX_FILENAME_LENGTH" yaml:"cache_max_filename_length" validate:"gte=0"`

	// ReplanningCycleLimit bounds replanning rounds. Zero means the caller's
	// default.
	// Env: MIDSCENE_REPLANNING_CYCLE_LIMIT
	ReplanningCycleLimit int `env:"MIDSCENE_REPLANNING_CYCLE_LIMIT" yaml:"replanning_cycle_limit" validate:"gte=0"`

	DockerContainer   string `env:"DOCKER_CONTAINER" yaml:"docker_container"`
	MCPChromePath     string `env:"MIDSCENE_MCP_CHROME_PATH" yaml:"mcp_chrome_path"`
	ReportTagName     string `env:"MIDSCENE_REPORT_TAG_NAME" yaml:"report_tag_name" validate:"omitempty,max=128"`
	PreferredLanguage string `env:"MIDSCENE_PREFERRED_LANGUAGE" yaml:"preferred_language" validate:"omitempty,max=64"`
}

// Settings resolves every global key through [Manager.Get] and parses the
// result into a validated [Settings]. Failures wrap [ErrInvalidSettings].
func (m *Manager) Settings() (Settings, error) {
	resolved := make(map[string]string)
	for _, key := range env.GlobalKeys() {
		if v, ok := m.Get(key); ok {
			resolved[key] = v
		}
	}

	var s Settings
	if err := envparse.ParseWithOptions(&s, envparse.Options{Environment: resolved}); err != nil {
		return Settings{}, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}

	if err := validate.Struct(s); err != nil {
		return Settings{}, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}

	return s, nil
}
