// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envPrefix is prepended to every environment variable lookup, so the
// full names read COROS_USERNAME, COROS_API_URL, COROS_STORAGE_DB etc.
const envPrefix = "COROS_"

// parseEnv populates cfg from environment variables using the
// caarlos0/env library. Struct fields are mapped via their `env` and
// `envPrefix` tags defined on [StructuredConfig] and its nested types.
func parseEnv(cfg *StructuredConfig) error {
	err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
