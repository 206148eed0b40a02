// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// maxBcryptCost mirrors bcrypt.MaxCost; duplicated here so the config
// package does not depend on the crypto stack.
const maxBcryptCost = 31

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.App.BcryptCost < 0 || cfg.App.BcryptCost > maxBcryptCost {
		return ErrInvalidAppConfigs
	}

	return nil
}
