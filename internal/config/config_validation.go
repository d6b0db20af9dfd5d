// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validateServer checks the sections the archive server depends on.
func (cfg *StructuredConfig) validateServer() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if err := cfg.Storage.Files.validate(); err != nil {
		return err
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

// ValidateDatabase checks that a DSN is present. archivectl calls it
// after applying its own flags.
func (cfg *StructuredConfig) ValidateDatabase() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}
	return nil
}

func (f Files) validate() error {
	if f.BucketDir == "" || f.Bucket == "" {
		return fmt.Errorf("%w: bucket dir and bucket name are required", ErrInvalidStorageConfigs)
	}
	if _, err := url.ParseRequestURI(f.PublicBaseURL); err != nil {
		return fmt.Errorf("%w: public base url: %w", ErrInvalidStorageConfigs, err)
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.Bucket == "" || cfg.Storage.SessionFile == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.RefreshInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
