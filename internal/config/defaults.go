// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"
)

// DefaultBucket is the object bucket holding character images.
const DefaultBucket = "character-assets"

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "char-archive",
			TokenDuration: 24 * time.Hour,
			Version:       "dev",
		},
		Storage: Storage{
			Files: Files{
				BucketDir:     filepath.Join("data", "bucket"),
				Bucket:        DefaultBucket,
				PublicBaseURL: "http://localhost:8080",
			},
			SessionFile: defaultSessionFile(),
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Workers: Workers{
			RefreshInterval:      time.Minute,
			SessionSweepInterval: time.Hour,
		},
	}
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".char-archive-session"
	}
	return filepath.Join(dir, "char-archive", "session")
}
