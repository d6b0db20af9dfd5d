// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It restores the admin session, keeps the cached character list fresh
// with a background refresh job and runs the terminal UI gallery until
// the user quits.
package client
