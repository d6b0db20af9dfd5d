// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoArchiveRouter = errors.New("archive HTTP router is not configured")
	errNoListenAddress = errors.New("archive HTTP listen address is empty")
)
