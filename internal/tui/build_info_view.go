// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/char-archive/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, serverVersion string) string {
	var b strings.Builder

	b.WriteString(field("App", "Character Archive"))
	b.WriteString("\n")
	b.WriteString(field("Version", valueOrNA(info.BuildVersion())))
	b.WriteString("\n")
	b.WriteString(field("Date", valueOrNA(info.BuildDate())))
	b.WriteString("\n")
	b.WriteString(field("Commit", valueOrNA(info.BuildCommit())))
	b.WriteString("\n")
	b.WriteString(field("Server", valueOrNA(serverVersion)))

	return renderPage("ABOUT", b.String(), "esc: back")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
