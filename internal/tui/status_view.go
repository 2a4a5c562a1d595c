// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The GeneTree-Z Authors

package tui

import "github.com/jsdr97/GeneTree-Z/models"

func renderStatus(s models.LifecycleStatus, spin string) string {
	if !s.Visible() {
		return ""
	}

	switch s.Kind {
	case models.StatusPending:
		return pendingStyle.Render(spin + " " + s.Message)
	case models.StatusSuccess:
		return successStyle.Render("✓ " + s.Message)
	case models.StatusError:
		return errorStyle.Render("✗ " + s.Message)
	default:
		return s.Message
	}
}
