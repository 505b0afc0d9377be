// Copyright (c) 2026 Portmaster Team
// Portmaster - serial connection manager
// This source code is licensed under the MIT license found in the LICENSE file.

package header

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/portmaster/ui/tui/models/components/stack"
	"github.com/toeirei/portmaster/ui/tui/util"
)

var SizeConfig = &sizeConfig{}

type sizeConfig struct{}

var _ stack.SizeConfig = (*sizeConfig)(nil)

func (s *sizeConfig) Priority() int { return 10 }

// Calculate hides the header on short terminals so the list keeps at least
// ten rows.
func (s *sizeConfig) Calculate(model util.Model, _ int, totalSize int) int {
	header, ok := model.(*Model)
	if !ok {
		return 0
	}
	height := lipgloss.Height(header.View())
	if totalSize >= 10+height {
		return height
	}
	return 0
}
