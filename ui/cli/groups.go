// Copyright (c) 2026 Portmaster Team
// Portmaster - serial connection manager
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toeirei/portmaster/core"
	"github.com/toeirei/portmaster/core/model"
	"github.com/toeirei/portmaster/i18n"
)

func newGroupCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "group",
		Aliases: []string{"groups"},
		Short:   "Manage connection groups (list, rename, delete)",
		Long: `Groups are derived from the group field of each connection. Renaming
a group moves all its connections; deleting a group ungroups them but keeps
every connection.`,
	}
	cmd.AddCommand(newGroupListCmd(a), newGroupRenameCmd(a), newGroupDeleteCmd(a))
	return cmd
}

func groupLabel(g model.Group) string {
	if g.IsUngrouped() {
		return i18n.T("connections.ungrouped")
	}
	return g.Name
}

func lookupGroup(s *core.Settings, name string) (model.Group, error) {
	g, ok := s.Group(core.NormalizeGroupName(name))
	if !ok {
		return g, fmt.Errorf("group %q: %w", name, core.ErrNotFound)
	}
	return g, nil
}

func newGroupListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List groups and their connections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.settings(cmd, core.Interactions{})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			s.View(func(snap core.Snapshot) {
				if len(snap.Groups) == 0 {
					fmt.Fprintln(out, "No connections found.")
					return
				}
				position := make(map[*model.Connection]int, len(snap.Connections))
				for i, c := range snap.Connections {
					position[c] = i + 1
				}
				for _, g := range snap.Groups {
					fmt.Fprintf(out, "%s (%d)\n", groupLabel(g), len(g.Connections))
					for _, c := range g.Connections {
						fmt.Fprintf(out, "  #%d  %s  %s\n", position[c], c.Name, c.Port)
					}
				}
			})
			return nil
		},
	}
}

func newGroupRenameCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <name> [new-name]",
		Short: "Rename a group",
		Long:  `Rename a group. Without new-name the new name is read from the terminal; an empty answer changes nothing.`,
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var prompter core.Prompter = newTerminalUI(cmd, false)
			if len(args) == 2 {
				prompter = fixedPrompter{value: args[1]}
			}
			s, err := a.settings(cmd, core.Interactions{Prompter: prompter})
			if err != nil {
				return err
			}
			g, err := lookupGroup(s, args[0])
			if err != nil {
				return err
			}
			applied, err := s.EditGroup(cmd.Context(), g)
			return reportResult(cmd, applied, err, "Group renamed: "+groupLabel(g), "Rename cancelled.")
		},
	}
}

func newGroupDeleteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a group, keeping its connections",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			yes, _ := cmd.Flags().GetBool("yes")
			s, err := a.settings(cmd, core.Interactions{Confirmer: newTerminalUI(cmd, yes)})
			if err != nil {
				return err
			}
			g, err := lookupGroup(s, args[0])
			if err != nil {
				return err
			}
			applied, err := s.DeleteGroup(cmd.Context(), g)
			return reportResult(cmd, applied, err, "Group deleted: "+groupLabel(g), "Deletion cancelled.")
		},
	}
	cmd.Flags().BoolP("yes", "y", false, "Skip confirmation prompt")
	return cmd
}
