// Copyright (c) 2026 Portmaster Team
// Portmaster - serial connection manager
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/toeirei/portmaster/core"
	"github.com/toeirei/portmaster/core/model"
)

// newConnectionCmd is the root command for connection operations.
func newConnectionCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "connection",
		Aliases: []string{"conn", "connections"},
		Short:   "Manage serial connections (list, add, edit, delete)",
		Long: `The 'connection' command group manages the saved connection list:
  - List all connections with their store position
  - Add a new connection
  - Edit an existing connection by position (#n) or name
  - Delete a connection after confirmation`,
	}
	cmd.AddCommand(
		newConnectionListCmd(a),
		newConnectionAddCmd(a),
		newConnectionEditCmd(a),
		newConnectionDeleteCmd(a),
	)
	return cmd
}

func newConnectionListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all connections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.settings(cmd, core.Interactions{})
			if err != nil {
				return err
			}

			var conns []model.Connection
			s.View(func(snap core.Snapshot) {
				for _, c := range snap.Connections {
					conns = append(conns, *c)
				}
			})

			out := cmd.OutOrStdout()
			if len(conns) == 0 {
				fmt.Fprintln(out, "No connections found.")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "#\tNAME\tGROUP\tPORT\tBAUD")
			for i, c := range conns {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\n", i+1, c.Name, c.Group, c.Port, c.BaudRate)
			}
			return w.Flush()
		},
	}
}

func newConnectionAddCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a connection",
		Long:  `Create a connection from the default settings (115200 8N1) and the given flags. --name and --port are required.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.settings(cmd, core.Interactions{
				Editor: flagEditor{flags: cmd.Flags()},
			})
			if err != nil {
				return err
			}
			applied, err := s.CreateConnection(cmd.Context())
			name, _ := cmd.Flags().GetString("name")
			return reportResult(cmd, applied, err, "Connection created: "+name, "Nothing created.")
		},
	}
	addConnectionFlags(cmd.Flags())
	return cmd
}

func newConnectionEditCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <#n|name>",
		Short: "Edit a connection",
		Long:  `Change the fields of a connection. Only the flags that are given are applied; the connection keeps its position.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.settings(cmd, core.Interactions{
				Editor: flagEditor{flags: cmd.Flags(), requireChange: true},
			})
			if err != nil {
				return err
			}
			target, err := s.Find(args[0])
			if err != nil {
				return err
			}
			applied, err := s.EditConnection(cmd.Context(), target)
			return reportResult(cmd, applied, err, "Connection updated: "+target.String(), "No changes.")
		},
	}
	addConnectionFlags(cmd.Flags())
	return cmd
}

func newConnectionDeleteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <#n|name>",
		Short: "Delete a connection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			yes, _ := cmd.Flags().GetBool("yes")
			s, err := a.settings(cmd, core.Interactions{
				Confirmer: newTerminalUI(cmd, yes),
			})
			if err != nil {
				return err
			}
			target, err := s.Find(args[0])
			if err != nil {
				return err
			}
			name := target.String()
			applied, err := s.DeleteConnection(cmd.Context(), target)
			return reportResult(cmd, applied, err, "Connection deleted: "+name, "Deletion cancelled.")
		},
	}
	cmd.Flags().BoolP("yes", "y", false, "Skip confirmation prompt")
	return cmd
}
