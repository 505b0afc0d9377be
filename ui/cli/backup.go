// Copyright (c) 2026 Portmaster Team
// Portmaster - serial connection manager
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/toeirei/portmaster/core"
	"github.com/toeirei/portmaster/core/model"
)

func newBackupCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export or import the connection list",
		Long:  `Backups are zstd-compressed JSON files holding every connection.`,
	}
	cmd.AddCommand(newBackupExportCmd(a), newBackupImportCmd(a))
	return cmd
}

func newBackupExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write all connections to a backup file",
		Args:  cobra.ExactArgs(1),
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

			f, err := os.OpenFile(args[0], os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
			if err != nil {
				return fmt.Errorf("could not create backup file: %w", err)
			}
			if err := core.WriteBackup(f, conns); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d connections to %s\n", len(conns), args[0])
			return nil
		},
	}
}

func newBackupImportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Restore connections from a backup file",
		Long: `Restore connections from a backup. By default the backup is appended to
the current list; --full replaces the whole list.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			yes, _ := cmd.Flags().GetBool("yes")
			full, _ := cmd.Flags().GetBool("full")

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("could not open backup file: %w", err)
			}
			defer func() { _ = f.Close() }()
			data, err := core.ReadBackup(f)
			if err != nil {
				return err
			}

			s, err := a.settings(cmd, core.Interactions{Confirmer: newTerminalUI(cmd, yes)})
			if err != nil {
				return err
			}
			applied, err := s.Restore(cmd.Context(), data, core.RestoreOptions{Full: full})
			done := fmt.Sprintf("Restored %d connections", len(data.Connections))
			return reportResult(cmd, applied, err, done, "Restore cancelled.")
		},
	}
	cmd.Flags().Bool("full", false, "Replace all existing connections instead of appending")
	cmd.Flags().BoolP("yes", "y", false, "Skip confirmation prompt")
	return cmd
}
