// Copyright (c) 2026 Portmaster Team
// Portmaster - serial connection manager
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/toeirei/portmaster/core/model"
	"github.com/toeirei/portmaster/i18n"
	"github.com/toeirei/portmaster/internal/logging"
)

// Snapshot is the flat record list and the grouped view at one point in
// time. Both reference live records; read them through Settings.View when
// workflows may run concurrently.
type Snapshot struct {
	Connections []*model.Connection
	Groups      []model.Group
}

// RestoreOptions controls restore behavior used by Restore.
type RestoreOptions struct {
	// Full replaces the whole store (true) instead of appending (false).
	Full bool
}

// Settings owns the record store and runs the mutation workflows. A workflow
// asks its interaction collaborator first, then mutates the store, saves, and
// rebuilds the group index. Waiting for the user never holds the lock; on
// resume each workflow re-reads the live store.
type Settings struct {
	mu     sync.Mutex
	store  *Store
	groups []model.Group
	saver  Saver
	ui     Interactions
}

// NewSettings loads the connection list once and builds the group index.
func NewSettings(ctx context.Context, p Persistence, ui Interactions) (*Settings, error) {
	records, err := p.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load connections: %w", err)
	}
	s := &Settings{
		store: NewStore(records),
		saver: p,
		ui:    ui,
	}
	s.groups = GroupsOf(s.store.records)
	return s, nil
}

// Refresh rebuilds the group index and returns the current view.
func (s *Settings) Refresh() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.groups = GroupsOf(s.store.records)
	return s.snapshot()
}

// View calls fn with the current view while no workflow can mutate it.
func (s *Settings) View(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.snapshot())
}

func (s *Settings) snapshot() Snapshot {
	return Snapshot{
		Connections: s.store.Records(),
		Groups:      s.groups,
	}
}

// Find resolves a selector to a live record. An exact name wins; otherwise
// "#n" or "n" selects the n-th record (1-based).
func (s *Settings) Find(selector string) (*model.Connection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	selector = strings.TrimSpace(selector)
	var matches []*model.Connection
	for _, c := range s.store.records {
		if c.Name == selector {
			matches = append(matches, c)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
	default:
		return nil, fmt.Errorf("%w: %d connections named %q", ErrAmbiguous, len(matches), selector)
	}

	if pos, err := strconv.Atoi(strings.TrimPrefix(selector, "#")); err == nil {
		if pos >= 1 && pos <= len(s.store.records) {
			return s.store.records[pos-1], nil
		}
	}
	return nil, fmt.Errorf("connection %q: %w", selector, ErrNotFound)
}

// Group returns the current bucket for the given key.
func (s *Settings) Group(name string) (model.Group, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return FindGroup(s.groups, name)
}

// CreateConnection offers a default record to the editor and appends the
// result. A cancelled edit changes nothing.
func (s *Settings) CreateConnection(ctx context.Context) (bool, error) {
	res, err := s.ui.Editor.EditConnection(ctx, EditRequest{Seed: model.NewConnection()})
	if err != nil {
		return false, fmt.Errorf("edit connection: %w", err)
	}
	if res.Cancelled {
		return false, nil
	}

	return s.mutate(ctx, "create connection", func(st *Store) error {
		conn, err := normalizeConnection(res.Value)
		if err != nil {
			return err
		}
		st.Append(conn)
		return nil
	})
}

// EditConnection lets the user edit a copy of c and copies the result onto
// c's identity. A cancelled edit leaves c untouched.
func (s *Settings) EditConnection(ctx context.Context, c *model.Connection) (bool, error) {
	s.mu.Lock()
	if !s.store.Contains(c) {
		s.mu.Unlock()
		return false, ErrUnknownConnection
	}
	seed := *c
	s.mu.Unlock()

	res, err := s.ui.Editor.EditConnection(ctx, EditRequest{Seed: seed, Size: SizeLarge})
	if err != nil {
		return false, fmt.Errorf("edit connection: %w", err)
	}
	if res.Cancelled {
		return false, nil
	}

	return s.mutate(ctx, "edit connection", func(st *Store) error {
		conn, err := normalizeConnection(res.Value)
		if err != nil {
			return err
		}
		return st.ReplaceInPlace(c, conn)
	})
}

// DeleteConnection removes c after an explicit affirmative confirmation.
func (s *Settings) DeleteConnection(ctx context.Context, c *model.Connection) (bool, error) {
	s.mu.Lock()
	if !s.store.Contains(c) {
		s.mu.Unlock()
		return false, ErrUnknownConnection
	}
	name := c.Name
	s.mu.Unlock()

	ok, err := s.confirmDestructive(ctx, i18n.T("connections.delete_confirm.question", name), i18n.T("confirm.delete"))
	if err != nil || !ok {
		return false, err
	}

	return s.mutate(ctx, "delete connection", func(st *Store) error {
		return st.Remove(c)
	})
}

// EditGroup renames group g. Members are the records carrying g's key when
// the prompt resolves, not the members g held when it was opened. An empty
// answer counts as cancellation.
func (s *Settings) EditGroup(ctx context.Context, g model.Group) (bool, error) {
	res, err := s.ui.Prompter.Prompt(ctx, PromptRequest{
		Label: i18n.T("groups.rename.prompt"),
		Value: g.Name,
	})
	if err != nil {
		return false, fmt.Errorf("prompt group name: %w", err)
	}
	if res.Cancelled || res.Value.Value == "" {
		return false, nil
	}
	newName, err := ValidateGroupName(res.Value.Value)
	if err != nil {
		return false, err
	}
	if newName == model.Ungrouped {
		return false, nil
	}

	oldName := NormalizeGroupName(g.Name)
	return s.mutate(ctx, "rename group", func(st *Store) error {
		for _, c := range st.Matching(oldName) {
			c.Group = newName
		}
		return nil
	})
}

// DeleteGroup ungroups every record carrying g's key after confirmation.
// No record is removed.
func (s *Settings) DeleteGroup(ctx context.Context, g model.Group) (bool, error) {
	ok, err := s.confirmDestructive(ctx, i18n.T("groups.delete_confirm.question", g.Name), i18n.T("confirm.delete"))
	if err != nil || !ok {
		return false, err
	}

	oldName := NormalizeGroupName(g.Name)
	return s.mutate(ctx, "delete group", func(st *Store) error {
		for _, c := range st.Matching(oldName) {
			c.Group = model.Ungrouped
		}
		return nil
	})
}

// Restore loads connections from a backup after confirmation, either
// replacing the store or appending to it.
func (s *Settings) Restore(ctx context.Context, data model.BackupData, opts RestoreOptions) (bool, error) {
	conns := make([]model.Connection, 0, len(data.Connections))
	for _, c := range data.Connections {
		conn, err := normalizeConnection(c)
		if err != nil {
			return false, fmt.Errorf("restore %q: %w", c.Name, err)
		}
		conns = append(conns, conn)
	}

	ok, err := s.confirmDestructive(ctx, i18n.T("backup.restore_confirm.question", len(conns)), i18n.T("confirm.restore"))
	if err != nil || !ok {
		return false, err
	}

	return s.mutate(ctx, "restore connections", func(st *Store) error {
		if opts.Full {
			st.Replace(conns)
			return nil
		}
		for _, c := range conns {
			st.Append(c)
		}
		return nil
	})
}

func (s *Settings) confirmDestructive(ctx context.Context, message, affirm string) (bool, error) {
	idx, err := s.ui.Confirmer.Confirm(ctx, ConfirmRequest{
		Severity:      SeverityWarning,
		Message:       message,
		Buttons:       []string{i18n.T("confirm.keep"), affirm},
		DefaultButton: ButtonAffirm,
	})
	if err != nil {
		return false, fmt.Errorf("confirm: %w", err)
	}
	return idx == ButtonAffirm, nil
}

// mutate applies fn to the live store, then saves and rebuilds the index.
// If fn fails nothing is saved. A failed save keeps the mutation and is
// reported as *PersistError. Once fn has run the save is no longer tied to
// ctx's cancellation, so quitting right after a confirmation still persists.
func (s *Settings) mutate(ctx context.Context, op string, fn func(*Store) error) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(s.store); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	saveErr := s.saver.Save(context.WithoutCancel(ctx), s.store.Values())
	s.groups = GroupsOf(s.store.records)
	if saveErr != nil {
		logging.Errorf("%s: save failed: %v", op, saveErr)
		return true, &PersistError{Op: op, Err: saveErr}
	}

	logging.Debugf("%s: %d connections in %d groups", op, s.store.Len(), len(s.groups))
	return true, nil
}

func normalizeConnection(c model.Connection) (model.Connection, error) {
	group, err := ValidateGroupName(c.Group)
	if err != nil {
		return c, err
	}
	c.Group = group
	return c, nil
}
