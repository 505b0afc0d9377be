// Copyright (c) 2026 Portmaster Team
// Portmaster - serial connection manager
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/toeirei/portmaster/core"
	"github.com/toeirei/portmaster/core/model"
	"github.com/toeirei/portmaster/i18n"
	"golang.org/x/term"
)

// terminalUI answers prompts and confirmations on a line-oriented terminal.
type terminalUI struct {
	in          *bufio.Reader
	out         io.Writer
	assumeYes   bool
	interactive bool
}

func newTerminalUI(cmd *cobra.Command, assumeYes bool) *terminalUI {
	in := cmd.InOrStdin()
	interactive := false
	if f, ok := in.(*os.File); ok {
		interactive = term.IsTerminal(int(f.Fd()))
	}
	return &terminalUI{
		in:          bufio.NewReader(in),
		out:         cmd.OutOrStdout(),
		assumeYes:   assumeYes,
		interactive: interactive,
	}
}

func (t *terminalUI) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	line, err := t.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Prompt reads one line. End of input is a cancellation.
func (t *terminalUI) Prompt(ctx context.Context, req core.PromptRequest) (core.Result[core.PromptResponse], error) {
	if req.Value != "" {
		fmt.Fprintf(t.out, "%s [%s]: ", req.Label, req.Value)
	} else {
		fmt.Fprintf(t.out, "%s: ", req.Label)
	}
	line, err := t.readLine(ctx)
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(t.out)
		return core.Cancelled[core.PromptResponse](), nil
	}
	if err != nil {
		return core.Result[core.PromptResponse]{}, err
	}
	return core.Done(core.PromptResponse{Value: line}), nil
}

// Confirm returns the default button under --yes. Otherwise the answer may
// be a button label or y/yes for the default button; anything else,
// including end of input, picks button 0.
func (t *terminalUI) Confirm(ctx context.Context, req core.ConfirmRequest) (int, error) {
	if t.assumeYes {
		return req.DefaultButton, nil
	}

	hint := "y/N"
	if t.interactive && len(req.Buttons) > 0 {
		hint = strings.Join(req.Buttons, "/")
	}
	fmt.Fprintf(t.out, "%s (%s): ", req.Message, hint)

	line, err := t.readLine(ctx)
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(t.out)
		return core.ButtonKeep, nil
	}
	if err != nil {
		return core.ButtonKeep, err
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	if answer == "y" || answer == "yes" {
		return req.DefaultButton, nil
	}
	if i := slices.IndexFunc(req.Buttons, func(b string) bool {
		return strings.ToLower(b) == answer
	}); i >= 0 {
		return i, nil
	}
	return core.ButtonKeep, nil
}

// connectionFlags are the flag names accepted by add and edit; they match
// the mapstructure keys of model.Connection.
var connectionFlags = []string{
	"name", "group", "port", "baudrate", "databits", "parity", "stopbits",
	"rtscts", "xon", "xoff", "xany",
}

func addConnectionFlags(fs *pflag.FlagSet) {
	d := model.NewConnection()
	fs.String("name", "", "Connection name")
	fs.String("group", "", "Group name (empty for none)")
	fs.String("port", "", "Serial port, e.g. /dev/ttyUSB0 or COM3")
	fs.Int("baudrate", d.BaudRate, "Baud rate")
	fs.Int("databits", d.DataBits, "Data bits")
	fs.String("parity", d.Parity, "Parity (none, even, odd, mark, space)")
	fs.Float64("stopbits", d.StopBits, "Stop bits (1, 1.5, 2)")
	fs.Bool("rtscts", false, "RTS/CTS hardware flow control")
	fs.Bool("xon", false, "XON software flow control")
	fs.Bool("xoff", false, "XOFF software flow control")
	fs.Bool("xany", false, "XANY software flow control")
}

// flagEditor applies the explicitly set connection flags onto the seed.
// With requireChange, no set flag at all means the edit is cancelled.
type flagEditor struct {
	flags         *pflag.FlagSet
	requireChange bool
}

func (e flagEditor) EditConnection(ctx context.Context, req core.EditRequest) (core.Result[model.Connection], error) {
	changed := map[string]any{}
	for _, name := range connectionFlags {
		if f := e.flags.Lookup(name); f != nil && f.Changed {
			changed[name] = f.Value.String()
		}
	}
	if len(changed) == 0 && e.requireChange {
		return core.Cancelled[model.Connection](), nil
	}

	conn := req.Seed
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &conn,
	})
	if err != nil {
		return core.Result[model.Connection]{}, err
	}
	if err := dec.Decode(changed); err != nil {
		return core.Result[model.Connection]{}, fmt.Errorf("invalid connection flags: %w", err)
	}

	if strings.TrimSpace(conn.Name) == "" {
		return core.Result[model.Connection]{}, errors.New(i18n.T("connections.edit.required", i18n.T("connections.edit.name")))
	}
	if strings.TrimSpace(conn.Port) == "" {
		return core.Result[model.Connection]{}, errors.New(i18n.T("connections.edit.required", i18n.T("connections.edit.port")))
	}
	return core.Done(conn), nil
}

// fixedPrompter answers a prompt with a value given on the command line.
type fixedPrompter struct {
	value string
}

func (p fixedPrompter) Prompt(context.Context, core.PromptRequest) (core.Result[core.PromptResponse], error) {
	return core.Done(core.PromptResponse{Value: p.value}), nil
}

// reportResult turns a workflow outcome into command output.
func reportResult(cmd *cobra.Command, applied bool, err error, done, cancelled string) error {
	var perr *core.PersistError
	if errors.As(err, &perr) {
		fmt.Fprintln(cmd.OutOrStdout(), done)
		return errors.New(i18n.T("error.persist", perr.Err))
	}
	if err != nil {
		return err
	}
	if !applied {
		fmt.Fprintln(cmd.OutOrStdout(), cancelled)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), done)
	return nil
}
