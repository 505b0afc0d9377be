// Copyright (c) 2026 Portmaster Team
// Portmaster - serial connection manager
// This source code is licensed under the MIT license found in the LICENSE file.

package model

// Ungrouped is the canonical group key of connections that belong to no group.
const Ungrouped = ""

// Default values used when a new connection is created.
const (
	DefaultBaudRate = 115200
	DefaultDataBits = 8
	DefaultParity   = "none"
	DefaultStopBits = 1
)

// Connection is one serial-port configuration entry. Apart from Name and
// Group, every field is opaque to Portmaster and passed through unchanged.
type Connection struct {
	Name     string  `json:"name" yaml:"name" mapstructure:"name"`
	Group    string  `json:"group,omitempty" yaml:"group,omitempty" mapstructure:"group"`
	Port     string  `json:"port" yaml:"port" mapstructure:"port"`
	BaudRate int     `json:"baudrate" yaml:"baudrate" mapstructure:"baudrate"`
	DataBits int     `json:"databits" yaml:"databits" mapstructure:"databits"`
	Parity   string  `json:"parity" yaml:"parity" mapstructure:"parity"`
	StopBits float64 `json:"stopbits" yaml:"stopbits" mapstructure:"stopbits"`
	RTSCTS   bool    `json:"rtscts" yaml:"rtscts" mapstructure:"rtscts"`
	XON      bool    `json:"xon" yaml:"xon" mapstructure:"xon"`
	XOFF     bool    `json:"xoff" yaml:"xoff" mapstructure:"xoff"`
	XANY     bool    `json:"xany" yaml:"xany" mapstructure:"xany"`
}

// NewConnection returns the seed record offered when a user creates a
// connection: no name, no group, 115200 8N1 without flow control.
func NewConnection() Connection {
	return Connection{
		BaudRate: DefaultBaudRate,
		DataBits: DefaultDataBits,
		Parity:   DefaultParity,
		StopBits: DefaultStopBits,
	}
}

// IsUngrouped reports whether the connection belongs to no group.
func (c Connection) IsUngrouped() bool {
	return c.Group == Ungrouped
}

// String returns the display name, falling back to the port.
func (c Connection) String() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Port
}

// Group is a derived bucket of connections sharing the same group key. It is
// never persisted; Connections are references into the record store.
type Group struct {
	Name        string
	Connections []*Connection
}

// IsUngrouped reports whether this is the implicit bucket of ungrouped
// connections.
func (g Group) IsUngrouped() bool {
	return g.Name == Ungrouped
}
