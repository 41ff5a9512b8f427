package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/storefront/pkg/notifications"
)

const (
	formatYAML = "yaml"
	formatJSON = "json"
)

// printer writes command results in the selected format.
type printer struct {
	w      io.Writer
	format string
}

func (p printer) print(v any) error {
	switch p.format {
	case formatJSON:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML, "":
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, p.format)
	}
}

// printNotifications writes the pending notifications one per line.
func printNotifications(w io.Writer, list []notifications.Notification) {
	for _, n := range list {
		if n.Title != "" {
			fmt.Fprintf(w, "[%s] %s: %s\n", n.Type, n.Title, n.Message)
			continue
		}
		fmt.Fprintf(w, "[%s] %s\n", n.Type, n.Message)
	}
}
