package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output formats accepted by --output.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrBadOutput is returned for an unknown --output value.
var ErrBadOutput = errors.New("cli: unknown output format")

// texter is a report with a plain text rendering.
type texter interface {
	Text() string
}

func checkFormat(format string) error {
	switch format {
	case FormatText, FormatJSON, FormatYAML:
		return nil
	}

	return fmt.Errorf("%w: %q", ErrBadOutput, format)
}

// render writes v to w in the requested format.
func render(w io.Writer, format string, v texter) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err := io.WriteString(w, v.Text())
		return err
	}
}

// table formats aligned "key: value" lines.
type table struct {
	sb strings.Builder
}

func (t *table) row(key string, value any) {
	fmt.Fprintf(&t.sb, "%-18s %v\n", key+":", value)
}

func (t *table) String() string { return t.sb.String() }
