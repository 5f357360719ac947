// File: format.go
// Title: Log Line Formatting
// Description: Expands "{}" message templates and renders entries as console
//              lines or JSON objects.
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-12
//
// Change History:
// - 2026-09-28 v0.1.0: Line formatter and template expansion
// - 2026-10-12 v0.2.0: JSON formatter for log shippers

package log

import (
	"encoding/json"
	"fmt"
	"strings"
)

// TimestampFormat is ISO-8601 in UTC with millisecond precision
const TimestampFormat = "2006-01-02T15:04:05.000Z07:00"

// Placeholder is the template marker replaced by message arguments
const Placeholder = "{}"

// Format represents the output format for log lines
type Format int

const (
	// FormatLine renders "<timestamp> <LEVEL> <context> (<cid>) <message>"
	FormatLine Format = iota

	// FormatJSON renders one JSON object per line
	FormatJSON
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatLine:
		return "line"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a log format
func ParseFormat(format string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "line", "text":
		return FormatLine, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatLine, &ParseError{
			Input: format,
			Type:  "format",
		}
	}
}

// Formatter defines the interface for log formatters
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// GetFormatter returns the formatter for a format
func GetFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return JSONFormatter{}
	default:
		return LineFormatter{}
	}
}

// Expand replaces each "{}" of template, left to right, with the next argument.
// Arguments without a placeholder are dropped; placeholders without an argument
// are kept verbatim. Text produced by an argument is never rescanned.
func Expand(template string, args ...interface{}) string {
	if len(args) == 0 || !strings.Contains(template, Placeholder) {
		return template
	}

	var b strings.Builder
	b.Grow(len(template))

	rest := template
	for _, arg := range args {
		idx := strings.Index(rest, Placeholder)
		if idx < 0 {
			break
		}
		b.WriteString(rest[:idx])
		b.WriteString(fmt.Sprint(arg))
		rest = rest[idx+len(Placeholder):]
	}
	b.WriteString(rest)

	return b.String()
}

// LineFormatter renders the plain console line
type LineFormatter struct{}

// Format formats a log entry as a single text line
func (LineFormatter) Format(entry *Entry) ([]byte, error) {
	var b strings.Builder

	b.WriteString(entry.Timestamp.UTC().Format(TimestampFormat))
	b.WriteByte(' ')
	b.WriteString(entry.Level.String())
	b.WriteByte(' ')
	b.WriteString(entry.Context)
	if entry.CorrelationID != "" {
		b.WriteString(" (")
		b.WriteString(entry.CorrelationID)
		b.WriteByte(')')
	}
	if entry.Message != "" {
		b.WriteByte(' ')
		b.WriteString(entry.Message)
	}
	b.WriteByte('\n')

	return []byte(b.String()), nil
}

// JSONFormatter formats log entries as JSON
type JSONFormatter struct {
	// PrettyPrint enables indented JSON output
	PrettyPrint bool
}

// Format formats a log entry as JSON
func (f JSONFormatter) Format(entry *Entry) ([]byte, error) {
	data := map[string]interface{}{
		"timestamp": entry.Timestamp.UTC().Format(TimestampFormat),
		"level":     entry.Level.String(),
		"context":   entry.Context,
		"message":   entry.Message,
	}

	if entry.CorrelationID != "" {
		data["cid"] = entry.CorrelationID
	}

	var out []byte
	var err error
	if f.PrettyPrint {
		out, err = json.MarshalIndent(data, "", "  ")
	} else {
		out, err = json.Marshal(data)
	}
	if err != nil {
		return nil, err
	}

	return append(out, '\n'), nil
}
