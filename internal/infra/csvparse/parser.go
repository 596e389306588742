// Package csvparse turns raw delimited text into header-keyed rows.
//
// The parser is deliberately forgiving: the government CSV exports this
// service consumes are hand-maintained and occasionally carry short or
// long lines. Rows whose field count does not match the header are
// silently dropped rather than guessed at.
package csvparse

import (
	"strings"

	"ruraldata/internal/domain/entity"
)

// Parser converts CSV text into ordered RawRow sequences. It holds no
// state between calls; re-invoking on the same text is the only way to
// restart iteration.
type Parser struct {
	// Separator is the field delimiter. Defaults to ',' via NewParser.
	Separator rune
}

// NewParser returns a comma-separated Parser.
func NewParser() *Parser {
	return &Parser{Separator: ','}
}

// Parse splits text into rows keyed by the first non-blank line's fields.
// A double quote toggles "inside quoted field" state, so separators inside
// quotes are literal; quote characters are stripped from output values.
// Rows whose field count differs from the header's are dropped.
//
// Returns a ParseError when the text contains no header line.
func (p *Parser) Parse(text string) ([]entity.RawRow, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	var header []string
	start := 0
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		header = p.splitLine(line)
		start = i + 1
		break
	}
	if header == nil {
		return nil, &entity.ParseError{Reason: "no header line in content"}
	}

	rows := make([]entity.RawRow, 0, len(lines)-start)
	for _, line := range lines[start:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := p.splitLine(line)
		if len(fields) != len(header) {
			continue
		}
		row := make(entity.RawRow, len(header))
		for i, name := range header {
			row[name] = fields[i]
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// splitLine splits one CSV line on the separator, honoring double quotes.
func (p *Parser) splitLine(line string) []string {
	var (
		fields   []string
		field    strings.Builder
		inQuotes bool
	)
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == p.Separator && !inQuotes:
			fields = append(fields, strings.TrimSpace(field.String()))
			field.Reset()
		default:
			field.WriteRune(r)
		}
	}
	fields = append(fields, strings.TrimSpace(field.String()))
	return fields
}
