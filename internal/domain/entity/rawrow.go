package entity

// RawRow maps a CSV column header to its raw string value for one parsed
// line. Rows are ephemeral: they exist between parsing and type-specific
// filtering and are never persisted.
type RawRow map[string]string
