package model

import "strings"

// Record IDs cross the API boundary in SurrealDB's native "table:identifier"
// encoding. Handlers and services treat them as opaque strings but reject
// anything that is not shaped like an ID for the expected table before it
// reaches a query.

// IsValidRecordID reports whether id has the form "table:identifier" for
// the given table. The identifier must match SurrealDB's plain record-id
// grammar (ASCII letters, digits, underscores) or be a ⟨⟩-escaped string,
// so anything that passes can be handed to type::record() without the
// store rejecting it as malformed.
func IsValidRecordID(id, table string) bool {
	prefix := table + ":"
	if !strings.HasPrefix(id, prefix) {
		return false
	}
	ident := id[len(prefix):]
	if ident == "" {
		return false
	}
	if strings.HasPrefix(ident, "⟨") && strings.HasSuffix(ident, "⟩") {
		inner := strings.TrimSuffix(strings.TrimPrefix(ident, "⟨"), "⟩")
		return inner != "" && !strings.ContainsAny(inner, "⟨⟩")
	}
	for _, c := range ident {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_':
		default:
			return false
		}
	}
	return true
}
