package weetools

import "strings"

// splitCSV splits by comma and trims spaces; ignores empty items.
func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.TrimSpace(p)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// sanitizeIdent allows only letters, digits, underscore and dot.
func sanitizeIdent(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '.' {
			continue
		}
		return false
	}
	return true
}

// quoteIdent quotes a possibly schema-qualified identifier with double
// quotes (JSONB predicates are Postgres territory). It assumes the parts
// already passed sanitizeIdent.
func quoteIdent(ident string) string {
	parts := strings.Split(ident, ".")
	for i, p := range parts {
		p = strings.ReplaceAll(p, "\"", "\"\"")
		parts[i] = "\"" + p + "\""
	}
	return strings.Join(parts, ".")
}

// normalizeDriver normalizes common driver aliases to canonical names.
func normalizeDriver(d string) string {
	switch strings.ToLower(d) {
	case "pg", "postgresql":
		return "postgres"
	case "mariadb":
		return "mysql"
	case "sqlite3":
		return "sqlite"
	case "mssql":
		return "sqlserver"
	default:
		return strings.ToLower(d)
	}
}
