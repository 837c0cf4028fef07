package db

import (
	"regexp"
	"strings"
)

// Driver names the gorm dialect used for the export journal.
type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

var (
	kvPairRegex   = regexp.MustCompile(`(?i)\b(host|user|password|dbname|port|sslmode)=`)
	passwordRegex = regexp.MustCompile(`(?i)(password=)([^\s]+)`)
	urlPassRegex  = regexp.MustCompile(`(://[^:/@]+:)([^@]+)(@)`)
)

// NormalizeDSN trims quotes and whitespace. A postgres key=value list gets
// its spaces collapsed and sslmode=disable appended when missing.
func NormalizeDSN(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.Trim(s, "\"'")
	if s == "" || isPostgresURL(s) || !kvPairRegex.MatchString(s) {
		return s
	}
	cleaned := strings.Join(strings.Fields(s), " ")
	if !strings.Contains(strings.ToLower(cleaned), "sslmode=") {
		cleaned += " sslmode=disable"
	}
	return cleaned
}

// DetectDriver picks postgres for URL or key=value DSNs and sqlite for
// everything else (including an empty DSN).
func DetectDriver(dsn string) Driver {
	if isPostgresURL(dsn) || kvPairRegex.MatchString(dsn) {
		return DriverPostgres
	}
	return DriverSQLite
}

// MaskDSN hides the password for log output.
func MaskDSN(dsn string) string {
	masked := passwordRegex.ReplaceAllString(dsn, `${1}***`)
	return urlPassRegex.ReplaceAllString(masked, `${1}***${3}`)
}

func isPostgresURL(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://")
}
