package app

import (
	"net/url"
	"strings"
)

// dbTarget is a parsed DB_URL. Both postgres:// URLs and key=value DSNs are
// accepted.
type dbTarget struct {
	dsn  string
	name string
	// redacted is safe to log.
	redacted string
}

func parseDBTarget(raw string, disablePreparedBinaryResult bool) dbTarget {
	raw = strings.TrimSpace(raw)
	dsn := normalizeDBURL(raw, disablePreparedBinaryResult)
	return dbTarget{
		dsn:      dsn,
		name:     dbNameFromURL(dsn),
		redacted: redactDBURL(dsn),
	}
}

// normalizeDBURL sets disable_prepared_binary_result=yes, which transaction
// poolers in front of postgres need. An explicit value is kept.
func normalizeDBURL(raw string, disablePreparedBinaryResult bool) string {
	if !disablePreparedBinaryResult {
		return raw
	}

	parsed, ok := parseURL(raw)
	if !ok {
		return raw
	}
	query := parsed.Query()
	if query.Has("disable_prepared_binary_result") {
		return raw
	}
	query.Set("disable_prepared_binary_result", "yes")
	parsed.RawQuery = query.Encode()
	return parsed.String()
}

func dbNameFromURL(raw string) string {
	if parsed, ok := parseURL(raw); ok {
		if name := strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/")); name != "" {
			return name
		}
	}
	return dsnValue(raw, "dbname")
}

func redactDBURL(raw string) string {
	if parsed, ok := parseURL(raw); ok {
		if _, hasPassword := parsed.User.Password(); hasPassword {
			parsed.User = url.UserPassword(parsed.User.Username(), "xxxxx")
		}
		return parsed.String()
	}

	fields := strings.Fields(raw)
	for i, token := range fields {
		if strings.HasPrefix(token, "password=") {
			fields[i] = "password=xxxxx"
		}
	}
	return strings.Join(fields, " ")
}

func parseURL(raw string) (*url.URL, bool) {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || parsed == nil || parsed.Scheme == "" {
		return nil, false
	}
	return parsed, true
}

func dsnValue(raw, key string) string {
	for _, token := range strings.Fields(raw) {
		value, ok := strings.CutPrefix(token, key+"=")
		if !ok {
			continue
		}
		if value = strings.Trim(strings.TrimSpace(value), `"'`); value != "" {
			return value
		}
	}
	return ""
}
