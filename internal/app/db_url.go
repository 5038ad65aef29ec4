package app

import (
	"net/url"
	"strings"

	"github.com/xo/dburl"
)

func normalizeDBURL(raw string, disablePreparedBinaryResult bool) string {
	if !disablePreparedBinaryResult {
		return raw
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed == nil || parsed.Scheme == "" {
		return raw
	}

	query := parsed.Query()
	if query.Get("disable_prepared_binary_result") == "" {
		query.Set("disable_prepared_binary_result", "yes")
		parsed.RawQuery = query.Encode()
	}

	return parsed.String()
}

// dbNameFromURL accepts both URL and key=value DSN forms.
func dbNameFromURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if parsed, err := dburl.Parse(trimmed); err == nil {
		if name := strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/")); name != "" {
			return name
		}
	}

	for _, token := range strings.Fields(trimmed) {
		if !strings.HasPrefix(token, "dbname=") {
			continue
		}
		name := strings.TrimSpace(strings.TrimPrefix(token, "dbname="))
		name = strings.Trim(name, `"'`)
		if name != "" {
			return name
		}
	}

	return ""
}

// driverDSN turns scheme aliases such as pg:// or postgresql:// into the
// connection string lib/pq expects. Key=value DSNs pass through.
func driverDSN(raw string) string {
	trimmed := strings.TrimSpace(raw)
	parsed, err := dburl.Parse(trimmed)
	if err != nil || parsed.Driver != "postgres" {
		return trimmed
	}
	return parsed.DSN
}
