package apidisco

import "net/url"

// CanonicalURL normalizes a URL for de-duplication by stripping the query
// string and fragment. The canonical form, not the original, is what the
// engine stores and emits.
//
// The parse is best-effort: input that cannot be parsed is returned
// unchanged. The function is pure and idempotent.
func CanonicalURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	u.RawQuery = ""
	u.ForceQuery = false
	u.Fragment = ""
	u.RawFragment = ""
	return u.String()
}
