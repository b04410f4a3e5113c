package sanitizer

import "strings"

// NormalizeEmail trims and lowercases an address and collapses repeated
// dots in the local part. Inputs without exactly one "@" are only trimmed
// and lowercased.
func NormalizeEmail(email string) string {
	email = ToLower(Trim(email))

	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return email
	}

	local = dotRegex.ReplaceAllString(local, ".")
	local = strings.Trim(local, ".")

	return local + "@" + domain
}
