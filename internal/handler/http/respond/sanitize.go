package respond

import "regexp"

// dbPasswordPattern matches the credentials section of a DSN.
var dbPasswordPattern = regexp.MustCompile(`://([^:]+):([^@]+)@`)

// SanitizeError returns the error message with credentials masked,
// suitable for log output.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return dbPasswordPattern.ReplaceAllString(err.Error(), "://$1:****@")
}
