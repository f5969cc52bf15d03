package waypoint

import "net/url"

// LogMaskVal stands in for sensitive values in log messages.
const LogMaskVal = "xxxxxx"

// Mask replaces the values paired to key in vals with LogMaskVal.
//
// Multiple values are squashed down to a single masked value.
func Mask(vals url.Values, key string) {
	if _, ok := vals[key]; !ok {
		return
	}

	vals[key] = []string{LogMaskVal}
}
