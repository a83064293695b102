package request

import "net/url"

// The intake forms post flat urlencoded fields. Checkbox booleans arrive
// as field presence (absent = false), so presence is resolved here, at the
// parsing boundary, and never inferred further in.

func optional(v url.Values, key string) *string {
	if _, ok := v[key]; !ok {
		return nil
	}
	s := v.Get(key)
	return &s
}

func checkbox(v url.Values, key string) bool {
	_, ok := v[key]
	return ok
}
