package twitterx

import "net/http"

// defaultUserAgent is sent when no per-client User-Agent is configured.
const defaultUserAgent = "twitter-client-go/" + Version

// rapidAPIHeaders returns the static header set attached to every request.
//
// The remote API expects Content-Type to carry the RapidAPI host string
// rather than a MIME type; this mirrors the wire behavior the backend was
// built against. ClientConfig.ContentType overrides it.
func rapidAPIHeaders(apiKey, host, contentType, userAgent string) http.Header {
	if contentType == "" {
		contentType = host
	}
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	h := http.Header{}
	h.Set("x-rapidapi-key", apiKey)
	h.Set("x-rapidapi-host", host)
	h.Set("Content-Type", contentType)
	h.Set("Accept", "application/json")
	h.Set("User-Agent", userAgent)
	return h
}
