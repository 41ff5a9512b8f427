// Package sanitizer cleans free-form shopper input before it is validated
// or sent to the API.
//
// Transforms are plain func(string) string values composed with Apply or
// Compose. The prepared pipelines DisplayName, Email, Comment and Search
// cover the storefront's inputs:
//
//	name := sanitizer.DisplayName("  <b>Alice</b>\n")   // "Alice"
//	clean := sanitizer.Apply(raw, sanitizer.StripHTML, sanitizer.Trim)
package sanitizer
