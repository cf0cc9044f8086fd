// Package sanitizer provides small string transforms applied to user input
// before validation, and helpers for masking personal data in logs.
//
// Transforms are plain func(string) string values and can be chained with
// Apply or stored as a pipeline with Compose:
//
//	clean := sanitizer.Apply(input, sanitizer.Trim, sanitizer.ToLower)
//	name := sanitizer.Name("  Jane \t Doe ")  // "Jane Doe"
package sanitizer
