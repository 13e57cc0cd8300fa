// Package utils provides shared utility functions.
//
// These utilities are used across multiple packages and include:
//   - Terminal detection
//   - Branch name validation
//   - Common data structure operations
package utils
