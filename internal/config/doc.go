// Package config manages pancake configuration and state persistence.
//
// It handles:
//   - Repository configuration written by `pk init`
//   - The checkpoint of an interrupted sync or restack
//   - Atomic file replacement under the .pancake directory
package config
