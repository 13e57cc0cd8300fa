package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// MaxBranchNameByteLength is the longest branch name accepted. Git refs are
// limited to 256 bytes, minus "refs/heads/" and some headroom.
const MaxBranchNameByteLength = 234

var (
	// branchNameCharsRegex matches names made only of letters, numbers, -, _, / and .
	branchNameCharsRegex = regexp.MustCompile(`^[-_/.a-zA-Z0-9]+$`)
	// suggestionReplaceRegex matches runs of characters that are not allowed
	suggestionReplaceRegex = regexp.MustCompile(`[^-_/.a-zA-Z0-9]+`)
	hyphenRunRegex         = regexp.MustCompile(`-+`)
)

// InvalidBranchNameError describes why a branch name was rejected
type InvalidBranchNameError struct {
	Name       string
	Reason     string
	Suggestion string
}

func (e *InvalidBranchNameError) Error() string {
	msg := fmt.Sprintf("Invalid branch name '%s': %s", e.Name, e.Reason)
	if e.Suggestion != "" && e.Suggestion != e.Name {
		msg += fmt.Sprintf(". Try '%s'", e.Suggestion)
	}
	return msg
}

// ValidateBranchName rejects names that git would refuse as a ref, plus
// characters pancake does not allow in branch names
func ValidateBranchName(name string) error {
	invalid := func(reason string) error {
		return &InvalidBranchNameError{Name: name, Reason: reason, Suggestion: SuggestBranchName(name)}
	}

	switch {
	case name == "":
		return invalid("name is empty")
	case len(name) > MaxBranchNameByteLength:
		return invalid(fmt.Sprintf("longer than %d bytes", MaxBranchNameByteLength))
	case !branchNameCharsRegex.MatchString(name):
		return invalid("only letters, numbers, '-', '_', '/' and '.' are allowed")
	case strings.HasPrefix(name, "-"):
		return invalid("cannot start with '-'")
	case strings.Contains(name, ".."), strings.Contains(name, "//"):
		return invalid("cannot contain '..' or '//'")
	case strings.HasSuffix(name, "/"), strings.HasSuffix(name, "."), strings.HasSuffix(name, ".lock"):
		return invalid("cannot end with '/', '.' or '.lock'")
	}

	for _, component := range strings.Split(name, "/") {
		if strings.HasPrefix(component, ".") {
			return invalid("path components cannot start with '.'")
		}
	}
	return nil
}

// SuggestBranchName turns arbitrary text into a name ValidateBranchName accepts,
// or "" when nothing usable is left
func SuggestBranchName(name string) string {
	name = suggestionReplaceRegex.ReplaceAllString(name, "-")
	name = hyphenRunRegex.ReplaceAllString(name, "-")
	for strings.Contains(name, "..") {
		name = strings.ReplaceAll(name, "..", ".")
	}
	for strings.Contains(name, "//") {
		name = strings.ReplaceAll(name, "//", "/")
	}
	name = strings.TrimSuffix(name, ".lock")
	name = strings.Trim(name, "-/.")

	if len(name) > MaxBranchNameByteLength {
		name = strings.TrimRight(name[:MaxBranchNameByteLength], "-/.")
	}

	var components []string
	for _, component := range strings.Split(name, "/") {
		if component = strings.TrimLeft(component, "."); component != "" {
			components = append(components, component)
		}
	}
	return strings.Join(components, "/")
}
