// SPDX-License-Identifier: Apache-2.0

package sanity

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/joomcode/errorx"
)

// Security validation patterns for paths
var (
	// shellMetachars contains dangerous shell metacharacters that should be rejected
	shellMetachars = regexp.MustCompile(`[;&|$\x60<>(){}[\]*?~]`)

	// validPathChars ensures paths only contain safe characters
	// Allows: alphanumeric, forward slash, dash, underscore, dot
	validPathChars = regexp.MustCompile(`^[a-zA-Z0-9/_.\-]+$`)

	// identifierChars matches kernel module and device-mapper target names
	identifierChars = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

// MaxIdentifierLength is the kernel limit for a module name (MODULE_NAME_LEN - 1).
const MaxIdentifierLength = 55

// ValidateIdentifier checks that s is usable as a kernel module or device-mapper target name.
// Such names end up inside shell pipelines, so only alphanumerics, '_' and '-' are accepted.
func ValidateIdentifier(s string) error {
	if s == "" {
		return errorx.IllegalArgument.New("identifier cannot be empty")
	}

	if len(s) > MaxIdentifierLength {
		return errorx.IllegalArgument.New("identifier is longer than %d characters: %s", MaxIdentifierLength, s)
	}

	if strings.HasPrefix(s, "-") {
		return errorx.IllegalArgument.New("identifier cannot start with '-': %s", s)
	}

	if !identifierChars.MatchString(s) {
		return errorx.IllegalArgument.New("identifier contains invalid characters: %s", s)
	}

	return nil
}

// SanitizePath validates and sanitizes the given path according to strict security rules.
//
// Specifically, it:
//  1. Rejects paths containing shell metacharacters (e.g., ; & | $ ` < > ( ) { } [ ] * ? ~).
//  2. Rejects path traversal attempts (e.g., segments like "../", "/..", or paths ending with "..").
//  3. Requires the input path to be absolute.
//  4. Normalizes the path by removing redundant slashes and dot directories (using filepath.Clean).
//  5. May return a cleaned version of the input path that differs from the original.
//
// Returns the sanitized (cleaned) path, or an error if the input is invalid or unsafe.
func SanitizePath(path string) (string, error) {
	if path == "" {
		return "", errorx.IllegalArgument.New("path cannot be empty")
	}

	// Ensure it's an absolute path
	if !filepath.IsAbs(path) {
		return "", errorx.IllegalArgument.New("path must be absolute: %s", path)
	}

	// Check for path traversal patterns BEFORE cleaning
	// This catches patterns like "../", "/..", and paths ending with ".."
	// which could allow escaping the intended directory structure
	// Check for ".." as a path segment
	for _, segment := range strings.Split(path, "/") {
		if segment == ".." {
			return "", errorx.IllegalArgument.New("path cannot contain '..' segments: %s", path)
		}
	}

	// Check for shell metacharacters in the original path
	if shellMetachars.MatchString(path) {
		return "", errorx.IllegalArgument.New("path contains shell metacharacters: %s", path)
	}

	// Check for valid characters in the original path
	if !validPathChars.MatchString(path) {
		return "", errorx.IllegalArgument.New("path contains invalid characters: %s", path)
	}

	return filepath.Clean(path), nil
}
