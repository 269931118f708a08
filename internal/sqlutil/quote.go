// Package sqlutil provides SQL utility functions for artmuseum.
package sqlutil

import (
	"fmt"
	"regexp"
	"strings"
)

// identifierPattern accepts the identifiers artmuseum will splice into a
// query: letters, digits and underscores.
var identifierPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// QuoteIdentifier wraps a MySQL identifier in backticks, doubling any
// backtick inside it.
func QuoteIdentifier(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

// IsValidIdentifier reports whether name is a plain table or column name.
func IsValidIdentifier(name string) bool {
	return identifierPattern.MatchString(name)
}

// QuoteIdentifierSafe validates name and then quotes it.
// Table and column names come from configuration, so anything outside
// IsValidIdentifier is refused with an *InvalidIdentifierError.
func QuoteIdentifierSafe(name string) (string, error) {
	if !IsValidIdentifier(name) {
		return "", &InvalidIdentifierError{Name: name}
	}
	return QuoteIdentifier(name), nil
}

// InvalidIdentifierError is returned when an identifier contains invalid characters.
type InvalidIdentifierError struct {
	Name string
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("invalid identifier %q: only letters, digits and underscores are allowed", e.Name)
}
