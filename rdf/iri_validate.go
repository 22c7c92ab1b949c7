package rdf

import (
	"errors"
	"fmt"
	"net/url"
)

// ValidateIRI checks that an IRI is absolute and free of characters
// that must be percent-encoded.
func ValidateIRI(iri string) error {
	if iri == "" {
		return errors.New("empty IRI")
	}
	parsed, err := url.Parse(iri)
	if err != nil {
		return fmt.Errorf("invalid IRI syntax: %w", err)
	}
	if parsed.Scheme == "" {
		return fmt.Errorf("IRI is not absolute: %s", iri)
	}
	first := parsed.Scheme[0]
	if !((first >= 'a' && first <= 'z') || (first >= 'A' && first <= 'Z')) {
		return fmt.Errorf("scheme must start with a letter: %s", iri)
	}
	for i, r := range iri {
		switch {
		case r < 0x20:
			return fmt.Errorf("invalid control character at position %d in IRI: %s", i, iri)
		case r == '<' || r == '>' || r == '"' || r == ' ':
			return fmt.Errorf("invalid character %q at position %d in IRI: %s", r, i, iri)
		}
	}
	return nil
}
