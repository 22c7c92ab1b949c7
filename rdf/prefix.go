package rdf

import "strings"

// Prefixes maps prefix labels to namespace IRIs.
type Prefixes map[string]string

// Expand resolves a prefixed name such as "foaf:name".
// It reports false when the prefix is unknown or the local part is not a valid name.
func (p Prefixes) Expand(curie string) (IRI, bool) {
	prefix, local, ok := strings.Cut(curie, ":")
	if !ok || strings.HasPrefix(local, "//") {
		return IRI{}, false
	}
	ns, ok := p[prefix]
	if !ok {
		return IRI{}, false
	}
	if local != "" && !isQNameLocal(local) {
		return IRI{}, false
	}
	return IRI{Value: ns + local}, true
}

func isQNameLocal(value string) bool {
	if value == "" {
		return false
	}
	for i := 0; i < len(value); i++ {
		ch := value[i]
		if i == 0 {
			if !isNameStartChar(ch) && !isDigit(ch) {
				return false
			}
		} else if !isNameChar(ch) {
			return false
		}
	}
	return true
}

func isNameStartChar(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z') || ch == '_'
}

func isNameChar(ch byte) bool {
	return isNameStartChar(ch) || isDigit(ch) || ch == '-' || ch == '.'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
