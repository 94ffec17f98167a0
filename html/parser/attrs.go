package parser

import "strings"

// parseTagInterior splits the raw text between a tag's delimiters into a tag
// name and its attributes. The position is that of the interior's first byte
// and is used for every error the split can produce.
//
// The interior grammar is deliberately narrow: the tag name runs up to the
// first space, attribute sections are separated by single spaces, and values
// must be wrapped in double quotes. A quoted value therefore cannot contain
// a space.
func parseTagInterior(interior string, pos Position) (string, map[string]string, error) {
	name, attrText, _ := strings.Cut(interior, " ")
	if !isIdentifier(name) {
		return "", nil, errInvalidIdentifier(pos, name)
	}

	attrs := make(map[string]string)
	if attrText == "" {
		return name, attrs, nil
	}

	for _, section := range strings.Split(attrText, " ") {
		if section == "" {
			continue
		}

		key, value, hasValue := strings.Cut(section, "=")
		if !hasValue {
			// Value-less attribute: stored with an empty value. The
			// key is accepted verbatim here, unlike the key=value
			// path below.
			if _, ok := attrs[key]; !ok {
				attrs[key] = ""
			}
			continue
		}

		if !isIdentifier(key) {
			return "", nil, errInvalidIdentifier(pos, key)
		}
		unquoted, ok := unquote(value)
		if !ok {
			return "", nil, errInvalidAttributeValue(pos, value)
		}
		// First occurrence wins; later duplicates are dropped.
		if _, ok := attrs[key]; !ok {
			attrs[key] = unquoted
		}
	}

	return name, attrs, nil
}

// isIdentifier reports whether text is a non-empty run of ASCII
// alphanumerics. Identifiers are case-sensitive; no folding happens anywhere.
func isIdentifier(text string) bool {
	if text == "" {
		return false
	}
	for i := 0; i < len(text); i++ {
		if !isAlphanumeric(text[i]) {
			return false
		}
	}
	return true
}

func isAlphanumeric(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9')
}

// unquote strips a single pair of wrapping double quotes.
func unquote(value string) (string, bool) {
	if len(value) < 2 || value[0] != '"' || value[len(value)-1] != '"' {
		return "", false
	}
	return value[1 : len(value)-1], true
}
