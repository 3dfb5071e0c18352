// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/apiexample

package apiexample

import "unicode/utf8"

// isXMLName reports whether name is a valid XML 1.0 Name production.
func isXMLName(name string) bool {
	if name == "" || !utf8.ValidString(name) {
		return false
	}

	for index, r := range name {
		if index == 0 {
			if !isXMLNameStartChar(r) {
				return false
			}

			continue
		}

		if !isXMLNameChar(r) {
			return false
		}
	}

	return true
}

// isXMLNameStartChar implements the NameStartChar production.
func isXMLNameStartChar(r rune) bool {
	switch {
	case r == ':' || r == '_':
		return true
	case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
		return true
	case r >= 0xC0 && r <= 0xD6,
		r >= 0xD8 && r <= 0xF6,
		r >= 0xF8 && r <= 0x2FF,
		r >= 0x370 && r <= 0x37D,
		r >= 0x37F && r <= 0x1FFF,
		r >= 0x200C && r <= 0x200D,
		r >= 0x2070 && r <= 0x218F,
		r >= 0x2C00 && r <= 0x2FEF,
		r >= 0x3001 && r <= 0xD7FF,
		r >= 0xF900 && r <= 0xFDCF,
		r >= 0xFDF0 && r <= 0xFFFD,
		r >= 0x10000 && r <= 0xEFFFF:
		return true
	default:
		return false
	}
}

// isXMLNameChar implements the NameChar production.
func isXMLNameChar(r rune) bool {
	switch {
	case isXMLNameStartChar(r):
		return true
	case r == '-' || r == '.' || r == 0xB7:
		return true
	case r >= '0' && r <= '9':
		return true
	case r >= 0x0300 && r <= 0x036F, r >= 0x203F && r <= 0x2040:
		return true
	default:
		return false
	}
}

// isXMLText reports whether every rune of text is an XML 1.0 Char.
func isXMLText(text string) bool {
	if !utf8.ValidString(text) {
		return false
	}

	for _, r := range text {
		switch {
		case r == 0x9 || r == 0xA || r == 0xD:
		case r >= 0x20 && r <= 0xD7FF:
		case r >= 0xE000 && r <= 0xFFFD:
		case r >= 0x10000 && r <= 0x10FFFF:
		default:
			return false
		}
	}

	return true
}
