package soap

import (
	"strings"

	"github.com/beevik/etree"
)

// MatchXPath checks if an element matches all XPath conditions.
// Each condition maps a path relative to elem to an expected value.
func MatchXPath(elem *etree.Element, conditions map[string]string) bool {
	for xpath, expected := range conditions {
		if ExtractXPathFromElement(elem, xpath) != expected {
			return false
		}
	}
	return true
}

// ExtractXPathFromElement extracts the value at xpath relative to elem.
// Returns an empty string if the path is not found.
//
// Supported syntax is etree's path syntax plus a trailing /@attr (or a bare
// @attr) for attribute values. Tags match by local name.
func ExtractXPathFromElement(elem *etree.Element, xpath string) string {
	if elem == nil || xpath == "" {
		return ""
	}
	xpath = strings.TrimPrefix(xpath, "./")

	elemPath, attrName, isAttr := splitAttr(xpath)
	if !isAttr {
		if child := elem.FindElement(xpath); child != nil {
			return strings.TrimSpace(child.Text())
		}
		return ""
	}

	target := elem
	if elemPath != "" && elemPath != "." {
		target = elem.FindElement(elemPath)
	}
	if target == nil {
		return ""
	}
	if attr := target.SelectAttr(attrName); attr != nil {
		return attr.Value
	}
	return ""
}

func splitAttr(xpath string) (elemPath, attr string, ok bool) {
	if strings.HasPrefix(xpath, "@") {
		return "", xpath[1:], true
	}
	if i := strings.LastIndex(xpath, "/@"); i >= 0 {
		return xpath[:i], xpath[i+2:], true
	}
	return xpath, "", false
}
