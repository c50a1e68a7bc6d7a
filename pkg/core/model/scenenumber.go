package model

import (
	"cmp"
	"strconv"
	"strings"
	"unicode"
)

// CompareSceneNumbers orders scene numbers naturally: "2" < "10" < "10A" < "11".
// Numbers without a numeric prefix sort after numbered ones, alphabetically.
func CompareSceneNumbers(a, b string) int {
	aNum, aSuffix, aOK := splitSceneNumber(a)
	bNum, bSuffix, bOK := splitSceneNumber(b)

	switch {
	case aOK && !bOK:
		return -1
	case !aOK && bOK:
		return 1
	case !aOK && !bOK:
		return strings.Compare(a, b)
	}

	if c := cmp.Compare(aNum, bNum); c != 0 {
		return c
	}
	if c := strings.Compare(aSuffix, bSuffix); c != 0 {
		return c
	}
	// "007" and "7" parse the same; fall back to the raw text so the order is total
	return strings.Compare(a, b)
}

func splitSceneNumber(s string) (int, string, bool) {
	s = strings.TrimSpace(s)
	end := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsDigit(r) })
	if end == -1 {
		end = len(s)
	}
	if end == 0 {
		return 0, s, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, s, false
	}
	return n, strings.ToUpper(s[end:]), true
}
