package textdoc

import (
	"strconv"
	"strings"

	"github.com/alnah/go-docinsert/node"
)

var romans = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// number formats the n-th item label of a list of the given type.
func number(n int, listType string) string {
	switch listType {
	case node.ListRomanUpper:
		return roman(n)
	case node.ListRomanLower:
		return strings.ToLower(roman(n))
	case node.ListAlphaUpper:
		return alpha(n)
	case node.ListAlphaLower:
		return strings.ToLower(alpha(n))
	}
	return strconv.Itoa(n)
}

func roman(n int) string {
	if n <= 0 || n >= 4000 {
		return strconv.Itoa(n)
	}
	var b strings.Builder
	for _, r := range romans {
		for n >= r.value {
			b.WriteString(r.symbol)
			n -= r.value
		}
	}
	return b.String()
}

// alpha labels 1..26 as A..Z, then AA, AB and so on.
func alpha(n int) string {
	if n <= 0 {
		return strconv.Itoa(n)
	}
	var out []byte
	for n > 0 {
		n--
		out = append([]byte{byte('A' + n%26)}, out...)
		n /= 26
	}
	return string(out)
}
