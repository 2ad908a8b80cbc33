package templates

import (
	"strconv"
	"strings"
)

// prefixedStrings renders "p0, p1, ..., pN-1", used for type parameter and
// dependency lists in the generated helpers.
func prefixedStrings(prefix string, count int) string {
	names := make([]string, count)
	for i := range names {
		names[i] = prefix + strconv.Itoa(i)
	}
	return strings.Join(names, ", ")
}

// pairedStrings renders "n0 t0, n1 t1, ..." for parameter lists.
func pairedStrings(namePrefix, typePrefix string, count int) string {
	pairs := make([]string, count)
	for i := range pairs {
		n := strconv.Itoa(i)
		pairs[i] = namePrefix + n + " " + typePrefix + n
	}
	return strings.Join(pairs, ", ")
}
