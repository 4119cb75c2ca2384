// Package subnet converts between CIDR prefix lengths and dotted-quad masks
// and checks dotted-quad syntax.
package subnet

import (
	"fmt"
	"regexp"
	"strings"

	"golang-ipv4cfg/internal/types"
)

// dottedQuad is compiled once at package initialization and never mutated.
var dottedQuad = regexp.MustCompile(`^((25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.){3}(25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)$`)

// PrefixToMask returns the dotted-quad subnet mask for a prefix length in [0,32].
func PrefixToMask(prefixLength int) (string, error) {
	if prefixLength < 0 || prefixLength > 32 {
		return "", &types.PrefixLengthError{Prefix: prefixLength}
	}

	// Shifting a uint32 by 32 yields 0, so /0 needs no special case.
	bits := ^uint32(0) << (32 - uint(prefixLength))

	return fmt.Sprintf("%d.%d.%d.%d", byte(bits>>24), byte(bits>>16), byte(bits>>8), byte(bits)), nil
}

// IsValidDottedQuad reports whether s is an IPv4 dotted quad.
// An empty or whitespace-only string is valid and means "not set".
func IsValidDottedQuad(s string) bool {
	if strings.TrimSpace(s) == "" {
		return true
	}
	return dottedQuad.MatchString(s)
}
