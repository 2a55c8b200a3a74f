// Package dnsname converts between dotted names and the DNS wire format used
// by ENSIP-10 resolve(bytes name, bytes data) calls.
package dnsname

import (
	"strings"

	"golang.org/x/xerrors"

	"github.com/mandinga/gateway/domain"
)

// MaxLabelLength is the longest label a length byte may announce in practice
const MaxLabelLength = 63

// Unpack decodes length-prefixed labels until a zero length byte or the end
// of the input. Label bytes are not validated. When a label runs past the end
// of the input, the labels decoded so far are returned with ErrTruncatedName.
func Unpack(b []byte) (string, error) {
	labels := []string{}
	for i := 0; i < len(b); {
		n := int(b[i])
		if n == 0 {
			break
		}
		i++
		if i+n > len(b) {
			return strings.Join(labels, "."), xerrors.Errorf("label at offset %d wants %d bytes, %d left: %w", i-1, n, len(b)-i, domain.ErrTruncatedName)
		}
		labels = append(labels, string(b[i:i+n]))
		i += n
	}
	return strings.Join(labels, "."), nil
}

// Pack encodes a dotted name in wire format, terminated by the root label.
// Label bytes are copied as is, so Unpack(Pack(name)) == name for any name
// whose labels are non-empty and at most MaxLabelLength bytes.
func Pack(name string) ([]byte, error) {
	if name == "" {
		return []byte{0}, nil
	}
	labels := strings.Split(name, ".")
	buf := make([]byte, 0, len(name)+2)
	for i, label := range labels {
		switch {
		case label == "":
			return nil, xerrors.Errorf("pack %q: empty label at position %d", name, i)
		case len(label) > MaxLabelLength:
			return nil, xerrors.Errorf("pack %q: label %d is %d bytes, max %d", name, i, len(label), MaxLabelLength)
		}
		buf = append(buf, byte(len(label)))
		buf = append(buf, label...)
	}
	return append(buf, 0), nil
}
