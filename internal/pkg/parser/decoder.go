package parser

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Decoder turns raw command output into text.
// A byte order mark selects UTF-8 or UTF-16; otherwise the fallback encoding
// is used. Bytes that do not decode become U+FFFD instead of failing.
type Decoder struct {
	name     string
	fallback encoding.Encoding
}

// NewDecoder returns a decoder whose fallback is the named encoding
// (WHATWG names such as "utf-8", "gbk" or "windows-1252"). An empty name means UTF-8.
func NewDecoder(name string) (*Decoder, error) {
	if strings.TrimSpace(name) == "" {
		name = "utf-8"
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unsupported output encoding %q: %w", name, err)
	}
	return &Decoder{name: name, fallback: enc}, nil
}

// UTF8 returns the default decoder.
func UTF8() *Decoder {
	return &Decoder{name: "utf-8", fallback: unicode.UTF8}
}

// Name returns the fallback encoding name.
func (d *Decoder) Name() string {
	return d.name
}

// Text decodes b. It never fails.
func (d *Decoder) Text(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	out, _, err := transform.Bytes(unicode.BOMOverride(d.fallback.NewDecoder()), b)
	if err != nil {
		return strings.ToValidUTF8(string(b), "�")
	}
	return string(out)
}
