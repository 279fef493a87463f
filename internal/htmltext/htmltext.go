// Package htmltext decodes HTTP response bodies to text and pulls small
// pieces of information (the page title) out of HTML, best effort.
package htmltext

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// Decode reads at most maxBytes from r and converts the content to UTF-8
// using the charset declared in contentType or sniffed from the body.
// Undecodable bytes are replaced, never treated as a failure; the only
// errors returned are real read errors from the underlying stream.
func Decode(r io.Reader, contentType string, maxBytes int64) (string, error) {
	if maxBytes > 0 {
		r = io.LimitReader(r, maxBytes)
	}

	decoded, err := charset.NewReader(r, contentType)
	if err != nil {
		// Charset detection failed on the preview read; the stream
		// itself is broken, not the encoding.
		return "", err
	}

	b, err := io.ReadAll(decoded)
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(string(b), "�"), nil
}

// Title returns the text of the first <title> element, whitespace
// collapsed, or "" when the document has none or is not parseable HTML.
func Title(body string) string {
	z := html.NewTokenizer(strings.NewReader(body))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return ""
		case html.StartTagToken:
			name, _ := z.TagName()
			if string(name) != "title" {
				continue
			}
			if z.Next() != html.TextToken {
				return ""
			}
			return strings.Join(strings.Fields(string(z.Text())), " ")
		}
	}
}
