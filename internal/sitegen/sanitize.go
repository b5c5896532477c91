package sitegen

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"github.com/mozillazg/go-pinyin"
)

// unsafeStemRegexp matches everything that must not appear in a file stem:
// path separators, characters reserved by common file systems, control
// characters, and characters that are ambiguous in URLs or shells.
var unsafeStemRegexp = regexp.MustCompile(`[\x00-\x1f\\/:*?"<>|#%!\[\]+]`)

var pinyinArgs = pinyin.NewArgs()

// Sanitize turns a raw game name or relative path into a string safe to use
// verbatim as a file-system entry name. Han runes are transliterated to
// pinyin so stems stay portable ASCII; everything unsafe becomes "-".
// The only failure mode is an input with nothing left after stripping.
func Sanitize(raw string) (string, error) {
	out := transliterate(raw)
	out = unsafeStemRegexp.ReplaceAllString(out, "-")
	out = strings.Trim(out, " .-")
	if out == "" {
		return "", fmt.Errorf("sanitize %q: empty result after stripping", raw)
	}
	return out, nil
}

func transliterate(in string) string {
	var b strings.Builder
	changed := false
	for _, r := range in {
		if unicode.Is(unicode.Han, r) {
			if res := pinyin.SinglePinyin(r, pinyinArgs); len(res) > 0 {
				b.WriteString(res[0])
				changed = true
				continue
			}
		}
		b.WriteRune(r)
	}
	if !changed {
		return in
	}
	return b.String()
}

// EncodePath percent-encodes each segment of a relative path so it can be
// embedded in generated markup. Separators are kept as-is.
func EncodePath(p string) string {
	segs := strings.Split(p, "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return strings.Join(segs, "/")
}
