// Package postformat strips the format-control tokens left in a description
// once every macro has been resolved
package postformat

import (
	"regexp"
	"strconv"
	"strings"
)

// signed tokens are numbered by the value slot they prefix
const signedSlots = 3

var (
	lineBreaks = strings.NewReplacer("<br>", "\n", `\n`, "\n")
	markupTag  = regexp.MustCompile(`</?[a-zA-Z][a-zA-Z0-9]*(?:\s[^>]*)?/?>`)
)

// Format normalizes line breaks and percent signs, resolves the numbered sign
// tokens and removes markup. Emoji such as <:name:id> and <a:name:id> are not
// markup and are kept. debuffs holds the slots whose value is a penalty;
// their sign token renders as nothing.
func Format(text string, debuffs map[int]bool) string {
	text = lineBreaks.Replace(text)
	text = strings.ReplaceAll(text, "%%", "%")

	for k := 1; k <= signedSlots; k++ {
		text = resolveSign(text, "#"+strconv.Itoa(k)+":%+.0", debuffs[k])
	}

	for k := 1; k <= signedSlots; k++ {
		text = strings.ReplaceAll(text, "#"+strconv.Itoa(k)+":%.0", "")
	}
	text = strings.ReplaceAll(text, "%.0", "")

	return markupTag.ReplaceAllString(text, "")
}

// resolveSign replaces each occurrence of token with "+" unless the value
// after it is already negative or the slot is debuffed
func resolveSign(text, token string, debuffed bool) string {
	var b strings.Builder
	for {
		i := strings.Index(text, token)
		if i < 0 {
			b.WriteString(text)
			return b.String()
		}

		b.WriteString(text[:i])
		rest := text[i+len(token):]
		if !debuffed && !strings.HasPrefix(rest, "-") {
			b.WriteByte('+')
		}
		text = rest
	}
}
