package domain

import (
	"golang.org/x/text/unicode/norm"
)

// NormalizeText returns text in Unicode Normalization Form C.
// Decomposed kana such as "か" + U+3099 become the precomposed "が";
// the text is otherwise left untouched (no trimming, no case folding).
func NormalizeText(text string) string {
	if norm.NFC.IsNormalString(text) {
		return text
	}
	return norm.NFC.String(text)
}
