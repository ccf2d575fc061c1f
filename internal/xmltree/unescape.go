package xmltree

import "regexp"

// entityRef matches a general entity reference such as &n; or &adj-na;.
// Numeric character references (&#36;, &#x24;) do not match. Names are
// letters, numbers, underscore and hyphen; combining marks are not name
// characters.
var entityRef = regexp.MustCompile(`&([\p{L}\p{N}_-]+);`)

// Unescape rewrites every general entity reference &name; into the plain
// text =name=. JMdict declares hundreds of entities in its internal DTD and
// uses them for tags like part of speech; keeping the name is all we need.
//
// The predefined XML entities are rewritten too (&amp; becomes =amp=). The
// dictionary never relies on them resolving to characters.
func Unescape(src []byte) []byte {
	return entityRef.ReplaceAll(src, []byte("=${1}="))
}
