package renderers

import (
	"crypto/rand"
	"encoding/hex"
)

// TokenSource produces the document-unique token that namespaces clip
// path ids in the portable SVG dialect, so several documents can be
// inlined into one HTML page without id collisions. A new token is
// drawn for every render.
type TokenSource func() string

// RandomToken returns 16 hex characters from crypto/rand.
func RandomToken() string {
	b := make([]byte, 8)
	rand.Read(b)
	return hex.EncodeToString(b)
}
