package nft

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// TokenID is a caller-supplied token identifier. It decodes from either a JSON
// string or a JSON number and keeps the literal text in both cases, so 7 and
// "7" name the same token. Falsy values (null, false, "", 0) decode to the
// empty TokenID, which asks the store to generate the next id.
type TokenID string

func (t *TokenID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)

	switch {
	case bytes.Equal(b, []byte("null")), bytes.Equal(b, []byte("false")):
		*t = ""
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidTokenID, err)
		}
		*t = TokenID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("%w: %s is neither a string nor a number", ErrInvalidTokenID, b)
	}

	if f, err := n.Float64(); err == nil && f == 0 {
		*t = ""
		return nil
	}

	*t = TokenID(n.String())
	return nil
}

// IsZero reports whether the id is absent and must be generated.
func (t TokenID) IsZero() bool {
	return t == ""
}
