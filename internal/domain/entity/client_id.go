package entity

import (
	"strings"

	"github.com/mikiasgoitom/likeboard/internal/domain/errs"
)

// ClientID is the opaque identifier a browser generates for itself and sends in
// the userid header. It is a correlation key only: nothing signs or expires it,
// so it must never be treated as an authenticated principal.
type ClientID string

// ParseClientID trims the raw header value and rejects an empty one.
func ParseClientID(raw string) (ClientID, error) {
	id := strings.TrimSpace(raw)
	if id == "" {
		return "", errs.MissingIdentity
	}
	return ClientID(id), nil
}

func (c ClientID) IsZero() bool {
	return c == ""
}

func (c ClientID) String() string {
	return string(c)
}
