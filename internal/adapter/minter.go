package adapter

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-gtd/internal/utils"
)

// tokenMinter signs per-call backend tokens. A minter without a sign key
// mints nothing, which suits a backend running with auth disabled.
type tokenMinter struct {
	issuer   string
	signKey  string
	duration time.Duration
}

func (m tokenMinter) enabled() bool {
	return m.signKey != ""
}

func (m tokenMinter) mint(userID int64, login string) (string, error) {
	token, err := utils.GenerateJWTToken(m.issuer, userID, login, m.duration, m.signKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenMinting, err)
	}
	return token.SignedString, nil
}
