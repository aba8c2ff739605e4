package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Account struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// NewAccount derives an account from the submitted email. The id is stable
// for a given email so repeated logins map to the same owner.
func NewAccount(email string) Account {
	local := email
	if at := strings.Index(email, "@"); at > 0 {
		local = email[:at]
	}

	name := local
	if name != "" {
		name = strings.ToUpper(name[:1]) + name[1:]
	}

	return Account{
		ID:        uuid.NewSHA1(uuid.NameSpaceOID, []byte(strings.ToLower(email))).String(),
		Email:     email,
		Name:      name,
		CreatedAt: time.Now(),
	}
}
