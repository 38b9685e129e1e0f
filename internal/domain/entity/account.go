package entity

// Account is a locally registered credential record.
// It is distinct from the remote directory User, although the address shape
// is shared so a snapshot can be rendered by the same templates.
//
// Password is stored verbatim; this is a demo directory, not an identity provider.
type Account struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Password string  `json:"password,omitempty"`
	Address  Address `json:"address"`
}

// Redacted returns a copy without the password, for responses.
func (a Account) Redacted() *Account {
	a.Password = ""
	return &a
}

// NextAccountID returns max existing id + 1, or 1 for an empty collection.
func NextAccountID(accounts []Account) int {
	maxID := 0
	for _, a := range accounts {
		if a.ID > maxID {
			maxID = a.ID
		}
	}
	return maxID + 1
}

// FindAccountByEmail returns the first account with the given email.
func FindAccountByEmail(accounts []Account, email string) (Account, bool) {
	for _, a := range accounts {
		if a.Email == email {
			return a, true
		}
	}
	return Account{}, false
}

// UsernameTaken reports whether username is already used (case-sensitive).
func UsernameTaken(accounts []Account, username string) bool {
	for _, a := range accounts {
		if a.Username == username {
			return true
		}
	}
	return false
}

// EmailTaken reports whether email is already registered (case-sensitive).
func EmailTaken(accounts []Account, email string) bool {
	_, ok := FindAccountByEmail(accounts, email)
	return ok
}

// AccountSummary is the public projection of an Account (no password).
type AccountSummary struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (a Account) Summary() AccountSummary {
	return AccountSummary{ID: a.ID, Name: a.Name, Username: a.Username, Email: a.Email}
}
