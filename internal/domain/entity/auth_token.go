package entity

// AuthToken is the minimal session marker tying a browser client to one Account.
// Its presence alone gates navigation between public and protected pages.
type AuthToken struct {
	UserID int `json:"userId"`
}
