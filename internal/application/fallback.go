package application

import "github.com/oksasatya/go-directory-portal/internal/domain/entity"

// Static records served when the directory API cannot be reached.
// Collections fall back to one sample record; a single-user lookup falls
// back to "not found".

func fallbackUsers() []entity.User {
	return []entity.User{{
		ID:       1,
		Name:     "Sample User (API Failed)",
		Username: "sample",
		Email:    "sample@example.com",
	}}
}

func fallbackPosts() []entity.Post {
	return []entity.Post{{
		UserID: 1,
		ID:     1,
		Title:  "Sample Post (API Failed)",
		Body:   "This is sample data because the API request failed when running without a server.",
	}}
}
