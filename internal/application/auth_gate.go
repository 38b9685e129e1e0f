package application

import "strings"

const (
	LoginPage    = "/login.html"
	RegisterPage = "/register.html"
	HomePage     = "/index.html"
)

var authPages = map[string]bool{
	"login.html":    true,
	"register.html": true,
}

// PageName returns the last path segment, defaulting to index.html.
func PageName(path string) string {
	page := path[strings.LastIndex(path, "/")+1:]
	if page == "" {
		return "index.html"
	}
	return page
}

// IsAuthPage reports whether page is one of the two public auth pages.
func IsAuthPage(page string) bool {
	return authPages[page]
}

// GateRedirect decides where a page request must go given token presence.
// Without a token only the auth pages are reachable; with one they are not.
func GateRedirect(page string, hasToken bool) (string, bool) {
	switch {
	case !hasToken && !IsAuthPage(page):
		return LoginPage, true
	case hasToken && IsAuthPage(page):
		return HomePage, true
	}
	return "", false
}
