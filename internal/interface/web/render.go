package web

import (
	"embed"
	"html/template"
	"io/fs"
	"strings"
	"unicode/utf8"

	"github.com/oksasatya/go-directory-portal/internal/application"
	"github.com/oksasatya/go-directory-portal/internal/domain/entity"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Page is the data every page template receives.
type Page struct {
	AppName string
	Title   string
	Page    string
	Session *application.Session

	Query   string
	Heading string
	Posts   []application.PostView
	Users   []entity.User
	Profile *entity.User

	Form    map[string]string
	Errors  map[string]string
	Summary string
}

// Templates parses the embedded page and fragment templates.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"initial": initial,
	}).ParseFS(templateFS, "templates/*.tmpl")
}

// Static returns the embedded stylesheet and script.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// initial is the avatar letter for a name.
func initial(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "?"
	}
	r, _ := utf8.DecodeRuneInString(name)
	return strings.ToUpper(string(r))
}

// PostsHeading is the title of a user's posts page.
func PostsHeading(u *entity.User) string {
	if u == nil {
		return "User Posts"
	}
	return u.Name + "'s Posts"
}
