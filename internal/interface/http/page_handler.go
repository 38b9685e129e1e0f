package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-directory-portal/internal/application"
	"github.com/oksasatya/go-directory-portal/internal/interface/middleware"
	"github.com/oksasatya/go-directory-portal/internal/interface/web"
)

// PageHandler renders the HTML pages and search fragments.
type PageHandler struct {
	Auth      *application.AuthService
	Directory *application.DirectoryService
	AppName   string
	Logger    *logrus.Logger
}

func NewPageHandler(auth *application.AuthService, dir *application.DirectoryService, appName string, logger *logrus.Logger) *PageHandler {
	return &PageHandler{Auth: auth, Directory: dir, AppName: appName, Logger: logger}
}

func (h *PageHandler) page(c *gin.Context, title string) web.Page {
	p := web.Page{
		AppName: h.AppName,
		Title:   title,
		Page:    application.PageName(c.Request.URL.Path),
	}
	if sess, ok := h.Auth.Session(c.Request.Context(), middleware.ClientID(c)); ok {
		p.Session = sess
	}
	return p
}

// LoginForm GET /login.html
func (h *PageHandler) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", h.page(c, "Login"))
}

// Login POST /login.html
func (h *PageHandler) Login(c *gin.Context) {
	var in application.LoginInput
	h.bindForm(c, &in)

	if _, err := h.Auth.Login(c.Request.Context(), middleware.ClientID(c), in); err != nil {
		p := h.page(c, "Login")
		p.Form = map[string]string{"email": in.Email}
		status := h.formErrors(&p, err)
		c.HTML(status, "login.html", p)
		return
	}
	c.Redirect(http.StatusSeeOther, application.HomePage)
}

// RegisterForm GET /register.html
func (h *PageHandler) RegisterForm(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", h.page(c, "Register"))
}

// Register POST /register.html
func (h *PageHandler) Register(c *gin.Context) {
	var in application.RegisterInput
	h.bindForm(c, &in)

	if _, err := h.Auth.Register(c.Request.Context(), middleware.ClientID(c), in); err != nil {
		p := h.page(c, "Register")
		p.Form = map[string]string{"name": in.Name, "username": in.Username, "email": in.Email}
		status := h.formErrors(&p, err)
		c.HTML(status, "register.html", p)
		return
	}
	c.Redirect(http.StatusSeeOther, application.HomePage)
}

// bindForm fills in from the posted form. An unparseable body leaves the
// fields empty and the service reports each of them as a field error.
func (h *PageHandler) bindForm(c *gin.Context, in any) {
	if err := c.ShouldBind(in); err != nil && h.Logger != nil {
		h.Logger.WithError(err).WithField("path", c.Request.URL.Path).Debug("form bind failed")
	}
}

// Logout POST /logout
func (h *PageHandler) Logout(c *gin.Context) {
	h.Auth.Logout(c.Request.Context(), middleware.ClientID(c))
	c.Redirect(http.StatusSeeOther, application.LoginPage)
}

func (h *PageHandler) formErrors(p *web.Page, err error) int {
	status, fields, _ := authFailure(err)
	var verr *application.ValidationError
	if errors.As(err, &verr) {
		p.Summary = verr.Summary
	}
	if fields == nil {
		fields = map[string]string{}
		p.Summary = "Something went wrong, please try again"
		if h.Logger != nil {
			h.Logger.WithError(err).Error("auth form failed")
		}
	}
	p.Errors = fields
	return status
}

// Index GET / and /index.html
func (h *PageHandler) Index(c *gin.Context) {
	ctx := c.Request.Context()
	p := h.page(c, "Posts")
	p.Query = c.Query("q")
	p.Posts = h.Directory.WithAuthors(ctx, h.Directory.SearchPosts(ctx, p.Query))
	c.HTML(http.StatusOK, "index.html", p)
}

// Users GET /users.html
func (h *PageHandler) Users(c *gin.Context) {
	p := h.page(c, "Users")
	p.Query = c.Query("q")
	p.Users = h.Directory.SearchUsers(c.Request.Context(), p.Query)
	c.HTML(http.StatusOK, "users.html", p)
}

// Profile GET /user-profile.html?userId=
func (h *PageHandler) Profile(c *gin.Context) {
	raw := c.Query("userId")
	if raw == "" {
		c.Redirect(http.StatusFound, "/users.html")
		return
	}
	p := h.page(c, "Profile")
	if id, err := strconv.Atoi(raw); err == nil {
		if u, ok := h.Directory.FetchUser(c.Request.Context(), id); ok {
			p.Profile = u
			p.Title = u.Name
		}
	}
	c.HTML(http.StatusOK, "user-profile.html", p)
}

// UserPosts GET /user-posts.html?userId=
func (h *PageHandler) UserPosts(c *gin.Context) {
	raw := c.Query("userId")
	if raw == "" {
		c.Redirect(http.StatusFound, application.HomePage)
		return
	}
	ctx := c.Request.Context()
	p := h.page(c, "User Posts")
	p.Heading = web.PostsHeading(nil)
	if id, err := strconv.Atoi(raw); err == nil {
		posts := h.Directory.FetchPosts(ctx, &id)
		u, _ := h.Directory.FetchUser(ctx, id)
		p.Posts = application.ByAuthor(posts, u)
		if u != nil {
			p.Heading = web.PostsHeading(u)
			p.Title = p.Heading
		}
	}
	c.HTML(http.StatusOK, "user-posts.html", p)
}

// PostCards GET /fragments/posts?q=
func (h *PageHandler) PostCards(c *gin.Context) {
	ctx := c.Request.Context()
	posts := h.Directory.SearchPosts(ctx, c.Query("q"))
	c.HTML(http.StatusOK, "post-cards", h.Directory.WithAuthors(ctx, posts))
}

// UserCards GET /fragments/users?q=
func (h *PageHandler) UserCards(c *gin.Context) {
	c.HTML(http.StatusOK, "user-cards", h.Directory.SearchUsers(c.Request.Context(), c.Query("q")))
}
