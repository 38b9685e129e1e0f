package application

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-directory-portal/internal/domain/entity"
	"github.com/oksasatya/go-directory-portal/pkg/validation"
)

// DirectoryAPI is the remote read-only users/posts source.
type DirectoryAPI interface {
	Users(ctx context.Context) ([]entity.User, error)
	User(ctx context.Context, id int) (*entity.User, error)
	Posts(ctx context.Context, userID *int) ([]entity.Post, error)
}

// DirectoryService fetches directory records and masks every failure with
// fallback data, so callers can always render something.
type DirectoryService struct {
	API    DirectoryAPI
	Logger *logrus.Logger
}

func NewDirectoryService(api DirectoryAPI, logger *logrus.Logger) *DirectoryService {
	return &DirectoryService{API: api, Logger: logger}
}

// PostView pairs a post with its author when the author is known.
type PostView struct {
	entity.Post
	Author *entity.User `json:"author,omitempty"`
}

func (s *DirectoryService) fallback(err error, msg string, fields logrus.Fields) {
	directoryFallbacks.Add(1)
	if s.Logger != nil {
		s.Logger.WithError(err).WithFields(fields).Warn(msg)
	}
}

func (s *DirectoryService) FetchUsers(ctx context.Context) []entity.User {
	users, err := s.API.Users(ctx)
	if err != nil {
		s.fallback(err, "fetch users failed, serving fallback", nil)
		return fallbackUsers()
	}
	return users
}

// FetchPosts returns all posts, or only those of owner when it is set.
func (s *DirectoryService) FetchPosts(ctx context.Context, owner *int) []entity.Post {
	posts, err := s.API.Posts(ctx, owner)
	if err != nil {
		fields := logrus.Fields{}
		if owner != nil {
			fields["user_id"] = *owner
		}
		s.fallback(err, "fetch posts failed, serving fallback", fields)
		return fallbackPosts()
	}
	return posts
}

// FetchUser returns the remote user or false when it is missing or unreachable.
func (s *DirectoryService) FetchUser(ctx context.Context, id int) (*entity.User, bool) {
	u, err := s.API.User(ctx, id)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.fallback(err, "fetch user failed", logrus.Fields{"user_id": id})
		}
		return nil, false
	}
	return u, true
}

// SearchUsers refetches the collection and keeps users whose name, username
// or email contains term, ignoring case. A blank term keeps everything.
func (s *DirectoryService) SearchUsers(ctx context.Context, term string) []entity.User {
	return FilterUsers(s.FetchUsers(ctx), term)
}

// SearchPosts refetches all posts and filters on title and body.
func (s *DirectoryService) SearchPosts(ctx context.Context, term string) []entity.Post {
	return FilterPosts(s.FetchPosts(ctx, nil), term)
}

func FilterUsers(users []entity.User, term string) []entity.User {
	if validation.TrimSpace(term) == "" {
		return users
	}
	out := make([]entity.User, 0, len(users))
	for _, u := range users {
		if containsFold(term, u.Name, u.Username, u.Email) {
			out = append(out, u)
		}
	}
	return out
}

func FilterPosts(posts []entity.Post, term string) []entity.Post {
	if validation.TrimSpace(term) == "" {
		return posts
	}
	out := make([]entity.Post, 0, len(posts))
	for _, p := range posts {
		if containsFold(term, p.Title, p.Body) {
			out = append(out, p)
		}
	}
	return out
}

// WithAuthors resolves post authors from a single users fetch.
func (s *DirectoryService) WithAuthors(ctx context.Context, posts []entity.Post) []PostView {
	out := make([]PostView, 0, len(posts))
	if len(posts) == 0 {
		return out
	}
	byID := make(map[int]entity.User)
	for _, u := range s.FetchUsers(ctx) {
		byID[u.ID] = u
	}
	for _, p := range posts {
		v := PostView{Post: p}
		if u, ok := byID[p.UserID]; ok {
			v.Author = &u
		}
		out = append(out, v)
	}
	return out
}

// ByAuthor pairs posts with an already resolved author.
func ByAuthor(posts []entity.Post, author *entity.User) []PostView {
	out := make([]PostView, 0, len(posts))
	for _, p := range posts {
		v := PostView{Post: p}
		if author != nil && author.ID == p.UserID {
			v.Author = author
		}
		out = append(out, v)
	}
	return out
}

func containsFold(term string, fields ...string) bool {
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
