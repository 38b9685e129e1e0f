package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-directory-portal/internal/application"
	"github.com/oksasatya/go-directory-portal/pkg/response"
)

// DirectoryHandler exposes the remote users and posts as JSON.
type DirectoryHandler struct {
	Directory *application.DirectoryService
}

func NewDirectoryHandler(dir *application.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{Directory: dir}
}

// Users GET /api/users?q=
func (h *DirectoryHandler) Users(c *gin.Context) {
	users := h.Directory.SearchUsers(c.Request.Context(), c.Query("q"))
	response.Success(c, http.StatusOK, users, "ok", map[string]any{"count": len(users)})
}

// User GET /api/users/:id
func (h *DirectoryHandler) User(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid user id", map[string]string{"id": "must be a number"})
		return
	}
	u, ok := h.Directory.FetchUser(c.Request.Context(), id)
	if !ok {
		response.Error[any](c, http.StatusNotFound, "User not found.", nil)
		return
	}
	response.Success(c, http.StatusOK, u, "ok", nil)
}

// Posts GET /api/posts?userId=&q=
func (h *DirectoryHandler) Posts(c *gin.Context) {
	ctx := c.Request.Context()
	var owner *int
	if raw := c.Query("userId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			response.Error[any](c, http.StatusBadRequest, "invalid user id", map[string]string{"userId": "must be a number"})
			return
		}
		owner = &id
	}
	posts := application.FilterPosts(h.Directory.FetchPosts(ctx, owner), c.Query("q"))
	views := h.Directory.WithAuthors(ctx, posts)
	response.Success(c, http.StatusOK, views, "ok", map[string]any{"count": len(views)})
}
