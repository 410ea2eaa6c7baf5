package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"social-backend/internal/ai"
	"social-backend/internal/domain"
	"social-backend/internal/service"
	"social-backend/internal/storage"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	users   service.UserService
	posts   service.PostService
	drafts  ai.DraftGenerator
	storage storage.Service
	logger  *logrus.Logger
}

func NewHandler(users service.UserService, posts service.PostService, drafts ai.DraftGenerator, store storage.Service, logger *logrus.Logger) *Handler {
	return &Handler{
		users:   users,
		posts:   posts,
		drafts:  drafts,
		storage: store,
		logger:  logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())
	router.Use(requestIDMiddleware())
	if h.logger != nil {
		router.Use(requestLogger(h.logger))
	}

	router.GET("/", h.root)
	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"ok": "ok"})
	})

	router.POST("/users/", h.createUser)
	router.GET("/users/", h.listUsers)
	router.GET("/users/:id", h.getUser)
	router.PUT("/users/:id", h.replaceUser)
	router.DELETE("/users/:id", h.deleteUser)

	router.POST("/posts/", h.createPost)
	router.GET("/posts/", h.listPosts)
	router.GET("/posts/:id", h.getPost)
	router.PUT("/posts/:id", h.replacePost)
	router.DELETE("/posts/:id", h.deletePost)

	router.POST("/ai/draft_post/", h.draftPost)
	router.POST("/upload-image/", h.uploadImage)
}

func (h *Handler) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to the Social Media Backend!"})
}

type userRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (h *Handler) createUser(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.Create(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		h.userError(c, err)
		return
	}

	c.JSON(http.StatusCreated, userToResponse(*user))
}

func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]UserResponse, len(users))
	for i := range users {
		resp[i] = userToResponse(users[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) getUser(c *gin.Context) {
	id, ok := parseID(c, "invalid user id")
	if !ok {
		return
	}

	user, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		h.userError(c, err)
		return
	}

	c.JSON(http.StatusOK, userToResponse(*user))
}

func (h *Handler) replaceUser(c *gin.Context) {
	id, ok := parseID(c, "invalid user id")
	if !ok {
		return
	}

	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.Replace(c.Request.Context(), id, req.Username, req.Email, req.Password)
	if err != nil {
		h.userError(c, err)
		return
	}

	c.JSON(http.StatusOK, userToResponse(*user))
}

func (h *Handler) deleteUser(c *gin.Context) {
	id, ok := parseID(c, "invalid user id")
	if !ok {
		return
	}

	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		h.userError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

type postRequest struct {
	AuthorID int64   `json:"author_id" binding:"required"`
	Content  string  `json:"content" binding:"required"`
	ImageURL *string `json:"image_url"`
}

type PostResponse struct {
	ID        int64   `json:"id"`
	AuthorID  int64   `json:"author_id"`
	Content   string  `json:"content"`
	ImageURL  *string `json:"image_url"`
	CreatedAt string  `json:"created_at"`
}

func (h *Handler) createPost(c *gin.Context) {
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.posts.Create(c.Request.Context(), req.AuthorID, req.Content, req.ImageURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, postToResponse(*post))
}

func (h *Handler) listPosts(c *gin.Context) {
	posts, err := h.posts.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]PostResponse, len(posts))
	for i := range posts {
		resp[i] = postToResponse(posts[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) getPost(c *gin.Context) {
	id, ok := parseID(c, "invalid post id")
	if !ok {
		return
	}

	post, err := h.posts.Get(c.Request.Context(), id)
	if err != nil {
		h.postError(c, err)
		return
	}

	c.JSON(http.StatusOK, postToResponse(*post))
}

func (h *Handler) replacePost(c *gin.Context) {
	id, ok := parseID(c, "invalid post id")
	if !ok {
		return
	}

	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.posts.Replace(c.Request.Context(), id, req.AuthorID, req.Content, req.ImageURL)
	if err != nil {
		h.postError(c, err)
		return
	}

	c.JSON(http.StatusOK, postToResponse(*post))
}

func (h *Handler) deletePost(c *gin.Context) {
	id, ok := parseID(c, "invalid post id")
	if !ok {
		return
	}

	if err := h.posts.Delete(c.Request.Context(), id); err != nil {
		h.postError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

type draftRequest struct {
	Prompt    string `json:"prompt" binding:"required"`
	MaxLength int    `json:"max_length"`
}

func (h *Handler) draftPost(c *gin.Context) {
	req := draftRequest{MaxLength: 200}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draft, err := h.drafts.GeneratePostDraft(c.Request.Context(), req.Prompt, req.MaxLength)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("AI drafting failed: %v", err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

func (h *Handler) uploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to upload image: %v", err)})
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if err := h.storage.Upload(c.Request.Context(), fileHeader.Filename, file, contentType); err != nil {
		if errors.Is(err, storage.ErrMissingCredentials) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "storage credentials not available"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to upload image: %v", err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"filename": fileHeader.Filename,
		"url":      h.storage.PublicURL(fileHeader.Filename),
	})
}

func (h *Handler) userError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case errors.Is(err, service.ErrUserExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func (h *Handler) postError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrPostNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func parseID(c *gin.Context, msg string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return 0, false
	}
	return id, true
}

func userToResponse(user domain.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}

func postToResponse(post domain.Post) PostResponse {
	return PostResponse{
		ID:        post.ID,
		AuthorID:  post.AuthorID,
		Content:   post.Content,
		ImageURL:  post.ImageURL,
		CreatedAt: post.CreatedAt.Format(time.RFC3339),
	}
}
