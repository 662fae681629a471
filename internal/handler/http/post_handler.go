package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/likeboard/internal/handler/http/dto"
	"github.com/mikiasgoitom/likeboard/internal/handler/http/middleware"
	usecasecontract "github.com/mikiasgoitom/likeboard/internal/usecase/contract"
)

type PostHandler struct {
	postUsecase usecasecontract.IPostUseCase
}

func NewPostHandler(postUsecase usecasecontract.IPostUseCase) *PostHandler {
	return &PostHandler{
		postUsecase: postUsecase,
	}
}

// CreatePostHandler handles POST /api/posts
func (h *PostHandler) CreatePostHandler(c *gin.Context) {
	var req dto.CreatePostRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	post, err := h.postUsecase.CreatePost(c.Request.Context(), req.Title, req.Content, req.Author)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToPostResponse(post, middleware.ClientIDFrom(c)))
}

// GetPostsHandler handles GET /api/posts
func (h *PostHandler) GetPostsHandler(c *gin.Context) {
	posts, err := h.postUsecase.ListPosts(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToPostResponses(posts, middleware.ClientIDFrom(c)))
}

// GetPostHandler handles GET /api/posts/:id
func (h *PostHandler) GetPostHandler(c *gin.Context) {
	post, err := h.postUsecase.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToPostResponse(post, middleware.ClientIDFrom(c)))
}

// DeletePostHandler handles DELETE /api/posts/:id
func (h *PostHandler) DeletePostHandler(c *gin.Context) {
	if err := h.postUsecase.DeletePost(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Post deleted successfully")
}
