package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/likeboard/internal/handler/http/dto"
	"github.com/mikiasgoitom/likeboard/internal/handler/http/middleware"
	usecasecontract "github.com/mikiasgoitom/likeboard/internal/usecase/contract"
)

type LikeHandler struct {
	likeUsecase usecasecontract.ILikeUseCase
}

func NewLikeHandler(likeUsecase usecasecontract.ILikeUseCase) *LikeHandler {
	return &LikeHandler{
		likeUsecase: likeUsecase,
	}
}

// ToggleLikeHandler handles PATCH /api/posts/:id/like. The route is guarded
// by middleware.RequireIdentity.
func (h *LikeHandler) ToggleLikeHandler(c *gin.Context) {
	result, err := h.likeUsecase.ToggleLike(c.Request.Context(), c.Param("id"), middleware.ClientIDFrom(c))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	message := "Post unliked"
	if result.Liked() {
		message = "Post liked"
	}
	SuccessHandler(c, http.StatusOK, dto.ToLikeResponse(result, message))
}

// GetLikeStatusHandler handles GET /api/posts/:id/like
func (h *LikeHandler) GetLikeStatusHandler(c *gin.Context) {
	result, err := h.likeUsecase.GetLikeStatus(c.Request.Context(), c.Param("id"), middleware.ClientIDFrom(c))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToLikeResponse(result, ""))
}
