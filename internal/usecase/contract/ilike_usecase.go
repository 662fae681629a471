package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/likeboard/internal/domain/entity"
)

type ILikeUseCase interface {
	ToggleLike(ctx context.Context, postID string, clientID entity.ClientID) (entity.ToggleResult, error)
	GetLikeStatus(ctx context.Context, postID string, clientID entity.ClientID) (entity.ToggleResult, error)
}
