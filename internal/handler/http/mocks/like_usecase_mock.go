package mocks

import (
	"context"

	"github.com/mikiasgoitom/likeboard/internal/domain/entity"
	"github.com/mikiasgoitom/likeboard/internal/domain/errs"
	usecasecontract "github.com/mikiasgoitom/likeboard/internal/usecase/contract"
)

// MockLikeUsecase is a mock implementation of the ILikeUseCase interface.
// Each toggle flips the state for the post, mimicking the real engine.
type MockLikeUsecase struct {
	ShouldFailToggle    bool
	ShouldFailGetStatus bool
	FailWith            error

	Liked     map[string]bool
	LikeCount int

	ToggleCalls  int
	LastClientID entity.ClientID
}

var _ usecasecontract.ILikeUseCase = (*MockLikeUsecase)(nil)

func NewMockLikeUsecase() *MockLikeUsecase {
	return &MockLikeUsecase{Liked: map[string]bool{}}
}

func (m *MockLikeUsecase) failure() error {
	if m.FailWith != nil {
		return m.FailWith
	}
	return errs.NotFound
}

func (m *MockLikeUsecase) ToggleLike(ctx context.Context, postID string, clientID entity.ClientID) (entity.ToggleResult, error) {
	m.ToggleCalls++
	m.LastClientID = clientID
	if m.ShouldFailToggle {
		return entity.ToggleResult{}, m.failure()
	}
	key := postID + "/" + clientID.String()
	if m.Liked[key] {
		delete(m.Liked, key)
		m.LikeCount--
	} else {
		m.Liked[key] = true
		m.LikeCount++
	}
	return m.status(postID, key), nil
}

func (m *MockLikeUsecase) GetLikeStatus(ctx context.Context, postID string, clientID entity.ClientID) (entity.ToggleResult, error) {
	m.LastClientID = clientID
	if m.ShouldFailGetStatus {
		return entity.ToggleResult{}, m.failure()
	}
	return m.status(postID, postID+"/"+clientID.String()), nil
}

func (m *MockLikeUsecase) status(postID, key string) entity.ToggleResult {
	state := entity.LikeStateUnliked
	if m.Liked[key] {
		state = entity.LikeStateLiked
	}
	return entity.ToggleResult{PostID: postID, State: state, LikeCount: m.LikeCount}
}
