package waitlisting

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/profit-calculator-api/infrastructure/repository/mocks"
	"github.com/vfg2006/profit-calculator-api/internal/config"
	"github.com/vfg2006/profit-calculator-api/internal/domain"
	"github.com/vfg2006/profit-calculator-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var testWaitlistConfig = config.Waitlist{DefaultPageSize: 50, MaxPageSize: 500}

func newTestService(t *testing.T) (*Service, *mocks.MockWaitlistRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockWaitlistRepository(ctrl)

	service := NewService(repo, testWaitlistConfig).(*Service)
	service.generateID = func() (string, error) { return "fixedID00001", nil }

	return service, repo
}

func TestService_Join(t *testing.T) {
	t.Run("nova inscrição normaliza o email", func(t *testing.T) {
		service, repo := newTestService(t)

		repo.EXPECT().GetEntryByEmail("jane@shop.com").Return(nil, nil)
		repo.EXPECT().
			CreateEntry(gomock.Any()).
			DoAndReturn(func(entry *domain.WaitlistEntry) (*domain.WaitlistEntry, error) {
				assert.Equal(t, "fixedID00001", entry.ID)
				assert.Equal(t, "jane@shop.com", entry.Email)
				assert.Equal(t, "landing", entry.Source)
				entry.CreatedAt = time.Now()
				return entry, nil
			})

		resp, err := service.Join(&domain.WaitlistRequest{Email: "  Jane@Shop.COM ", Source: " landing "})
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.False(t, resp.AlreadyJoined)
		assert.Equal(t, MessageJoined, resp.Message)
	})

	t.Run("email já inscrito é idempotente", func(t *testing.T) {
		service, repo := newTestService(t)

		repo.EXPECT().
			GetEntryByEmail("jane@shop.com").
			Return(&domain.WaitlistEntry{ID: "abc", Email: "jane@shop.com"}, nil)

		resp, err := service.Join(&domain.WaitlistRequest{Email: "jane@shop.com"})
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.True(t, resp.AlreadyJoined)
	})

	t.Run("conflito na inserção conta como já inscrito", func(t *testing.T) {
		service, repo := newTestService(t)

		repo.EXPECT().GetEntryByEmail("jane@shop.com").Return(nil, nil)
		repo.EXPECT().CreateEntry(gomock.Any()).Return(nil, nil)

		resp, err := service.Join(&domain.WaitlistRequest{Email: "jane@shop.com"})
		require.NoError(t, err)
		assert.True(t, resp.AlreadyJoined)
	})

	t.Run("email inválido", func(t *testing.T) {
		for _, email := range []string{"", "   ", "not-an-email", "jane@"} {
			service, _ := newTestService(t)

			resp, err := service.Join(&domain.WaitlistRequest{Email: email})
			assert.Nil(t, resp)
			require.ErrorIs(t, err, ErrInvalidEmail, email)

			var waitlistErr *WaitlistError
			require.True(t, errors.As(err, &waitlistErr))
			assert.Equal(t, apiErrors.ErrInvalidFormat, waitlistErr.Code)
		}
	})

	t.Run("requisição nula", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.Join(nil)
		assert.ErrorIs(t, err, ErrInvalidRequest)
	})

	t.Run("falha no banco", func(t *testing.T) {
		service, repo := newTestService(t)

		repo.EXPECT().GetEntryByEmail("jane@shop.com").Return(nil, nil)
		repo.EXPECT().CreateEntry(gomock.Any()).Return(nil, errors.New("connection refused"))

		_, err := service.Join(&domain.WaitlistRequest{Email: "jane@shop.com"})
		require.ErrorIs(t, err, ErrDatabaseOperation)

		var waitlistErr *WaitlistError
		require.True(t, errors.As(err, &waitlistErr))
		assert.Equal(t, apiErrors.ErrDatabaseOperation, waitlistErr.Code)
	})

	t.Run("falha ao gerar id", func(t *testing.T) {
		service, repo := newTestService(t)
		service.generateID = func() (string, error) { return "", errors.New("entropy") }

		repo.EXPECT().GetEntryByEmail("jane@shop.com").Return(nil, nil)

		_, err := service.Join(&domain.WaitlistRequest{Email: "jane@shop.com"})
		assert.ErrorIs(t, err, ErrGenerateID)
	})
}

func TestService_List(t *testing.T) {
	tests := []struct {
		name       string
		limit      int
		offset     int
		wantLimit  int
		wantOffset int
	}{
		{name: "limite padrão", limit: 0, offset: 0, wantLimit: 50, wantOffset: 0},
		{name: "limite máximo", limit: 10000, offset: 20, wantLimit: 500, wantOffset: 20},
		{name: "offset negativo", limit: 10, offset: -5, wantLimit: 10, wantOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newTestService(t)

			entries := []*domain.WaitlistEntry{{ID: "a", Email: "a@shop.com"}}
			repo.EXPECT().
				ListEntries(&domain.WaitlistFilters{Limit: tt.wantLimit, Offset: tt.wantOffset}).
				Return(entries, nil)
			repo.EXPECT().CountEntries(nil).Return(7, nil)

			page, err := service.List(tt.limit, tt.offset, nil)
			require.NoError(t, err)
			assert.Equal(t, entries, page.Entries)
			assert.Equal(t, 7, page.Total)
			assert.Equal(t, tt.wantLimit, page.Limit)
			assert.Equal(t, tt.wantOffset, page.Offset)
		})
	}

	t.Run("filtra por data", func(t *testing.T) {
		service, repo := newTestService(t)
		since := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

		repo.EXPECT().
			ListEntries(&domain.WaitlistFilters{Since: &since, Limit: 50}).
			Return([]*domain.WaitlistEntry{}, nil)
		repo.EXPECT().CountEntries(&since).Return(0, nil)

		page, err := service.List(0, 0, &since)
		require.NoError(t, err)
		assert.Empty(t, page.Entries)
	})

	t.Run("falha no banco", func(t *testing.T) {
		service, repo := newTestService(t)
		repo.EXPECT().ListEntries(gomock.Any()).Return(nil, errors.New("timeout"))

		_, err := service.List(10, 0, nil)
		assert.ErrorIs(t, err, ErrDatabaseOperation)
	})
}
