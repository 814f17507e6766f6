package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/timetrack/internal/error_values"
	"github.com/limbo/timetrack/internal/repository/mocks"
	"github.com/limbo/timetrack/internal/service"
	"github.com/limbo/timetrack/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTemplate(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockTemplatesRepositoryI(ctrl)
	serv := service.NewTemplatesService(repo)
	uid := uuid.New()
	scope := entity.UserScope(uid)
	inactive := false
	testCases := []struct {
		Desc         string
		Error        error
		Request      *service.CreateTemplateRequest
		MockPrepFunc func()
	}{
		{
			Desc:    "active by default",
			Request: &service.CreateTemplateRequest{Title: "reading", DefaultTargetSeconds: 1800},
			MockPrepFunc: func() {
				repo.EXPECT().Create(gomock.Any(), &entity.HabitTemplate{
					UserID:               &uid,
					Title:                "reading",
					DefaultTargetSeconds: 1800,
					IsActive:             true,
				}).Return(&entity.HabitTemplate{ID: uuid.New()}, nil)
			},
		},
		{
			Desc:    "explicitly inactive",
			Request: &service.CreateTemplateRequest{Title: "reading", IsActive: &inactive},
			MockPrepFunc: func() {
				repo.EXPECT().Create(gomock.Any(), &entity.HabitTemplate{
					UserID: &uid,
					Title:  "reading",
				}).Return(&entity.HabitTemplate{ID: uuid.New()}, nil)
			},
		},
		{
			Desc:         "error missing title",
			Error:        errorvalues.ErrValidation,
			Request:      &service.CreateTemplateRequest{DefaultTargetSeconds: 10},
			MockPrepFunc: func() {},
		},
		{
			Desc:         "error negative target",
			Error:        errorvalues.ErrValidation,
			Request:      &service.CreateTemplateRequest{Title: "reading", DefaultTargetSeconds: -1},
			MockPrepFunc: func() {},
		},
		{
			Desc:         "error target above integer range",
			Error:        errorvalues.ErrValidation,
			Request:      &service.CreateTemplateRequest{Title: "reading", DefaultTargetSeconds: 3_000_000_000},
			MockPrepFunc: func() {},
		},
		{
			Desc:    "error owner deleted",
			Error:   errorvalues.ErrUserNotFound,
			Request: &service.CreateTemplateRequest{Title: "reading"},
			MockPrepFunc: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errorvalues.ErrUserNotFound)
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			_, err := serv.Create(ctx, scope, tc.Request)
			assert.ErrorIs(t, err, tc.Error)
		})
	}
}

func TestUpdateTemplate(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockTemplatesRepositoryI(ctrl)
	serv := service.NewTemplatesService(repo)
	scope := entity.AnonymousScope()
	id := uuid.New()
	ctx := context.Background()

	t.Run("deactivated", func(t *testing.T) {
		inactive := false
		repo.EXPECT().GetByID(gomock.Any(), scope, id).Return(&entity.HabitTemplate{ID: id, Title: "reading", DefaultTargetSeconds: 60, IsActive: true}, nil)
		repo.EXPECT().Update(gomock.Any(), scope, &entity.HabitTemplate{ID: id, Title: "reading", DefaultTargetSeconds: 60, IsActive: false}).Return(nil)
		tmpl, err := serv.Update(ctx, scope, id, &service.UpdateTemplateRequest{IsActive: &inactive})
		require.NoError(t, err)
		assert.False(t, tmpl.IsActive)
		assert.Equal(t, 60, tmpl.DefaultTargetSeconds)
	})
	t.Run("target above integer range", func(t *testing.T) {
		target := 3_000_000_000
		_, err := serv.Update(ctx, scope, id, &service.UpdateTemplateRequest{DefaultTargetSeconds: &target})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("not found", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), scope, id).Return(nil, errorvalues.ErrTemplateNotFound)
		_, err := serv.Update(ctx, scope, id, &service.UpdateTemplateRequest{})
		assert.ErrorIs(t, err, errorvalues.ErrTemplateNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), scope, id).Return(&entity.HabitTemplate{ID: id}, nil)
		repo.EXPECT().Update(gomock.Any(), scope, gomock.Any()).Return(errors.New("db error"))
		_, err := serv.Update(ctx, scope, id, &service.UpdateTemplateRequest{})
		assert.Error(t, err)
	})
}

func TestDeleteTemplate(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockTemplatesRepositoryI(ctrl)
	serv := service.NewTemplatesService(repo)
	scope := entity.AnonymousScope()
	id := uuid.New()
	repo.EXPECT().Delete(gomock.Any(), scope, id).Return(errorvalues.ErrTemplateNotFound)
	assert.ErrorIs(t, serv.Delete(context.Background(), scope, id), errorvalues.ErrTemplateNotFound)
}
