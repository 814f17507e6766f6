package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/timetrack/internal/error_values"
	"github.com/limbo/timetrack/internal/repository"
	"github.com/limbo/timetrack/pkg/entity"
)

type TemplatesService struct {
	repo repository.TemplatesRepositoryI
}

func NewTemplatesService(templatesRepo repository.TemplatesRepositoryI) *TemplatesService {
	if templatesRepo == nil {
		log.Fatal("provided nil templatesRepo")
	}
	return &TemplatesService{
		repo: templatesRepo,
	}
}

func (ts *TemplatesService) List(ctx context.Context, scope entity.Scope) ([]*entity.HabitTemplate, error) {
	templates, err := ts.repo.List(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("templates repository error: %w", err)
	}
	return templates, nil
}

func (ts *TemplatesService) Get(ctx context.Context, scope entity.Scope, id uuid.UUID) (*entity.HabitTemplate, error) {
	tmpl, err := ts.repo.GetByID(ctx, scope, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTemplateNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("templates repository error: %w", err)
	}
	return tmpl, nil
}

func (ts *TemplatesService) Create(ctx context.Context, scope entity.Scope, req *CreateTemplateRequest) (*entity.HabitTemplate, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	tmpl := entity.HabitTemplate{
		UserID:               scope.UserID,
		Title:                req.Title,
		Description:          req.Description,
		DefaultTargetSeconds: req.DefaultTargetSeconds,
		IsActive:             true,
	}
	if req.IsActive != nil {
		tmpl.IsActive = *req.IsActive
	}
	created, err := ts.repo.Create(ctx, &tmpl)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("templates repository error: %w", err)
	}
	return created, nil
}

func (ts *TemplatesService) Update(ctx context.Context, scope entity.Scope, id uuid.UUID, req *UpdateTemplateRequest) (*entity.HabitTemplate, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	tmpl, err := ts.Get(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		tmpl.Title = *req.Title
	}
	if req.Description != nil {
		tmpl.Description = *req.Description
	}
	if req.DefaultTargetSeconds != nil {
		tmpl.DefaultTargetSeconds = *req.DefaultTargetSeconds
	}
	if req.IsActive != nil {
		tmpl.IsActive = *req.IsActive
	}
	if err = ts.repo.Update(ctx, scope, tmpl); err != nil {
		if errors.Is(err, errorvalues.ErrTemplateNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("templates repository error: %w", err)
	}
	return tmpl, nil
}

func (ts *TemplatesService) Delete(ctx context.Context, scope entity.Scope, id uuid.UUID) error {
	if err := ts.repo.Delete(ctx, scope, id); err != nil {
		if errors.Is(err, errorvalues.ErrTemplateNotFound) {
			return err
		}
		return fmt.Errorf("templates repository error: %w", err)
	}
	return nil
}
