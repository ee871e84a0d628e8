package menu

import (
	"context"
	"strings"
)

type Service interface {
	ListItems(ctx context.Context) ([]*MenuItem, error)
	CreateItem(ctx context.Context, input CreateItemInput) (*MenuItem, error)
	DeleteItem(ctx context.Context, id string) error
	SetItemAvailability(ctx context.Context, id string, available bool) error

	ListOptions(ctx context.Context) ([]*MenuOption, error)
	CreateOption(ctx context.Context, input CreateOptionInput) (*MenuOption, error)
	DeleteOption(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListItems(ctx context.Context) ([]*MenuItem, error) {
	return s.repo.ListItems(ctx)
}

func (s *service) CreateItem(ctx context.Context, input CreateItemInput) (*MenuItem, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, ErrNameRequired
	}
	if input.Ingredients == nil {
		input.Ingredients = []string{}
	}
	return s.repo.CreateItem(ctx, input)
}

func (s *service) DeleteItem(ctx context.Context, id string) error {
	return s.repo.DeleteItem(ctx, id)
}

func (s *service) SetItemAvailability(ctx context.Context, id string, available bool) error {
	return s.repo.SetItemAvailability(ctx, id, available)
}

func (s *service) ListOptions(ctx context.Context) ([]*MenuOption, error) {
	return s.repo.ListOptions(ctx)
}

func (s *service) CreateOption(ctx context.Context, input CreateOptionInput) (*MenuOption, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, ErrNameRequired
	}
	return s.repo.CreateOption(ctx, input)
}

func (s *service) DeleteOption(ctx context.Context, id string) error {
	return s.repo.DeleteOption(ctx, id)
}
