package services

import (
	"context"

	"github.com/google/uuid"

	"taskapi/internal/models"
	"taskapi/internal/repositories"
)

// TaskService defines the interface for task-related business logic.
// Handlers depend on this seam, never on the repository directly.
type TaskService interface {
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	GetByID(ctx context.Context, id string) (*models.Task, error)
	List(ctx context.Context, filter models.TaskFilter, limit, offset int) ([]models.Task, error)
	Update(ctx context.Context, id string, upd models.TaskUpdate) (*models.Task, error)
	Delete(ctx context.Context, id string) (*models.Task, error)
}

type taskService struct {
	repo repositories.TaskRepository
}

// NewTaskService creates a new instance of TaskService.
func NewTaskService(repo repositories.TaskRepository) TaskService {
	return &taskService{repo: repo}
}

func (s *taskService) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	task.ID = uuid.NewString()
	if err := s.repo.Store(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) GetByID(ctx context.Context, id string) (*models.Task, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *taskService) List(ctx context.Context, filter models.TaskFilter, limit, offset int) ([]models.Task, error) {
	return s.repo.FindAll(ctx, filter, limit, offset)
}

func (s *taskService) Update(ctx context.Context, id string, upd models.TaskUpdate) (*models.Task, error) {
	return s.repo.Update(ctx, id, upd)
}

func (s *taskService) Delete(ctx context.Context, id string) (*models.Task, error) {
	return s.repo.Delete(ctx, id)
}
