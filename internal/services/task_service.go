package services

import (
	"context"

	model "todo-api.com/todo-api/internal/models"
	repository "todo-api.com/todo-api/internal/repositories"
)

type TaskService struct {
	repo *repository.TaskRepository
}

func NewTaskService(repo *repository.TaskRepository) *TaskService {
	return &TaskService{
		repo: repo,
	}
}

func (s *TaskService) ListTasks(ctx context.Context, ownerID uint) ([]model.Task, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// CreateTask always starts the task uncompleted and owned by ownerID.
func (s *TaskService) CreateTask(ctx context.Context, ownerID uint, title string) (*model.Task, error) {
	return s.repo.CreateTask(ctx, ownerID, title)
}

func (s *TaskService) GetTask(ctx context.Context, id, ownerID uint) (*model.Task, error) {
	return s.resolve(ctx, id, ownerID)
}

// ReplaceTask overwrites the mutable fields of a task previously returned by
// GetTask. A nil completed keeps the stored value. The owner is never changed.
func (s *TaskService) ReplaceTask(ctx context.Context, task *model.Task, title string, completed *bool) (*model.Task, error) {
	updated := *task
	updated.Title = title
	if completed != nil {
		updated.Completed = *completed
	}

	if err := s.repo.Replace(ctx, &updated); err != nil {
		return nil, err
	}

	return &updated, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id, ownerID uint) error {
	task, err := s.resolve(ctx, id, ownerID)
	if err != nil {
		return err
	}

	return s.repo.DeleteOwned(ctx, task.ID, task.UserID)
}

// resolve is the single owner-scoped lookup; a task owned by someone else
// yields the same ErrTaskNotFound as a missing one.
func (s *TaskService) resolve(ctx context.Context, id, ownerID uint) (*model.Task, error) {
	return s.repo.FindOwned(ctx, id, ownerID)
}
