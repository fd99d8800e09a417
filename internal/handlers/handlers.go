package handlers

import (
	"github.com/gofiber/fiber/v2"

	"rest-core/internal/events"
	"rest-core/internal/model"
)

// Register mounts every resource on r. When pub is non-nil each write
// also emits a change event.
func Register(r fiber.Router, mm *model.ModelManager, pub *events.Publisher) {
	tasks := events.Wrap[model.Task, model.TaskForCreate, model.TaskForUpdate, model.TaskFilter](model.TaskBmc{}, "task", pub)
	NewTaskHandlers(tasks).Register(r, mm)

	categories := events.Wrap[model.Category, model.CategoryForCreate, model.CategoryForUpdate, model.CategoryFilter](model.CategoryBmc{}, "category", pub)
	NewCategoryHandlers(categories).Register(r, mm)
}
