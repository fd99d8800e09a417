// Package handlers holds the per-resource CRUD bindings and mounts them
// under one router.
package handlers

//go:generate go run ../../cmd/crudgen -suffix task -bmc rest-core/internal/model.TaskBmc -entity rest-core/internal/model.Task -for-create rest-core/internal/model.TaskForCreate -for-update rest-core/internal/model.TaskForUpdate -filter rest-core/internal/model.TaskFilter -out task_gen.go
//go:generate go run ../../cmd/crudgen -suffix category -plural categories -bmc rest-core/internal/model.CategoryBmc -entity rest-core/internal/model.Category -for-create rest-core/internal/model.CategoryForCreate -for-update rest-core/internal/model.CategoryForUpdate -filter rest-core/internal/model.CategoryFilter -out category_gen.go
