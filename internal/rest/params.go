package rest

import "rest-core/internal/model"

// ParamsForCreate is the create request body: {"data": {...}}.
type ParamsForCreate[C any] struct {
	Data C `json:"data"`
}

// ParamsForUpdate is the update request body: {"data": {...}}.
type ParamsForUpdate[U any] struct {
	Data U `json:"data"`
}

// ParamsList is read from the `filters` and `list_options` query values.
// Filters is nil when no filter was given.
type ParamsList[F any] struct {
	Filters     []F                `json:"filters,omitempty"`
	ListOptions *model.ListOptions `json:"list_options,omitempty"`
}
