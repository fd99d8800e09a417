package rest

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"rest-core/internal/model"
)

// Request is the parameter source a host framework adapter provides.
// Values only need to stay valid for the duration of the handler call.
type Request interface {
	// Param returns a path parameter, or "" if absent.
	Param(name string) string
	// Query returns a query-string value, or "" if absent.
	Query(name string) string
	// Body returns the raw request body.
	Body() []byte
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report json field names in validation details
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func pathID(req Request) (uuid.UUID, error) {
	raw := req.Param("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, InvalidParamError("id", fmt.Sprintf("%q is not a valid UUID", raw))
	}
	return id, nil
}

// bindBody decodes a {"data": ...} request envelope and validates the
// payload's struct tags.
func bindBody[P any](req Request) (P, error) {
	var params P
	body := req.Body()

	var probe struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return params, InvalidPayloadError("Invalid JSON body")
	}
	if len(probe.Data) == 0 || string(probe.Data) == "null" {
		return params, InvalidPayloadError("Request body must contain a data field")
	}
	if err := json.Unmarshal(body, &params); err != nil {
		return params, InvalidPayloadError(fmt.Sprintf("Invalid data: %v", err))
	}

	if err := validate.Struct(params); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			return params, nil
		}
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return params, ValidationError(fieldDetails(fieldErrs))
		}
		return params, err
	}
	return params, nil
}

func fieldDetails(errs validator.ValidationErrors) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(errs))
	for _, fe := range errs {
		details = append(details, ErrorDetail{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: fmt.Sprintf("field %s failed %s validation", fe.Field(), fe.Tag()),
		})
	}
	return details
}

// bindList reads `filters` (one JSON object or an array of them) and
// `list_options` from the query string. Neither is interpreted here.
func bindList[F any](req Request) (ParamsList[F], error) {
	var params ParamsList[F]

	if raw := strings.TrimSpace(req.Query("filters")); raw != "" {
		if strings.HasPrefix(raw, "[") {
			if err := json.Unmarshal([]byte(raw), &params.Filters); err != nil {
				return params, InvalidParamError("filters", err.Error())
			}
		} else {
			var f F
			if err := json.Unmarshal([]byte(raw), &f); err != nil {
				return params, InvalidParamError("filters", err.Error())
			}
			params.Filters = []F{f}
		}
	}

	if raw := strings.TrimSpace(req.Query("list_options")); raw != "" {
		var opts model.ListOptions
		if err := json.Unmarshal([]byte(raw), &opts); err != nil {
			return params, InvalidParamError("list_options", err.Error())
		}
		params.ListOptions = &opts
	}

	return params, nil
}
