package model

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrInvalidListOptions = errors.New("invalid list options")

// ErrEntityNotFound is returned when no row matches the given id.
type ErrEntityNotFound struct {
	Entity string
	ID     uuid.UUID
}

func (e *ErrEntityNotFound) Error() string {
	return fmt.Sprintf("%s with id %s not found", e.Entity, e.ID)
}

// RuleDetail describes one rule a payload violated.
type RuleDetail struct {
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ErrRuleViolation is returned when a write payload fails the entity's rules.
type ErrRuleViolation struct {
	Entity  string
	Details []RuleDetail
}

func (e *ErrRuleViolation) Error() string {
	return fmt.Sprintf("%s failed %d rule(s)", e.Entity, len(e.Details))
}
