package model

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	json "github.com/goccy/go-json"

	"rest-core/internal/config"
)

// RuleSet holds compiled write rules per entity. An expression that
// evaluates to true rejects the write. Expressions see the payload as
// `record` and "create" or "update" as `action`.
type RuleSet struct {
	byEntity map[string][]compiledRule
}

type compiledRule struct {
	source  string
	message string
	program *vm.Program
}

// NewRuleSet compiles every configured rule up front so that a bad
// expression fails at startup instead of on the first write.
func NewRuleSet(cfg map[string][]config.RuleConfig) (*RuleSet, error) {
	rs := &RuleSet{byEntity: make(map[string][]compiledRule, len(cfg))}
	for entity, rules := range cfg {
		for _, r := range rules {
			prog, err := expr.Compile(r.Expr, expr.AsBool())
			if err != nil {
				return nil, fmt.Errorf("compile rule for %s %q: %w", entity, r.Expr, err)
			}
			rs.byEntity[entity] = append(rs.byEntity[entity], compiledRule{
				source:  r.Expr,
				message: r.Message,
				program: prog,
			})
		}
	}
	return rs, nil
}

// Check evaluates the entity's rules against a write payload.
func (rs *RuleSet) Check(entity, action string, payload any) error {
	rules := rs.byEntity[entity]
	if len(rules) == 0 {
		return nil
	}

	record, err := toRecord(payload)
	if err != nil {
		return err
	}
	env := map[string]any{
		"record": record,
		"action": action,
	}

	var details []RuleDetail
	for _, r := range rules {
		result, err := expr.Run(r.program, env)
		if err != nil {
			details = append(details, RuleDetail{Rule: r.source, Message: fmt.Sprintf("rule evaluation error: %v", err)})
			continue
		}
		if violated, _ := result.(bool); violated {
			msg := r.message
			if msg == "" {
				msg = "Expression rule violated"
			}
			details = append(details, RuleDetail{Rule: r.source, Message: msg})
		}
	}

	if len(details) > 0 {
		return &ErrRuleViolation{Entity: entity, Details: details}
	}
	return nil
}

func toRecord(payload any) (map[string]any, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode rule record: %w", err)
	}
	record := map[string]any{}
	if err := json.Unmarshal(b, &record); err != nil {
		return nil, fmt.Errorf("decode rule record: %w", err)
	}
	return record, nil
}
