// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "churchadmin/internal/domain/entity"

// EntityForm pre-populates an editor with an entity and the login linked to
// it. Account is empty when the entity has no login or the lookup failed.
type EntityForm[T any] struct {
	Entity  T                    `json:"entity"`
	Account entity.LinkedAccount `json:"account"`
}

// GoalCatalog describes the closed set of goal metrics and periods.
type GoalCatalog struct {
	Metrics  []entity.GoalMetric `json:"metrics"`
	Periods  []entity.Period     `json:"periods"`
	Defaults entity.Goals        `json:"defaults"`
}

// NewGoalCatalog returns the catalog used to render goal editors.
func NewGoalCatalog() GoalCatalog {
	return GoalCatalog{
		Metrics:  entity.GoalMetrics,
		Periods:  entity.Periods,
		Defaults: entity.DefaultGoals(),
	}
}
