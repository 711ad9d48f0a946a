package repository

import (
	"context"

	"github.com/empdesk/employee-api/internal/domain/entity"
)

// EmployeeFilter describes one filtered, sorted, windowed read. SortBy
// carries the API-level field name; implementations map it onto a column
// whitelist and fall back to first name ascending.
type EmployeeFilter struct {
	SearchTerm    string // case-insensitive substring over name/username/email
	Status        string // exact match
	Group         string // case-insensitive substring on group name
	SortBy        string
	SortDirection string // ascending only when "asc"
	Limit         int
	Offset        int
}

// EmployeeRepository is the persistence boundary for employee records.
type EmployeeRepository interface {
	// List returns one page of employees plus the total count matching the
	// filter (ignoring the window).
	List(ctx context.Context, f EmployeeFilter) ([]entity.Employee, int64, error)
	GetByID(ctx context.Context, id string) (*entity.Employee, error)
	Create(ctx context.Context, e *entity.Employee) error
	// Delete is idempotent: deleting an absent id is not an error.
	Delete(ctx context.Context, id string) error
}
