package entity

import "time"

// Employee is the aggregate managed by the employee CRUD surface.
// JSON field names mirror the store columns; request payloads use camelCase
// and are mapped in the handler layer.
type Employee struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	BirthDate   time.Time `json:"birth_date"`
	BasicSalary float64   `json:"basic_salary"`
	Status      string    `json:"status"`
	GroupName   string    `json:"group_name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
