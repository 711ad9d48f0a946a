package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/empdesk/employee-api/internal/domain/entity"
	"github.com/empdesk/employee-api/internal/domain/repository"
)

const employeeColumns = `id, username, first_name, last_name, email, birth_date, basic_salary, status, group_name, description, created_at`

// sortColumns whitelists the sortable API field names. Sorting is the only
// place a caller-supplied value could reach SQL text, so anything outside
// this map falls back to the default order.
var sortColumns = map[string]string{
	"username":    "username",
	"firstName":   "first_name",
	"first_name":  "first_name",
	"lastName":    "last_name",
	"last_name":   "last_name",
	"email":       "email",
	"birthDate":   "birth_date",
	"birth_date":  "birth_date",
	"basicSalary": "basic_salary",
	"basic_salary": "basic_salary",
	"status":      "status",
	"group":       "group_name",
	"group_name":  "group_name",
}

type EmployeeRepository struct {
	pool *pgxpool.Pool
}

func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

// buildFilter assembles the WHERE clause shared by the count and page
// queries, one positional argument per optional predicate.
func buildFilter(f repository.EmployeeFilter) (string, []any) {
	var conds []string
	var args []any

	if f.SearchTerm != "" {
		args = append(args, "%"+f.SearchTerm+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(first_name ILIKE $%d OR last_name ILIKE $%d OR username ILIKE $%d OR email ILIKE $%d)",
			n, n, n, n))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.Group != "" {
		args = append(args, "%"+f.Group+"%")
		conds = append(conds, fmt.Sprintf("group_name ILIKE $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func orderBy(f repository.EmployeeFilter) string {
	col, ok := sortColumns[f.SortBy]
	if !ok {
		return " ORDER BY first_name ASC"
	}
	dir := "DESC"
	if f.SortDirection == "asc" {
		dir = "ASC"
	}
	return " ORDER BY " + col + " " + dir
}

func (r *EmployeeRepository) List(ctx context.Context, f repository.EmployeeFilter) ([]entity.Employee, int64, error) {
	where, args := buildFilter(f)

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM employees`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + employeeColumns + ` FROM employees` + where + orderBy(f) +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	employees := make([]entity.Employee, 0, f.Limit)
	for rows.Next() {
		var e entity.Employee
		if err := scanEmployee(rows, &e); err != nil {
			return nil, 0, err
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return employees, total, nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	e := &entity.Employee{}
	row := r.pool.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id)
	if err := scanEmployee(row, e); err != nil {
		// A malformed id is indistinguishable from a missing row to callers.
		var pgErr *pgconn.PgError
		if errors.Is(err, pgx.ErrNoRows) || (errors.As(err, &pgErr) && pgErr.Code == invalidTextValue) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *EmployeeRepository) Create(ctx context.Context, e *entity.Employee) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO employees (username, first_name, last_name, email, birth_date, basic_salary, status, group_name, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`, e.Username, e.FirstName, e.LastName, e.Email, e.BirthDate, e.BasicSalary, e.Status, e.GroupName, e.Description)

	if err := row.Scan(&e.ID, &e.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			if strings.Contains(pgErr.ConstraintName, "email") {
				return repository.ErrDuplicateEmail
			}
			return repository.ErrDuplicateUsername
		}
		return err
	}
	return nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id string) error {
	// Rows affected is deliberately ignored: deleting an absent id succeeds.
	_, err := r.pool.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	return err
}

func scanEmployee(row pgx.Row, e *entity.Employee) error {
	return row.Scan(&e.ID, &e.Username, &e.FirstName, &e.LastName, &e.Email,
		&e.BirthDate, &e.BasicSalary, &e.Status, &e.GroupName, &e.Description, &e.CreatedAt)
}

var _ repository.EmployeeRepository = (*EmployeeRepository)(nil)
