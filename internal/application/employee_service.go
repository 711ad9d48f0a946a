package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/empdesk/employee-api/internal/domain/entity"
	"github.com/empdesk/employee-api/internal/domain/repository"
)

var (
	// ErrMissingFields: a create payload is missing one of its required
	// fields. Raised before any store call.
	ErrMissingFields = errors.New("missing required employee fields")
	// ErrInvalidBirthDate: birthDate did not parse as YYYY-MM-DD.
	ErrInvalidBirthDate = errors.New("invalid birth date")
)

const birthDateLayout = "2006-01-02"

const (
	defaultPage     = 1
	defaultPageSize = 10
)

// ListQuery carries the raw list parameters as they arrive on the query
// string; the service normalizes them.
type ListQuery struct {
	Page          int
	PageSize      int
	SearchTerm    string
	Status        string
	Group         string
	SortBy        string
	SortDirection string
}

// Pagination is the metadata block returned with every employee page.
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	PageSize    int   `json:"pageSize"`
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int64 `json:"totalPages"`
}

// CreateEmployeeInput mirrors the create payload. Everything except Status
// is mandatory.
type CreateEmployeeInput struct {
	Username    string
	FirstName   string
	LastName    string
	Email       string
	BirthDate   string
	BasicSalary float64
	Status      string
	Group       string
	Description string
}

// EmployeeService builds filtered, sorted, paginated reads plus simple
// create/delete over the employee repository.
type EmployeeService struct {
	employees repository.EmployeeRepository
	logger    *logrus.Logger
}

func NewEmployeeService(employees repository.EmployeeRepository, logger *logrus.Logger) *EmployeeService {
	return &EmployeeService{employees: employees, logger: logger}
}

// List returns one page of employees plus pagination metadata. Page and
// page size are clamped to sane minimums; total pages is a ceiling division.
func (s *EmployeeService) List(ctx context.Context, q ListQuery) ([]entity.Employee, Pagination, error) {
	page := q.Page
	if page < 1 {
		page = defaultPage
	}
	size := q.PageSize
	if size < 1 {
		size = defaultPageSize
	}

	filter := repository.EmployeeFilter{
		SearchTerm:    q.SearchTerm,
		Status:        q.Status,
		Group:         q.Group,
		SortBy:        q.SortBy,
		SortDirection: q.SortDirection,
		Limit:         size,
		Offset:        (page - 1) * size,
	}
	employees, total, err := s.employees.List(ctx, filter)
	if err != nil {
		if s.logger != nil {
			s.logger.WithError(err).Error("employee list failed")
		}
		return nil, Pagination{}, err
	}

	pg := Pagination{
		CurrentPage: page,
		PageSize:    size,
		TotalItems:  total,
		TotalPages:  (total + int64(size) - 1) / int64(size),
	}
	return employees, pg, nil
}

func (s *EmployeeService) Get(ctx context.Context, id string) (*entity.Employee, error) {
	return s.employees.GetByID(ctx, id)
}

// Create validates the payload and inserts the employee. Validation runs
// before the repository is touched; uniqueness conflicts pass through as
// the repository's duplicate sentinels.
func (s *EmployeeService) Create(ctx context.Context, in CreateEmployeeInput) (*entity.Employee, error) {
	if in.Username == "" || in.FirstName == "" || in.LastName == "" || in.Email == "" ||
		in.BirthDate == "" || in.BasicSalary == 0 || in.Group == "" || in.Description == "" {
		return nil, ErrMissingFields
	}
	birth, err := time.Parse(birthDateLayout, in.BirthDate)
	if err != nil {
		return nil, ErrInvalidBirthDate
	}

	e := &entity.Employee{
		Username:    in.Username,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		BirthDate:   birth,
		BasicSalary: in.BasicSalary,
		Status:      in.Status,
		GroupName:   in.Group,
		Description: in.Description,
	}
	if err := s.employees.Create(ctx, e); err != nil {
		if !errors.Is(err, repository.ErrDuplicateUsername) && !errors.Is(err, repository.ErrDuplicateEmail) && s.logger != nil {
			s.logger.WithError(err).Error("employee insert failed")
		}
		return nil, err
	}
	return e, nil
}

// Delete removes an employee by id. Deleting an id that does not exist is
// not an error; callers cannot tell the two apart.
func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	if err := s.employees.Delete(ctx, id); err != nil {
		if s.logger != nil {
			s.logger.WithError(err).WithField("employee_id", id).Error("employee delete failed")
		}
		return err
	}
	return nil
}
