package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/empdesk/employee-api/internal/domain/entity"
	"github.com/empdesk/employee-api/internal/domain/repository"
)

type mockEmployeeRepo struct {
	listFn    func(ctx context.Context, f repository.EmployeeFilter) ([]entity.Employee, int64, error)
	getByIDFn func(ctx context.Context, id string) (*entity.Employee, error)
	createFn  func(ctx context.Context, e *entity.Employee) error
	deleteFn  func(ctx context.Context, id string) error
}

func (m *mockEmployeeRepo) List(ctx context.Context, f repository.EmployeeFilter) ([]entity.Employee, int64, error) {
	if m.listFn != nil {
		return m.listFn(ctx, f)
	}
	return nil, 0, errors.New("not implemented")
}

func (m *mockEmployeeRepo) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockEmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	if m.createFn != nil {
		return m.createFn(ctx, e)
	}
	return errors.New("not implemented")
}

func (m *mockEmployeeRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return errors.New("not implemented")
}

func validCreateInput() CreateEmployeeInput {
	return CreateEmployeeInput{
		Username:    "jdoe",
		FirstName:   "John",
		LastName:    "Doe",
		Email:       "jdoe@example.com",
		BirthDate:   "1990-04-12",
		BasicSalary: 5200,
		Status:      "active",
		Group:       "Engineering",
		Description: "Backend engineer",
	}
}

func TestListPaginationMetadata(t *testing.T) {
	repo := &mockEmployeeRepo{
		listFn: func(ctx context.Context, f repository.EmployeeFilter) ([]entity.Employee, int64, error) {
			return []entity.Employee{{ID: "e-1", Username: "jdoe"}}, 1, nil
		},
	}
	svc := NewEmployeeService(repo, nil)

	employees, pg, err := svc.List(context.Background(), ListQuery{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, employees, 1)
	assert.Equal(t, 1, pg.CurrentPage)
	assert.Equal(t, 10, pg.PageSize)
	assert.Equal(t, int64(1), pg.TotalItems)
	assert.Equal(t, int64(1), pg.TotalPages)
}

func TestListCeilingDivision(t *testing.T) {
	repo := &mockEmployeeRepo{
		listFn: func(ctx context.Context, f repository.EmployeeFilter) ([]entity.Employee, int64, error) {
			return []entity.Employee{}, 25, nil
		},
	}
	svc := NewEmployeeService(repo, nil)

	_, pg, err := svc.List(context.Background(), ListQuery{Page: 3, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(3), pg.TotalPages)
}

func TestListClampsPageAndSize(t *testing.T) {
	var gotFilter repository.EmployeeFilter
	repo := &mockEmployeeRepo{
		listFn: func(ctx context.Context, f repository.EmployeeFilter) ([]entity.Employee, int64, error) {
			gotFilter = f
			return []entity.Employee{}, 0, nil
		},
	}
	svc := NewEmployeeService(repo, nil)

	_, pg, err := svc.List(context.Background(), ListQuery{Page: 0, PageSize: -3})
	require.NoError(t, err)
	assert.Equal(t, 1, pg.CurrentPage)
	assert.Equal(t, 10, pg.PageSize)
	assert.Equal(t, 10, gotFilter.Limit)
	assert.Equal(t, 0, gotFilter.Offset)
}

func TestListOffsetWindow(t *testing.T) {
	var gotFilter repository.EmployeeFilter
	repo := &mockEmployeeRepo{
		listFn: func(ctx context.Context, f repository.EmployeeFilter) ([]entity.Employee, int64, error) {
			gotFilter = f
			return []entity.Employee{}, 0, nil
		},
	}
	svc := NewEmployeeService(repo, nil)

	_, _, err := svc.List(context.Background(), ListQuery{Page: 3, PageSize: 20, SearchTerm: "doe"})
	require.NoError(t, err)
	assert.Equal(t, 20, gotFilter.Limit)
	assert.Equal(t, 40, gotFilter.Offset)
	assert.Equal(t, "doe", gotFilter.SearchTerm)
}

func TestCreateMissingFieldSkipsStore(t *testing.T) {
	fields := []func(*CreateEmployeeInput){
		func(in *CreateEmployeeInput) { in.Username = "" },
		func(in *CreateEmployeeInput) { in.FirstName = "" },
		func(in *CreateEmployeeInput) { in.LastName = "" },
		func(in *CreateEmployeeInput) { in.Email = "" },
		func(in *CreateEmployeeInput) { in.BirthDate = "" },
		func(in *CreateEmployeeInput) { in.BasicSalary = 0 },
		func(in *CreateEmployeeInput) { in.Group = "" },
		func(in *CreateEmployeeInput) { in.Description = "" },
	}
	for _, blank := range fields {
		called := false
		repo := &mockEmployeeRepo{
			createFn: func(ctx context.Context, e *entity.Employee) error {
				called = true
				return nil
			},
		}
		svc := NewEmployeeService(repo, nil)

		in := validCreateInput()
		blank(&in)
		_, err := svc.Create(context.Background(), in)
		assert.ErrorIs(t, err, ErrMissingFields)
		assert.False(t, called, "store must not be written for an invalid payload")
	}
}

func TestCreateStatusOptional(t *testing.T) {
	repo := &mockEmployeeRepo{
		createFn: func(ctx context.Context, e *entity.Employee) error {
			e.ID = "e-1"
			return nil
		},
	}
	svc := NewEmployeeService(repo, nil)

	in := validCreateInput()
	in.Status = ""
	e, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "e-1", e.ID)
	assert.Equal(t, time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC), e.BirthDate)
}

func TestCreateInvalidBirthDate(t *testing.T) {
	svc := NewEmployeeService(&mockEmployeeRepo{}, nil)

	in := validCreateInput()
	in.BirthDate = "12/04/1990"
	_, err := svc.Create(context.Background(), in)
	assert.ErrorIs(t, err, ErrInvalidBirthDate)
}

func TestCreateDuplicatePassthrough(t *testing.T) {
	repo := &mockEmployeeRepo{
		createFn: func(ctx context.Context, e *entity.Employee) error {
			return repository.ErrDuplicateEmail
		},
	}
	svc := NewEmployeeService(repo, nil)

	_, err := svc.Create(context.Background(), validCreateInput())
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
}

func TestDeleteIdempotent(t *testing.T) {
	repo := &mockEmployeeRepo{
		deleteFn: func(ctx context.Context, id string) error {
			// zero rows deleted looks the same as one
			return nil
		},
	}
	svc := NewEmployeeService(repo, nil)
	assert.NoError(t, svc.Delete(context.Background(), "missing-id"))
}
