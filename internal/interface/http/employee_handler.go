package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/empdesk/employee-api/internal/application"
	"github.com/empdesk/employee-api/internal/domain/repository"
	"github.com/empdesk/employee-api/pkg/response"
	"github.com/empdesk/employee-api/pkg/validation"
)

type EmployeeHandler struct {
	Svc    *application.EmployeeService
	Logger *logrus.Logger
}

func NewEmployeeHandler(svc *application.EmployeeService, logger *logrus.Logger) *EmployeeHandler {
	return &EmployeeHandler{Svc: svc, Logger: logger}
}

type createEmployeeRequest struct {
	Username    string  `json:"username" binding:"required"`
	FirstName   string  `json:"firstName" binding:"required"`
	LastName    string  `json:"lastName" binding:"required"`
	Email       string  `json:"email" binding:"required"`
	BirthDate   string  `json:"birthDate" binding:"required"`
	BasicSalary float64 `json:"basicSalary" binding:"required"`
	Status      string  `json:"status"`
	Group       string  `json:"group" binding:"required"`
	Description string  `json:"description" binding:"required"`
}

func intQuery(c *gin.Context, name string, def int) int {
	v := c.Query(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// List GET /employees
func (h *EmployeeHandler) List(c *gin.Context) {
	q := application.ListQuery{
		Page:          intQuery(c, "page", 1),
		PageSize:      intQuery(c, "pageSize", 10),
		SearchTerm:    c.Query("searchTerm"),
		Status:        c.Query("status"),
		Group:         c.Query("group"),
		SortBy:        c.Query("sortBy"),
		SortDirection: c.Query("sortDirection"),
	}

	employees, pagination, err := h.Svc.List(c.Request.Context(), q)
	if err != nil {
		response.Message(c, http.StatusInternalServerError, "Error fetching employees")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"employees":  employees,
		"pagination": pagination,
	})
}

// Get GET /employees/:id
func (h *EmployeeHandler) Get(c *gin.Context) {
	employee, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, repository.ErrNotFound):
		response.Message(c, http.StatusNotFound, "Employee not found")
		return
	case err != nil:
		h.Logger.WithError(err).Error("employee fetch failed")
		response.Message(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, employee)
}

// Create POST /employees
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req createEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.WithField("details", validation.ToDetails(err)).Debug("create employee payload rejected")
		response.Message(c, http.StatusBadRequest, "All fields are required")
		return
	}

	employee, err := h.Svc.Create(c.Request.Context(), application.CreateEmployeeInput{
		Username:    req.Username,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		BirthDate:   req.BirthDate,
		BasicSalary: req.BasicSalary,
		Status:      req.Status,
		Group:       req.Group,
		Description: req.Description,
	})
	switch {
	case errors.Is(err, application.ErrMissingFields):
		response.Message(c, http.StatusBadRequest, "All fields are required")
		return
	case errors.Is(err, application.ErrInvalidBirthDate):
		response.Message(c, http.StatusBadRequest, "birthDate must be a valid date in YYYY-MM-DD format")
		return
	case errors.Is(err, repository.ErrDuplicateUsername):
		response.Message(c, http.StatusConflict, "An employee with that username already exists.")
		return
	case errors.Is(err, repository.ErrDuplicateEmail):
		response.Message(c, http.StatusConflict, "An employee with that email already exists.")
		return
	case err != nil:
		response.Message(c, http.StatusInternalServerError, "Failed to create employee")
		return
	}

	c.JSON(http.StatusCreated, employee)
}

// Delete DELETE /employees/:id. 204 whether or not the row existed.
func (h *EmployeeHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Message(c, http.StatusInternalServerError, "Failed to delete employee")
		return
	}
	c.Status(http.StatusNoContent)
}
