package controller

import (
	"frost-api/internal/domain/model"
	"frost-api/internal/domain/usecase/department"
	"frost-api/pkg/msg"
	"frost-api/pkg/util/numberutils"
	"net/http"

	"github.com/labstack/echo/v4"
)

type DepartmentController struct {
	api     *echo.Group
	useCase department.UseCase
}

func NewDepartmentController(api *echo.Group, useCase department.UseCase) *DepartmentController {
	return &DepartmentController{api: api, useCase: useCase}
}

// InitDepartmentRoutes initializes department monitoring routes
func (controller *DepartmentController) InitDepartmentRoutes() {
	controller.api.GET("/departments", controller.FindAllDepartments)
	controller.api.GET("/departments/schedule", controller.RefreshAllDepartments)
	controller.api.POST("/departments", controller.MonitorDepartment)
	controller.api.DELETE("/departments/:dept", controller.RemoveDepartment)
}

// FindAllDepartments godoc
// @Summary Get all monitored departments
// @Description Retrieve all monitored departments with pagination
// @Tags departments
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} entity.Department "Paginated list of departments"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /departments [get]
func (controller *DepartmentController) FindAllDepartments(c echo.Context) error {
	var page int = numberutils.ToIntWithDefault(c.QueryParam("page"), 0)
	var size int = numberutils.ToIntWithDefault(c.QueryParam("size"), 10)

	departments, err := controller.useCase.FindAllDepartments(page, size)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, departments)
}

// MonitorDepartment godoc
// @Summary Start monitoring a department
// @Description Register a department, seed its station registry and enqueue its first refresh
// @Tags departments
// @Accept json
// @Produce json
// @Param department body model.MonitorDepartmentDTO true "Department monitoring data"
// @Success 201 {object} map[string]string "Department monitoring created successfully"
// @Failure 400 {object} map[string]string "Invalid request body or missing required fields"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /departments [post]
func (controller *DepartmentController) MonitorDepartment(c echo.Context) error {
	var dto model.MonitorDepartmentDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("department.error.invalid-body")})
	}

	if dto.Code == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("department.error.code-required")})
	}

	err := controller.useCase.MonitorDepartment(dto.Code, dto.Name)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]string{"message": msg.GetMessage("department.monitor.created")})
}

// RefreshAllDepartments godoc
// @Summary Schedule a refresh of all monitored departments
// @Description Enqueue a data refresh for every monitored department
// @Tags departments
// @Accept json
// @Produce json
// @Success 202 {object} map[string]string "Departments refresh scheduled successfully"
// @Router /departments/schedule [get]
func (controller *DepartmentController) RefreshAllDepartments(c echo.Context) error {
	// Execute in a separate goroutine to avoid blocking the request
	go func() {
		controller.useCase.RefreshAllDepartments()
	}()

	return c.JSON(http.StatusAccepted, map[string]string{"message": msg.GetMessage("department.schedule.accepted")})
}

// RemoveDepartment godoc
// @Summary Stop monitoring a department
// @Description Remove a department with all its stations and observations
// @Tags departments
// @Accept json
// @Produce json
// @Param dept path string true "Department code"
// @Success 204 "Department monitoring removed successfully"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /departments/{dept} [delete]
func (controller *DepartmentController) RemoveDepartment(c echo.Context) error {
	dept := c.Param("dept")

	if err := controller.useCase.RemoveDepartment(dept); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
