package controller

import (
	"errors"
	"frost-api/internal/domain/usecase/dashboard"
	"frost-api/pkg/msg"
	"frost-api/pkg/resource"
	"frost-api/pkg/util/numberutils"
	"html/template"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type DashboardController struct {
	api      *echo.Group
	useCase  dashboard.UseCase
	page     *template.Template
	basePath string
}

func NewDashboardController(api *echo.Group, useCase dashboard.UseCase) *DashboardController {
	return &DashboardController{
		api:      api,
		useCase:  useCase,
		page:     template.Must(template.New("dashboard").Parse(dashboardPage)),
		basePath: resource.GetString("app.server.context-path"),
	}
}

// InitDashboardRoutes initializes the dashboard page and its chart series routes
func (controller *DashboardController) InitDashboardRoutes() {
	controller.api.GET("/dashboard", controller.DashboardPage)
	controller.api.GET("/departments/:dept/preview", controller.Preview)
	controller.api.GET("/departments/:dept/trend", controller.AnnualTrend)
	controller.api.GET("/departments/:dept/stations", controller.StationMap)
	controller.api.GET("/departments/:dept/distribution", controller.YearlyDistribution)
}

// DashboardPage godoc
// @Summary Render the weather dashboard page
// @Description Single page with the dataset preview, annual trend, station map and yearly distribution sections
// @Tags dashboard
// @Produce html
// @Param dept query string false "Department code"
// @Success 200 {string} string "HTML dashboard"
// @Router /dashboard [get]
func (controller *DashboardController) DashboardPage(c echo.Context) error {
	dept := c.QueryParam("dept")
	if dept == "" {
		dept = resource.GetString("app.frost.default-department")
	}

	var sb strings.Builder
	err := controller.page.Execute(&sb, map[string]string{
		"BasePath":   controller.basePath,
		"Department": dept,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.HTML(http.StatusOK, sb.String())
}

// Preview godoc
// @Summary Get the dataset preview of a department
// @Description First rows of the departmental record set plus its dimensions
// @Tags dashboard
// @Accept json
// @Produce json
// @Param dept path string true "Department code"
// @Param rows query int false "Number of preview rows" default(5)
// @Success 200 {object} model.DatasetPreview "Dataset preview"
// @Failure 404 {object} map[string]string "No data available for the department"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /departments/{dept}/preview [get]
func (controller *DashboardController) Preview(c echo.Context) error {
	dept := c.Param("dept")
	rows := numberutils.ToIntWithDefault(c.QueryParam("rows"), resource.GetInt("app.frost.preview-rows"))

	preview, err := controller.useCase.Preview(dept, rows)
	if err != nil {
		return controller.sectionError(c, dept, "dashboard.error.preview-failed", err)
	}
	return c.JSON(http.StatusOK, preview)
}

// AnnualTrend godoc
// @Summary Get the annual minimum-temperature trend of a department
// @Description Yearly mean minimum temperature of the department's most frequent station
// @Tags dashboard
// @Accept json
// @Produce json
// @Param dept path string true "Department code"
// @Success 200 {object} model.AnnualTrend "Annual trend series"
// @Failure 404 {object} map[string]string "No data available for the department"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /departments/{dept}/trend [get]
func (controller *DashboardController) AnnualTrend(c echo.Context) error {
	dept := c.Param("dept")

	trend, err := controller.useCase.AnnualTrend(dept)
	if err != nil {
		return controller.sectionError(c, dept, "dashboard.error.trend-failed", err)
	}
	return c.JSON(http.StatusOK, trend)
}

// StationMap godoc
// @Summary Get the station map points of a department
// @Description Stations with coordinates; altitude drives the color scale client-side
// @Tags dashboard
// @Accept json
// @Produce json
// @Param dept path string true "Department code"
// @Success 200 {array} model.StationPoint "Station map points"
// @Failure 404 {object} map[string]string "No stations with coordinates"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /departments/{dept}/stations [get]
func (controller *DashboardController) StationMap(c echo.Context) error {
	dept := c.Param("dept")

	points, err := controller.useCase.StationMap(dept)
	if err != nil {
		return controller.sectionError(c, dept, "dashboard.error.map-failed", err)
	}
	return c.JSON(http.StatusOK, points)
}

// YearlyDistribution godoc
// @Summary Get the yearly minimum-temperature distribution of a department
// @Description Per-year boxplot statistics of minimum temperatures across all stations
// @Tags dashboard
// @Accept json
// @Produce json
// @Param dept path string true "Department code"
// @Success 200 {array} model.YearBox "Per-year boxplot statistics"
// @Failure 404 {object} map[string]string "No data available for the department"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /departments/{dept}/distribution [get]
func (controller *DashboardController) YearlyDistribution(c echo.Context) error {
	dept := c.Param("dept")

	boxes, err := controller.useCase.YearlyDistribution(dept)
	if err != nil {
		return controller.sectionError(c, dept, "dashboard.error.distribution-failed", err)
	}
	return c.JSON(http.StatusOK, boxes)
}

// sectionError maps a section failure to an inline, user-facing message; data
// gaps are 404s, everything else is a 500
func (controller *DashboardController) sectionError(c echo.Context, dept string, messageKey string, err error) error {
	if errors.Is(err, dashboard.ErrEmptyDataset) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": msg.GetMessage("dashboard.error.empty-dataset", dept)})
	}
	if errors.Is(err, dashboard.ErrNoMappableStations) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": msg.GetMessage("dashboard.error.no-stations", dept)})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": msg.GetMessage(messageKey, dept)})
}
