package dashboard

import (
	"frost-api/internal/domain/model"
)

type UseCase interface {
	// Preview returns the first rows of a departmental dataset plus its dimensions
	Preview(dept string, rows int) (*model.DatasetPreview, error)

	// AnnualTrend returns the yearly mean minimum temperature of the most
	// frequent station of the department
	AnnualTrend(dept string) (*model.AnnualTrend, error)

	// StationMap returns the stations of the department that have coordinates
	StationMap(dept string) ([]model.StationPoint, error)

	// YearlyDistribution returns per-year boxplot statistics of the minimum
	// temperatures across all stations of the department
	YearlyDistribution(dept string) ([]model.YearBox, error)

	// WarmDepartment precomputes and caches the dataset of a department
	WarmDepartment(dept string) error
}
