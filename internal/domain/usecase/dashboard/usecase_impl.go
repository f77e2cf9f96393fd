package dashboard

import (
	"context"
	"errors"
	"fmt"
	"frost-api/internal/domain/entity"
	"frost-api/internal/domain/gateway/api"
	"frost-api/internal/domain/gateway/cache"
	"frost-api/internal/domain/gateway/db"
	"frost-api/internal/domain/model"
	"frost-api/pkg/log"
	"frost-api/pkg/stats"
	"frost-api/pkg/util/numberutils"
	"sort"
)

// previewColumns mirrors the columns of an upstream record row.
const previewColumns = 7

// ErrEmptyDataset signals that a department has no observations; callers map
// it to an inline, user-facing message instead of a hard failure.
var ErrEmptyDataset = errors.New("no data available for department")

// ErrNoMappableStations signals that none of the department's stations carry
// coordinates.
var ErrNoMappableStations = errors.New("no stations with coordinates for department")

type dashboardUseCase struct {
	apiGateway   api.FrostGateway
	dbGateway    db.DepartmentGateway
	datasetCache cache.DatasetCache
}

func NewDashboardUseCase(apiGateway api.FrostGateway, dbGateway db.DepartmentGateway, datasetCache cache.DatasetCache) UseCase {
	return &dashboardUseCase{
		apiGateway:   apiGateway,
		dbGateway:    dbGateway,
		datasetCache: datasetCache,
	}
}

// loadDataset resolves a departmental dataset: cache first, then the
// database, then the external API as a last resort. Whatever was resolved is
// cached for the next section.
func (uc *dashboardUseCase) loadDataset(dept string) (*model.DepartmentDataset, error) {
	if dept == "" {
		return nil, errors.New("department code is required")
	}

	ctx := context.Background()

	cached, found, err := uc.datasetCache.GetDataset(ctx, dept)
	if err != nil {
		log.Warnf("Failed to read cached dataset for department %s: %v", dept, err)
	}
	if found && !cached.IsEmpty() {
		return cached, nil
	}

	dataset, err := uc.loadFromDatabase(dept)
	if err != nil {
		return nil, err
	}

	if dataset.IsEmpty() {
		dataset, err = uc.loadFromAPI(dept)
		if err != nil {
			return nil, err
		}
	}

	if dataset.IsEmpty() {
		return nil, ErrEmptyDataset
	}

	if err := uc.datasetCache.PutDataset(ctx, dept, dataset); err != nil {
		log.Warnf("Failed to cache dataset for department %s: %v", dept, err)
	}

	return dataset, nil
}

// loadFromDatabase assembles the dataset from persisted stations and observations
func (uc *dashboardUseCase) loadFromDatabase(dept string) (*model.DepartmentDataset, error) {
	stations, err := uc.dbGateway.FindStationsByDepartment(dept)
	if err != nil {
		return nil, fmt.Errorf("failed to load stations for department '%s': %w", dept, err)
	}

	observations, err := uc.dbGateway.FindObservationsByDepartment(dept)
	if err != nil {
		return nil, fmt.Errorf("failed to load observations for department '%s': %w", dept, err)
	}

	return &model.DepartmentDataset{
		Department:   dept,
		Stations:     stations,
		Observations: observations,
	}, nil
}

// loadFromAPI fetches the dataset straight from the upstream API, for
// departments browsed before their first refresh landed
func (uc *dashboardUseCase) loadFromAPI(dept string) (*model.DepartmentDataset, error) {
	response, err := uc.apiGateway.FetchDepartmentRecords(dept)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch records for department '%s': %w", dept, err)
	}

	dataset := &model.DepartmentDataset{Department: dept}
	seen := make(map[string]bool)

	for _, record := range response.Records {
		if record.StationID == "" {
			continue
		}
		if !seen[record.StationID] {
			seen[record.StationID] = true
			dataset.Stations = append(dataset.Stations, entity.Station{
				ID:         record.StationID,
				Name:       record.StationName,
				Department: dept,
				Latitude:   record.Latitude,
				Longitude:  record.Longitude,
				Altitude:   record.Altitude,
			})
		}
		if record.MinTemp == nil || record.Date == "" {
			continue
		}
		dataset.Observations = append(dataset.Observations, entity.Observation{
			StationID:  record.StationID,
			Department: dept,
			Date:       record.Date,
			MinTemp:    *record.MinTemp,
		})
	}

	return dataset, nil
}

// Preview returns the first rows of a departmental dataset plus its dimensions
func (uc *dashboardUseCase) Preview(dept string, rows int) (*model.DatasetPreview, error) {
	dataset, err := uc.loadDataset(dept)
	if err != nil {
		return nil, err
	}

	if rows <= 0 {
		rows = 5
	}
	rows = numberutils.ClampInt(rows, 0, len(dataset.Observations))

	stationsByID := make(map[string]entity.Station, len(dataset.Stations))
	for _, station := range dataset.Stations {
		stationsByID[station.ID] = station
	}

	preview := &model.DatasetPreview{
		Department:   dept,
		Rows:         make([]model.ObservationRow, 0, rows),
		TotalRows:    int64(len(dataset.Observations)),
		TotalColumns: previewColumns,
		Stations:     len(dataset.Stations),
	}

	for _, obs := range dataset.Observations[:rows] {
		station := stationsByID[obs.StationID]
		preview.Rows = append(preview.Rows, model.ObservationRow{
			StationID:   obs.StationID,
			StationName: station.Name,
			Date:        obs.Date,
			MinTemp:     obs.MinTemp,
			Latitude:    station.Latitude,
			Longitude:   station.Longitude,
			Altitude:    station.Altitude,
		})
	}

	return preview, nil
}

// AnnualTrend computes the yearly mean minimum temperature of the most
// frequent station of the department
func (uc *dashboardUseCase) AnnualTrend(dept string) (*model.AnnualTrend, error) {
	dataset, err := uc.loadDataset(dept)
	if err != nil {
		return nil, err
	}

	// Most frequent station of the dataset
	counts := make(map[string]int)
	for _, obs := range dataset.Observations {
		counts[obs.StationID]++
	}
	modalStation, _ := stats.Mode(counts)
	if modalStation == "" {
		return nil, ErrEmptyDataset
	}

	// Group the modal station's readings by year
	byYear := make(map[int][]float64)
	for _, obs := range dataset.Observations {
		if obs.StationID != modalStation {
			continue
		}
		year := obs.Year()
		if year == 0 {
			log.Warnf("Skipping observation with malformed date '%s' for station %s", obs.Date, obs.StationID)
			continue
		}
		byYear[year] = append(byYear[year], obs.MinTemp)
	}

	years := make([]int, 0, len(byYear))
	for year := range byYear {
		years = append(years, year)
	}
	sort.Ints(years)

	trend := &model.AnnualTrend{
		Department:  dept,
		StationID:   modalStation,
		StationName: dataset.StationName(modalStation),
		Points:      make([]model.TrendPoint, 0, len(years)),
	}

	for _, year := range years {
		mean, err := stats.Mean(byYear[year])
		if err != nil {
			continue
		}
		trend.Points = append(trend.Points, model.TrendPoint{
			Year:        year,
			MeanMinTemp: numberutils.RoundTo(mean, 2),
			Samples:     len(byYear[year]),
		})
	}

	return trend, nil
}

// StationMap returns the stations of the department that have coordinates
func (uc *dashboardUseCase) StationMap(dept string) ([]model.StationPoint, error) {
	dataset, err := uc.loadDataset(dept)
	if err != nil {
		return nil, err
	}

	points := make([]model.StationPoint, 0, len(dataset.Stations))
	for _, station := range dataset.Stations {
		// Stations without coordinates cannot be placed on the map
		if !station.HasCoordinates() {
			continue
		}
		altitude := 0.0
		if station.Altitude != nil {
			altitude = *station.Altitude
		}
		points = append(points, model.StationPoint{
			StationID: station.ID,
			Name:      station.Name,
			Latitude:  *station.Latitude,
			Longitude: *station.Longitude,
			Altitude:  altitude,
		})
	}

	if len(points) == 0 {
		return nil, ErrNoMappableStations
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].StationID < points[j].StationID
	})

	return points, nil
}

// YearlyDistribution computes per-year boxplot statistics of the minimum
// temperatures across all stations of the department
func (uc *dashboardUseCase) YearlyDistribution(dept string) ([]model.YearBox, error) {
	dataset, err := uc.loadDataset(dept)
	if err != nil {
		return nil, err
	}

	byYear := make(map[int][]float64)
	for _, obs := range dataset.Observations {
		year := obs.Year()
		if year == 0 {
			continue
		}
		byYear[year] = append(byYear[year], obs.MinTemp)
	}

	if len(byYear) == 0 {
		return nil, ErrEmptyDataset
	}

	years := make([]int, 0, len(byYear))
	for year := range byYear {
		years = append(years, year)
	}
	sort.Ints(years)

	boxes := make([]model.YearBox, 0, len(years))
	for _, year := range years {
		box, err := stats.BoxPlot(byYear[year])
		if err != nil {
			continue
		}
		boxes = append(boxes, model.YearBox{
			Year:     year,
			Lower:    box.Lower,
			Q1:       box.Q1,
			Median:   box.Median,
			Q3:       box.Q3,
			Upper:    box.Upper,
			Outliers: box.Outliers,
			Samples:  box.Samples,
		})
	}

	return boxes, nil
}

// WarmDepartment precomputes and caches the dataset of a department
func (uc *dashboardUseCase) WarmDepartment(dept string) error {
	if dept == "" {
		return errors.New("department code is required")
	}

	dataset, err := uc.loadFromDatabase(dept)
	if err != nil {
		return fmt.Errorf("failed to warm department '%s': %w", dept, err)
	}

	if dataset.IsEmpty() {
		log.Warnf("Skipping cache warm for department %s: no observations persisted yet", dept)
		return nil
	}

	if err := uc.datasetCache.PutDataset(context.Background(), dept, dataset); err != nil {
		return fmt.Errorf("failed to cache dataset for department '%s': %w", dept, err)
	}

	log.Infof("Warmed cache for department '%s': %d stations, %d observations", dept, len(dataset.Stations), len(dataset.Observations))
	return nil
}
