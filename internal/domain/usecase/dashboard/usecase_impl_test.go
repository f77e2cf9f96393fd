package dashboard

import (
	"context"
	"errors"
	"math"
	"testing"

	"frost-api/internal/domain/entity"
	"frost-api/internal/domain/model"
	"frost-api/internal/domain/model/external"
)

type fakeFrostGateway struct {
	records *external.DepartmentRecordsResponse
	err     error
	fetches int
}

func (f *fakeFrostGateway) FetchDepartmentRecords(dept string) (*external.DepartmentRecordsResponse, error) {
	f.fetches++
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

func (f *fakeFrostGateway) FetchStations(dept string) (*external.StationListResponse, error) {
	return nil, errors.New("not implemented")
}

type fakeDepartmentGateway struct {
	stations     []entity.Station
	observations []entity.Observation
	err          error
}

func (f *fakeDepartmentGateway) FindAllDepartments(page int, size int) ([]entity.Department, error) {
	return nil, nil
}
func (f *fakeDepartmentGateway) FindDepartmentsWithKeysetPagination(lastCode string, size int) ([]entity.Department, error) {
	return nil, nil
}
func (f *fakeDepartmentGateway) CountDepartments() (int64, error) { return 0, nil }
func (f *fakeDepartmentGateway) FindDepartmentByCode(code string) (*entity.Department, error) {
	return nil, nil
}
func (f *fakeDepartmentGateway) CreateDepartment(department entity.Department) (*entity.Department, error) {
	return &department, nil
}
func (f *fakeDepartmentGateway) DeleteDepartmentByCode(code string) error { return nil }

func (f *fakeDepartmentGateway) FindStationsByDepartment(dept string) ([]entity.Station, error) {
	return f.stations, f.err
}
func (f *fakeDepartmentGateway) UpsertStations(stations []entity.Station) error { return nil }
func (f *fakeDepartmentGateway) DeleteStationsByDepartment(dept string) error   { return nil }

func (f *fakeDepartmentGateway) FindObservationsByDepartment(dept string) ([]entity.Observation, error) {
	return f.observations, f.err
}
func (f *fakeDepartmentGateway) FindObservationsByStation(stationID string) ([]entity.Observation, error) {
	return nil, nil
}
func (f *fakeDepartmentGateway) CountObservationsByDepartment(dept string) (int64, error) {
	return int64(len(f.observations)), nil
}
func (f *fakeDepartmentGateway) UpsertObservations(observations []entity.Observation) error {
	return nil
}
func (f *fakeDepartmentGateway) DeleteObservationsByDepartment(dept string) error { return nil }

type fakeDatasetCache struct {
	datasets map[string]*model.DepartmentDataset
	puts     int
}

func newFakeDatasetCache() *fakeDatasetCache {
	return &fakeDatasetCache{datasets: make(map[string]*model.DepartmentDataset)}
}

func (f *fakeDatasetCache) GetDataset(ctx context.Context, dept string) (*model.DepartmentDataset, bool, error) {
	dataset, found := f.datasets[dept]
	return dataset, found, nil
}

func (f *fakeDatasetCache) PutDataset(ctx context.Context, dept string, dataset *model.DepartmentDataset) error {
	f.puts++
	f.datasets[dept] = dataset
	return nil
}

func (f *fakeDatasetCache) Invalidate(ctx context.Context, dept string) error {
	delete(f.datasets, dept)
	return nil
}

func floatPtr(v float64) *float64 { return &v }

func testStations() []entity.Station {
	return []entity.Station{
		{ID: "04001001", Name: "AIGLUN", Department: "04", Latitude: floatPtr(44.05), Longitude: floatPtr(6.13), Altitude: floatPtr(599)},
		{ID: "04002002", Name: "BARCELONNETTE", Department: "04", Latitude: floatPtr(44.39), Longitude: floatPtr(6.65), Altitude: floatPtr(1155)},
		{ID: "04003003", Name: "NO-COORDS", Department: "04"},
	}
}

func testObservations() []entity.Observation {
	return []entity.Observation{
		{StationID: "04001001", Department: "04", Date: "2020-01-01", MinTemp: -2.5},
		{StationID: "04001001", Department: "04", Date: "2020-01-02", MinTemp: -1.5},
		{StationID: "04001001", Department: "04", Date: "2021-01-01", MinTemp: 0.5},
		{StationID: "04001001", Department: "04", Date: "2021-01-02", MinTemp: 1.5},
		{StationID: "04002002", Department: "04", Date: "2020-01-01", MinTemp: -8.0},
	}
}

func newTestUseCase(gateway *fakeDepartmentGateway, frost *fakeFrostGateway, datasetCache *fakeDatasetCache) UseCase {
	if gateway == nil {
		gateway = &fakeDepartmentGateway{}
	}
	if frost == nil {
		frost = &fakeFrostGateway{}
	}
	if datasetCache == nil {
		datasetCache = newFakeDatasetCache()
	}
	return NewDashboardUseCase(frost, gateway, datasetCache)
}

func TestPreviewReturnsFirstRowsAndDimensions(t *testing.T) {
	gateway := &fakeDepartmentGateway{stations: testStations(), observations: testObservations()}
	uc := newTestUseCase(gateway, nil, nil)

	preview, err := uc.Preview("04", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if preview.TotalRows != 5 {
		t.Errorf("expected 5 total rows, got %d", preview.TotalRows)
	}
	if preview.Stations != 3 {
		t.Errorf("expected 3 stations, got %d", preview.Stations)
	}
	if len(preview.Rows) != 2 {
		t.Fatalf("expected 2 preview rows, got %d", len(preview.Rows))
	}
	if preview.Rows[0].StationName != "AIGLUN" {
		t.Errorf("expected station name resolved to AIGLUN, got %q", preview.Rows[0].StationName)
	}
}

func TestPreviewDefaultsRowCount(t *testing.T) {
	gateway := &fakeDepartmentGateway{stations: testStations(), observations: testObservations()}
	uc := newTestUseCase(gateway, nil, nil)

	preview, err := uc.Preview("04", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(preview.Rows) != 5 {
		t.Errorf("expected default of 5 rows, got %d", len(preview.Rows))
	}
}

func TestPreviewEmptyDepartment(t *testing.T) {
	uc := newTestUseCase(&fakeDepartmentGateway{}, &fakeFrostGateway{records: &external.DepartmentRecordsResponse{Department: "99"}}, nil)

	_, err := uc.Preview("99", 5)
	if !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("expected ErrEmptyDataset, got %v", err)
	}
}

func TestLoadDatasetCachesResult(t *testing.T) {
	gateway := &fakeDepartmentGateway{stations: testStations(), observations: testObservations()}
	datasetCache := newFakeDatasetCache()
	uc := newTestUseCase(gateway, nil, datasetCache)

	if _, err := uc.Preview("04", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if datasetCache.puts != 1 {
		t.Fatalf("expected one cache write, got %d", datasetCache.puts)
	}

	// Second read must be served from the cache
	gateway.err = errors.New("database gone")
	if _, err := uc.Preview("04", 1); err != nil {
		t.Errorf("expected cached dataset to serve the request, got %v", err)
	}
}

func TestLoadDatasetFallsBackToAPI(t *testing.T) {
	frost := &fakeFrostGateway{records: &external.DepartmentRecordsResponse{
		Department: "04",
		Records: []external.StationRecord{
			{StationID: "04001001", StationName: "AIGLUN", Date: "2020-01-01", MinTemp: floatPtr(-3.0), Latitude: floatPtr(44.05), Longitude: floatPtr(6.13), Altitude: floatPtr(599)},
			{StationID: "04001001", StationName: "AIGLUN", Date: "2020-01-02", MinTemp: nil},
		},
	}}
	uc := newTestUseCase(&fakeDepartmentGateway{}, frost, nil)

	preview, err := uc.Preview("04", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if frost.fetches != 1 {
		t.Errorf("expected one upstream fetch, got %d", frost.fetches)
	}
	if preview.TotalRows != 1 {
		t.Errorf("expected null readings dropped, got %d rows", preview.TotalRows)
	}
}

func TestAnnualTrendUsesModalStation(t *testing.T) {
	gateway := &fakeDepartmentGateway{stations: testStations(), observations: testObservations()}
	uc := newTestUseCase(gateway, nil, nil)

	trend, err := uc.AnnualTrend("04")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if trend.StationID != "04001001" {
		t.Fatalf("expected modal station 04001001, got %s", trend.StationID)
	}
	if trend.StationName != "AIGLUN" {
		t.Errorf("expected station name AIGLUN, got %s", trend.StationName)
	}
	if len(trend.Points) != 2 {
		t.Fatalf("expected 2 yearly points, got %d", len(trend.Points))
	}
	if trend.Points[0].Year != 2020 || trend.Points[1].Year != 2021 {
		t.Errorf("expected years ordered [2020 2021], got [%d %d]", trend.Points[0].Year, trend.Points[1].Year)
	}
	if math.Abs(trend.Points[0].MeanMinTemp-(-2.0)) > 1e-9 {
		t.Errorf("expected 2020 mean -2.0, got %f", trend.Points[0].MeanMinTemp)
	}
	if math.Abs(trend.Points[1].MeanMinTemp-1.0) > 1e-9 {
		t.Errorf("expected 2021 mean 1.0, got %f", trend.Points[1].MeanMinTemp)
	}
}

func TestAnnualTrendSkipsMalformedDates(t *testing.T) {
	gateway := &fakeDepartmentGateway{
		stations: testStations(),
		observations: []entity.Observation{
			{StationID: "04001001", Department: "04", Date: "2020-01-01", MinTemp: 1.0},
			{StationID: "04001001", Department: "04", Date: "bad-date", MinTemp: 99.0},
		},
	}
	uc := newTestUseCase(gateway, nil, nil)

	trend, err := uc.AnnualTrend("04")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(trend.Points) != 1 {
		t.Fatalf("expected malformed date dropped, got %d points", len(trend.Points))
	}
	if trend.Points[0].Year != 2020 {
		t.Errorf("expected year 2020, got %d", trend.Points[0].Year)
	}
}

func TestStationMapDropsMissingCoordinates(t *testing.T) {
	gateway := &fakeDepartmentGateway{stations: testStations(), observations: testObservations()}
	uc := newTestUseCase(gateway, nil, nil)

	points, err := uc.StationMap("04")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(points) != 2 {
		t.Fatalf("expected 2 mappable stations, got %d", len(points))
	}
	for _, point := range points {
		if point.StationID == "04003003" {
			t.Errorf("station without coordinates must be dropped from the map")
		}
	}
	if points[0].Altitude != 599 {
		t.Errorf("expected altitude 599, got %f", points[0].Altitude)
	}
}

func TestStationMapAllCoordinatesMissing(t *testing.T) {
	gateway := &fakeDepartmentGateway{
		stations:     []entity.Station{{ID: "04003003", Name: "NO-COORDS", Department: "04"}},
		observations: testObservations(),
	}
	uc := newTestUseCase(gateway, nil, nil)

	_, err := uc.StationMap("04")
	if !errors.Is(err, ErrNoMappableStations) {
		t.Errorf("expected ErrNoMappableStations, got %v", err)
	}
}

func TestYearlyDistribution(t *testing.T) {
	gateway := &fakeDepartmentGateway{stations: testStations(), observations: testObservations()}
	uc := newTestUseCase(gateway, nil, nil)

	boxes, err := uc.YearlyDistribution("04")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(boxes) != 2 {
		t.Fatalf("expected 2 yearly boxes, got %d", len(boxes))
	}
	if boxes[0].Year != 2020 || boxes[1].Year != 2021 {
		t.Errorf("expected years ordered [2020 2021], got [%d %d]", boxes[0].Year, boxes[1].Year)
	}
	// 2020 sample is [-8.0 -2.5 -1.5]
	if boxes[0].Samples != 3 {
		t.Errorf("expected 3 samples for 2020, got %d", boxes[0].Samples)
	}
	if math.Abs(boxes[0].Median-(-2.5)) > 1e-9 {
		t.Errorf("expected 2020 median -2.5, got %f", boxes[0].Median)
	}
}

func TestWarmDepartmentPopulatesCache(t *testing.T) {
	gateway := &fakeDepartmentGateway{stations: testStations(), observations: testObservations()}
	datasetCache := newFakeDatasetCache()
	uc := newTestUseCase(gateway, nil, datasetCache)

	if err := uc.WarmDepartment("04"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, found := datasetCache.datasets["04"]; !found {
		t.Errorf("expected dataset cached for department 04")
	}
}

func TestWarmDepartmentSkipsEmpty(t *testing.T) {
	datasetCache := newFakeDatasetCache()
	uc := newTestUseCase(&fakeDepartmentGateway{}, nil, datasetCache)

	if err := uc.WarmDepartment("99"); err != nil {
		t.Fatalf("expected warm of empty department to be a no-op, got %v", err)
	}
	if datasetCache.puts != 0 {
		t.Errorf("expected no cache write for empty department, got %d", datasetCache.puts)
	}
}
