package department

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"frost-api/internal/domain/entity"
	"frost-api/internal/domain/gateway/queue"
	"frost-api/internal/domain/model"
	"frost-api/internal/domain/model/external"
)

type fakeFrostGateway struct {
	records  *external.DepartmentRecordsResponse
	stations *external.StationListResponse
	err      error
}

func (f *fakeFrostGateway) FetchDepartmentRecords(dept string) (*external.DepartmentRecordsResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

func (f *fakeFrostGateway) FetchStations(dept string) (*external.StationListResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.stations, nil
}

type fakeDepartmentGateway struct {
	departments      []entity.Department
	created          []entity.Department
	upsertedStations []entity.Station
	upsertedObs      []entity.Observation
	deletedCodes     []string
	findByCodeResult *entity.Department
	err              error
}

func (f *fakeDepartmentGateway) FindAllDepartments(page int, size int) ([]entity.Department, error) {
	if f.err != nil {
		return nil, f.err
	}
	start := page * size
	if start >= len(f.departments) {
		return nil, nil
	}
	end := start + size
	if end > len(f.departments) {
		end = len(f.departments)
	}
	return f.departments[start:end], nil
}

func (f *fakeDepartmentGateway) FindDepartmentsWithKeysetPagination(lastCode string, size int) ([]entity.Department, error) {
	if f.err != nil {
		return nil, f.err
	}
	var result []entity.Department
	for _, dept := range f.departments {
		if dept.Code > lastCode {
			result = append(result, dept)
			if len(result) == size {
				break
			}
		}
	}
	return result, nil
}

func (f *fakeDepartmentGateway) CountDepartments() (int64, error) {
	return int64(len(f.departments)), f.err
}

func (f *fakeDepartmentGateway) FindDepartmentByCode(code string) (*entity.Department, error) {
	return f.findByCodeResult, f.err
}

func (f *fakeDepartmentGateway) CreateDepartment(department entity.Department) (*entity.Department, error) {
	f.created = append(f.created, department)
	return &department, nil
}

func (f *fakeDepartmentGateway) DeleteDepartmentByCode(code string) error {
	f.deletedCodes = append(f.deletedCodes, code)
	return nil
}

func (f *fakeDepartmentGateway) FindStationsByDepartment(dept string) ([]entity.Station, error) {
	return nil, nil
}

func (f *fakeDepartmentGateway) UpsertStations(stations []entity.Station) error {
	f.upsertedStations = append(f.upsertedStations, stations...)
	return nil
}

func (f *fakeDepartmentGateway) DeleteStationsByDepartment(dept string) error { return nil }

func (f *fakeDepartmentGateway) FindObservationsByDepartment(dept string) ([]entity.Observation, error) {
	return nil, nil
}

func (f *fakeDepartmentGateway) FindObservationsByStation(stationID string) ([]entity.Observation, error) {
	return nil, nil
}

func (f *fakeDepartmentGateway) CountObservationsByDepartment(dept string) (int64, error) {
	return 0, nil
}

func (f *fakeDepartmentGateway) UpsertObservations(observations []entity.Observation) error {
	f.upsertedObs = append(f.upsertedObs, observations...)
	return nil
}

func (f *fakeDepartmentGateway) DeleteObservationsByDepartment(dept string) error { return nil }

type fakeSender struct {
	messages []any
	batches  [][]queue.BatchMessage
	err      error
}

func (f *fakeSender) SendMessage(queueName string, body any) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, body)
	return nil
}

func (f *fakeSender) SendMessageBatch(queueName string, messages []queue.BatchMessage) (*queue.BatchResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.batches = append(f.batches, messages)
	successful := make([]string, len(messages))
	for i, message := range messages {
		successful[i] = message.MessageID
	}
	return &queue.BatchResult{Successful: successful}, nil
}

type fakeDatasetCache struct {
	invalidated []string
}

func (f *fakeDatasetCache) GetDataset(ctx context.Context, dept string) (*model.DepartmentDataset, bool, error) {
	return nil, false, nil
}

func (f *fakeDatasetCache) PutDataset(ctx context.Context, dept string, dataset *model.DepartmentDataset) error {
	return nil
}

func (f *fakeDatasetCache) Invalidate(ctx context.Context, dept string) error {
	f.invalidated = append(f.invalidated, dept)
	return nil
}

func floatPtr(v float64) *float64 { return &v }

func TestFindAllDepartmentsPagination(t *testing.T) {
	gateway := &fakeDepartmentGateway{departments: []entity.Department{
		{Code: "01"}, {Code: "04"}, {Code: "05"},
	}}
	uc := NewDepartmentUseCase("refresh-queue", 10, &fakeSender{}, &fakeFrostGateway{}, gateway, &fakeDatasetCache{})

	page, err := uc.FindAllDepartments(0, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Content) != 2 {
		t.Errorf("expected 2 departments on page 0, got %d", len(page.Content))
	}
	if page.TotalElements != 3 {
		t.Errorf("expected 3 total elements, got %d", page.TotalElements)
	}
	if page.TotalPages != 2 {
		t.Errorf("expected 2 total pages, got %d", page.TotalPages)
	}
}

func TestMonitorDepartment(t *testing.T) {
	gateway := &fakeDepartmentGateway{}
	sender := &fakeSender{}
	frost := &fakeFrostGateway{stations: &external.StationListResponse{
		Department: "04",
		Stations: []external.StationInfo{
			{StationID: "04001001", StationName: "AIGLUN", Latitude: floatPtr(44.05), Longitude: floatPtr(6.13), Altitude: floatPtr(599)},
		},
	}}
	uc := NewDepartmentUseCase("refresh-queue", 10, sender, frost, gateway, &fakeDatasetCache{})

	if err := uc.MonitorDepartment("04", "Alpes-de-Haute-Provence"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(gateway.created) != 1 || gateway.created[0].Code != "04" {
		t.Errorf("expected department 04 persisted, got %+v", gateway.created)
	}
	if len(gateway.upsertedStations) != 1 {
		t.Errorf("expected 1 station seeded, got %d", len(gateway.upsertedStations))
	}
	if len(sender.messages) != 1 {
		t.Errorf("expected first refresh enqueued, got %d messages", len(sender.messages))
	}
}

func TestMonitorDepartmentAlreadyMonitored(t *testing.T) {
	gateway := &fakeDepartmentGateway{findByCodeResult: &entity.Department{Code: "04"}}
	uc := NewDepartmentUseCase("refresh-queue", 10, &fakeSender{}, &fakeFrostGateway{}, gateway, &fakeDatasetCache{})

	err := uc.MonitorDepartment("04", "")
	if err == nil {
		t.Fatal("expected error for already monitored department")
	}
}

func TestMonitorDepartmentUnknownUpstream(t *testing.T) {
	frost := &fakeFrostGateway{stations: &external.StationListResponse{Department: "99"}}
	uc := NewDepartmentUseCase("refresh-queue", 10, &fakeSender{}, frost, &fakeDepartmentGateway{}, &fakeDatasetCache{})

	err := uc.MonitorDepartment("99", "")
	if err == nil {
		t.Fatal("expected error when upstream has no stations for the department")
	}
}

func TestRefreshDepartment(t *testing.T) {
	gateway := &fakeDepartmentGateway{}
	datasetCache := &fakeDatasetCache{}
	frost := &fakeFrostGateway{records: &external.DepartmentRecordsResponse{
		Department: "04",
		Records: []external.StationRecord{
			{StationID: "04001001", StationName: "AIGLUN", Date: "2020-01-01", MinTemp: floatPtr(-2.5)},
			{StationID: "04001001", StationName: "AIGLUN", Date: "2020-01-02", MinTemp: floatPtr(-1.5)},
			{StationID: "04002002", StationName: "BARCELONNETTE", Date: "2020-01-01", MinTemp: nil},
		},
	}}
	uc := NewDepartmentUseCase("refresh-queue", 10, &fakeSender{}, frost, gateway, datasetCache)

	if err := uc.RefreshDepartment(entity.Department{Code: "04"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(gateway.upsertedStations) != 2 {
		t.Errorf("expected 2 stations upserted, got %d", len(gateway.upsertedStations))
	}
	if len(gateway.upsertedObs) != 2 {
		t.Errorf("expected 2 observations upserted (null reading dropped), got %d", len(gateway.upsertedObs))
	}
	if len(datasetCache.invalidated) != 1 || datasetCache.invalidated[0] != "04" {
		t.Errorf("expected cached dataset invalidated for 04, got %v", datasetCache.invalidated)
	}
}

func TestRefreshDepartmentUpstreamFailure(t *testing.T) {
	frost := &fakeFrostGateway{err: errors.New("upstream down")}
	uc := NewDepartmentUseCase("refresh-queue", 10, &fakeSender{}, frost, &fakeDepartmentGateway{}, &fakeDatasetCache{})

	if err := uc.RefreshDepartment(entity.Department{Code: "04"}); err == nil {
		t.Fatal("expected error when upstream fetch fails")
	}
}

func TestRefreshAllDepartmentsScheduledKeysetBatches(t *testing.T) {
	var departments []entity.Department
	for i := 1; i <= 5; i++ {
		departments = append(departments, entity.Department{Code: fmt.Sprintf("%02d", i)})
	}
	gateway := &fakeDepartmentGateway{departments: departments}
	sender := &fakeSender{}
	uc := NewDepartmentUseCase("refresh-queue", 2, sender, &fakeFrostGateway{}, gateway, &fakeDatasetCache{})

	if err := uc.RefreshAllDepartmentsScheduled("req-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sender.batches) != 3 {
		t.Fatalf("expected 3 batches of size 2, got %d", len(sender.batches))
	}
	total := 0
	for _, batch := range sender.batches {
		total += len(batch)
	}
	if total != 5 {
		t.Errorf("expected all 5 departments enqueued, got %d", total)
	}
}

func TestRemoveDepartment(t *testing.T) {
	gateway := &fakeDepartmentGateway{findByCodeResult: &entity.Department{Code: "04"}}
	datasetCache := &fakeDatasetCache{}
	uc := NewDepartmentUseCase("refresh-queue", 10, &fakeSender{}, &fakeFrostGateway{}, gateway, datasetCache)

	if err := uc.RemoveDepartment("04"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(gateway.deletedCodes) != 1 || gateway.deletedCodes[0] != "04" {
		t.Errorf("expected department 04 deleted, got %v", gateway.deletedCodes)
	}
	if len(datasetCache.invalidated) != 1 {
		t.Errorf("expected cached dataset invalidated, got %v", datasetCache.invalidated)
	}
}

func TestRemoveDepartmentNotFound(t *testing.T) {
	uc := NewDepartmentUseCase("refresh-queue", 10, &fakeSender{}, &fakeFrostGateway{}, &fakeDepartmentGateway{}, &fakeDatasetCache{})

	if err := uc.RemoveDepartment("99"); err == nil {
		t.Fatal("expected error for unknown department")
	}
}
