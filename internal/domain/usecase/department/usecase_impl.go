package department

import (
	"context"
	"errors"
	"fmt"
	"frost-api/internal/domain/entity"
	"frost-api/internal/domain/gateway/api"
	"frost-api/internal/domain/gateway/cache"
	"frost-api/internal/domain/gateway/db"
	"frost-api/internal/domain/gateway/queue"
	"frost-api/internal/domain/model"
	"frost-api/internal/domain/model/external"
	"frost-api/pkg/log"
	"sync"

	"go.uber.org/zap"
)

type departmentUseCase struct {
	queueName    string
	batchSize    int
	apiGateway   api.FrostGateway
	dbGateway    db.DepartmentGateway
	queueSender  queue.Sender
	datasetCache cache.DatasetCache
}

func NewDepartmentUseCase(queueName string, batchSize int, queueSender queue.Sender, apiGateway api.FrostGateway, dbGateway db.DepartmentGateway, datasetCache cache.DatasetCache) UseCase {
	return &departmentUseCase{
		queueName:    queueName,
		batchSize:    batchSize,
		queueSender:  queueSender,
		apiGateway:   apiGateway,
		dbGateway:    dbGateway,
		datasetCache: datasetCache,
	}
}

// FindAllDepartments returns a paginated list of monitored departments
func (uc *departmentUseCase) FindAllDepartments(page int, size int) (*model.Page[entity.Department], error) {
	departments, totalElements, err := uc.fetchDepartmentsAndCountInParallel(page, size)
	if err != nil {
		return nil, err
	}

	return model.NewPage(departments, page, size, totalElements), nil
}

// fetchDepartmentsAndCountInParallel fetches departments and count in parallel for pagination
func (uc *departmentUseCase) fetchDepartmentsAndCountInParallel(page int, size int) ([]entity.Department, int64, error) {
	var wg sync.WaitGroup
	var departments []entity.Department
	var totalElements int64
	var departmentsErr, countErr error

	// Get departments in parallel
	wg.Add(1)
	go func() {
		defer wg.Done()
		departments, departmentsErr = uc.dbGateway.FindAllDepartments(page, size)
	}()

	// Get total count in parallel
	wg.Add(1)
	go func() {
		defer wg.Done()
		totalElements, countErr = uc.dbGateway.CountDepartments()
	}()

	// Wait for both operations to complete
	wg.Wait()

	// Check for errors
	if departmentsErr != nil {
		return nil, 0, fmt.Errorf("failed to find departments: %w", departmentsErr)
	}
	if countErr != nil {
		return nil, 0, fmt.Errorf("failed to count departments: %w", countErr)
	}

	return departments, totalElements, nil
}

// MonitorDepartment verifies the department upstream, registers it and enqueues its first refresh
func (uc *departmentUseCase) MonitorDepartment(code string, name string) error {
	if code == "" {
		return errors.New("department code is required")
	}

	existing, err := uc.dbGateway.FindDepartmentByCode(code)
	if err != nil {
		return fmt.Errorf("failed to check department '%s': %w", code, err)
	}
	if existing != nil {
		return fmt.Errorf("department '%s' is already monitored", code)
	}

	// Verify the department exists upstream before registering it
	stationList, err := uc.apiGateway.FetchStations(code)
	if err != nil {
		return fmt.Errorf("failed to fetch stations for department '%s': %w", code, err)
	}
	if stationList == nil || len(stationList.Stations) == 0 {
		return fmt.Errorf("no stations found for department '%s'", code)
	}

	saved, err := uc.dbGateway.CreateDepartment(entity.Department{Code: code, Name: name})
	if err != nil {
		return fmt.Errorf("failed to save department '%s': %w", code, err)
	}

	// Seed the station registry so the map renders before the first refresh lands
	err = uc.dbGateway.UpsertStations(uc.convertStationList(stationList))
	if err != nil {
		return fmt.Errorf("failed to save stations for department '%s': %w", code, err)
	}

	// Enqueue the first refresh
	err = uc.queueSender.SendMessage(uc.queueName, saved)
	if err != nil {
		return fmt.Errorf("failed to enqueue department '%s': %w", code, err)
	}

	log.Infof("Department '%s' registered with %d stations and enqueued successfully", saved.Code, len(stationList.Stations))
	return nil
}

// convertStationList converts the upstream station registry to entity list
func (uc *departmentUseCase) convertStationList(response *external.StationListResponse) []entity.Station {
	var stations []entity.Station

	for _, info := range response.Stations {
		stations = append(stations, entity.Station{
			ID:         info.StationID,
			Name:       info.StationName,
			Department: response.Department,
			Latitude:   info.Latitude,
			Longitude:  info.Longitude,
			Altitude:   info.Altitude,
		})
	}

	return stations
}

// RefreshDepartment re-fetches the departmental record set and persists it
func (uc *departmentUseCase) RefreshDepartment(dept entity.Department) error {
	if dept.Code == "" {
		return errors.New("department code is required")
	}

	recordsResponse, err := uc.apiGateway.FetchDepartmentRecords(dept.Code)
	if err != nil {
		return fmt.Errorf("failed to fetch records for department '%s': %w", dept.Code, err)
	}

	if recordsResponse == nil || len(recordsResponse.Records) == 0 {
		return fmt.Errorf("no records available for department '%s'", dept.Code)
	}

	stations, observations := uc.convertRecords(dept.Code, recordsResponse.Records)

	if err := uc.dbGateway.UpsertStations(stations); err != nil {
		return fmt.Errorf("failed to upsert stations for department '%s': %w", dept.Code, err)
	}

	if err := uc.dbGateway.UpsertObservations(observations); err != nil {
		return fmt.Errorf("failed to upsert observations for department '%s': %w", dept.Code, err)
	}

	// Drop the memoized dataset so the dashboard picks up the new records
	if err := uc.datasetCache.Invalidate(context.Background(), dept.Code); err != nil {
		log.Warnf("Failed to invalidate cached dataset for department %s: %v", dept.Code, err)
	}

	log.Infof("Successfully refreshed department '%s': %d stations, %d observations", dept.Code, len(stations), len(observations))
	return nil
}

// convertRecords converts upstream records to stations and observations,
// skipping rows without a reading
func (uc *departmentUseCase) convertRecords(dept string, records []external.StationRecord) ([]entity.Station, []entity.Observation) {
	var observations []entity.Observation
	stationsByID := make(map[string]entity.Station)

	for _, record := range records {
		if record.StationID == "" {
			continue
		}

		if _, seen := stationsByID[record.StationID]; !seen {
			stationsByID[record.StationID] = entity.Station{
				ID:         record.StationID,
				Name:       record.StationName,
				Department: dept,
				Latitude:   record.Latitude,
				Longitude:  record.Longitude,
				Altitude:   record.Altitude,
			}
		}

		// Rows without a reading carry registry data only
		if record.MinTemp == nil || record.Date == "" {
			continue
		}

		observations = append(observations, entity.Observation{
			StationID:  record.StationID,
			Department: dept,
			Date:       record.Date,
			MinTemp:    *record.MinTemp,
		})
	}

	stations := make([]entity.Station, 0, len(stationsByID))
	for _, station := range stationsByID {
		stations = append(stations, station)
	}

	return stations, observations
}

// RefreshAllDepartments enqueues all departments in batches using pagination
func (uc *departmentUseCase) RefreshAllDepartments() {
	page := 0

	for {
		// Get departments for current page
		departments, err := uc.dbGateway.FindAllDepartments(page, uc.batchSize)
		if err != nil {
			log.Warnf("Failed to fetch departments for page %d: %v", page, err)
			break
		}

		// If no departments found, we're done
		if len(departments) == 0 {
			break
		}

		// Prepare batch messages
		messages := make([]queue.BatchMessage, len(departments))
		for i, dept := range departments {
			messages[i] = queue.BatchMessage{
				MessageID: fmt.Sprintf("department-%s-%d", dept.Code, page),
				Body:      dept,
			}
		}

		// Send batch
		result, err := uc.queueSender.SendMessageBatch(uc.queueName, messages)
		if err != nil {
			log.Warnf("Failed to send batch for page %d: %v", page, err)
			for _, dept := range departments {
				log.Warnf("Failed to enqueue department: %s (%s)", dept.Code, dept.Name)
			}
		} else {
			// Log individual failed departments
			for _, failedID := range result.Failed {
				for _, dept := range departments {
					if fmt.Sprintf("department-%s-%d", dept.Code, page) == failedID {
						log.Warnf("Failed to enqueue department: %s (%s)", dept.Code, dept.Name)
						break
					}
				}
			}
			log.Infof("Successfully enqueued %d departments, failed %d departments for page %d",
				len(result.Successful), len(result.Failed), page)
		}

		page++
	}

	log.Infof("Completed batch enqueuing all departments. Total pages processed: %d", page)
}

// RefreshAllDepartmentsScheduled enqueues all departments for refresh
func (uc *departmentUseCase) RefreshAllDepartmentsScheduled(requestID string) error {
	log.Info("Starting scheduled department refresh with key-set pagination", zap.String("request_id", requestID))

	var lastCode string
	totalProcessed := 0
	totalEnqueued := 0
	totalFailed := 0

	for {
		// Get departments using key-set pagination
		departments, err := uc.dbGateway.FindDepartmentsWithKeysetPagination(lastCode, uc.batchSize)
		if err != nil {
			log.Error("Failed to fetch departments with key-set pagination",
				zap.String("request_id", requestID),
				zap.String("last_code", lastCode),
				zap.Error(err))
			return fmt.Errorf("failed to fetch departments with key-set pagination (lastCode: %s): %w", lastCode, err)
		}

		// If no departments found, we're done
		if len(departments) == 0 {
			log.Info("No more departments to process", zap.String("request_id", requestID))
			break
		}

		totalProcessed += len(departments)
		log.Info("Processing batch",
			zap.String("request_id", requestID),
			zap.Int("batch_size", len(departments)),
			zap.String("last_code", lastCode))

		// Prepare batch messages
		messages := make([]queue.BatchMessage, len(departments))
		for i, dept := range departments {
			messages[i] = queue.BatchMessage{
				MessageID: fmt.Sprintf("scheduled-%s-department-%s", requestID, dept.Code),
				Body:      dept,
			}
		}

		// Send batch
		result, err := uc.queueSender.SendMessageBatch(uc.queueName, messages)
		if err != nil {
			log.Warn("Failed to send batch",
				zap.String("request_id", requestID),
				zap.String("starting_code", lastCode),
				zap.Error(err))
			for _, dept := range departments {
				log.Warn("Failed to enqueue department",
					zap.String("request_id", requestID),
					zap.String("code", dept.Code),
					zap.String("name", dept.Name))
			}
			totalFailed += len(departments)
		} else {
			// Log individual failed departments
			for _, failedID := range result.Failed {
				for _, dept := range departments {
					if fmt.Sprintf("scheduled-%s-department-%s", requestID, dept.Code) == failedID {
						log.Warn("Failed to enqueue department",
							zap.String("request_id", requestID),
							zap.String("code", dept.Code),
							zap.String("name", dept.Name))
						totalFailed++
						break
					}
				}
			}
			totalEnqueued += len(result.Successful)
			log.Info("Batch processed",
				zap.String("request_id", requestID),
				zap.Int("enqueued", len(result.Successful)),
				zap.Int("failed", len(result.Failed)))
		}

		// Update lastCode for next iteration (use the last department's code from this batch)
		lastCode = departments[len(departments)-1].Code
	}

	log.Info("Completed scheduled department refresh",
		zap.String("request_id", requestID),
		zap.Int("total_processed", totalProcessed),
		zap.Int("total_enqueued", totalEnqueued),
		zap.Int("total_failed", totalFailed))
	return nil
}

// RemoveDepartment deletes a department with all its stations and observations
func (uc *departmentUseCase) RemoveDepartment(code string) error {
	if code == "" {
		return errors.New("department code is required")
	}

	dept, err := uc.dbGateway.FindDepartmentByCode(code)
	if err != nil {
		return fmt.Errorf("failed to find department: %w", err)
	}

	if dept == nil {
		return fmt.Errorf("department '%s' not found", code)
	}

	// Delete all observations for this department
	err = uc.dbGateway.DeleteObservationsByDepartment(code)
	if err != nil {
		return fmt.Errorf("failed to delete observations: %w", err)
	}

	// Delete all stations for this department
	err = uc.dbGateway.DeleteStationsByDepartment(code)
	if err != nil {
		return fmt.Errorf("failed to delete stations: %w", err)
	}

	// Delete the department itself
	err = uc.dbGateway.DeleteDepartmentByCode(code)
	if err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}

	// Drop the memoized dataset for the removed department
	if err := uc.datasetCache.Invalidate(context.Background(), code); err != nil {
		log.Warnf("Failed to invalidate cached dataset for department %s: %v", code, err)
	}

	log.Infof("Successfully deleted department '%s' and all related data", code)
	return nil
}
