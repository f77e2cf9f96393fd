package api

import (
	"errors"
	"fmt"

	"frost-api/internal/domain/model/external"
	"frost-api/pkg/http"
)

// frostGatewayImpl implements the FrostGateway interface
type frostGatewayImpl struct {
	httpClient *http.Client
}

// NewFrostGateway creates a new instance of FrostGateway with HTTP client
func NewFrostGateway(baseUrl string, clientOptions http.ClientOptions) FrostGateway {
	httpClient := http.NewHttpClient(baseUrl, clientOptions)

	return &frostGatewayImpl{
		httpClient: httpClient,
	}
}

// FetchDepartmentRecords returns every daily record of a department
func (g *frostGatewayImpl) FetchDepartmentRecords(dept string) (*external.DepartmentRecordsResponse, error) {
	path := fmt.Sprintf("/v1/departments/%s/records", dept)

	successResp, errResp, _, err := g.httpClient.Request().
		WithMethod(http.GET).
		WithPath(path).
		WithQueryParams(map[string]string{"measure": "tmin"}).
		WithSuccessResp(&external.DepartmentRecordsResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err == nil {
		response := successResp.(*external.DepartmentRecordsResponse)
		return response, nil
	}

	if errResp != nil {
		errorResponse := errResp.(*external.APIErrorResponse)
		return nil, errors.New(errorResponse.Message)
	}

	return nil, err
}

// FetchStations returns the station registry of a department
func (g *frostGatewayImpl) FetchStations(dept string) (*external.StationListResponse, error) {
	path := fmt.Sprintf("/v1/departments/%s/stations", dept)

	successResp, errResp, _, err := g.httpClient.Request().
		WithMethod(http.GET).
		WithPath(path).
		WithSuccessResp(&external.StationListResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err == nil {
		response := successResp.(*external.StationListResponse)
		return response, nil
	}

	if errResp != nil {
		errorResponse := errResp.(*external.APIErrorResponse)
		return nil, errors.New(errorResponse.Message)
	}

	return nil, err
}
