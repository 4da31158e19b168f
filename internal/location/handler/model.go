package handler

type LocationsResponse struct {
	Locations []string `json:"locations"`
}

type CurrentLocationResponse struct {
	Location string `json:"location"`
}

type SetLocationRequest struct {
	Location string `json:"location" validate:"required"`
}
