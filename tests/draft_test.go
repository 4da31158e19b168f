package tests

import (
	"context"
	"fmt"
	"net/http"
)

type draftResponse struct {
	Draft struct {
		ID string `json:"id"`
	} `json:"draft"`
	State string `json:"state"`
}

type stateResponse struct {
	State string `json:"state"`
}

type publishedResponse struct {
	ListingID string `json:"listingId"`
	State     string `json:"state"`
}

type errorResponse struct {
	Message       string   `json:"message"`
	MissingFields []string `json:"missingFields"`
	InvalidFields []string `json:"invalidFields"`
}

func (s *APITestSuite) TestPublishFlow() {
	ctx := context.Background()
	token := s.register("publish-flow@example.com", "qwerty123")

	// unauthenticated requests are rejected
	response := s.doJSON(http.MethodPost, fmt.Sprintf("%s/drafts", s.baseUrl), "", nil)
	s.Equal(http.StatusUnauthorized, response.StatusCode)
	response.Body.Close()

	// start a draft
	response = s.doJSON(http.MethodPost, fmt.Sprintf("%s/drafts", s.baseUrl), token, nil)
	s.Require().Equal(http.StatusOK, response.StatusCode)

	started, err := decodeResponseBody[draftResponse](response)
	s.Require().NoError(err)
	s.Equal("select_location", started.State)

	draftURL := fmt.Sprintf("%s/drafts/%s", s.baseUrl, started.Draft.ID)

	// skipping ahead is not allowed
	response = s.doJSON(http.MethodPost, draftURL+"/category", token, map[string]string{"category": "motors"})
	s.Equal(http.StatusBadRequest, response.StatusCode)
	response.Body.Close()

	// location
	response = s.doJSON(http.MethodPost, draftURL+"/location", token, map[string]string{"location": "Dubai"})
	s.Require().Equal(http.StatusOK, response.StatusCode)

	state, err := decodeResponseBody[stateResponse](response)
	s.NoError(err)
	s.Equal("select_category", state.State)

	// category
	response = s.doJSON(http.MethodPost, draftURL+"/category", token, map[string]string{"category": "motors"})
	s.Require().Equal(http.StatusOK, response.StatusCode)

	state, err = decodeResponseBody[stateResponse](response)
	s.NoError(err)
	s.Equal("fill_form", state.State)

	// form with an invalid phone number names the offending field
	response = s.doJSON(http.MethodPost, draftURL+"/form", token, map[string]any{
		"fields": map[string]any{
			"motorType":   "car",
			"makeModel":   "Toyota Camry",
			"price":       "45000",
			"phoneNumber": "0501234567",
		},
	})
	s.Equal(http.StatusBadRequest, response.StatusCode)

	errBody, err := decodeResponseBody[errorResponse](response)
	s.NoError(err)
	s.Contains(errBody.InvalidFields, "phoneNumber")

	// valid form; emirate falls back to the selected location
	response = s.doJSON(http.MethodPost, draftURL+"/form", token, map[string]any{
		"fields": map[string]any{
			"motorType":   "car",
			"makeModel":   "Toyota Camry",
			"price":       "45000",
			"phoneNumber": "+971501234567",
		},
	})
	s.Require().Equal(http.StatusOK, response.StatusCode)

	state, err = decodeResponseBody[stateResponse](response)
	s.NoError(err)
	s.Equal("review", state.State)

	var storedEmirate string
	s.dbClient.QueryRow(
		ctx,
		"SELECT fields->>'emirate' FROM drafts WHERE id=$1",
		started.Draft.ID,
	).Scan(&storedEmirate)
	s.Equal("Dubai", storedEmirate)

	// summary without a title is rejected
	response = s.doJSON(http.MethodPost, draftURL+"/summary", token, map[string]any{
		"summary": map[string]any{"description": "Clean car"},
	})
	s.Equal(http.StatusBadRequest, response.StatusCode)
	response.Body.Close()

	// publish
	response = s.doJSON(http.MethodPost, draftURL+"/summary", token, map[string]any{
		"summary": map[string]any{
			"postTitle":   "2020 Toyota Camry",
			"description": "Clean car, single owner.",
		},
	})
	s.Require().Equal(http.StatusOK, response.StatusCode)

	published, err := decodeResponseBody[publishedResponse](response)
	s.NoError(err)
	s.Equal("published", published.State)
	s.Equal(started.Draft.ID, published.ListingID)

	var status string
	s.dbClient.QueryRow(ctx, "SELECT status FROM drafts WHERE id=$1", started.Draft.ID).Scan(&status)
	s.Equal("published", status)

	// published drafts stay readable
	response = s.doJSON(http.MethodGet, draftURL, token, nil)
	s.Equal(http.StatusOK, response.StatusCode)

	got, err := decodeResponseBody[draftResponse](response)
	s.NoError(err)
	s.Equal("published", got.State)

	// and invisible to other users
	otherToken := s.register("other-user@example.com", "qwerty123")
	response = s.doJSON(http.MethodGet, draftURL, otherToken, nil)
	s.Equal(http.StatusNotFound, response.StatusCode)
	response.Body.Close()
}

func (s *APITestSuite) TestUserLocation() {
	token := s.register("location-user@example.com", "qwerty123")

	// public emirates list
	response, err := http.Get(fmt.Sprintf("%s/locations", s.baseUrl))
	s.NoError(err)
	s.Equal(http.StatusOK, response.StatusCode)
	response.Body.Close()

	// nothing chosen yet
	response = s.doJSON(http.MethodGet, fmt.Sprintf("%s/me/location", s.baseUrl), token, nil)
	s.Equal(http.StatusOK, response.StatusCode)

	empty, err := decodeResponseBody[struct {
		Location string `json:"location"`
	}](response)
	s.NoError(err)
	s.Empty(empty.Location)

	// unknown emirate is rejected
	response = s.doJSON(http.MethodPut, fmt.Sprintf("%s/me/location", s.baseUrl), token, map[string]string{"location": "Atlantis"})
	s.Equal(http.StatusBadRequest, response.StatusCode)
	response.Body.Close()

	// set and read back
	response = s.doJSON(http.MethodPut, fmt.Sprintf("%s/me/location", s.baseUrl), token, map[string]string{"location": "Sharjah"})
	s.Equal(http.StatusOK, response.StatusCode)
	response.Body.Close()

	response = s.doJSON(http.MethodGet, fmt.Sprintf("%s/me/location", s.baseUrl), token, nil)
	s.Equal(http.StatusOK, response.StatusCode)

	body, err := decodeResponseBody[struct {
		Location string `json:"location"`
	}](response)
	s.NoError(err)
	s.Equal("Sharjah", body.Location)
}
