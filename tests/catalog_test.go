package tests

import (
	"fmt"
	"net/http"
)

type categoriesResponse struct {
	Categories []struct {
		Name  string `json:"name"`
		Group string `json:"group"`
	} `json:"categories"`
}

type listingsResponse struct {
	Listings []struct {
		ID       string `json:"id"`
		Title    string `json:"title"`
		Category string `json:"category"`
	} `json:"listings"`
}

func (s *APITestSuite) TestCatalog() {
	// unfiltered catalog returns the full seed
	response, err := http.Get(fmt.Sprintf("%s/categories", s.baseUrl))
	s.NoError(err)
	s.Equal(http.StatusOK, response.StatusCode)

	categories, err := decodeResponseBody[categoriesResponse](response)
	s.NoError(err)
	s.Len(categories.Categories, 22)

	// furniture tab narrows to the furniture group
	response, err = http.Get(fmt.Sprintf("%s/categories?tab=furniture", s.baseUrl))
	s.NoError(err)

	categories, err = decodeResponseBody[categoriesResponse](response)
	s.NoError(err)
	s.NotEmpty(categories.Categories)
	for _, c := range categories.Categories {
		s.Equal("furniture", c.Group)
	}

	// property tab with rent sub type
	response, err = http.Get(fmt.Sprintf("%s/listings?tab=property&propertyType=rent", s.baseUrl))
	s.NoError(err)

	listings, err := decodeResponseBody[listingsResponse](response)
	s.NoError(err)
	s.NotEmpty(listings.Listings)
	for _, l := range listings.Listings {
		s.Equal("Residential Rent", l.Category)
	}

	// listing by id, twice to exercise the cache path
	for i := 0; i < 2; i++ {
		response, err = http.Get(fmt.Sprintf("%s/listings/1", s.baseUrl))
		s.NoError(err)
		s.Equal(http.StatusOK, response.StatusCode)
		response.Body.Close()
	}

	// unknown listing
	response, err = http.Get(fmt.Sprintf("%s/listings/does-not-exist", s.baseUrl))
	s.NoError(err)
	s.Equal(http.StatusNotFound, response.StatusCode)
	response.Body.Close()
}
