package tests

import (
	"context"
	"fmt"
	"net/http"
)

type tokenResponse struct {
	AccessToken string `json:"accessToken"`
}

func (s *APITestSuite) register(email, password string) string {
	response := s.doJSON(http.MethodPost, fmt.Sprintf("%s/auth/register", s.baseUrl), "", map[string]string{
		"email":    email,
		"password": password,
	})

	s.Require().Equal(http.StatusOK, response.StatusCode)

	body, err := decodeResponseBody[tokenResponse](response)
	s.Require().NoError(err)
	s.Require().NotEmpty(body.AccessToken)

	return body.AccessToken
}

func (s *APITestSuite) TestAuth() {
	ctx := context.Background()
	email := "auth-flow@example.com"
	password := "qwerty123"

	s.register(email, password)

	var storedEmail string
	s.dbClient.QueryRow(ctx, "SELECT email FROM users WHERE email=$1", email).Scan(&storedEmail)
	s.Equal(email, storedEmail)

	// duplicate email is rejected
	response := s.doJSON(http.MethodPost, fmt.Sprintf("%s/auth/register", s.baseUrl), "", map[string]string{
		"email":    email,
		"password": password,
	})
	s.Equal(http.StatusBadRequest, response.StatusCode)
	response.Body.Close()

	// login with the right password
	response = s.doJSON(http.MethodPost, fmt.Sprintf("%s/auth/login", s.baseUrl), "", map[string]string{
		"email":    email,
		"password": password,
	})
	s.Equal(http.StatusOK, response.StatusCode)

	body, err := decodeResponseBody[tokenResponse](response)
	s.NoError(err)
	s.NotEmpty(body.AccessToken)

	// login with a wrong password
	response = s.doJSON(http.MethodPost, fmt.Sprintf("%s/auth/login", s.baseUrl), "", map[string]string{
		"email":    email,
		"password": "wrong-password",
	})
	s.Equal(http.StatusBadRequest, response.StatusCode)
	response.Body.Close()
}
