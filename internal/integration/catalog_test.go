package integration_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type CatalogTestSuite struct {
	BaseSuite
}

func TestCatalogSuite(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}
	suite.Run(t, new(CatalogTestSuite))
}

func (s *CatalogTestSuite) SetupTest() {
	executeSQLFile(s.T(), s.app.DB, "testdata/catalog_down.sql")
	executeSQLFile(s.T(), s.app.DB, "testdata/catalog_up.sql")
}

func (s *CatalogTestSuite) TestTheatreHalls() {
	scenarios := []Scenario{
		{
			Name:           "lists every hall with its capacity",
			Method:         "GET",
			URL:            "/theatre-halls",
			ExpectedStatus: http.StatusOK,
			ExpectedResponse: `{
				"theatre_halls": [
					{"id": 1, "name": "Main Stage", "rows": 20, "seats_in_row": 20, "capacity": 400},
					{"id": 2, "name": "Studio", "rows": 2, "seats_in_row": 3, "capacity": 6}
				]
			}`,
		},
		{
			Name:           "hall detail includes its performances",
			Method:         "GET",
			URL:            "/theatre-halls/2",
			ExpectedStatus: http.StatusOK,
			ExpectedResponse: `{
				"id": 2,
				"name": "Studio",
				"rows": 2,
				"seats_in_row": 3,
				"capacity": 6,
				"performances": [
					{"id": 3, "show_time": "2095-05-12T19:30:00Z", "play_title": "Hamlet", "theatre_hall_name": "Studio", "theatre_hall_capacity": 6, "tickets_available": 6},
					{"id": 2, "show_time": "2095-05-11T19:30:00Z", "play_title": "Twelfth Night", "theatre_hall_name": "Studio", "theatre_hall_capacity": 6, "tickets_available": 6}
				]
			}`,
		},
		{
			Name:             "returns 404 for an unknown hall",
			Method:           "GET",
			URL:              "/theatre-halls/999",
			ExpectedStatus:   http.StatusNotFound,
			ExpectedResponse: `{"message": "The requested resource not found"}`,
		},
	}

	for _, scenario := range scenarios {
		scenario.Run(s.T(), s.app)
	}
}

func (s *CatalogTestSuite) TestPlays() {
	scenarios := []Scenario{
		{
			Name:           "filters plays by genre",
			Method:         "GET",
			URL:            "/plays?genres=2",
			ExpectedStatus: http.StatusOK,
			ExpectedResponse: `{
				"plays": [
					{
						"id": 2,
						"title": "Twelfth Night",
						"description": "A comedy of mistaken identity in Illyria.",
						"genres": [{"id": 2, "name": "Comedy"}],
						"actors": [{"id": 2, "first_name": "Judi", "last_name": "Dench", "full_name": "Judi Dench"}]
					}
				]
			}`,
		},
		{
			Name:           "filters plays by title substring",
			Method:         "GET",
			URL:            "/plays?title=haml",
			ExpectedStatus: http.StatusOK,
			ExpectedResponse: `{
				"plays": [
					{
						"id": 1,
						"title": "Hamlet",
						"description": "The Prince of Denmark confronts his uncle.",
						"genres": [{"id": 1, "name": "Tragedy"}],
						"actors": [
							{"id": 1, "first_name": "Ian", "last_name": "McKellen", "full_name": "Ian McKellen"},
							{"id": 2, "first_name": "Judi", "last_name": "Dench", "full_name": "Judi Dench"}
						]
					}
				]
			}`,
		},
		{
			Name:           "returns 400 for a malformed genre filter",
			Method:         "GET",
			URL:            "/plays?genres=abc",
			ExpectedStatus: http.StatusBadRequest,
		},
	}

	for _, scenario := range scenarios {
		scenario.Run(s.T(), s.app)
	}
}

func (s *CatalogTestSuite) TestPerformancesFilters() {
	scenarios := []Scenario{
		{
			Name:           "filters performances by date",
			Method:         "GET",
			URL:            "/performances?date=2095-05-11",
			ExpectedStatus: http.StatusOK,
			ExpectedResponse: `{
				"performances": [
					{"id": 2, "show_time": "2095-05-11T19:30:00Z", "play_title": "Twelfth Night", "theatre_hall_name": "Studio", "theatre_hall_capacity": 6, "tickets_available": 6}
				]
			}`,
		},
		{
			Name:           "performance detail lists taken places",
			Method:         "GET",
			URL:            "/performances/2",
			ExpectedStatus: http.StatusOK,
			ExpectedResponse: `{
				"id": 2,
				"show_time": "2095-05-11T19:30:00Z",
				"play_title": "Twelfth Night",
				"theatre_hall_name": "Studio",
				"rows": 2,
				"seats_in_row": 3,
				"tickets_available": 6,
				"taken_places": []
			}`,
		},
	}

	for _, scenario := range scenarios {
		scenario.Run(s.T(), s.app)
	}
}

func (s *CatalogTestSuite) TestCatalogMutationRequiresAdmin() {
	userCookies := s.app.authenticatedUserCookies(s.T())
	adminCookies := s.app.adminCookies(s.T())

	scenarios := []Scenario{
		{
			Name:           "returns 401 for an anonymous create",
			Method:         "POST",
			URL:            "/genres",
			Body:           strings.NewReader(`{"name": "History"}`),
			ExpectedStatus: http.StatusUnauthorized,
		},
		{
			Name:           "returns 403 for a non-admin create",
			Method:         "POST",
			URL:            "/genres",
			Body:           strings.NewReader(`{"name": "History"}`),
			Cookies:        userCookies,
			ExpectedStatus: http.StatusForbidden,
			ExpectedResponse: `{
				"message": "You do not have permission to perform this action"
			}`,
		},
		{
			Name:             "admin creates a genre",
			Method:           "POST",
			URL:              "/genres",
			Body:             strings.NewReader(`{"name": "History"}`),
			Cookies:          adminCookies,
			ExpectedStatus:   http.StatusCreated,
			ExpectedResponse: `{"id": 3, "name": "History"}`,
		},
		{
			Name:           "returns 409 for a duplicate genre name",
			Method:         "POST",
			URL:            "/genres",
			Body:           strings.NewReader(`{"name": "Tragedy"}`),
			Cookies:        adminCookies,
			ExpectedStatus: http.StatusConflict,
		},
		{
			Name:           "admin creates a performance",
			Method:         "POST",
			URL:            "/performances",
			Body:           strings.NewReader(`{"play": 1, "theatre_hall": 1, "show_time": "2095-06-01T20:00:00Z"}`),
			Cookies:        adminCookies,
			ExpectedStatus: http.StatusCreated,
			ExpectedResponse: `{
				"id": 4,
				"show_time": "2095-06-01T20:00:00Z",
				"play_title": "Hamlet",
				"theatre_hall_name": "Main Stage",
				"rows": 20,
				"seats_in_row": 20,
				"tickets_available": 400,
				"taken_places": []
			}`,
		},
		{
			Name:           "returns 400 for a performance of an unknown play",
			Method:         "POST",
			URL:            "/performances",
			Body:           strings.NewReader(`{"play": 999, "theatre_hall": 1, "show_time": "2095-06-01T20:00:00Z"}`),
			Cookies:        adminCookies,
			ExpectedStatus: http.StatusBadRequest,
		},
		{
			Name:           "admin creates a hall",
			Method:         "POST",
			URL:            "/theatre-halls",
			Body:           strings.NewReader(`{"name": "Balcony", "rows": 5, "seats_in_row": 8}`),
			Cookies:        adminCookies,
			ExpectedStatus: http.StatusCreated,
			ExpectedResponse: `{
				"id": 3, "name": "Balcony", "rows": 5, "seats_in_row": 8, "capacity": 40
			}`,
		},
	}

	for _, scenario := range scenarios {
		scenario.Run(s.T(), s.app)
	}
}
