package integration_test

const (
	// User related constants
	TestUserFirstName = "John"
	TestUserLastName  = "Doe"
	TestUserEmail     = "test@example.com"
	TestUserPassword  = "Test123!@#"

	TestAdminEmail    = "admin@example.com"
	TestAdminPassword = "Admin123!@#"

	// Seeded catalog constants, matching testdata/catalog_up.sql
	MainStagePerformanceId = 1
	StudioPerformanceId    = 2
	StudioRows             = 2
	StudioSeatsInRow       = 3
)
