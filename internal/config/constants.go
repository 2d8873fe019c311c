package config

const (
	// DefaultAPIBaseURL points at the demo backend started by "lexicard serve-demo"
	DefaultAPIBaseURL = "http://127.0.0.1:8190"

	// DefaultTokenDatabasePath is where the bearer token is kept between runs
	DefaultTokenDatabasePath = "./lexicard.db"
)
