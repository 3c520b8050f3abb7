package storage

const (
	// Fee schedule queries
	ListFeeParametersQuery = `
		SELECT key, value
		FROM fee_parameters
		ORDER BY key
	`
)
