package store

import "errors"

// Low-level database operation errors. Repository methods wrap the driver
// error with one of these so callers can match with [errors.Is].
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when a transaction cannot be started.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when a commit fails. The transaction
	// is rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when an INSERT/UPDATE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when reading a result row fails.
	ErrScanningRows = errors.New("failed to scan statistics rows")

	// ErrCounterOutOfRange is returned for a counter that does not fit into
	// a bigint column, or a stored counter that is negative.
	ErrCounterOutOfRange = errors.New("statistic counter out of range")

	// ErrDuplicatePlayer is returned when one upsert batch names a player twice.
	ErrDuplicatePlayer = errors.New("duplicate player in statistics batch")

	// ErrUnsupportedStatistic is returned for a statistic kind without a column.
	ErrUnsupportedStatistic = errors.New("unsupported statistic kind")
)
