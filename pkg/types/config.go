package types

import "errors"

// Config holds backend selection and parameters for Store.Open.
type Config struct {
	Backend         string `json:"backend" yaml:"backend"`
	DataDir         string `json:"data_dir" yaml:"data_dir"`
	MaxLoansPerUser int    `json:"max_loans_per_user" yaml:"max_loans_per_user"`
}

// Supported backend names.
const (
	BackendSQLite = "sqlite"
)

// DefaultMaxLoansPerUser is the per-borrower loan limit applied when the
// config leaves MaxLoansPerUser unset.
const DefaultMaxLoansPerUser = 2

// Config validation errors.
var (
	ErrBackendEmpty      = errors.New("backend must not be empty")
	ErrBackendUnknown    = errors.New("unknown backend")
	ErrLoanLimitNegative = errors.New("max loans per user must not be negative")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendSQLite: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if c.MaxLoansPerUser < 0 {
		return ErrLoanLimitNegative
	}
	return nil
}

// GetMaxLoansPerUser returns the configured per-borrower loan limit,
// falling back to DefaultMaxLoansPerUser when unset.
func (c Config) GetMaxLoansPerUser() int {
	if c.MaxLoansPerUser == 0 {
		return DefaultMaxLoansPerUser
	}
	return c.MaxLoansPerUser
}
