// Package types defines the Store and Tx interfaces, the Book, User, and
// Loan entity types, and the standard error values for the circdesk
// lending registry.
package types
