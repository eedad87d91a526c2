// Package errors provides structured, actionable error messages for the
// colorctx CLI and development host.
//
// # Error Categories
//
// Errors are organized into categories:
//   - config: colorctx.json could not be read, parsed, or validated
//   - host: the development host could not dispatch an interaction
//   - cli: bad command line usage
//
// # Error Codes
//
// Each error has a unique code (e.g., "E101") that maps to a short message
// and a longer explanation.
//
// # Usage
//
//	err := errors.New("E102").
//	    WithDetail("port 70000 is out of range").
//	    WithSuggestion("Use a port between 1 and 65535")
//
//	fmt.Fprintln(os.Stderr, err.Format())
package errors
