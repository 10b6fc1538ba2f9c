// Package validation provides common validation utilities for arguments
// and configuration parameters across the gotick library.
//
// This package offers reusable validation functions that help ensure
// consistent error messages and reduce boilerplate code in constructors
// and scheduling entry points.
package validation
