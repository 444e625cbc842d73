// Package validation provides a fluent field validator that accumulates
// errors and converts them into a structured AppError.
package validation
