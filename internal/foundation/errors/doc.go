// Package errors provides foundational, type-safe error primitives used across sissigen.
//
// Key features:
//   - ErrorCategory: broad classification (config, content, template, filesystem, ...)
//   - ErrorSeverity: impact level (fatal, error, warning, info)
//   - ClassifiedError: structured error with category, severity, and context
//   - ErrorBuilder: fluent API for creating classified errors
//   - CLIErrorAdapter: exit codes and presentation for the command line
//
// Example usage:
//
//	err := errors.WrapError(cause, errors.CategoryFileSystem, "write page").
//		WithContext("path", out).
//		Build()
package errors
