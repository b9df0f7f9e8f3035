// Package errors provides structured error handling for the grimoire-api project.
//
// It provides:
//   - Structured errors with codes, messages, and metadata
//   - HTTP status mapping for the serving layer
//   - Error context preservation through wrapping
//   - Validation error helpers
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("spell not found")
//	err := errors.InvalidArgumentf("invalid level: %d", level)
//
// Rules-engine errors carry their offending inputs as metadata:
//
//	err := errors.CapExceeded("skill", "Athletics", 4, 3)
//	err := errors.InvalidAxisValue("range", 37)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, id); err != nil {
//	    return errors.Wrap(err, "failed to get spell")
//	}
//
// # Error Checking
//
//	if errors.IsNotFound(err) {
//	    // Handle not found case
//	}
//
//	code := errors.GetCode(err)
//	meta := errors.GetMeta(err)
//
// # Validation Errors
//
// Using the validation builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", input.Name, vb)
//	errors.ValidateRange("level", input.Level, 1, 100, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return domain-specific errors (NotFound, AlreadyExists)
//   - Include relevant IDs in metadata
//   - Wrap storage errors with context
//
// Engine layer:
//   - Pure functions; never log, never persist
//   - Surface typed rules failures (InvalidAxisValue, CapExceeded,
//     UnsupportedCurrency, InvalidSublimationTarget)
//   - Lenient coercions documented on each function never error
//
// Orchestrator layer:
//   - Validate inputs and return InvalidArgument errors
//   - Wrap repository errors with business context
//   - Let the serving layer choose status codes via Code.HTTPStatus
package errors
