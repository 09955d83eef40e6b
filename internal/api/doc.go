// Package api contains the HTTP handlers for the blog service. Each handler
// follows the same pipeline: decode and trim the body, run the endpoint's
// validation rule set, look up any addressed record, perform the store
// operation, and shape the success envelope. Validation errors take
// precedence over not-found errors, which take precedence over the operation
// itself.
package api
