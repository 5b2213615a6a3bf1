package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates the caller is not permitted to act on the resource.
// Handlers must surface it as a generic denial so that unauthorized callers
// cannot probe whether a tenant exists.
var ErrForbidden = errors.New("access denied")

// ErrNoTenantSelected indicates a tenant-scoped operation was requested by a
// user with no tenant memberships at all.
var ErrNoTenantSelected = errors.New("no tenant selected")
