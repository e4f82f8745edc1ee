package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the operation conflicts with the current state of the resource.
var ErrConflict = errors.New("resource state conflict")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrPodRequired indicates that a supplier balance payment was attempted
// before the trip's POD was uploaded.
var ErrPodRequired = errors.New("pod must be uploaded before supplier balance payments")

// ErrStorageUnavailable indicates that the document store is not configured,
// so POD file operations cannot be served.
var ErrStorageUnavailable = errors.New("document storage is not configured")
