package minio

import (
	"fmt"

	"github.com/minio/minio-go/v7"
)

// Storage error codes.
const (
	ErrCodeConnection     = "CONNECTION_ERROR"
	ErrCodeBucketNotFound = "BUCKET_NOT_FOUND"
	ErrCodeObjectNotFound = "OBJECT_NOT_FOUND"
	ErrCodeAccessDenied   = "ACCESS_DENIED"
	ErrCodeInvalidInput   = "INVALID_INPUT"
	ErrCodeInternal       = "INTERNAL_ERROR"
)

// StorageError wraps backend failures with a stable code and the operation
// that produced them.
type StorageError struct {
	Code      string
	Operation string
	Err       error
}

func (e *StorageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("storage %s failed (%s): %v", e.Operation, e.Code, e.Err)
	}
	return fmt.Sprintf("storage %s failed (%s)", e.Operation, e.Code)
}

func (e *StorageError) Unwrap() error { return e.Err }

// NewConnectionError builds a CONNECTION_ERROR.
func NewConnectionError(err error) *StorageError {
	return &StorageError{Code: ErrCodeConnection, Operation: "connect", Err: err}
}

// NewInvalidInputError builds an INVALID_INPUT error.
func NewInvalidInputError(msg string) *StorageError {
	return &StorageError{Code: ErrCodeInvalidInput, Operation: "validate", Err: fmt.Errorf("%s", msg)}
}

func handleMinIOError(err error, operation string) *StorageError {
	if err == nil {
		return nil
	}
	if minioErr, ok := err.(minio.ErrorResponse); ok {
		switch minioErr.Code {
		case "NoSuchBucket":
			return &StorageError{Code: ErrCodeBucketNotFound, Operation: operation, Err: err}
		case "NoSuchKey":
			return &StorageError{Code: ErrCodeObjectNotFound, Operation: operation, Err: err}
		case "AccessDenied":
			return &StorageError{Code: ErrCodeAccessDenied, Operation: operation, Err: err}
		}
	}
	return &StorageError{Code: ErrCodeInternal, Operation: operation, Err: err}
}
