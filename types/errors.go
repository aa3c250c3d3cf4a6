/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package types

import (
	"errors"
	"fmt"
)

// Error codes used to classify store and repository failures.
const (
	CodeValidation   = "validation"   // rejected before any store interaction
	CodeNotFound     = "not_found"    // unknown task id, propagated from the store
	CodeSlowNetwork  = "slow_network" // the write may still land; result is uncertain
	CodeConnectivity = "connectivity" // store unreachable, the operation failed
	CodeBatchFailed  = "batch_failed" // batched commit failed as a whole
)

// TaskError provides structured error information for store and repository
// failures, so the shell can distinguish "definitely failed" from "uncertain".
type TaskError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *TaskError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *TaskError) Unwrap() error {
	return e.Err
}

// NewTaskError creates a new structured task error.
func NewTaskError(code string, message string, err error) *TaskError {
	return &TaskError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsCode reports whether err (or anything it wraps) is a TaskError with the
// given code.
func IsCode(err error, code string) bool {
	var te *TaskError
	return errors.As(err, &te) && te.Code == code
}
