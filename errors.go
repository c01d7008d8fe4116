package probability

import (
	"fmt"
)

// ErrorCode 错误代码类型
type ErrorCode string

// 错误代码常量
const (
	// 算术错误 (1000-1999)
	ErrCodeDivisionByZero ErrorCode = "PROB_1000"

	// 参数错误 (2000-2999)
	ErrCodeInvalidArgument ErrorCode = "PROB_2000"
	ErrCodeTooManyOutcomes ErrorCode = "PROB_2001"
	ErrCodeInvalidWeight   ErrorCode = "PROB_2002"

	// 配置错误 (3000-3999)
	ErrCodeConfigInvalid ErrorCode = "PROB_3000"
)

// ProbabilityError is the error type returned by every operation of the package.
// Two errors are equal under errors.Is when they carry the same Code.
type ProbabilityError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Operation string    `json:"operation,omitempty"`
	Cause     error     `json:"-"`
}

// Error 实现 error 接口
func (e *ProbabilityError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Operation != "" {
		msg = e.Operation + ": " + msg
	}
	if e.Details != "" {
		msg += ": " + e.Details
	}
	return msg
}

// Unwrap 实现 errors.Unwrap 接口
func (e *ProbabilityError) Unwrap() error {
	return e.Cause
}

// Is 实现 errors.Is 接口
func (e *ProbabilityError) Is(target error) bool {
	if t, ok := target.(*ProbabilityError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithCause returns a copy of e carrying cause
func (e *ProbabilityError) WithCause(cause error) *ProbabilityError {
	c := *e
	c.Cause = cause
	return &c
}

// WithDetails returns a copy of e carrying details
func (e *ProbabilityError) WithDetails(format string, args ...any) *ProbabilityError {
	c := *e
	c.Details = fmt.Sprintf(format, args...)
	return &c
}

// WithOperation returns a copy of e tagged with the failing operation
func (e *ProbabilityError) WithOperation(operation string) *ProbabilityError {
	c := *e
	c.Operation = operation
	return &c
}

// NewError 创建新的错误
func NewError(code ErrorCode, message string) *ProbabilityError {
	return &ProbabilityError{
		Code:    code,
		Message: message,
	}
}

// 预定义的错误实例
var (
	// ErrDivisionByZero indicates a probability over an empty or zero-weight sample space
	ErrDivisionByZero = NewError(ErrCodeDivisionByZero, "division by zero: sample space has no weight")

	// ErrInvalidArgument indicates a violated precondition on an argument
	ErrInvalidArgument = NewError(ErrCodeInvalidArgument, "invalid argument")

	// ErrTooManyOutcomes indicates a sample space too large to enumerate in memory.
	// It wraps ErrInvalidArgument, so errors.Is matches both.
	ErrTooManyOutcomes = NewError(ErrCodeTooManyOutcomes, "too many outcomes to enumerate").
				WithCause(ErrInvalidArgument)

	// ErrInvalidWeight indicates a negative, NaN or infinite frequency in a weighted space.
	// It wraps ErrInvalidArgument, so errors.Is matches both.
	ErrInvalidWeight = NewError(ErrCodeInvalidWeight, "invalid weight: must be finite and non-negative").
				WithCause(ErrInvalidArgument)

	// ErrConfigInvalid indicates an engine configuration that failed validation
	ErrConfigInvalid = NewError(ErrCodeConfigInvalid, "configuration is invalid")
)

// invalidArgument builds an InvalidArgument error for op with formatted details
func invalidArgument(op, format string, args ...any) error {
	return ErrInvalidArgument.WithOperation(op).WithDetails(format, args...)
}
