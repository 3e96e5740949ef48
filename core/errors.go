package core

// DomainError is the unified error type for library-level failures.
//
// Every package reports malformed input, missing data and configuration
// problems through this type so callers can branch on Code without string
// matching. Wrapping with fmt.Errorf("...: %w", err) preserves the code;
// the Is* predicates unwrap via GetDomainError.
type DomainError struct {
	Code    string // error code, e.g. "INVALID_ARGUMENT"
	Message string // human-readable message
	Module  string // owning module, e.g. "feature", "dataset", "store"
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a DomainError for the given module and code.
func NewDomainError(module, code, message string) *DomainError {
	return &DomainError{
		Module:  module,
		Code:    code,
		Message: message,
	}
}

// GetDomainError returns the DomainError inside err (unwrapping as needed), or nil.
func GetDomainError(err error) *DomainError {
	for err != nil {
		if domainErr, ok := err.(*DomainError); ok {
			return domainErr
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return nil
		}
		err = u.Unwrap()
	}
	return nil
}

// Error codes.
const (
	ErrorCodeInvalidArgument = "INVALID_ARGUMENT" // malformed input value or shape
	ErrorCodeNotFound        = "NOT_FOUND"        // missing record, key or column
	ErrorCodeInvalidConfig   = "INVALID_CONFIG"   // bad pipeline/stage configuration
	ErrorCodeInternalError   = "INTERNAL_ERROR"   // unexpected internal failure
)

// Module names.
const (
	ModuleFeature  = "feature"
	ModuleDataset  = "dataset"
	ModuleStore    = "store"
	ModulePipeline = "pipeline"
	ModuleFilter   = "filter"
)

// IsInvalidArgument reports whether err carries the INVALID_ARGUMENT code.
func IsInvalidArgument(err error) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeInvalidArgument
	}
	return false
}

// IsNotFound reports whether err carries the NOT_FOUND code.
func IsNotFound(err error) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeNotFound
	}
	return false
}

// IsInvalidConfig reports whether err carries the INVALID_CONFIG code.
func IsInvalidConfig(err error) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeInvalidConfig
	}
	return false
}
