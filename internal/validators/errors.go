package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrConfigNotObject  = errors.New("config must be a JSON object")
	ErrConfigTooDeep    = errors.New("config nesting is too deep")
	ErrInvalidConfigKey = errors.New("config key cannot be empty or contain a dot")
)
