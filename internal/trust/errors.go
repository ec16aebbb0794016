package trust

import "errors"

var (
	ErrUserIDRequired = errors.New("user_id is required")
)
