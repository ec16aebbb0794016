package repository

import "errors"

var (
	ErrTrustScoreNotFound = errors.New("repository: trust score not found")
	ErrCacheMiss          = errors.New("repository: cache miss")
	ErrProcedureFailed    = errors.New("repository: trust recompute procedure failed")
)
