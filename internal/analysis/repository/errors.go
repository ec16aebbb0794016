package repository

import "errors"

var (
	ErrVerdictNotFound     = errors.New("repository: verdict not found")
	ErrVerdictCreateFailed = errors.New("repository: failed to create verdict")
	ErrQualityUpsertFailed = errors.New("repository: failed to upsert quality score")
	ErrProcedureFailed     = errors.New("repository: stored procedure call failed")
)
