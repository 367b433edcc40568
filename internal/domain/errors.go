package domain

import "errors"

var (
	ErrAllSourcesFailed = errors.New("all rate sources failed")
	ErrSnapshotNotFound = errors.New("snapshot not found")
)
