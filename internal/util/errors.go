package util

import "errors"

var (
	ErrStudentNotFound = errors.New("student not found")
	ErrDatasetNotFound = errors.New("dataset object not found")
)
