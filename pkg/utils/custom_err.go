package utils

import "errors"

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrEmptyPlan     = errors.New("travel plan has no days")
	ErrPDFGeneration = errors.New("pdf generation failed")
)
