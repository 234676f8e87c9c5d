package config

import (
	"FinanceTracker/pkg/validation"

	"github.com/sirupsen/logrus"
)

func NewValidator(logger *logrus.Logger) *validation.Validator {
	v, err := validation.New()
	if err != nil {
		logger.Fatalf("Failed to build validator: %v", err)
	}
	return v
}
