package config

import (
	"fmt"
	"os"

	"github.com/rgehrsitz/payrolltr/internal/domain"
	"gopkg.in/yaml.v3"
)

// LoadRequestFromFile reads a salary projection request from a YAML file.
// The request is validated; an invalid file returns a *domain.ValidationError.
func LoadRequestFromFile(filename string) (domain.SalaryProjectionRequest, error) {
	req, err := DecodeRequestFile(filename)
	if err != nil {
		return domain.SalaryProjectionRequest{}, err
	}
	if err := req.Validate(); err != nil {
		return domain.SalaryProjectionRequest{}, err
	}
	return req, nil
}

// DecodeRequestFile reads a request file without validating it, so callers can
// fill in or override fields before calling Validate.
func DecodeRequestFile(filename string) (domain.SalaryProjectionRequest, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return domain.SalaryProjectionRequest{}, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return DecodeRequest(data)
}

// ParseRequest decodes and validates a YAML request document.
func ParseRequest(data []byte) (domain.SalaryProjectionRequest, error) {
	req, err := DecodeRequest(data)
	if err != nil {
		return domain.SalaryProjectionRequest{}, err
	}
	if err := req.Validate(); err != nil {
		return domain.SalaryProjectionRequest{}, err
	}
	return req, nil
}

// DecodeRequest decodes a YAML request document. A missing start_month
// defaults to January and a missing amount_is_gross to true.
func DecodeRequest(data []byte) (domain.SalaryProjectionRequest, error) {
	req := domain.SalaryProjectionRequest{StartMonth: 1, AmountIsGross: true}
	if err := yaml.Unmarshal(data, &req); err != nil {
		return domain.SalaryProjectionRequest{}, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return req, nil
}
