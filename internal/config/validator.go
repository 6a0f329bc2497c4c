package config

import (
	errs "github.com/mailstat/smgp/internal/errors"
)

// Validate rejects an unusable configuration before any numerical work
// begins.
func (c *Config) Validate() error {
	for _, col := range []struct {
		name, value string
	}{
		{"time_column", c.Input.TimeColumn},
		{"sender_column", c.Input.SenderColumn},
		{"recipient_column", c.Input.RecipientColumn},
		{"size_column", c.Input.SizeColumn},
	} {
		if col.value == "" {
			return errs.Configuration("%s must not be empty", col.name)
		}
	}
	if c.Input.Scale <= 0 {
		return errs.Configuration("scale must be positive, got %g",
			c.Input.Scale)
	}
	if c.Filter.Sender == "" {
		return errs.Configuration("filter.sender must not be empty")
	}
	if c.Model.Q <= 0 {
		return errs.Configuration("model.q must be positive, got %d",
			c.Model.Q)
	}
	if c.Model.MaxIterations <= 0 {
		return errs.Configuration(
			"model.max_iterations must be positive, got %d",
			c.Model.MaxIterations)
	}
	if c.Model.InitialLengthscale <= 0 {
		return errs.Configuration(
			"model.initial_lengthscale must be positive, got %g",
			c.Model.InitialLengthscale)
	}
	if c.Model.InitialNoise <= 0 {
		return errs.Configuration(
			"model.initial_noise must be positive, got %g",
			c.Model.InitialNoise)
	}
	if c.Split.TrainSize <= 0 {
		return errs.Configuration(
			"split.train_size must be positive, got %d",
			c.Split.TrainSize)
	}
	if c.Split.DropTail < 0 {
		return errs.Configuration(
			"split.drop_tail must be non-negative, got %d",
			c.Split.DropTail)
	}
	return nil
}
