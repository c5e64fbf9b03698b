// Package config handles resolution and validation of the upload notifier's
// settings. All values come from the function's environment; missing values
// fail the invocation before any service client is built.
package config

import (
	"fmt"
)

// Environment variable names as wired in the function definition. The sender
// address must be verified with SES before deployment; while the account is
// in the SES sandbox the recipient must be verified too.
const (
	EnvSender    = "sender"
	EnvRecipient = "recipient"
	EnvRegion    = "awsregion"
)

// Config holds the settings for the upload notifier.
type Config struct {
	Sender    string // Verified from-address for outgoing mail
	Recipient string // To-address for upload notices
	Region    string // AWS region for the SES client
}

// FromEnv resolves a Config using the given lookup function, normally
// os.Getenv. Tests pass a map-backed lookup instead of mutating the process
// environment.
func FromEnv(lookup func(string) string) (*Config, error) {
	cfg := &Config{
		Sender:    lookup(EnvSender),
		Recipient: lookup(EnvRecipient),
		Region:    lookup(EnvRegion),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate ensures all required fields are present.
func (c *Config) Validate() error {
	if c.Sender == "" {
		return fmt.Errorf("environment variable %s is required", EnvSender)
	}
	if c.Recipient == "" {
		return fmt.Errorf("environment variable %s is required", EnvRecipient)
	}
	if c.Region == "" {
		return fmt.Errorf("environment variable %s is required", EnvRegion)
	}
	return nil
}
