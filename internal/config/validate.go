package config

import (
	"errors"
	"fmt"
	"net"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateWorkflow(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.DataDir == "" {
		return errors.New("paths.data_dir must be set")
	}
	if c.Paths.LogDir == "" {
		return errors.New("paths.log_dir must be set")
	}
	if _, _, err := net.SplitHostPort(c.Paths.APIBind); err != nil {
		return fmt.Errorf("paths.api_bind %q is not host:port: %w", c.Paths.APIBind, err)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateWorkflow() error {
	if c.Workflow.PollInterval < 1 {
		return errors.New("workflow.poll_interval must be at least 1 second")
	}
	if c.Workflow.StaleAfterHours < 1 {
		return errors.New("workflow.stale_after_hours must be at least 1 hour")
	}
	if c.Workflow.FollowupStage == "" {
		return errors.New("workflow.followup_stage must be set")
	}
	for _, stage := range c.Workflow.ActiveStages {
		if stage == c.Workflow.FollowupStage {
			return fmt.Errorf("workflow.active_stages must not include the followup stage %q", stage)
		}
	}
	return nil
}
