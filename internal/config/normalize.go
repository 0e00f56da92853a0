package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLogging()
	c.normalizeWorkflow()
	c.normalizeBoard()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	c.Paths.APIBind = strings.TrimSpace(c.Paths.APIBind)
	if c.Paths.APIBind == "" {
		c.Paths.APIBind = defaultAPIBind
	}
	c.Paths.APIToken = strings.TrimSpace(c.Paths.APIToken)
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.RetentionDays <= 0 {
		c.Logging.RetentionDays = defaultLogRetentionDays
	}
}

func (c *Config) normalizeWorkflow() {
	if c.Workflow.PollInterval <= 0 {
		c.Workflow.PollInterval = defaultPollInterval
	}
	if c.Workflow.StaleAfterHours <= 0 {
		c.Workflow.StaleAfterHours = defaultStaleAfterHours
	}
	c.Workflow.FollowupStage = strings.TrimSpace(c.Workflow.FollowupStage)
	if c.Workflow.FollowupStage == "" {
		c.Workflow.FollowupStage = defaultFollowupStage
	}
	stages := c.Workflow.ActiveStages[:0]
	for _, stage := range c.Workflow.ActiveStages {
		if trimmed := strings.TrimSpace(stage); trimmed != "" {
			stages = append(stages, trimmed)
		}
	}
	if len(stages) == 0 {
		stages = append([]string(nil), defaultActiveStages...)
	}
	c.Workflow.ActiveStages = stages
}

func (c *Config) normalizeBoard() {
	if c.Board.ReasonsLimit <= 0 {
		c.Board.ReasonsLimit = defaultReasonsLimit
	}
}
