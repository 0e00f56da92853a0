package main

import (
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"leadstage/internal/api"
	"leadstage/internal/config"
	"leadstage/internal/leadstore"
	"leadstage/internal/textutil"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// withService opens the lead store for the duration of fn. Commands share
// this path so the database handle never outlives a single invocation.
func (c *commandContext) withService(fn func(*config.Config, *api.LeadService) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	store, err := leadstore.Open(cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(cfg, api.NewLeadService(store))
}

func (c *commandContext) withStore(fn func(*config.Config, *leadstore.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	store, err := leadstore.Open(cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(cfg, store)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	return textutil.Ternary(value, "yes", "no")
}
