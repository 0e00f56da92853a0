package config

const (
	defaultDataDir          = "~/.local/share/leadstage"
	defaultLogDir           = "~/.local/share/leadstage/logs"
	defaultAPIBind          = "127.0.0.1:7915"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	defaultLogRetentionDays = 60
	defaultPollInterval     = 60
	defaultStaleAfterHours  = 72
	defaultFollowupStage    = "Needs Follow Up"
	defaultReasonsLimit     = 8
)

var defaultActiveStages = []string{"New", "In Progress", "Docs Pending"}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
			APIBind: defaultAPIBind,
		},
		Logging: Logging{
			Format:        defaultLogFormat,
			Level:         defaultLogLevel,
			RetentionDays: defaultLogRetentionDays,
		},
		Workflow: Workflow{
			PollInterval:    defaultPollInterval,
			StaleAfterHours: defaultStaleAfterHours,
			FollowupStage:   defaultFollowupStage,
			ActiveStages:    append([]string(nil), defaultActiveStages...),
		},
		Board: Board{
			ReasonsLimit: defaultReasonsLimit,
		},
	}
}
