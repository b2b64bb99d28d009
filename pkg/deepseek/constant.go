package deepseek

import "time"

const (
	DefaultBaseURL = "https://api.deepseek.com/v1"
	DefaultModel   = "deepseek-chat"
	DefaultTimeout = 60 * time.Second

	roleSystem = "system"
	roleUser   = "user"

	formatJSON = "json_object"
	maxErrBody = 512
)
