package config

import (
	"os"
	"strings"
)

// EnvConfigPath names the variable holding an explicit config file path
const EnvConfigPath = "FINDGROUP_CONFIG"

// ExplicitPath returns flagValue when set, otherwise the FINDGROUP_CONFIG variable
func ExplicitPath(flagValue string) string {
	if v := strings.TrimSpace(flagValue); v != "" {
		return v
	}
	return strings.TrimSpace(os.Getenv(EnvConfigPath))
}

func xdgConfigHome() string {
	return strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME"))
}
