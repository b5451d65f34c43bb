package auth

import (
	"context"
	"maps"
	"os"
	"slices"
)

// platformEnvVars maps platform names to their environment variable configurations.
// Each entry maps env var name to cookie name.
var platformEnvVars = map[string]map[string]string{
	"linkedin": {
		"LINKEDIN_LI_AT":      "li_at",
		"LINKEDIN_JSESSIONID": "JSESSIONID",
		"LINKEDIN_LIDC":       "lidc",
		"LINKEDIN_BCOOKIE":    "bcookie",
	},
}

// EnvSource reads cookies from environment variables.
type EnvSource struct{}

// Cookies returns cookies for the given platform from environment variables.
func (EnvSource) Cookies(_ context.Context, platform string) ([]Cookie, error) {
	envMap, ok := platformEnvVars[platform]
	if !ok {
		return nil, nil
	}

	var cookies []Cookie
	for _, envVar := range slices.Sorted(maps.Keys(envMap)) {
		if value := os.Getenv(envVar); value != "" {
			cookies = append(cookies, sessionCookie(platform, envMap[envVar], value))
		}
	}
	return cookies, nil
}

// EnvVarsForPlatform returns the environment variable names for a platform.
// This is useful for generating help messages.
func EnvVarsForPlatform(platform string) []string {
	envMap, ok := platformEnvVars[platform]
	if !ok {
		return nil
	}
	return slices.Sorted(maps.Keys(envMap))
}
