package gitclient

import (
	"fmt"
	"os"
	"strings"
)

// TokenEnvVar overrides the key file when set.
const TokenEnvVar = "GITFOLIO_TOKEN"

// ReadToken resolves the GitHub personal access token. The environment
// variable wins; otherwise the key file is scanned for a `key = "..."`
// line, the format used by the settings files this tool has always read.
func ReadToken(keyFile string) (string, error) {
	if token := os.Getenv(TokenEnvVar); token != "" {
		return token, nil
	}
	if keyFile == "" {
		return "", fmt.Errorf("no key file given and %s is not set", TokenEnvVar)
	}

	data, err := os.ReadFile(keyFile)
	if err != nil {
		return "", fmt.Errorf("cannot find '%s'", keyFile)
	}

	for _, line := range strings.Split(string(data), "\n") {
		s := strings.TrimSpace(line)
		if strings.HasPrefix(s, "key") && strings.Contains(s, "=") {
			_, value, _ := strings.Cut(s, "=")
			token := strings.Trim(strings.TrimSpace(value), `"`)
			if token != "" {
				return token, nil
			}
		}
	}
	return "", fmt.Errorf("access key not found in '%s'", keyFile)
}
