package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/structdiff/pkg/settings"
)

// envVarPrefix is the prefix for all structdiff environment variables.
const envVarPrefix = "STRUCTDIFF_"

// LoadFromEnv applies STRUCTDIFF_*-prefixed environment variable overrides
// onto s, mirroring the teacher's GOMDLINT_*-prefixed env mapping.
func LoadFromEnv(s *settings.Settings) error {
	if s == nil {
		return nil
	}

	if v := os.Getenv(envVarPrefix + "COLOR"); v != "" {
		s.Color = settings.ColorMode(v)
	}
	if v := os.Getenv(envVarPrefix + "CONTEXT_LINES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid integer for %sCONTEXT_LINES: %q", envVarPrefix, v)
		}
		s.ContextLines = n
	}
	if v := os.Getenv(envVarPrefix + "JOBS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid integer for %sJOBS: %q", envVarPrefix, v)
		}
		s.Jobs = n
	}
	if v := os.Getenv(envVarPrefix + "IGNORE"); v != "" {
		s.Ignore = parseSliceValue(v)
	}
	if v := os.Getenv(envVarPrefix + "REPLACE_ATOM"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid boolean for %sREPLACE_ATOM: %q", envVarPrefix, v)
		}
		s.ReplaceAtom = b
	}
	if v := os.Getenv(envVarPrefix + "SYNTAX_CONFIG"); v != "" {
		s.SyntaxConfig = v
	}
	if v := os.Getenv(envVarPrefix + "DEADLINE_SECONDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid integer for %sDEADLINE_SECONDS: %q", envVarPrefix, v)
		}
		s.DeadlineSeconds = n
	}

	return nil
}

func parseSliceValue(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
