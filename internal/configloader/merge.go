package configloader

import "github.com/yaklabco/structdiff/pkg/settings"

// merge combines two Settings values, with override taking precedence over
// base wherever override sets a non-zero value. Nil/unset fields in
// override never clobber base, same convention as the teacher's
// configloader.merge.
func merge(base, override *settings.Settings) *settings.Settings {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Color != "" {
		result.Color = override.Color
	}
	if override.ContextLines != 0 {
		result.ContextLines = override.ContextLines
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.Ignore != nil {
		result.Ignore = override.Ignore
	}
	if override.ReplaceAtom {
		result.ReplaceAtom = override.ReplaceAtom
	}
	if override.SyntaxConfig != "" {
		result.SyntaxConfig = override.SyntaxConfig
	}
	if override.DeadlineSeconds != 0 {
		result.DeadlineSeconds = override.DeadlineSeconds
	}

	return &result
}
