package langtable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/structdiff/pkg/langtable"
)

func TestLoadBytesBuildsSortedProfiles(t *testing.T) {
	t.Parallel()

	data := []byte(`
[zlang]
extensions = ["z"]
atom_patterns = ['[0-9]+']
comment_patterns = []
open_delimiter_pattern = '\('
close_delimiter_pattern = '\)'

[alang]
extensions = ["a"]
atom_patterns = ['[a-z]+']
comment_patterns = []
open_delimiter_pattern = '\['
close_delimiter_pattern = '\]'
`)

	profiles, err := langtable.LoadBytes(data)
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "alang", profiles[0].Name)
	assert.Equal(t, "zlang", profiles[1].Name)
}

func TestLoadBytesRejectsEmptyMatchPattern(t *testing.T) {
	t.Parallel()

	data := []byte(`
[bad]
extensions = ["b"]
atom_patterns = ['a*']
comment_patterns = []
open_delimiter_pattern = '\('
close_delimiter_pattern = '\)'
`)

	_, err := langtable.LoadBytes(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty string")
}

func TestLoadBytesRejectsInvalidRegex(t *testing.T) {
	t.Parallel()

	data := []byte(`
[bad]
extensions = ["b"]
atom_patterns = ['[a-z']
comment_patterns = []
open_delimiter_pattern = '\('
close_delimiter_pattern = '\)'
`)

	_, err := langtable.LoadBytes(data)
	require.Error(t, err)
}
