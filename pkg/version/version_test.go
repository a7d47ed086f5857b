package version

import (
	"encoding/json"
	"regexp"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion_IsNotEmpty(t *testing.T) {
	assert.NotEmpty(t, Version, "Version should not be empty")
}

func TestVersion_FollowsSemverOrDev(t *testing.T) {
	// "dev" is the default; ldflags inject the real version at build time.
	if Version == "dev" {
		t.Log("Version is 'dev' (development build without ldflags)")
		return
	}
	semverRegex := regexp.MustCompile(`^\d+\.\d+\.\d+(-[a-zA-Z0-9.]+)?$`)
	require.True(t, semverRegex.MatchString(Version), "Version should follow semver format, got: %s", Version)
}

func TestString_ReturnsFormattedString(t *testing.T) {
	str := String()
	assert.Contains(t, str, Version, "String should contain version")
	assert.Contains(t, str, "quickfind", "String should contain program name")
	assert.Contains(t, str, "commit", "String should contain commit info")
	assert.Contains(t, str, "go", "String should contain Go version")
}

func TestShort_ReturnsVersion(t *testing.T) {
	assert.Equal(t, Version, Short(), "Short() should return Version")
}

func TestGetInfo_ReturnsInfo(t *testing.T) {
	info := GetInfo()

	assert.Equal(t, Version, info.Version)
	assert.Equal(t, Commit, info.Commit)
	assert.Equal(t, Date, info.Date)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS, info.OS)
	assert.Equal(t, runtime.GOARCH, info.Arch)
}

func TestGetInfo_IsJSONSerializable(t *testing.T) {
	info := GetInfo()
	data, err := json.Marshal(info)
	require.NoError(t, err, "GetInfo() should be JSON serializable")

	var parsed map[string]string
	require.NoError(t, json.Unmarshal(data, &parsed))

	assert.Contains(t, parsed, "version")
	assert.Contains(t, parsed, "commit")
	assert.Contains(t, parsed, "date")
	assert.Contains(t, parsed, "go_version")
	assert.Contains(t, parsed, "os")
	assert.Contains(t, parsed, "arch")
}
