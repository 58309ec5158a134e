package mcptests

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// manifestName is the manifest file a provisioned skills directory carries
// alongside the skill folders themselves.
const manifestName = "skills.json"

// DoFilesystemTests verifies the on-disk outcome of a previous setup run: the
// mounted project's skills directory must contain the expected skill folders and
// a well-formed manifest. These tests read the host side of the mount directly
// and never launch the target.
func DoFilesystemTests(t *T) {
	params := t.Params()

	t.Run("skills directory contents", func(t *T) {
		listing := readSkillsListing(t, params.SkillsDir)

		for _, skill := range params.Skills {
			t.CheckContains(skill, listing, skill)
		}
		t.CheckContains(manifestName+" manifest", listing, manifestName)
	})

	t.Run("manifest is valid", func(t *T) {
		data, err := os.ReadFile(filepath.Join(params.SkillsDir, manifestName))
		if err != nil {
			t.FailCheck("could not read "+manifestName, err.Error())
			return
		}
		var manifest ldvalue.Value
		if err := json.Unmarshal(data, &manifest); err != nil {
			t.FailCheck("could not parse "+manifestName, err.Error())
			return
		}

		rendered := manifest.JSONString()
		t.CheckContains("detectedType = "+params.ExpectedType, rendered, params.ExpectedType)
		t.CheckContains("skills list present", rendered, `"skills"`)
		t.CheckContains("sourcePath present", rendered, "sourcePath")
	})
}

// readSkillsListing returns the sorted, comma-joined names in the skills
// directory, with the full listing recorded in the debug log. An unreadable
// directory degrades to an empty listing so that each membership check still
// reports its own failure.
func readSkillsListing(t *T, dir string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Debug("could not read skills directory %s: %s", dir, err)
		return ""
	}

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)

	skillCount := 0
	for _, name := range names {
		if name != manifestName {
			skillCount++
		}
	}
	t.Debug("Skills on disk (%d):", skillCount)
	for _, name := range names {
		t.Debug("  + %s", name)
	}

	return strings.Join(names, ",")
}
