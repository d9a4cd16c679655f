package integrations

import (
	"fmt"
	"strings"
)

const rawGitHubBase = "https://raw.githubusercontent.com"

// DefaultManifestURL is the pyproject.toml converted by the CLI: the dev
// branch of langflow.
var DefaultManifestURL = RawGitHubURL("logspace-ai", "langflow", "dev", "pyproject.toml")

// RawGitHubURL returns the raw.githubusercontent.com URL of path at ref in
// owner/repo.
func RawGitHubURL(owner, repo, ref, path string) string {
	return fmt.Sprintf("%s/%s/%s/%s/%s", rawGitHubBase, owner, repo, ref, strings.TrimPrefix(path, "/"))
}
