// Package integrations provides the HTTP client used to fetch remote
// manifests.
//
// # Overview
//
// [Client] issues a single blocking GET per call and returns the body as
// text. Response codes are mapped onto two sentinel errors:
//
//   - [ErrNotFound]: the server answered 404
//   - [ErrNetwork]: transport failures and every other non-2xx status
//
// There is no retry and no response cache: a failed fetch fails the run.
//
// # Sources
//
// Manifests are usually read from raw.githubusercontent.com. Use
// [RawGitHubURL] to build such URLs; [DefaultManifestURL] is the manifest
// the CLI converts.
package integrations
