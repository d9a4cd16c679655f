// Package deps holds the types shared between manifest parsers and
// requirements writers.
//
// A [Requirement] is a single name/constraint pair. A [RequirementSet]
// collects them in the order they are discovered and drops later entries
// for a name that is already present, so a dependency listed both in the
// main table and in an extras group is written once.
//
// Ecosystem specifics live in subpackages; the python subpackage reads
// Poetry manifests.
package deps
