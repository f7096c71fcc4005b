// Package git provides a wrapper around the Git CLI commands kyo needs to
// describe the surrounding checkout: repository top level, current branch,
// and diff-derived file lists against a source branch. It does not depend
// on other internal packages.
package git
