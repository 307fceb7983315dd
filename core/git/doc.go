// Package git wraps the system git binary for repository cloning.
//
// The version-control client is treated as a black box: the package shells out
// to the git CLI rather than embedding a git implementation, so whatever git
// the user has (including credential helpers and SSH config) is used as-is.
//
// # Client Interface
//
// The Client interface abstracts the clone operation, making it easy to mock
// version-control interactions for unit testing (see core/git/mocks).
//
// # Errors
//
//   - ErrGitNotFound: the git binary is not on PATH.
//   - ErrCloneFailed: git exited non-zero; the wrapped message carries the
//     exit code and captured stderr.
//
// # Usage
//
//	client := git.NewCLIClient()
//	err := client.Clone(ctx, "https://github.com/user/repo.git", "main", "repo-clone")
package git
