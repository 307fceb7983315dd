package browser

import (
	"io"

	"github.com/pkg/browser"
)

// Opener opens a URL in the user's default web browser.
type Opener interface {
	// Open opens the given URL. Failures are expected to be non-fatal for the
	// caller.
	Open(url string) error
}

// SystemOpener implements Opener using the OS default-browser mechanism.
type SystemOpener struct{}

// NewSystemOpener creates an Opener backed by the OS browser launcher.
// Browser chatter on stdout/stderr is discarded so it does not interleave
// with launcher output.
func NewSystemOpener() *SystemOpener {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return &SystemOpener{}
}

// Open opens url in the default browser.
func (o *SystemOpener) Open(url string) error {
	return browser.OpenURL(url)
}
