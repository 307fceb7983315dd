// Package browser opens URLs in the user's default web browser.
//
// Opening the browser is strictly best-effort: the launcher logs a failure
// together with the URL for manual use and carries on. The Opener interface
// exists so tests can record or fail the open without touching the OS.
package browser
