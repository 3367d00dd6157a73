// Package main hosts the mediathek CLI entrypoint and command graph.
//
// The Cobra-based command tree surfaces one-shot placement, batch placement,
// classification dry runs, the incoming-directory watch service, and
// configuration scaffolding. It centralizes configuration resolution and
// structured logging setup so subcommands can focus on user experience
// instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
