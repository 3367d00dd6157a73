// Package watch runs the incoming-directory service: an fsnotify producer
// feeding a bounded event queue, drained by a single sequential placement
// consumer. When the queue fills the producer blocks, so a placement backlog
// slows event intake without losing files.
//
// One consumer is deliberate. Placement searches the library before deciding
// to create or merge a group directory, and running those decisions
// sequentially keeps two files of the same new group from racing each other.
// A flock-based lock file prevents a second service instance on the same
// configuration.
package watch
