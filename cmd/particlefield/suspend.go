package main

// pauser is a frame driver that can be held without being torn down.
type pauser interface {
	Pause()
	Resume()
}
