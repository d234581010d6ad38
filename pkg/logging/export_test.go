package logging

import "sync"

// resetForTest clears the package-level session and directory state so
// tests can point HOME at a fresh temp dir.
func resetForTest() {
	sessionIDOnce = sync.Once{}
	sessionID = ""
	initOnce = sync.Once{}
	initErr = nil
	logDir = ""
}
