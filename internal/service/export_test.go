package service

// RememberedBlobs returns how many uploaded blobs still wait for a
// confirming save.
func RememberedBlobs(o SyncOrchestrator) int {
	u := o.(*syncOrchestrator).uploader
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.uploaded)
}
