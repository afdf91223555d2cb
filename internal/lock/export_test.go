package lock

// TrackedKeys reports how many keys l currently holds entries for.
func TrackedKeys(l *MemoryLocker) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.keys)
}
