package platform

// ResolvedWindow is a live window handle plus the process ID it was matched
// against. Transient: recomputed every poll cycle, never cached, because the
// target process may have restarted with a new window.
type ResolvedWindow struct {
	Handle uintptr
	PID    uint32
}

// ListOptions controls window listing.
type ListOptions struct {
	PID        uint32 // Only windows owned by this process (0 = all)
	IncludeExe bool   // Resolve each window's executable base name (extra OS calls)
}
