package fsops

import "sync"

// opLock serializes mutating operations for the lifetime of the process.
// Transient file locking by external scanners (antivirus, indexers) makes
// concurrent mutation of the same tree fail in surprising ways on Windows;
// one critical section per mutation keeps those failures diagnosable.
var opLock sync.Mutex
