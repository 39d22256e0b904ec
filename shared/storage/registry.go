package storage

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"
)

// ReportRegistry maintains the durable video-ID-to-title mapping behind the
// landing page of generated reports. The store is a single JSON object
// rewritten in full on every persist. It is best-effort metadata, not a
// source of truth: a missing or corrupt file is treated as an empty registry.
//
// An in-process RWMutex guards the map; a file lock serializes the
// load-modify-persist sequence against other processes.
type ReportRegistry struct {
	filePath string
	reports  map[string]string
	mu       sync.RWMutex
	fileLock *flock.Flock
}

// NewReportRegistry opens the registry at filePath, creating the parent
// directory if needed and loading whatever entries already exist.
func NewReportRegistry(filePath string) (*ReportRegistry, error) {
	if dir := filepath.Dir(filePath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create registry directory: %w", err)
		}
	}

	r := &ReportRegistry{
		filePath: filePath,
		reports:  make(map[string]string),
		fileLock: flock.New(filePath + ".lock"),
	}
	r.Load()
	return r, nil
}

// Load replaces the in-memory mapping with the contents of the store. A
// missing or unparsable file leaves the registry empty; corruption is
// swallowed, never propagated.
func (r *ReportRegistry) Load() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reports = make(map[string]string)

	if err := r.fileLock.RLock(); err != nil {
		log.Printf("Warning: could not lock registry file: %v", err)
		return
	}
	defer r.fileLock.Unlock()

	r.reports = readStore(r.filePath)
}

// readStore reads the on-disk mapping. Missing and corrupt files both come
// back as an empty map.
func readStore(path string) map[string]string {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: could not read registry file: %v", err)
		}
		return make(map[string]string)
	}

	var reports map[string]string
	if err := json.Unmarshal(data, &reports); err != nil {
		log.Printf("Warning: registry file is corrupt, starting empty: %v", err)
		return make(map[string]string)
	}
	if reports == nil {
		reports = make(map[string]string)
	}
	return reports
}

// Upsert inserts or overwrites the title for a video ID. An empty ID or an
// empty title is ignored so a failed metadata fetch never erases an existing
// entry.
func (r *ReportRegistry) Upsert(videoID, title string) {
	if videoID == "" || title == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports[videoID] = title
}

// Persist rewrites the durable store from the current in-memory mapping. The
// rewrite is atomic: the new contents are staged in a sibling temp file and
// renamed over the store, so a failed persist leaves the previous file
// untouched. While the exclusive lock is held, entries persisted by other
// processes since our last Load are folded in rather than overwritten.
func (r *ReportRegistry) Persist() error {
	r.mu.RLock()
	snapshot := make(map[string]string, len(r.reports))
	for id, title := range r.reports {
		snapshot[id] = title
	}
	r.mu.RUnlock()

	if err := r.fileLock.Lock(); err != nil {
		return fmt.Errorf("failed to lock registry file: %w", err)
	}
	defer r.fileLock.Unlock()

	merged := readStore(r.filePath)
	for id, title := range snapshot {
		merged[id] = title
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.filePath), filepath.Base(r.filePath)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to stage registry file: %w", err)
	}
	defer os.Remove(tmp.Name())

	encoder := json.NewEncoder(tmp)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(merged); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to encode registry: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write registry file: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.filePath); err != nil {
		return fmt.Errorf("failed to replace registry file: %w", err)
	}

	// Entries merged from disk belong in memory too, without clobbering
	// anything upserted since the snapshot.
	r.mu.Lock()
	for id, title := range merged {
		if _, ok := r.reports[id]; !ok {
			r.reports[id] = title
		}
	}
	r.mu.Unlock()
	return nil
}

// List returns a snapshot of the current mapping.
func (r *ReportRegistry) List() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make(map[string]string, len(r.reports))
	for id, title := range r.reports {
		snapshot[id] = title
	}
	return snapshot
}

// Count returns the number of registered reports.
func (r *ReportRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.reports)
}
