package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"lace/internal/diag"
	"lace/internal/project"
	"lace/internal/source"
)

// Increment when CheckPayload changes shape.
const diskCacheSchemaVersion uint16 = 1

// DiskCache stores per-file check results keyed by content digest.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// CachedDiagnostic is a Diagnostic flattened for serialization. Byte
// offsets are enough: a cache hit means the content is identical, so
// spans resolve against the reloaded file.
type CachedDiagnostic struct {
	Severity uint8
	Code     uint16
	Message  string
	Start    uint32
	End      uint32
}

// CheckPayload is one file's cached check outcome. Kind is recorded
// because the same content parses differently as a type or an
// expression; a hit with the wrong kind counts as a miss.
type CheckPayload struct {
	Schema      uint16
	Path        string
	Digest      project.Digest
	Kind        uint8
	Clean       bool
	Diagnostics []CachedDiagnostic
}

// OpenDiskCache initializes a disk cache at the standard location:
// $XDG_CACHE_HOME/<app>, falling back to ~/.cache/<app>.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key project.Digest) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "check", hexKey+".mp")
}

// Put serializes and writes a payload. The write is atomic: a temp
// file in the same directory is renamed over the target.
func (c *DiskCache) Put(key project.Digest, payload *CheckPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if rmErr := os.Remove(f.Name()); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "failed to remove temp file: %v\n", rmErr)
		}
	}()

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads a payload. A missing entry is (false, nil). Entries with a
// stale schema are treated as missing.
func (c *DiskCache) Get(key project.Digest, out *CheckPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "failed to close cache file: %v\n", closeErr)
		}
	}()
	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	if out.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the whole cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}

// payloadFromBag flattens a bag for caching.
func payloadFromBag(path string, digest project.Digest, kind Kind, bag *diag.Bag) *CheckPayload {
	payload := &CheckPayload{
		Schema: diskCacheSchemaVersion,
		Path:   path,
		Digest: digest,
		Kind:   uint8(kind),
		Clean:  !bag.HasErrors(),
	}
	for _, d := range bag.Items() {
		payload.Diagnostics = append(payload.Diagnostics, CachedDiagnostic{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Message:  d.Message,
			Start:    d.Primary.Start,
			End:      d.Primary.End,
		})
	}
	return payload
}

// bagFromPayload rebuilds a bag against the freshly loaded file. Notes
// are not cached; only the primary span survives a round trip.
func bagFromPayload(fileID source.FileID, payload *CheckPayload, maxDiagnostics int) *diag.Bag {
	bag := diag.NewBag(maxDiagnostics)
	for _, cd := range payload.Diagnostics {
		bag.Add(diag.New(
			diag.Severity(cd.Severity),
			diag.Code(cd.Code),
			source.Span{File: fileID, Start: cd.Start, End: cd.End},
			cd.Message,
		))
	}
	return bag
}
