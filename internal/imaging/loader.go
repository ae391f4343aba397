package imaging

import (
	"fmt"
	"os"
	"sync"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/image-effects-mcp/internal/effects"
)

// Workspace keeps the working copy of every image loaded by path.
//
// The first Load of a path decodes the file; later effect calls rewrite the
// cached copy in place until Reset discards it. The cache is keyed by the
// exact path string, so relative and absolute spellings of one file are
// separate entries.
//
// # Example Usage
//
//	ws := imaging.NewWorkspace()
//	err := ws.Apply("/path/to/image.png", func(img *effects.Image) error {
//	    return effects.Kuwahara(img, 3)
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = ws.View("/path/to/image.png", func(img *effects.Image) error {
//	    return imaging.Save(img, "/path/to/out.png")
//	})
type Workspace struct {
	mu      sync.RWMutex
	entries map[string]*workingCopy
}

// workingCopy serializes effect calls on one image.
type workingCopy struct {
	mu  sync.Mutex
	img *effects.Image
}

// NewWorkspace creates an empty workspace.
func NewWorkspace() *Workspace {
	return &Workspace{
		entries: make(map[string]*workingCopy),
	}
}

// Load decodes path into the workspace unless it is already there and
// reports its dimensions.
//
// Supported formats are those of github.com/disintegration/imaging: JPEG,
// PNG, GIF, TIFF and BMP. JPEG EXIF orientation is applied on decode.
func (w *Workspace) Load(path string) (width, height int, err error) {
	wc, err := w.entry(path)
	if err != nil {
		return 0, 0, err
	}
	wc.mu.Lock()
	defer wc.mu.Unlock()
	return wc.img.Width, wc.img.Height, nil
}

// Apply runs fn with exclusive access to the working copy of path, loading it
// first if needed. fn must not retain img after it returns.
func (w *Workspace) Apply(path string, fn func(img *effects.Image) error) error {
	wc, err := w.entry(path)
	if err != nil {
		return err
	}
	wc.mu.Lock()
	defer wc.mu.Unlock()
	return fn(wc.img)
}

// View runs fn with the working copy of path for reading. It holds the same
// lock as Apply, so fn never sees a half-applied effect.
func (w *Workspace) View(path string, fn func(img *effects.Image) error) error {
	return w.Apply(path, fn)
}

// Reset discards the working copy of path. The next access decodes the file
// again, dropping every effect applied so far.
func (w *Workspace) Reset(path string) {
	w.mu.Lock()
	delete(w.entries, path)
	w.mu.Unlock()
}

// Clear discards every working copy.
func (w *Workspace) Clear() {
	w.mu.Lock()
	w.entries = make(map[string]*workingCopy)
	w.mu.Unlock()
}

// Len reports how many images are loaded.
func (w *Workspace) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.entries)
}

func (w *Workspace) entry(path string) (*workingCopy, error) {
	w.mu.RLock()
	wc, ok := w.entries[path]
	w.mu.RUnlock()
	if ok {
		return wc, nil
	}

	img, err := Open(path)
	if err != nil {
		return nil, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	// Another caller may have loaded the same path meanwhile; keep theirs so
	// effects already applied to it are not lost.
	if wc, ok := w.entries[path]; ok {
		return wc, nil
	}
	wc = &workingCopy{img: img}
	w.entries[path] = wc
	return wc, nil
}

// Open decodes the file at path into a new effects.Image.
func Open(path string) (*effects.Image, error) {
	src, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return FromImage(src), nil
}

// ImageInfo contains metadata about an image file.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the format implied by the file extension: "JPEG", "PNG",
	// "GIF", "TIFF", "BMP" or "unknown".
	Format string `json:"format"`

	// FileSizeBytes is the size of the file on disk.
	FileSizeBytes int64 `json:"file_size_bytes"`

	// Loaded reports whether a working copy of the file is in the workspace.
	Loaded bool `json:"loaded"`
}

// Info describes path, loading it into the workspace if it is not there yet.
func (w *Workspace) Info(path string) (*ImageInfo, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	format := "unknown"
	if f, err := imaging.FormatFromFilename(path); err == nil {
		format = f.String()
	}

	w.mu.RLock()
	_, loaded := w.entries[path]
	w.mu.RUnlock()

	width, height, err := w.Load(path)
	if err != nil {
		return nil, err
	}

	return &ImageInfo{
		Width:         width,
		Height:        height,
		Format:        format,
		FileSizeBytes: stat.Size(),
		Loaded:        loaded,
	}, nil
}
