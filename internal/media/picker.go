package media

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sanLimbu/taskphotos/internal"
)

// GallerySelectionLimit is the maximum number of photos selected from the gallery at once.
const GallerySelectionLimit = 8

var imageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".bmp":  {},
	".tif":  {},
	".tiff": {},
}

// DirectoryPicker exposes directories as image sources: the gallery returns its most recent photos
// and the camera returns the latest one.
type DirectoryPicker struct {
	dirs map[internal.ImageSource]string
}

// NewDirectoryPicker instantiates the picker, an empty directory disables the source.
func NewDirectoryPicker(gallery, camera string) *DirectoryPicker {
	return &DirectoryPicker{
		dirs: map[internal.ImageSource]string{
			internal.ImageSourceGallery: gallery,
			internal.ImageSourceCamera:  camera,
		},
	}
}

// RequestPermission reports whether the directory backing source can be listed.
func (p *DirectoryPicker) RequestPermission(_ context.Context, source internal.ImageSource) (bool, error) {
	dir := p.dirs[source]
	if dir == "" {
		return false, nil
	}

	f, err := os.Open(dir)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return false, nil
		}

		return false, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "os.Open")
	}

	_ = f.Close()

	return true, nil
}

// Pick returns absolute paths of the selected images, newest first.
func (p *DirectoryPicker) Pick(_ context.Context, source internal.ImageSource) ([]internal.ImageRef, error) {
	limit := GallerySelectionLimit
	if source == internal.ImageSourceCamera {
		limit = 1
	}

	dir := p.dirs[source]

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return nil, internal.WrapErrorf(err, internal.ErrorCodePermissionDenied, "os.ReadDir")
		}

		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "os.ReadDir")
	}

	type candidate struct {
		path string
		info fs.FileInfo
	}

	var candidates []candidate

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if _, ok := imageExtensions[strings.ToLower(filepath.Ext(entry.Name()))]; !ok {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		path, err := filepath.Abs(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "filepath.Abs")
		}

		candidates = append(candidates, candidate{path: path, info: info})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		mi, mj := candidates[i].info.ModTime(), candidates[j].info.ModTime()
		if mi.Equal(mj) {
			return candidates[i].path < candidates[j].path
		}

		return mi.After(mj)
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	res := make([]internal.ImageRef, len(candidates))
	for i, c := range candidates {
		res[i] = internal.ImageRef(c.path)
	}

	return res, nil
}
