package imagestore

import (
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/Hamdhan7/design-fabric-backend/pkg/errs"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var allowedTypes = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
}

var allowedMimes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

type ImageStore interface {
	Save(file *multipart.FileHeader) (filename string, err error)
	Remove(filename string) error
	List() (filenames []string, err error)
}

type DiskImageStore struct {
	dir string
}

func CreateDiskImageStore(dir string) (*DiskImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	return &DiskImageStore{dir: dir}, nil
}

// Save validates the upload against the jpeg/jpg/png allow-list (extension
// plus sniffed content) and writes it under a product-<uuid>.<ext> name.
func (s *DiskImageStore) Save(file *multipart.FileHeader) (filename string, err error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedTypes[ext] {
		return "", errs.ErrNotAnImage
	}

	src, err := file.Open()
	if err != nil {
		log.Error().Err(err).Str("component", "Save").Msg("")
		return "", errs.ErrInternalServer
	}
	defer src.Close()

	mime, err := sniffMime(src)
	if err != nil {
		log.Error().Err(err).Str("component", "Save").Msg("")
		return "", errs.ErrInternalServer
	}

	if !allowedMimes[mime] {
		return "", errs.ErrNotAnImage
	}

	filename = "product-" + uuid.NewString() + ext

	dst, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		log.Error().Err(err).Str("component", "Save").Msg("")
		return "", errs.ErrInternalServer
	}
	defer dst.Close()

	if _, err = io.Copy(dst, src); err != nil {
		log.Error().Err(err).Str("component", "Save").Msg("")
		return "", errs.ErrInternalServer
	}

	return filename, nil
}

func (s *DiskImageStore) Remove(filename string) error {
	// base-name only, keeps callers from reaching outside the store dir
	return os.Remove(filepath.Join(s.dir, filepath.Base(filename)))
}

func (s *DiskImageStore) List() (filenames []string, err error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		filenames = append(filenames, entry.Name())
	}

	return filenames, nil
}

// sniffMime reads the first 512 bytes and rewinds, so the declared
// Content-Type header is never trusted.
func sniffMime(file multipart.File) (string, error) {
	buf := make([]byte, 512)
	n, err := file.Read(buf)
	if err != nil && err != io.EOF {
		return "", err
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	return http.DetectContentType(buf[:n]), nil
}
