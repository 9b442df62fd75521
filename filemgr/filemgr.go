package filemgr

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

type EntityType string
type PictureType string

const (
	EntityPlant   EntityType = "plant"
	EntityListing EntityType = "listing"
	EntityUser    EntityType = "user"

	PicPhoto PictureType = "photo"
	PicThumb PictureType = "thumb"
)

var (
	AllowedExtensions = map[PictureType][]string{
		PicPhoto: {".jpg", ".jpeg", ".png", ".gif", ".webp"},
		PicThumb: {".jpg"},
	}

	AllowedMIMEs = map[PictureType][]string{
		PicPhoto: {"image/jpeg", "image/png", "image/gif", "image/webp"},
		PicThumb: {"image/jpeg"},
	}

	PictureSubfolders = map[PictureType]string{
		PicPhoto: "photo",
		PicThumb: "thumb",
	}

	ErrInvalidExtension = errors.New("invalid file extension")
	ErrInvalidMIME      = errors.New("invalid MIME type")
	ErrFileTooLarge     = errors.New("file size exceeds limit")
)

const maxUploadSize = 10 << 20

func ensureSafeFilename(name, ext string) string {
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, " ", "_")
	reg := regexp.MustCompile(`[^a-zA-Z0-9_\-]`)
	name = reg.ReplaceAllString(name, "")
	return name + ext
}

func isExtensionAllowed(ext string, picType PictureType) bool {
	for _, a := range AllowedExtensions[picType] {
		if ext == a {
			return true
		}
	}
	return false
}

func isMIMEAllowed(mimeType string, picType PictureType) bool {
	for _, a := range AllowedMIMEs[picType] {
		if mimeType == a {
			return true
		}
	}
	return false
}

func ResolvePath(entity EntityType, picType PictureType) string {
	subfolder, ok := PictureSubfolders[picType]
	if !ok || subfolder == "" {
		subfolder = "misc"
	}
	return filepath.Join("static", "uploads", strings.ToLower(string(entity)), subfolder)
}

// SaveFile writes an upload to destDir after extension and MIME checks.
// Returns the stored filename.
func SaveFile(reader io.Reader, header *multipart.FileHeader, destDir string, picType PictureType) (string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !isExtensionAllowed(ext, picType) {
		return "", fmt.Errorf("%w: %s for %s", ErrInvalidExtension, ext, picType)
	}

	buf := make([]byte, 512)
	n, err := reader.Read(buf)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read header: %w", err)
	}
	mimeType := http.DetectContentType(buf[:n])
	if mimeType == "application/octet-stream" {
		if formMime := header.Header.Get("Content-Type"); formMime != "" {
			mimeType = formMime
		}
	}
	if !isMIMEAllowed(mimeType, picType) {
		return "", fmt.Errorf("%w: %s for %s", ErrInvalidMIME, mimeType, picType)
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", destDir, err)
	}

	filename := uuid.New().String() + ext
	fullPath := filepath.Join(destDir, filename)
	out, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", fullPath, err)
	}
	defer out.Close()

	if _, err := out.Write(buf[:n]); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("write header: %w", err)
	}
	written, err := io.Copy(out, io.LimitReader(reader, maxUploadSize-int64(n)))
	if err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("write body: %w", err)
	}
	if written+int64(n) >= maxUploadSize {
		// do not leave the truncated upload on disk
		os.Remove(fullPath)
		return "", ErrFileTooLarge
	}

	return filename, nil
}

// SaveFileForEntity stores an image upload and renders a 200px-wide
// thumbnail next to it.
func SaveFileForEntity(file multipart.File, header *multipart.FileHeader, entity EntityType, picType PictureType) (string, error) {
	defer file.Close()
	dest := ResolvePath(entity, picType)

	buf, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}

	fileName, err := SaveFile(bytes.NewReader(buf), header, dest, picType)
	if err != nil {
		return "", err
	}

	if img, _, err := image.Decode(bytes.NewReader(buf)); err == nil {
		_ = generateThumbnail(img, entity, fileName)
	}

	return fileName, nil
}

func generateThumbnail(img image.Image, entity EntityType, baseFilename string) error {
	resized := imaging.Resize(img, 200, 0, imaging.Lanczos) // maintain aspect ratio
	name := strings.TrimSuffix(baseFilename, filepath.Ext(baseFilename)) + ".jpg"
	path := filepath.Join(ResolvePath(entity, PicThumb), name)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create thumbnail: %w", err)
	}
	defer out.Close()

	if err := jpeg.Encode(out, resized, &jpeg.Options{Quality: 85}); err != nil {
		return fmt.Errorf("encode thumbnail: %w", err)
	}
	return nil
}

// SaveFormFile pulls a single upload out of a parsed multipart form.
func SaveFormFile(form *multipart.Form, formKey string, entity EntityType, picType PictureType, required bool) (string, error) {
	files := form.File[formKey]
	if len(files) == 0 {
		if required {
			return "", fmt.Errorf("missing required file: %s", formKey)
		}
		return "", nil
	}
	file, err := files[0].Open()
	if err != nil {
		return "", fmt.Errorf("open %s: %w", formKey, err)
	}
	return SaveFileForEntity(file, files[0], entity, picType)
}
