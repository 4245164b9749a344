package server

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

func isArchive(filePath string) bool {
	loweredPath := strings.ToLower(filePath)
	return strings.HasSuffix(loweredPath, ".zip") ||
		strings.HasSuffix(loweredPath, ".tar") ||
		strings.HasSuffix(loweredPath, ".tar.gz") ||
		strings.HasSuffix(loweredPath, ".tgz")
}

// unpackArchive extracts an uploaded source archive into the destination
// folder. Entries escaping the destination are rejected.
func unpackArchive(archivePath string, destinationPath string) error {
	loweredPath := strings.ToLower(archivePath)
	switch {
	case strings.HasSuffix(loweredPath, ".zip"):
		return unpackZip(archivePath, destinationPath)
	case strings.HasSuffix(loweredPath, ".tar"):
		file, err := os.Open(archivePath)
		if err != nil {
			return err
		}
		defer file.Close()
		return unpackTar(file, destinationPath)
	case strings.HasSuffix(loweredPath, ".tar.gz"), strings.HasSuffix(loweredPath, ".tgz"):
		file, err := os.Open(archivePath)
		if err != nil {
			return err
		}
		defer file.Close()
		reader, err := gzip.NewReader(file)
		if err != nil {
			return err
		}
		defer reader.Close()
		return unpackTar(reader, destinationPath)
	}
	return fmt.Errorf("unsupported archive %s", filepath.Base(archivePath))
}

func entryDestination(destinationPath string, entryName string) (string, error) {
	entryPath := filepath.Join(destinationPath, filepath.FromSlash(entryName))
	if !strings.HasPrefix(entryPath, filepath.Clean(destinationPath)+string(os.PathSeparator)) {
		return "", fmt.Errorf("archive entry %s escapes the destination", entryName)
	}
	return entryPath, nil
}

func unpackZip(archivePath string, destinationPath string) (err error) {
	var reader *zip.ReadCloser
	if reader, err = zip.OpenReader(archivePath); err != nil {
		return
	}
	defer reader.Close()

	for _, entry := range reader.File {
		var entryPath string
		if entryPath, err = entryDestination(destinationPath, entry.Name); err != nil {
			return
		}
		if entry.FileInfo().IsDir() {
			if err = os.MkdirAll(entryPath, 0755); err != nil {
				return
			}
			continue
		}
		if err = os.MkdirAll(filepath.Dir(entryPath), 0755); err != nil {
			return
		}
		if err = copyZipEntry(entry, entryPath); err != nil {
			return
		}
	}
	return
}

func copyZipEntry(entry *zip.File, entryPath string) (err error) {
	var source io.ReadCloser
	if source, err = entry.Open(); err != nil {
		return
	}
	defer source.Close()
	var destination *os.File
	if destination, err = os.OpenFile(entryPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644); err != nil {
		return
	}
	defer destination.Close()
	_, err = io.Copy(destination, source)
	return
}

func unpackTar(source io.Reader, destinationPath string) (err error) {
	reader := tar.NewReader(source)
	for {
		var header *tar.Header
		if header, err = reader.Next(); err == io.EOF {
			return nil
		} else if err != nil {
			return
		}
		var entryPath string
		if entryPath, err = entryDestination(destinationPath, header.Name); err != nil {
			return
		}
		switch header.Typeflag {
		case tar.TypeDir:
			if err = os.MkdirAll(entryPath, 0755); err != nil {
				return
			}
		case tar.TypeReg:
			if err = os.MkdirAll(filepath.Dir(entryPath), 0755); err != nil {
				return
			}
			var destination *os.File
			if destination, err = os.OpenFile(entryPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644); err != nil {
				return
			}
			if _, err = io.Copy(destination, reader); err != nil {
				destination.Close()
				return
			}
			destination.Close()
		}
	}
}
