package db

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
)

// Compress packages the input file into a single-entry deflate archive. The
// entry is named after the input's base name.
func Compress(inputPath, outputPath string) Result {
	in, err := os.Open(inputPath)
	if err != nil {
		return fail("opening input file: %v", err)
	}
	defer in.Close()

	out, err := os.Create(outputPath)
	if err != nil {
		return fail("creating archive: %v", err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	entry, err := zw.Create(filepath.Base(inputPath))
	if err != nil {
		return fail("creating archive entry: %v", err)
	}
	if _, err := io.Copy(entry, in); err != nil {
		return fail("compressing file: %v", err)
	}
	if err := zw.Close(); err != nil {
		return fail("finalizing archive: %v", err)
	}
	return succeed("file compressed to %s", outputPath)
}

// Decompress extracts every entry of the archive into outputDir. Entry names
// are flattened to their base name so an archive cannot write outside the
// directory.
func Decompress(archivePath, outputDir string) Result {
	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		return fail("opening archive: %v", err)
	}
	defer zr.Close()

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fail("creating output directory: %v", err)
	}

	for _, file := range zr.File {
		if err := extractEntry(file, outputDir); err != nil {
			return fail("extracting %s: %v", file.Name, err)
		}
	}
	return succeed("archive extracted to %s", outputDir)
}

func extractEntry(file *zip.File, outputDir string) error {
	rc, err := file.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := os.Create(filepath.Join(outputDir, filepath.Base(file.Name)))
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, rc)
	return err
}
