package export

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ulikunitz/xz"

	"github.com/stratumcad/ifcgen/core/model"
)

func TestWriteFilePlain(t *testing.T) {
	result := mustGenerate(t, &model.Document{})
	path := filepath.Join(t.TempDir(), "out.ifc")

	if err := WriteFile(path, result, WriteOptions{}); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != result.Content {
		t.Error("written file differs from generated content")
	}
}

func TestWriteFileXZBySuffix(t *testing.T) {
	result := mustGenerate(t, &model.Document{})
	path := filepath.Join(t.TempDir(), "out.ifc.xz")

	if err := WriteFile(path, result, WriteOptions{}); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	r, err := xz.NewReader(f)
	if err != nil {
		t.Fatalf("file is not an xz stream: %v", err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("decompress: %v", err)
	}
	if string(data) != result.Content {
		t.Error("decompressed content differs from generated content")
	}
}

func TestWriteFileExplicitCompression(t *testing.T) {
	result := mustGenerate(t, &model.Document{})
	path := filepath.Join(t.TempDir(), "archive.dat")

	if err := WriteFile(path, result, WriteOptions{Compression: CompressionXZ}); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if strings.HasPrefix(string(data), "ISO-10303-21;") {
		t.Error("explicit xz compression wrote plain text")
	}
}

func TestWriteFileRejectsNilResult(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ifc")
	if err := WriteFile(path, nil, WriteOptions{}); err == nil {
		t.Error("WriteFile(nil result) succeeded")
	}
}

func TestWriteFileUnknownCompression(t *testing.T) {
	result := mustGenerate(t, &model.Document{})
	path := filepath.Join(t.TempDir(), "out.ifc")
	if err := WriteFile(path, result, WriteOptions{Compression: "gzip"}); err == nil {
		t.Error("WriteFile accepted unknown compression type")
	}
}
