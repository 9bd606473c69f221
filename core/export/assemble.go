package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/stratumcad/ifcgen/core/errors"
	"github.com/stratumcad/ifcgen/core/step"
)

// assemble emits the STEP header, every entity in creation order, and
// the footer.
func (g *generator) assemble() string {
	var sb strings.Builder

	timestamp := g.opts.Now().Format("2006-01-02T15:04:05")

	sb.WriteString("ISO-10303-21;\n")
	sb.WriteString("HEADER;\n")
	sb.WriteString("FILE_DESCRIPTION((" +
		step.EncodeString("ViewDefinition [DesignTransferView]") +
		")," + step.EncodeString("2;1") + ");\n")
	sb.WriteString(fmt.Sprintf("FILE_NAME(%s,%s,(%s),(%s),%s,%s,%s);\n",
		step.EncodeString(g.opts.ProjectName),
		step.EncodeString(timestamp),
		step.EncodeString(g.opts.Author),
		step.EncodeString(g.opts.Organization),
		step.EncodeString(g.opts.Application+" "+g.opts.ApplicationVersion),
		step.EncodeString(g.opts.Application),
		step.EncodeString(""),
	))
	sb.WriteString("FILE_SCHEMA((" + step.EncodeString("IFC4") + "));\n")
	sb.WriteString("ENDSEC;\n")
	sb.WriteString("DATA;\n")

	for _, e := range g.b.Entities() {
		sb.WriteString(fmt.Sprintf("#%d=%s(%s);\n", e.ID, e.Type, e.Attrs))
	}

	sb.WriteString("ENDSEC;\n")
	sb.WriteString("END-ISO-10303-21;\n")
	return sb.String()
}

// CompressionType specifies how WriteFile encodes the output.
type CompressionType string

const (
	// CompressionNone writes the STEP text as-is (default).
	CompressionNone CompressionType = "none"
	// CompressionXZ wraps the text in an XZ stream (for .ifc.xz
	// archives).
	CompressionXZ CompressionType = "xz"
)

// WriteOptions configures WriteFile.
type WriteOptions struct {
	// Compression selects the output encoding. Defaults to none; paths
	// ending in .xz select XZ automatically.
	Compression CompressionType
}

// WriteFile persists a generation result to path. This is the file-write
// collaborator of the generator; the generator itself performs no I/O.
func WriteFile(path string, result *GenerationResult, opts WriteOptions) error {
	if result == nil {
		return errors.NewValidation("result", "is required")
	}

	compression := opts.Compression
	if compression == "" {
		compression = CompressionNone
		if strings.HasSuffix(path, ".xz") {
			compression = CompressionXZ
		}
	}

	switch compression {
	case CompressionNone:
		if err := os.WriteFile(path, []byte(result.Content), 0644); err != nil {
			return errors.NewIO("write", path, err)
		}
		return nil

	case CompressionXZ:
		f, err := os.Create(path)
		if err != nil {
			return errors.NewIO("create", path, err)
		}
		defer f.Close()

		w, err := xz.NewWriter(f)
		if err != nil {
			return errors.Wrap(err, "failed to create xz writer")
		}
		if _, err := w.Write([]byte(result.Content)); err != nil {
			return errors.NewIO("write", path, err)
		}
		if err := w.Close(); err != nil {
			return errors.Wrap(err, "failed to finalize xz stream")
		}
		return f.Close()

	default:
		return errors.NewValidation("compression", fmt.Sprintf("unknown compression type: %s", compression))
	}
}
