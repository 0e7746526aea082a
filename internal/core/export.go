package core

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/invopop/jsonschema"
)

// ExportService serializes document subsets to CSV, produces full-document
// JSON backups, and restores the document from an uploaded backup.
type ExportService interface {
	// ExportCSV renders one resource type with its fixed column projection.
	// Supported resources: "products", "transactions". The same document
	// always yields byte-identical output.
	ExportCSV(ctx context.Context, resource string) (data []byte, filename string, err error)

	// Backup returns the re-normalized full document as indented JSON and a
	// download filename embedding the generation timestamp.
	Backup(ctx context.Context) (data []byte, filename string, err error)

	// Restore replaces the persisted document with an uploaded backup. The
	// filename must end in .json and the content must parse; on any rejection
	// the current document is left untouched. Returns the number of fields
	// the normalizer had to coerce.
	Restore(ctx context.Context, filename string, r io.Reader) (coerced int, err error)

	// DocumentSchema reflects the JSON schema of the persisted document, so
	// external tooling can validate a backup before restoring it.
	DocumentSchema() *jsonschema.Schema
}

type exportService struct {
	store *Store
}

// NewExportService constructs an ExportService backed by the store.
func NewExportService(store *Store) ExportService {
	return &exportService{store: store}
}

func (s *exportService) ExportCSV(ctx context.Context, resource string) ([]byte, string, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	switch resource {
	case "products":
		_ = cw.Write([]string{"id", "name", "category", "price", "stock", "cost", "supplier"})
		for _, p := range doc.Products {
			_ = cw.Write([]string{
				strconv.FormatInt(p.ID, 10),
				csvSafe(p.Name),
				csvSafe(p.Category),
				p.Price.String(),
				strconv.FormatInt(p.Stock, 10),
				p.Cost.String(),
				csvSafe(p.Supplier),
			})
		}
	case "transactions":
		_ = cw.Write([]string{"id", "date", "type", "amount", "customer", "supplier", "description"})
		for _, t := range doc.Transactions {
			_ = cw.Write([]string{
				strconv.FormatInt(t.ID, 10),
				t.Date,
				t.Type,
				t.Amount.String(),
				csvSafe(t.Customer),
				csvSafe(t.Supplier),
				csvSafe(t.Description),
			})
		}
	default:
		return nil, "", fmt.Errorf("unknown export type %q: %w", resource, ErrValidation)
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, "", fmt.Errorf("failed to render csv: %w", err)
	}
	return buf.Bytes(), resource + "_export.csv", nil
}

func (s *exportService) Backup(ctx context.Context) ([]byte, string, error) {
	// Load runs the document through the normalizer, so the backup is always
	// the repaired shape regardless of what is on disk.
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, "", err
	}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode backup: %w", err)
	}
	name := fmt.Sprintf("business_backup_%s.json", time.Now().Format("20060102_150405"))
	return b, name, nil
}

func (s *exportService) Restore(ctx context.Context, filename string, r io.Reader) (int, error) {
	if !strings.HasSuffix(strings.ToLower(filename), ".json") {
		return 0, fmt.Errorf("invalid file format, expected a .json file: %w", ErrValidation)
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("failed to read upload: %w", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return 0, fmt.Errorf("invalid JSON file: %w", ErrValidation)
	}

	doc, coercions := Normalize(raw)
	if err := s.store.Save(ctx, doc); err != nil {
		return 0, fmt.Errorf("failed to restore document: %w", err)
	}
	return len(coercions), nil
}

func (s *exportService) DocumentSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{}
	return reflector.Reflect(&Document{})
}

// csvSafe prevents CSV formula injection by prefixing cells that begin with a
// formula trigger character with a single quote.
func csvSafe(s string) string {
	if s == "" {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@':
		return "'" + s
	}
	return s
}
