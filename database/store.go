package database

import (
	"cafeqr_server/structs"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/MonkyMars/gecho"
)

// Store persists the entire dataset as one flat JSON document. Every
// operation runs a full load -> mutate -> save cycle; the document is the
// unit of atomicity and there are no partial reads or writes.
//
// Go serves each request on its own goroutine, so the mutex below is the
// single-writer serialization point: without it two concurrent cycles would
// read the same snapshot and the second save would silently drop the first's
// changes.
type Store struct {
	path   string
	logger *gecho.Logger
	mu     sync.Mutex
}

// NewStore opens the document at path, creating it with an empty document
// when it does not exist yet.
func NewStore(path string, logger *gecho.Logger) (*Store, error) {
	s := &Store{path: path, logger: logger}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := s.save(structs.NewDocument()); err != nil {
			return nil, fmt.Errorf("failed to initialize store at %s: %w", path, err)
		}
		logger.Info("Initialized empty document store", gecho.Field("path", path))
	}

	return s, nil
}

// Update runs one load -> mutate -> save cycle under the store lock. When fn
// returns an error the cycle is aborted and nothing is written.
func (s *Store) Update(fn func(doc *structs.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load()
	if err := fn(doc); err != nil {
		return err
	}
	return s.save(doc)
}

// View runs fn against a freshly loaded document without writing it back.
func (s *Store) View(fn func(doc *structs.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(s.load())
}

// load reads and parses the whole document. A missing or unparseable file is
// recovered locally: it logs a warning and yields an empty document so the
// calling operation can proceed.
func (s *Store) load() *structs.Document {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("Failed to read document store, starting from an empty document",
				gecho.Field("path", s.path),
				gecho.Field("error", err),
			)
		}
		return structs.NewDocument()
	}

	doc := structs.NewDocument()
	if err := json.Unmarshal(raw, doc); err != nil {
		s.logger.Warn("Failed to parse document store, starting from an empty document",
			gecho.Field("path", s.path),
			gecho.Field("error", err),
		)
		return structs.NewDocument()
	}

	// Collections may be null in hand-edited files.
	ensureCollections(doc)
	return doc
}

// save marshals the whole document and overwrites the file. No partial merge.
func (s *Store) save(doc *structs.Document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write document store: %w", err)
	}
	return nil
}

func ensureCollections(doc *structs.Document) {
	if doc.Categories == nil {
		doc.Categories = []structs.Category{}
	}
	if doc.Products == nil {
		doc.Products = []structs.Product{}
	}
	if doc.Tables == nil {
		doc.Tables = []structs.Table{}
	}
	if doc.Orders == nil {
		doc.Orders = []structs.Order{}
	}
	if doc.OrderItems == nil {
		doc.OrderItems = []structs.OrderItem{}
	}
	if doc.Payments == nil {
		doc.Payments = []structs.Payment{}
	}
}
