package tenant

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/orgsites/federation/content"
)

const schemaResource = "tenant.schema.json"

// Registry is the immutable id -> Record mapping. It is populated once at
// process start and never mutated, so any number of concurrent readers may
// share it without locking.
type Registry struct {
	records map[ID]Record
}

// NewRegistry decodes and validates the embedded content documents and
// builds the registry. Every known ID must have a document; a document
// failing schema validation, carrying an id that differs from its registry
// key, or repeating a leader/campaign id aborts startup.
func NewRegistry() (*Registry, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaResource, strings.NewReader(content.TenantSchemaJSON)); err != nil {
		return nil, fmt.Errorf("add tenant schema: %w", err)
	}
	schema, err := compiler.Compile(schemaResource)
	if err != nil {
		return nil, fmt.Errorf("compile tenant schema: %w", err)
	}

	documents := map[ID]string{
		AISF: content.AISFJSON,
		AIYF: content.AIYFJSON,
	}

	records := make(map[ID]Record, len(documents))
	for _, id := range All() {
		raw, ok := documents[id]
		if !ok {
			return nil, fmt.Errorf("tenant %q: no content document", id)
		}

		var doc any
		if err := json.Unmarshal([]byte(raw), &doc); err != nil {
			return nil, fmt.Errorf("tenant %q: decode content: %w", id, err)
		}
		if err := schema.Validate(doc); err != nil {
			return nil, fmt.Errorf("tenant %q: content schema: %w", id, err)
		}

		var record Record
		if err := json.Unmarshal([]byte(raw), &record); err != nil {
			return nil, fmt.Errorf("tenant %q: decode record: %w", id, err)
		}
		if record.ID != id {
			return nil, fmt.Errorf("tenant %q: document id %q does not match registry key", id, record.ID)
		}
		if err := checkUniqueIDs(record); err != nil {
			return nil, fmt.Errorf("tenant %q: %w", id, err)
		}

		records[id] = record
	}

	return &Registry{records: records}, nil
}

// Lookup returns the record for a valid tenant id. The enumeration and the
// registry keys are kept in lock-step at build time, so a miss here is a
// programming error and panics.
func (r *Registry) Lookup(id ID) Record {
	record, ok := r.records[id]
	if !ok {
		panic(fmt.Sprintf("tenant registry: unknown id %q", id))
	}
	return record
}

// Resolve matches an untrusted path segment against the enumeration and
// yields the corresponding record. The check is purely string based; no
// fuzzy, case-insensitive or partial matching is attempted.
func (r *Registry) Resolve(segment string) (Record, bool) {
	id, ok := ParseID(segment)
	if !ok {
		return Record{}, false
	}
	return r.Lookup(id), true
}

func checkUniqueIDs(record Record) error {
	leaders := make(map[int]bool, len(record.Leaders))
	for _, l := range record.Leaders {
		if leaders[l.ID] {
			return fmt.Errorf("duplicate leader id %d", l.ID)
		}
		leaders[l.ID] = true
	}

	campaigns := make(map[int]bool, len(record.Campaigns))
	for _, c := range record.Campaigns {
		if campaigns[c.ID] {
			return fmt.Errorf("duplicate campaign id %d", c.ID)
		}
		campaigns[c.ID] = true
	}
	return nil
}
