package store

import (
	"encoding/json"
	"fmt"

	"github.com/go-pg/pg/v10"
)

type document struct {
	tableName struct{} `pg:"documents"`

	Name string `pg:"name,pk"`
	Data string `pg:"data"`
}

type pgStore struct {
	db *pg.DB
}

// NewPGStore keeps each document as a JSONB row in the documents table.
func NewPGStore(db *pg.DB) DocumentStore {
	return &pgStore{db: db}
}

func (s *pgStore) Load(name string, out any) error {
	doc := &document{}

	err := s.db.Model(doc).
		Where("name = ?", name).
		Select()
	if err == pg.ErrNoRows {
		return nil
	} else if err != nil {
		return fmt.Errorf("failed to load document %q: %w", name, err)
	}

	if err := json.Unmarshal([]byte(doc.Data), out); err != nil {
		return fmt.Errorf("failed to decode document %q: %w", name, err)
	}

	return nil
}

func (s *pgStore) Save(name string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document %q: %w", name, err)
	}

	_, err = s.db.Model(&document{Name: name, Data: string(data)}).
		OnConflict("(name) DO UPDATE").
		Set("data = EXCLUDED.data").
		Insert()
	if err != nil {
		return fmt.Errorf("failed to save document %q: %w", name, err)
	}

	return nil
}
