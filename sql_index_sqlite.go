package main

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SqlIndex is the sqlite-backed index. Same postings shape as InvIndex,
// stored in documents / terms / frequencies tables. Write errors are held
// and surfaced by Close, since the Index interface has no error returns.
type SqlIndex struct {
	db  *sql.DB
	err error
}

// NewSqlIndex opens (and optionally resets) the sqlite index at path.
func NewSqlIndex(path string, reset bool) (*SqlIndex, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	if _, err := db.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	if reset {
		if _, err := db.Exec(`
			DROP TABLE IF EXISTS frequencies;
			DROP TABLE IF EXISTS terms;
			DROP TABLE IF EXISTS documents;
		`); err != nil {
			return nil, fmt.Errorf("reset tables: %w", err)
		}
	}

	if _, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS documents(
			doc_id     INTEGER PRIMARY KEY,
			name       TEXT UNIQUE NOT NULL,
			doc_length INTEGER DEFAULT 0
		);
		CREATE TABLE IF NOT EXISTS terms(
			term_id INTEGER PRIMARY KEY,
			term    TEXT UNIQUE NOT NULL
		);
		CREATE TABLE IF NOT EXISTS frequencies(
			freq_id INTEGER PRIMARY KEY,
			term_id INTEGER,
			doc_id  INTEGER,
			tf      INTEGER,
			FOREIGN KEY(term_id) REFERENCES terms(term_id),
			FOREIGN KEY(doc_id) REFERENCES documents(doc_id),
			UNIQUE(term_id, doc_id)
		);
	`); err != nil {
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return &SqlIndex{db: db}, nil
}

// Close surfaces any deferred write error and releases the database handle.
func (s *SqlIndex) Close() error {
	return errors.Join(s.err, s.db.Close())
}

func (s *SqlIndex) fail(err error) {
	if s.err == nil {
		s.err = err
	}
}

// AddDocument inserts a document and all its terms in one transaction.
func (s *SqlIndex) AddDocument(docID string, terms []string) {
	tx, err := s.db.Begin()
	if err != nil {
		s.fail(fmt.Errorf("begin transaction: %w", err))
		return
	}

	if _, err := tx.Exec(`INSERT OR IGNORE INTO documents(name, doc_length) VALUES(?, 0)`, docID); err != nil {
		tx.Rollback()
		s.fail(fmt.Errorf("insert document %s: %w", docID, err))
		return
	}

	for _, term := range terms {
		if term == "" {
			continue
		}
		if err := addTermInTransaction(tx, docID, term); err != nil {
			tx.Rollback()
			s.fail(fmt.Errorf("index %s in document %s: %w", term, docID, err))
			return
		}
	}
	if err := tx.Commit(); err != nil {
		s.fail(fmt.Errorf("commit document %s: %w", docID, err))
	}
}

func addTermInTransaction(tx *sql.Tx, docID, term string) error {
	var id int64
	err := tx.QueryRow(`SELECT doc_id FROM documents WHERE name = ?`, docID).Scan(&id)
	if err != nil {
		return err
	}

	var termID int64
	err = tx.QueryRow(`SELECT term_id FROM terms WHERE term = ?`, term).Scan(&termID)
	if err == sql.ErrNoRows {
		res, err := tx.Exec(`INSERT INTO terms(term) VALUES(?)`, term)
		if err != nil {
			return err
		}
		termID, _ = res.LastInsertId()
	} else if err != nil {
		return err
	}

	if _, err := tx.Exec(`
		INSERT INTO frequencies(term_id, doc_id, tf)
		VALUES(?, ?, 1)
		ON CONFLICT(term_id, doc_id) DO UPDATE SET tf = tf + 1;
	`, termID, id); err != nil {
		return err
	}

	if _, err := tx.Exec(`
		UPDATE documents SET doc_length = doc_length + 1 WHERE doc_id = ?;
	`, id); err != nil {
		return err
	}

	return nil
}

// Postings returns raw counts plus doc lengths for a term.
func (s *SqlIndex) Postings(term string) []Posting {
	rows, err := s.db.Query(`
		SELECT d.name, f.tf, d.doc_length
		FROM terms t
		JOIN frequencies f ON f.term_id = t.term_id
		JOIN documents  d ON d.doc_id  = f.doc_id
		WHERE t.term = ?
		ORDER BY d.name;
	`, term)
	if err != nil {
		return nil
	}
	defer rows.Close()

	var out []Posting
	for rows.Next() {
		var p Posting
		if err := rows.Scan(&p.DocID, &p.Count, &p.DocLen); err != nil {
			return nil
		}
		out = append(out, p)
	}
	return out
}

// Terms returns the sorted vocabulary.
func (s *SqlIndex) Terms() []string {
	rows, err := s.db.Query(`SELECT term FROM terms ORDER BY term`)
	if err != nil {
		return nil
	}
	defer rows.Close()

	var terms []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil
		}
		terms = append(terms, t)
	}
	return terms
}

// DocIDs returns the sorted ids of all indexed documents.
func (s *SqlIndex) DocIDs() []string {
	rows, err := s.db.Query(`SELECT name FROM documents ORDER BY name`)
	if err != nil {
		return nil
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil
		}
		ids = append(ids, id)
	}
	return ids
}

// DocLen returns the token count of one document.
func (s *SqlIndex) DocLen(docID string) int {
	var n int
	if err := s.db.QueryRow(`SELECT doc_length FROM documents WHERE name = ?`, docID).Scan(&n); err != nil {
		return 0
	}
	return n
}

// TotalDocs returns the number of indexed documents.
func (s *SqlIndex) TotalDocs() int {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM documents`).Scan(&n); err != nil {
		return 0
	}
	return n
}

// TotalTerms returns the total corpus length.
func (s *SqlIndex) TotalTerms() int {
	var n int
	if err := s.db.QueryRow(`SELECT COALESCE(SUM(doc_length), 0) FROM documents`).Scan(&n); err != nil {
		return 0
	}
	return n
}
