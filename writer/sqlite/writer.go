// Package sqlite writes computed isotopic spectra to SQLite database
// files, one molecule row plus its peak table per spectrum.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/moldiscovery/IsoSpec/spectrum"
)

// Date format for the MoleculeTable (ISO 8601).
const createdDateFormat = "2006-01-02"

// Writer handles writing spectra to a SQLite database file.
type Writer struct {
	db           *sql.DB
	outputPath   string
	moleculeStmt *sql.Stmt
	peakStmt     *sql.Stmt
	moleculeID   int
}

// NewWriter opens (or creates) the database at outputPath and prepares
// the schema and insert statements.
func NewWriter(outputPath string) (*Writer, error) {
	db, err := sql.Open("sqlite3", outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	w := &Writer{
		db:         db,
		outputPath: outputPath,
		moleculeID: 1,
	}

	if err := w.createTables(); err != nil {
		db.Close()

		return nil, err
	}

	if err := w.prepareStatements(); err != nil {
		db.Close()

		return nil, err
	}

	return w, nil
}

// createTables creates the required database schema.
func (w *Writer) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS MoleculeTable (
		MoleculeId INTEGER PRIMARY KEY,
		Formula TEXT,
		Threshold DOUBLE,
		Absolute INTEGER,
		PeakCount INTEGER,
		CreatedDate TEXT
	);

	CREATE TABLE IF NOT EXISTS PeakTable (
		PeakId INTEGER PRIMARY KEY AUTOINCREMENT,
		MoleculeId INTEGER REFERENCES MoleculeTable(MoleculeId),
		Mass DOUBLE,
		Probability DOUBLE,
		LogProbability DOUBLE
	);

	CREATE INDEX IF NOT EXISTS idx_peak_molecule ON PeakTable(MoleculeId);
	`

	if _, err := w.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	return nil
}

// prepareStatements prepares the per-row insert statements.
func (w *Writer) prepareStatements() error {
	var err error

	w.moleculeStmt, err = w.db.Prepare(`
		INSERT INTO MoleculeTable (MoleculeId, Formula, Threshold, Absolute, PeakCount, CreatedDate)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare molecule statement: %w", err)
	}

	w.peakStmt, err = w.db.Prepare(`
		INSERT INTO PeakTable (MoleculeId, Mass, Probability, LogProbability)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare peak statement: %w", err)
	}

	return nil
}

// WriteSpectrum stores one molecule and all of its peaks in a single
// transaction.
func (w *Writer) WriteSpectrum(formula string, threshold float64, absolute bool, peaks []spectrum.Peak) error {
	tx, err := w.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	abs := 0
	if absolute {
		abs = 1
	}
	created := time.Now().Format(createdDateFormat)
	if _, err = tx.Stmt(w.moleculeStmt).Exec(w.moleculeID, formula, threshold, abs, len(peaks), created); err != nil {
		return fmt.Errorf("failed to insert molecule %q: %w", formula, err)
	}

	peakStmt := tx.Stmt(w.peakStmt)
	for _, p := range peaks {
		if _, err = peakStmt.Exec(w.moleculeID, p.Mass, p.Prob, p.LogProb); err != nil {
			return fmt.Errorf("failed to insert peak of %q: %w", formula, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit %q: %w", formula, err)
	}
	w.moleculeID++

	return nil
}

// Close releases the prepared statements and the database handle.
func (w *Writer) Close() error {
	if w.moleculeStmt != nil {
		w.moleculeStmt.Close()
	}
	if w.peakStmt != nil {
		w.peakStmt.Close()
	}

	return w.db.Close()
}
