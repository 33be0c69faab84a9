package sprite

import (
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	homedir "github.com/mitchellh/go-homedir"
)

const (
	sqlInsertRun = `INSERT INTO runs (input, output, frame_width, frame_height, y_offset, sheet_width, sheet_height, created) VALUES (:input, :output, :frame_width, :frame_height, :y_offset, :sheet_width, :sheet_height, :created);`
)

// Run records one completed realignment, so we can tell later what was done
// to a sheet & with what settings.
type Run struct {
	ID          int64  `db:"id"`
	Input       string `db:"input"`
	Output      string `db:"output"`
	FrameWidth  int    `db:"frame_width"`
	FrameHeight int    `db:"frame_height"`
	YOffset     int    `db:"y_offset"`
	SheetWidth  int    `db:"sheet_width"`
	SheetHeight int    `db:"sheet_height"`
	Created     int64  `db:"created"` // unix seconds
}

// Catalog is a small sqlite database of past realignment runs.
type Catalog struct {
	filename string
	db       *sqlx.DB
}

// DefaultCatalogPath returns where the catalog lives unless told otherwise
// (~/.sprite/catalog.sqlite).
func DefaultCatalogPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".sprite", "catalog.sqlite"), nil
}

// OpenCatalog opens the catalog database given it's filename on disk.
// Will create (dirs included) if it doesn't exist.
func OpenCatalog(fname string) (*Catalog, error) {
	err := os.MkdirAll(filepath.Dir(fname), 0755)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open("sqlite3", fname)
	if err != nil {
		return nil, err
	}

	c := &Catalog{db: db, filename: fname}
	return c, c.init()
}

// Filename returns the path to the catalog data on disk
func (c *Catalog) Filename() string {
	return c.filename
}

// Record inserts a completed run. Created is stamped if unset.
func (c *Catalog) Record(r *Run) error {
	if r.Created == 0 {
		r.Created = time.Now().Unix()
	}
	_, err := c.db.NamedExec(sqlInsertRun, r)
	return err
}

// Runs returns recorded runs for the given input sheet, oldest first.
func (c *Catalog) Runs(input string) ([]*Run, error) {
	rows, err := c.db.NamedQuery(
		"SELECT * FROM runs WHERE input=:input ORDER BY created, id;",
		map[string]interface{}{"input": input},
	)
	if err != nil {
		return nil, err
	}
	return scanRuns(rows)
}

// AllRuns returns every recorded run, oldest first.
func (c *Catalog) AllRuns() ([]*Run, error) {
	rows, err := c.db.Queryx("SELECT * FROM runs ORDER BY created, id;")
	if err != nil {
		return nil, err
	}
	return scanRuns(rows)
}

// scanRuns reads out all remaining rows as Run structs
func scanRuns(rows *sqlx.Rows) ([]*Run, error) {
	runs := []*Run{}
	for rows.Next() {
		r := &Run{}
		err := rows.StructScan(r)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, nil
}

// Close the underlying database.
func (c *Catalog) Close() error {
	return c.db.Close()
}

// init creates the runs table for us if it doesn't exist
func (c *Catalog) init() error {
	createRuns := `CREATE TABLE IF NOT EXISTS runs(
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		input TEXT NOT NULL,
		output TEXT NOT NULL,
		frame_width INTEGER NOT NULL,
		frame_height INTEGER NOT NULL,
		y_offset INTEGER NOT NULL,
		sheet_width INTEGER NOT NULL,
		sheet_height INTEGER NOT NULL,
		created INTEGER NOT NULL
	    );`
	_, err := c.db.Exec(createRuns)
	return err
}
