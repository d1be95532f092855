package isom

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

const sqlInsertUndo = `INSERT INTO undo_log (
	seq, diamond_x, diamond_y, old_left, old_top, old_right, old_bottom, new_left, new_top, new_right, new_bottom
) VALUES (
	:seq, :diamond_x, :diamond_y, :old_left, :old_top, :old_right, :old_bottom, :new_left, :new_top, :new_right, :new_bottom
);`

// UndoStore persists a RectUndo log to a sqlite database, implementing
// UndoSink. Entries are append-only and ordered by Seq so a caller can
// replay or rewind a brush stroke after the fact.
type UndoStore struct {
	filename string
	db       *sqlx.DB
	seq      int64
}

// NewUndoStore creates a temp-file backed UndoStore with a random name.
func NewUndoStore() (*UndoStore, error) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	fname := filepath.Join(os.TempDir(), fmt.Sprintf("isomundo.%d.sqlite", rng.Intn(1000000)))
	return OpenUndoStore(fname)
}

// OpenUndoStore opens (creating if needed) an UndoStore at fname.
func OpenUndoStore(fname string) (*UndoStore, error) {
	db, err := sqlx.Open("sqlite3", fname)
	if err != nil {
		return nil, err
	}
	store := &UndoStore{filename: fname, db: db}
	return store, store.init()
}

func (s *UndoStore) init() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS undo_log(
		seq INTEGER PRIMARY KEY,
		diamond_x INTEGER NOT NULL,
		diamond_y INTEGER NOT NULL,
		old_left INTEGER NOT NULL,
		old_top INTEGER NOT NULL,
		old_right INTEGER NOT NULL,
		old_bottom INTEGER NOT NULL,
		new_left INTEGER NOT NULL,
		new_top INTEGER NOT NULL,
		new_right INTEGER NOT NULL,
		new_bottom INTEGER NOT NULL
	);`)
	return err
}

// Filename returns the path to the undo database on disk.
func (s *UndoStore) Filename() string { return s.filename }

// AddIsomUndo implements UndoSink, appending u as the next entry.
func (s *UndoStore) AddIsomUndo(u RectUndo) {
	s.seq++
	_, _ = s.db.NamedExec(sqlInsertUndo, dbUndo{
		Seq:       s.seq,
		DiamondX:  u.Diamond.X,
		DiamondY:  u.Diamond.Y,
		OldLeft:   u.OldValue.Left,
		OldTop:    u.OldValue.Top,
		OldRight:  u.OldValue.Right,
		OldBottom: u.OldValue.Bottom,
		NewLeft:   u.NewValue.Left,
		NewTop:    u.NewValue.Top,
		NewRight:  u.NewValue.Right,
		NewBottom: u.NewValue.Bottom,
	})
}

// Entries returns every undo entry in insertion order, oldest first.
func (s *UndoStore) Entries() ([]RectUndo, error) {
	rows, err := s.db.Queryx("SELECT * FROM undo_log ORDER BY seq ASC;")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RectUndo
	for rows.Next() {
		var r dbUndo
		if err := rows.StructScan(&r); err != nil {
			return nil, err
		}
		out = append(out, RectUndo{
			Diamond:  Diamond{X: r.DiamondX, Y: r.DiamondY},
			OldValue: IsomRect{Left: r.OldLeft, Top: r.OldTop, Right: r.OldRight, Bottom: r.OldBottom},
			NewValue: IsomRect{Left: r.NewLeft, Top: r.NewTop, Right: r.NewRight, Bottom: r.NewBottom},
		})
	}
	return out, nil
}

// Close releases the underlying database handle.
func (s *UndoStore) Close() error { return s.db.Close() }

type dbUndo struct {
	Seq       int64  `db:"seq"`
	DiamondX  int    `db:"diamond_x"`
	DiamondY  int    `db:"diamond_y"`
	OldLeft   uint16 `db:"old_left"`
	OldTop    uint16 `db:"old_top"`
	OldRight  uint16 `db:"old_right"`
	OldBottom uint16 `db:"old_bottom"`
	NewLeft   uint16 `db:"new_left"`
	NewTop    uint16 `db:"new_top"`
	NewRight  uint16 `db:"new_right"`
	NewBottom uint16 `db:"new_bottom"`
}
