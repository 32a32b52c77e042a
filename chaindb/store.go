package chaindb

import (
	"database/sql"
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	walkers    INTEGER NOT NULL,
	dim        INTEGER NOT NULL,
	seed       INTEGER NOT NULL,
	state      TEXT    NOT NULL,
	created_at TEXT    NOT NULL
);
CREATE TABLE IF NOT EXISTS steps (
	run_id  TEXT    NOT NULL REFERENCES runs(id),
	step    INTEGER NOT NULL,
	walker  INTEGER NOT NULL,
	theta   BLOB    NOT NULL,
	logprob REAL    NOT NULL,
	PRIMARY KEY (run_id, step, walker)
);
`

// Store is a handle on one checkpoint database file.
type Store struct {
	db *sql.DB
}

// Open opens (creating if absent) the checkpoint database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("chaindb: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()

		return nil, fmt.Errorf("chaindb: init schema in %s: %w", path, err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Run is one sampling run bound to a Store. It satisfies the sampler's
// Checkpointer interface.
type Run struct {
	store *Store

	// ID identifies the run inside the database.
	ID string

	// Walkers and Dim fix the ensemble shape every SaveStep must match.
	Walkers int
	Dim     int
}

// CreateRun registers a new run and returns its handle. An empty id is
// replaced with a fresh random identifier.
func (s *Store) CreateRun(id string, walkers, dim int, seed int64) (*Run, error) {
	if id == "" {
		id = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (id, walkers, dim, seed, state, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		id, walkers, dim, seed, "CREATED", time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		if exists, lookErr := s.hasRun(id); lookErr == nil && exists {
			return nil, fmt.Errorf("%w: %s", ErrRunExists, id)
		}

		return nil, fmt.Errorf("chaindb: create run %s: %w", id, err)
	}

	return &Run{store: s, ID: id, Walkers: walkers, Dim: dim}, nil
}

// OpenRun looks up an existing run, typically to resume it.
func (s *Store) OpenRun(id string) (*Run, error) {
	var walkers, dim int
	err := s.db.QueryRow(`SELECT walkers, dim FROM runs WHERE id = ?`, id).Scan(&walkers, &dim)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("chaindb: open run %s: %w", id, err)
	}

	return &Run{store: s, ID: id, Walkers: walkers, Dim: dim}, nil
}

// Runs lists the identifiers of every run in the store, oldest first.
func (s *Store) Runs() ([]string, error) {
	rows, err := s.db.Query(`SELECT id FROM runs ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("chaindb: list runs: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("chaindb: list runs: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (s *Store) hasRun(id string) (bool, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM runs WHERE id = ?`, id).Scan(&n); err != nil {
		return false, err
	}

	return n > 0, nil
}

// SaveStep records one complete ensemble in a single transaction.
func (r *Run) SaveStep(step int, pos [][]float64, logp []float64) error {
	if len(pos) != r.Walkers || len(logp) != r.Walkers {
		return fmt.Errorf("%w: got %d walkers, run %s declares %d",
			ErrShapeMismatch, len(pos), r.ID, r.Walkers)
	}

	tx, err := r.store.db.Begin()
	if err != nil {
		return fmt.Errorf("chaindb: begin step %d of %s: %w", step, r.ID, err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO steps (run_id, step, walker, theta, logprob) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()

		return fmt.Errorf("chaindb: prepare step %d of %s: %w", step, r.ID, err)
	}
	defer stmt.Close()

	for w, theta := range pos {
		if len(theta) != r.Dim {
			tx.Rollback()

			return fmt.Errorf("%w: walker %d has dim %d, run %s declares %d",
				ErrShapeMismatch, w, len(theta), r.ID, r.Dim)
		}
		if _, err := stmt.Exec(r.ID, step, w, encodeTheta(theta), logp[w]); err != nil {
			tx.Rollback()

			return fmt.Errorf("chaindb: write step %d walker %d of %s: %w", step, w, r.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("chaindb: commit step %d of %s: %w", step, r.ID, err)
	}

	return nil
}

// LastStep returns the most recent recorded step index together with the
// ensemble positions and log-probabilities at that step.
func (r *Run) LastStep() (int, [][]float64, []float64, error) {
	var step sql.NullInt64
	err := r.store.db.QueryRow(
		`SELECT MAX(step) FROM steps WHERE run_id = ?`, r.ID).Scan(&step)
	if err != nil {
		return 0, nil, nil, fmt.Errorf("chaindb: last step of %s: %w", r.ID, err)
	}
	if !step.Valid {
		return 0, nil, nil, fmt.Errorf("%w: %s", ErrNoSteps, r.ID)
	}

	rows, err := r.store.db.Query(
		`SELECT walker, theta, logprob FROM steps WHERE run_id = ? AND step = ? ORDER BY walker`,
		r.ID, step.Int64)
	if err != nil {
		return 0, nil, nil, fmt.Errorf("chaindb: read step %d of %s: %w", step.Int64, r.ID, err)
	}
	defer rows.Close()

	pos := make([][]float64, r.Walkers)
	logp := make([]float64, r.Walkers)
	for rows.Next() {
		var (
			w    int
			blob []byte
			lp   float64
		)
		if err := rows.Scan(&w, &blob, &lp); err != nil {
			return 0, nil, nil, fmt.Errorf("chaindb: read step %d of %s: %w", step.Int64, r.ID, err)
		}
		theta, err := decodeTheta(blob, r.Dim)
		if err != nil {
			return 0, nil, nil, fmt.Errorf("chaindb: step %d walker %d of %s: %w", step.Int64, w, r.ID, err)
		}
		pos[w] = theta
		logp[w] = lp
	}
	if err := rows.Err(); err != nil {
		return 0, nil, nil, fmt.Errorf("chaindb: read step %d of %s: %w", step.Int64, r.ID, err)
	}
	for w, theta := range pos {
		if theta == nil {
			return 0, nil, nil, fmt.Errorf("%w: walker %d missing at step %d of %s",
				ErrShapeMismatch, w, step.Int64, r.ID)
		}
	}

	return int(step.Int64), pos, logp, nil
}

// SetState records the run's lifecycle state string.
func (r *Run) SetState(state string) error {
	if _, err := r.store.db.Exec(
		`UPDATE runs SET state = ? WHERE id = ?`, state, r.ID); err != nil {
		return fmt.Errorf("chaindb: set state of %s: %w", r.ID, err)
	}

	return nil
}

// State reads back the run's lifecycle state string.
func (r *Run) State() (string, error) {
	var state string
	err := r.store.db.QueryRow(`SELECT state FROM runs WHERE id = ?`, r.ID).Scan(&state)
	if err != nil {
		return "", fmt.Errorf("chaindb: state of %s: %w", r.ID, err)
	}

	return state, nil
}

// encodeTheta packs a parameter vector as little-endian float64 bits.
func encodeTheta(theta []float64) []byte {
	buf := make([]byte, 8*len(theta))
	for i, v := range theta {
		binary.LittleEndian.PutUint64(buf[8*i:], math.Float64bits(v))
	}

	return buf
}

func decodeTheta(buf []byte, dim int) ([]float64, error) {
	if len(buf) != 8*dim {
		return nil, fmt.Errorf("%w: blob holds %d bytes, expected %d", ErrShapeMismatch, len(buf), 8*dim)
	}

	theta := make([]float64, dim)
	for i := range theta {
		theta[i] = math.Float64frombits(binary.LittleEndian.Uint64(buf[8*i:]))
	}

	return theta, nil
}
