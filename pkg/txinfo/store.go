// Copyright (c) 2014-2026 The ShinyCoin developers
// Distributed under the MIT/X11 software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package txinfo

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/cenkalti/backoff/v4"
	"github.com/gofrs/flock"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS TxDbEntry (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	is_latest INTEGER,
	address   TEXT,
	key_type  INTEGER,
	key       TEXT,
	value     TEXT
);
CREATE INDEX IF NOT EXISTS address_index ON TxDbEntry (address);
CREATE INDEX IF NOT EXISTS key_index     ON TxDbEntry (key_type, key);
CREATE INDEX IF NOT EXISTS value_index   ON TxDbEntry (value);
`

// execer is satisfied by both *sql.DB and *sql.Tx, letting Store route a
// query to whichever is live: the open transaction if one exists (so a
// caller observes its own uncommitted writes), the bare handle otherwise.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store is the Go counterpart of CTxInfoStore: a transactional,
// address-keyed metadata store backed by SQLite. A Store owns its
// database connection and an exclusive file lock for its entire lifetime,
// and holds at most one open transaction at a time (spec §5).
type Store struct {
	db     *sql.DB
	tx     *sql.Tx
	lock   *flock.Flock
	lockOK bool

	byteEstimate uint

	logger *zap.Logger
}

// Option configures Store construction.
type Option func(*Store)

// WithLogger attaches a logger; Process/Undo/Reset log at debug level and
// validation rejections log at info level. The default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// Open creates (if absent) and opens the SQLite database at path, taking
// an exclusive, non-blocking lock on "<path>.lock" first so two Store
// instances can never share one database file — spec §5's "single-threaded
// ownership" made to fail fast instead of relying solely on SQLite's own
// file locking, which only engages once a transaction starts.
func Open(path string, opts ...Option) (*Store, error) {
	s := &Store{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, errors.Wrap(err, "txinfo: acquire store lock")
	}
	if !locked {
		return nil, errors.Errorf("txinfo: %s is already open by another store", path)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		_ = lock.Unlock()
		return nil, errors.Wrap(err, "txinfo: open database")
	}
	db.SetMaxOpenConns(1) // one logical connection: matches the single-tx-at-a-time contract

	s.db = db
	s.lock = lock
	s.lockOK = true

	if err := s.initialize(); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}

	return s, nil
}

func (s *Store) initialize() error {
	if _, err := s.db.Exec(schema); err != nil {
		return errors.Wrap(err, "txinfo: initialize schema")
	}
	return nil
}

// Reset drops and recreates TxDbEntry, discarding all history.
func (s *Store) Reset() error {
	if s.InTransaction() {
		return invariantErrorf(nil, "Reset called with a transaction open")
	}
	if _, err := s.db.Exec("DROP TABLE TxDbEntry"); err != nil {
		return errors.Wrap(err, "txinfo: drop table")
	}
	s.logger.Debug("txinfo: store reset")
	return s.initialize()
}

// Close rolls back any open transaction, closes the database handle, and
// releases the store's file lock.
func (s *Store) Close() error {
	if s.InTransaction() {
		_ = s.Rollback()
	}
	var err error
	if s.db != nil {
		err = s.db.Close()
	}
	if s.lockOK {
		_ = s.lock.Unlock()
		s.lockOK = false
	}
	return err
}

// InTransaction reports whether the store currently holds an open
// transaction.
func (s *Store) InTransaction() bool { return s.tx != nil }

// BeginTransaction opens a new transaction. It is an invariant violation
// to call it while one is already open (spec §5, "non-reentrant").
func (s *Store) BeginTransaction() error {
	if s.InTransaction() {
		return invariantErrorf(nil, "store already has an open transaction")
	}

	var tx *sql.Tx
	operation := func() error {
		var err error
		tx, err = s.db.BeginTx(context.Background(), nil)
		return err
	}

	bo := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 5)
	if err := backoff.Retry(operation, bo); err != nil {
		return invariantErrorf(err, "could not begin transaction")
	}

	s.tx = tx
	s.byteEstimate = 0
	return nil
}

// Commit finalizes and closes the open transaction. It is an invariant
// violation to call it with none open.
func (s *Store) Commit() error {
	if !s.InTransaction() {
		return invariantErrorf(nil, "Commit called without a transaction")
	}
	err := s.tx.Commit()
	s.tx = nil
	s.byteEstimate = 0
	if err != nil {
		return errors.Wrap(err, "txinfo: commit")
	}
	return nil
}

// Rollback discards and closes the open transaction. It is an invariant
// violation to call it with none open.
func (s *Store) Rollback() error {
	if !s.InTransaction() {
		return invariantErrorf(nil, "Rollback called without a transaction")
	}
	err := s.tx.Rollback()
	s.tx = nil
	s.byteEstimate = 0
	if err != nil {
		return errors.Wrap(err, "txinfo: rollback")
	}
	return nil
}

// GetCommitByteEstimate returns the running byte-estimate counter for the
// current transaction, or 0 if none is open.
func (s *Store) GetCommitByteEstimate() uint {
	if !s.InTransaction() {
		return 0
	}
	return s.byteEstimate
}

func (s *Store) conn() execer {
	if s.tx != nil {
		return s.tx
	}
	return s.db
}

// IsValid reports whether Process(addr, info) would currently succeed,
// writing the rejection reason otherwise.
func (s *Store) IsValid(addr Address, info Info) (bool, string, error) {
	var reason string
	if !info.IsValid(&reason) {
		return false, reason, nil
	}

	if info.Key.Type == Unique || info.Key.Type == ID {
		_, found, err := s.UniqueAddressWithValue(info.Key, info.Value)
		if err != nil {
			return false, "", err
		}
		if found {
			return false, "Unique value is already set", nil
		}
	}

	if info.Key.Type == WriteOnce || info.Key.Type == Unique || info.Key.Type == ID {
		var count int
		row := s.conn().QueryRowContext(context.Background(),
			`SELECT COUNT(*) FROM TxDbEntry WHERE address=? AND key_type=? AND key=?`,
			string(addr), int(info.Key.Type), info.Key.KeyString)
		if err := row.Scan(&count); err != nil {
			return false, "", errors.Wrap(err, "txinfo: check write-once")
		}
		if count > 0 {
			return false, "A non-overwritable value has already been set", nil
		}
	}

	return true, "", nil
}

// process runs IsValid then the demote+insert pair, assuming a
// transaction is already open (either the caller's or a local one).
func (s *Store) process(addr Address, info Info) (bool, string, error) {
	ok, reason, err := s.IsValid(addr, info)
	if err != nil {
		return false, "", err
	}
	if !ok {
		s.logger.Info("txinfo: process rejected", zap.String("address", string(addr)), zap.String("key", info.Key.String()), zap.String("reason", reason))
		return false, reason, nil
	}

	ctx := context.Background()
	if _, err := s.conn().ExecContext(ctx,
		`UPDATE TxDbEntry SET is_latest=0 WHERE address=? AND key_type=? AND key=?`,
		string(addr), int(info.Key.Type), info.Key.KeyString); err != nil {
		return false, "", errors.Wrap(err, "txinfo: demote previous entry")
	}

	if _, err := s.conn().ExecContext(ctx,
		`INSERT INTO TxDbEntry (is_latest, address, key_type, key, value) VALUES (1, ?, ?, ?, ?)`,
		string(addr), int(info.Key.Type), info.Key.KeyString, info.Value); err != nil {
		return false, "", errors.Wrap(err, "txinfo: insert entry")
	}

	s.byteEstimate += 4 + 1 + uint(len(addr)) + 1 + uint(len(info.Key.KeyString)) + uint(len(info.Value))
	s.logger.Debug("txinfo: processed entry", zap.String("address", string(addr)), zap.String("key", info.Key.String()))

	return true, "", nil
}

// Process validates and inserts info for addr, superseding any previous
// latest entry for (addr, info.Key.Type, info.Key.KeyString) per the
// type's overwrite semantics. If the store is not already inside a
// transaction, Process wraps itself in a local auto-commit transaction
// and leaves the store exactly as it found it on failure.
func (s *Store) Process(addr Address, info Info) (bool, string, error) {
	if s.InTransaction() {
		return s.process(addr, info)
	}

	view, err := NewView(s)
	if err != nil {
		return false, "", err
	}
	defer view.release()

	ok, reason, err := s.process(addr, info)
	if err != nil {
		return false, "", err
	}
	if !ok {
		return false, reason, nil
	}
	if err := view.Commit(); err != nil {
		return false, "", err
	}
	return true, "", nil
}

// undo performs the delete+repromote pair, assuming a transaction is
// already open.
func (s *Store) undo(addr Address, info Info) (bool, string, error) {
	ctx := context.Background()

	res, err := s.conn().ExecContext(ctx,
		`DELETE FROM TxDbEntry WHERE is_latest=1 AND address=? AND key_type=? AND key=? AND value=?`,
		string(addr), int(info.Key.Type), info.Key.KeyString, info.Value)
	if err != nil {
		return false, "", errors.Wrap(err, "txinfo: delete entry")
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, "", errors.Wrap(err, "txinfo: rows affected")
	}
	if rows == 0 {
		s.logger.Info("txinfo: undo rejected", zap.String("address", string(addr)), zap.String("key", info.Key.String()), zap.String("reason", "Nothing to undo"))
		return false, "Nothing to undo", nil
	}

	if _, err := s.conn().ExecContext(ctx,
		`UPDATE TxDbEntry SET is_latest=1 WHERE id=(SELECT MAX(id) FROM TxDbEntry WHERE address=? AND key_type=? AND key=?)`,
		string(addr), int(info.Key.Type), info.Key.KeyString); err != nil {
		return false, "", errors.Wrap(err, "txinfo: repromote entry")
	}

	s.logger.Debug("txinfo: undid entry", zap.String("address", string(addr)), zap.String("key", info.Key.String()))
	return true, "", nil
}

// Undo removes the most recently inserted latest entry matching
// (addr, info.Key, info.Value) exactly, and re-promotes whatever entry
// now has the highest id for (addr, info.Key.Type, info.Key.KeyString), if
// any remain. Same transaction-wrap policy as Process.
func (s *Store) Undo(addr Address, info Info) (bool, string, error) {
	if s.InTransaction() {
		return s.undo(addr, info)
	}

	view, err := NewView(s)
	if err != nil {
		return false, "", err
	}
	defer view.release()

	ok, reason, err := s.undo(addr, info)
	if err != nil {
		return false, "", err
	}
	if !ok {
		return false, reason, nil
	}
	if err := view.Commit(); err != nil {
		return false, "", err
	}
	return true, "", nil
}

// Get returns the value of the latest entry for (addr, key.Type,
// key.KeyString), or ok=false if there is none.
func (s *Store) Get(addr Address, key Key) (value string, ok bool, err error) {
	row := s.conn().QueryRowContext(context.Background(),
		`SELECT value FROM TxDbEntry WHERE id=(SELECT MAX(id) FROM TxDbEntry WHERE address=? AND key_type=? AND key=?)`,
		string(addr), int(key.Type), key.KeyString)

	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, errors.Wrap(err, "txinfo: get")
	}
	return value, true, nil
}

// AddressesWithValue returns every address holding a latest entry
// matching (key.Type, key.KeyString, value).
func (s *Store) AddressesWithValue(key Key, value string) ([]Address, error) {
	rows, err := s.conn().QueryContext(context.Background(),
		`SELECT address FROM TxDbEntry WHERE key_type=? AND key=? AND value=? AND is_latest=1`,
		int(key.Type), key.KeyString, value)
	if err != nil {
		return nil, errors.Wrap(err, "txinfo: addresses with value")
	}
	defer rows.Close()

	var result []Address
	for rows.Next() {
		var addr string
		if err := rows.Scan(&addr); err != nil {
			return nil, errors.Wrap(err, "txinfo: scan address")
		}
		result = append(result, Address(addr))
	}
	return result, rows.Err()
}

// UniqueAddressWithValue returns the sole address holding (key, value) as
// its latest entry, if any. key.Type must be Unique or ID; calling it with
// any other type is a programming error. Finding more than one matching
// address is a corruption invariant violation, not a validation failure.
func (s *Store) UniqueAddressWithValue(key Key, value string) (addr Address, found bool, err error) {
	if key.Type != Unique && key.Type != ID {
		return "", false, invariantErrorf(nil, "only Unique/ID keys can have a unique address for a value")
	}

	addrs, err := s.AddressesWithValue(key, value)
	if err != nil {
		return "", false, err
	}
	if len(addrs) == 0 {
		return "", false, nil
	}
	if len(addrs) > 1 {
		return "", false, invariantErrorf(nil, "Unique key has multiple addresses for one value!")
	}
	return addrs[0], true, nil
}

// DumpLatestInfos returns every latest entry, sorted by address, rendered
// as "<address>: <key>: <value>" — a diagnostic mirror of the original's
// printf-based dump. It also logs each line at info level.
func (s *Store) DumpLatestInfos() ([]string, error) {
	rows, err := s.conn().QueryContext(context.Background(),
		`SELECT address, key_type, key, value FROM TxDbEntry WHERE is_latest=1 ORDER BY address`)
	if err != nil {
		return nil, errors.Wrap(err, "txinfo: dump latest infos")
	}
	defer rows.Close()

	type entry struct {
		addr string
		info Info
	}
	var entries []entry
	for rows.Next() {
		var addr, key, value string
		var keyType int
		if err := rows.Scan(&addr, &keyType, &key, &value); err != nil {
			return nil, errors.Wrap(err, "txinfo: scan entry")
		}
		entries = append(entries, entry{addr: addr, info: Info{Key: Key{Type: KeyType(keyType), KeyString: key}, Value: value}})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].addr < entries[j].addr })

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		line := fmt.Sprintf("%s: %s", e.addr, e.info.String())
		lines = append(lines, line)
		s.logger.Info(line)
	}
	return lines, nil
}
