// Copyright (c) 2014-2026 The ShinyCoin developers
// Distributed under the MIT/X11 software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package txinfo

import "go.uber.org/zap"

// View is a scoped transaction guard, the redesigned replacement for the
// original's CTxInfoView: it acquires a transaction on construction and,
// unless explicitly committed, rolls back when the caller is done with it.
// Unlike the original's destructor-driven rollback, Go has no destructors,
// so callers that want the "always finishes" guarantee must defer
// view.release() (or just Commit/Rollback directly and ignore release).
type View struct {
	store    *Store
	finished bool
}

// NewView opens a transaction on store and returns a guard for it. It
// fails exactly when store.BeginTransaction does: most notably, if store
// already has a transaction open.
func NewView(store *Store) (*View, error) {
	if err := store.BeginTransaction(); err != nil {
		return nil, err
	}
	return &View{store: store}, nil
}

// Commit finalizes the view's transaction. Calling Commit or Rollback a
// second time on the same View is an invariant violation, mirroring the
// original's "Can't Commit(), this view already over".
func (v *View) Commit() error {
	if v.finished {
		return invariantErrorf(nil, "view already finished")
	}
	v.finished = true
	return v.store.Commit()
}

// Rollback discards the view's transaction. See Commit for the
// already-finished invariant.
func (v *View) Rollback() error {
	if v.finished {
		return invariantErrorf(nil, "view already finished")
	}
	v.finished = true
	return v.store.Rollback()
}

// release rolls back the view if it was never explicitly finished. It is
// meant to be deferred right after NewView succeeds; any rollback error at
// this point is logged rather than propagated, since the caller has
// already moved on to its own error path.
func (v *View) release() {
	if v.finished {
		return
	}
	v.finished = true
	if err := v.store.Rollback(); err != nil {
		v.store.logger.Warn("txinfo: auto-rollback failed", zap.Error(err))
	}
}
