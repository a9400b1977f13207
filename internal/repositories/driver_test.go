package repositories

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"sync"
	"testing"
)

// A minimal database/sql driver that records every statement with its
// arguments and serves queued result sets, so repository SQL can be checked
// without a running database.

type fakeCall struct {
	query string
	args  []driver.Value
}

type fakeResult struct {
	cols []string
	rows [][]driver.Value
}

var (
	fakeMu      sync.Mutex
	fakeCalls   []fakeCall
	fakeResults []fakeResult
)

func init() {
	sql.Register("fakedb", fakeDriver{})
}

func openFakeDB(t *testing.T) *sql.DB {
	t.Helper()
	fakeMu.Lock()
	fakeCalls = nil
	fakeResults = nil
	fakeMu.Unlock()

	db, err := sql.Open("fakedb", "")
	if err != nil {
		t.Fatalf("open fake db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func queueFakeRows(cols []string, rows ...[]driver.Value) {
	fakeMu.Lock()
	defer fakeMu.Unlock()
	fakeResults = append(fakeResults, fakeResult{cols: cols, rows: rows})
}

func recordedCalls() []fakeCall {
	fakeMu.Lock()
	defer fakeMu.Unlock()
	out := make([]fakeCall, len(fakeCalls))
	copy(out, fakeCalls)
	return out
}

type fakeDriver struct{}

func (fakeDriver) Open(string) (driver.Conn, error) { return fakeConn{}, nil }

type fakeConn struct{}

func (fakeConn) Prepare(query string) (driver.Stmt, error) { return &fakeStmt{query: query}, nil }
func (fakeConn) Close() error                              { return nil }
func (fakeConn) Begin() (driver.Tx, error)                 { return nil, errors.New("transactions not supported") }

type fakeStmt struct {
	query string
}

func (s *fakeStmt) Close() error  { return nil }
func (s *fakeStmt) NumInput() int { return -1 }

func (s *fakeStmt) Exec(args []driver.Value) (driver.Result, error) {
	fakeMu.Lock()
	defer fakeMu.Unlock()
	fakeCalls = append(fakeCalls, fakeCall{query: s.query, args: args})
	return driver.RowsAffected(1), nil
}

func (s *fakeStmt) Query(args []driver.Value) (driver.Rows, error) {
	fakeMu.Lock()
	defer fakeMu.Unlock()
	fakeCalls = append(fakeCalls, fakeCall{query: s.query, args: args})
	var res fakeResult
	if len(fakeResults) > 0 {
		res = fakeResults[0]
		fakeResults = fakeResults[1:]
	}
	return &fakeRows{cols: res.cols, rows: res.rows}, nil
}

type fakeRows struct {
	cols []string
	rows [][]driver.Value
	next int
}

func (r *fakeRows) Columns() []string { return r.cols }
func (r *fakeRows) Close() error      { return nil }

func (r *fakeRows) Next(dest []driver.Value) error {
	if r.next >= len(r.rows) {
		return io.EOF
	}
	copy(dest, r.rows[r.next])
	r.next++
	return nil
}
