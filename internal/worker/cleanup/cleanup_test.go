package cleanup

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

type fakeResult struct {
	rowsAffected int64
	err          error
}

func (r *fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r *fakeResult) RowsAffected() (int64, error) { return r.rowsAffected, r.err }

// mockExecutor はExecutorインターフェースのモック実装。
// PostgreSQLを使わず、SQLクエリの内容と引数を検証する。
type mockExecutor struct {
	execCalled bool
	query      string
	args       []interface{}
	result     sql.Result
	err        error
}

func (m *mockExecutor) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	m.execCalled = true
	m.query = query
	m.args = args
	return m.result, m.err
}

func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

func TestNewSessionCleanupJob_NegativeRetentionClampedToZero(t *testing.T) {
	var buf bytes.Buffer
	job := NewSessionCleanupJob(&mockExecutor{}, newTestLogger(&buf), -5)

	if job.RetentionDays != 0 {
		t.Errorf("RetentionDays = %d, want 0", job.RetentionDays)
	}
}

func TestSessionCleanupJob_Run_ExecutesDeleteQuery(t *testing.T) {
	var buf bytes.Buffer
	mock := &mockExecutor{result: &fakeResult{rowsAffected: 4}}
	job := NewSessionCleanupJob(mock, newTestLogger(&buf), 7)

	deleted, err := job.Run(context.Background())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if deleted != 4 {
		t.Errorf("deleted = %d, want 4", deleted)
	}
	if !mock.execCalled {
		t.Fatal("ExecContext が呼ばれていません")
	}
	if !strings.Contains(mock.query, "DELETE FROM sessions") {
		t.Errorf("query = %q, want DELETE FROM sessions", mock.query)
	}
	if !strings.Contains(mock.query, "expires_at") {
		t.Errorf("query = %q, want expires_at condition", mock.query)
	}
	if len(mock.args) != 1 || mock.args[0] != "7 days" {
		t.Errorf("args = %v, want [7 days]", mock.args)
	}
}

func TestSessionCleanupJob_Run_LogsResult(t *testing.T) {
	var buf bytes.Buffer
	mock := &mockExecutor{result: &fakeResult{rowsAffected: 2}}
	job := NewSessionCleanupJob(mock, newTestLogger(&buf), 0)

	if _, err := job.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("ログのJSONパースに失敗: %v\nraw: %s", err, buf.String())
	}
	if entry["msg"] != "session cleanup completed" {
		t.Errorf("msg = %v, want %q", entry["msg"], "session cleanup completed")
	}
	if entry["deleted_count"] != float64(2) {
		t.Errorf("deleted_count = %v, want 2", entry["deleted_count"])
	}
	if entry["retention_days"] != float64(0) {
		t.Errorf("retention_days = %v, want 0", entry["retention_days"])
	}
}

func TestSessionCleanupJob_Run_NoRowsIsNotError(t *testing.T) {
	var buf bytes.Buffer
	job := NewSessionCleanupJob(&mockExecutor{result: &fakeResult{}}, newTestLogger(&buf), 0)

	deleted, err := job.Run(context.Background())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if deleted != 0 {
		t.Errorf("deleted = %d, want 0", deleted)
	}
}

func TestSessionCleanupJob_Run_ExecError(t *testing.T) {
	var buf bytes.Buffer
	dbErr := errors.New("connection refused")
	job := NewSessionCleanupJob(&mockExecutor{err: dbErr}, newTestLogger(&buf), 0)

	_, err := job.Run(context.Background())
	if !errors.Is(err, dbErr) {
		t.Fatalf("err = %v, want wrapped %v", err, dbErr)
	}
	if !strings.Contains(buf.String(), `"level":"ERROR"`) {
		t.Errorf("ERRORログが出力されていません: %s", buf.String())
	}
}

func TestSessionCleanupJob_Run_RowsAffectedError(t *testing.T) {
	var buf bytes.Buffer
	job := NewSessionCleanupJob(&mockExecutor{
		result: &fakeResult{err: errors.New("driver does not support")},
	}, newTestLogger(&buf), 0)

	if _, err := job.Run(context.Background()); err == nil {
		t.Fatal("expected error, got nil")
	}
}
