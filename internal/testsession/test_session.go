package testsession

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rpggio/wordbook/internal/command"
	"github.com/rpggio/wordbook/internal/domain/activity"
	"github.com/rpggio/wordbook/internal/domain/session"
	"github.com/rpggio/wordbook/internal/sqlite"
	"github.com/rpggio/wordbook/internal/sqlite/migrations"
	"github.com/stretchr/testify/require"
)

// Start is the first instant reported by a TestSession clock.
var Start = time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)

// TestSession drives a router backed by a temp directory and an in-memory
// journal. Its clock starts at Start and moves one minute per command.
type TestSession struct {
	t       *testing.T
	Router  *command.Router
	Session *session.Session
	Journal *activity.Service
	DB      *sqlite.DB
	Dir     string

	now time.Time
}

func New(t *testing.T) *TestSession {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(migrations.Journal()))

	journal := activity.NewService(sqlite.NewActivityRepository(db), nil)
	router := command.NewRouter(sqlite.NewDictionaryStore(), journal, nil)

	ts := &TestSession{
		t:       t,
		Router:  router,
		Session: session.New(uuid.NewString(), false),
		Journal: journal,
		DB:      db,
		Dir:     t.TempDir(),
		now:     Start,
	}
	router.SetClock(ts.Now)

	t.Cleanup(func() {
		_ = db.Close()
	})

	return ts
}

// Now returns the current fake time.
func (ts *TestSession) Now() time.Time {
	return ts.now
}

// Advance moves the fake clock forward.
func (ts *TestSession) Advance(d time.Duration) {
	ts.now = ts.now.Add(d)
}

// Send runs one command line and advances the clock by a minute.
func (ts *TestSession) Send(line string) string {
	ts.t.Helper()
	out := ts.Router.Receive(context.Background(), ts.Session, line)
	ts.Advance(time.Minute)
	return out
}

// Path returns name joined onto the session's temp directory.
func (ts *TestSession) Path(name string) string {
	return filepath.Join(ts.Dir, name)
}

// History returns every journal entry, newest first.
func (ts *TestSession) History() []activity.ActivityEntry {
	ts.t.Helper()
	entries, err := ts.Journal.GetRecentActivity(context.Background(), activity.ListActivityOptions{})
	require.NoError(ts.t, err)
	return entries
}
