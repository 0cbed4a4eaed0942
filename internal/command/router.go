package command

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/rpggio/wordbook/internal/domain/activity"
	"github.com/rpggio/wordbook/internal/domain/dictionary"
	"github.com/rpggio/wordbook/internal/domain/session"
)

// DictionaryStore defines the persistence operations needed by the router.
type DictionaryStore interface {
	Save(ctx context.Context, path string, dict *dictionary.Dictionary) error
	Load(ctx context.Context, path string) (*dictionary.Dictionary, error)
}

// Journal defines the activity operations needed by the router.
type Journal interface {
	LogActivity(ctx context.Context, entry *activity.ActivityEntry) error
	GetRecentActivity(ctx context.Context, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error)
}

type handlerFunc func(ctx context.Context, sess *session.Session, arg string) (string, error)

// Router parses command lines and dispatches them against a session.
// It is not safe for concurrent use.
type Router struct {
	store    DictionaryStore
	journal  Journal
	logger   *slog.Logger
	now      func() time.Time
	handlers map[string]handlerFunc
}

// NewRouter creates a router. journal may be nil, in which case nothing
// is recorded and history is unavailable.
func NewRouter(store DictionaryStore, journal Journal, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	r := &Router{
		store:   store,
		journal: journal,
		logger:  logger,
		now:     time.Now,
	}
	r.handlers = map[string]handlerFunc{
		"create":       r.create,
		"open":         r.open,
		"save":         r.save,
		"close":        r.close,
		"weakdefine":   r.weakDefine,
		"strongdefine": r.strongDefine,
		"find":         r.find,
		"remove":       r.remove,
		"changedate":   r.changeDate,
		"search":       r.search,
		"print":        r.print,
		"printto":      r.printTo,
		"printstats":   r.printStats,
		"statsdump":    r.statsDump,
		"enabledates":  r.enableDates,
		"disabledates": r.disableDates,
		"history":      r.history,
		"help":         r.help,
	}
	return r
}

// SetClock replaces the time source used for entry dates and snapshots.
func (r *Router) SetClock(now func() time.Time) {
	r.now = now
}

// Receive runs one command line and returns its result. Failures are
// returned as strings starting with "ERROR: ".
func (r *Router) Receive(ctx context.Context, sess *session.Session, line string) (result string) {
	keyword, arg := splitCommand(line)

	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("command panicked", "command", keyword, "panic", fmt.Sprint(rec))
			result = "ERROR: Internal error!"
		}
	}()

	r.logger.Debug("command received", "command", keyword, "session_id", sess.ID)

	handler, ok := r.handlers[keyword]
	if !ok {
		return MapError(ErrInvalidCommand)
	}

	out, err := handler(ctx, sess, arg)
	if err != nil {
		r.logger.Debug("command failed", "command", keyword, "error", err)
		return MapError(err)
	}
	return out
}

// splitCommand splits at the first space. The keyword is lowercased.
func splitCommand(line string) (string, string) {
	keyword, arg, _ := strings.Cut(line, " ")
	return strings.ToLower(keyword), arg
}

// record writes a journal entry. Failures are logged and otherwise ignored.
func (r *Router) record(ctx context.Context, sess *session.Session, dictName string, word *string, typ activity.ActivityType, summary, details string) {
	if r.journal == nil {
		return
	}
	entry := &activity.ActivityEntry{
		SessionID:    sess.ID,
		Dictionary:   dictName,
		Word:         word,
		ActivityType: typ,
		Summary:      summary,
		Details:      details,
		CreatedAt:    r.now(),
	}
	if err := r.journal.LogActivity(ctx, entry); err != nil {
		r.logger.Warn("failed to record activity", "type", typ, "error", err)
	}
}
