package command

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rpggio/wordbook/internal/domain/activity"
	"github.com/rpggio/wordbook/internal/domain/dictionary"
	"github.com/rpggio/wordbook/internal/domain/session"
	"github.com/rpggio/wordbook/internal/stats"
)

func (r *Router) create(ctx context.Context, sess *session.Session, arg string) (string, error) {
	dict, err := dictionary.New(arg)
	if err != nil {
		return "", ErrMalformedName
	}
	sess.Dictionary = dict
	msg := fmt.Sprintf("Created a new dictionary named \"%s\"", dict.Name())
	r.record(ctx, sess, dict.Name(), nil, activity.TypeDictionaryCreated, msg, "")
	return msg, nil
}

func (r *Router) open(ctx context.Context, sess *session.Session, arg string) (string, error) {
	path := strings.TrimSpace(arg)
	if path == "" {
		return "", ErrNoPath
	}
	dict, err := r.store.Load(ctx, path)
	if err != nil {
		r.logger.Error("failed to open dictionary", "path", path, "error", err)
		return "", &FileError{Op: "opening dictionary", Path: path, Err: err}
	}
	sess.Dictionary = dict
	sess.Path = path
	msg := fmt.Sprintf("Opened \"%s\"", dict.Name())
	r.record(ctx, sess, dict.Name(), nil, activity.TypeDictionaryOpened, msg, path)
	return msg, nil
}

func (r *Router) save(ctx context.Context, sess *session.Session, arg string) (string, error) {
	if sess.Dictionary == nil {
		return "", ErrNoOpenDictionary
	}
	path := strings.TrimSpace(arg)
	if path == "" {
		path = sess.Path
	}
	if path == "" {
		return "", ErrNoPath
	}
	if err := r.store.Save(ctx, path, sess.Dictionary); err != nil {
		r.logger.Error("failed to save dictionary", "path", path, "error", err)
		return "", &FileError{Op: "saving dictionary", Path: path, Err: err}
	}
	sess.Path = path
	msg := fmt.Sprintf("Saved \"%s\" to \"%s\"", sess.Dictionary.Name(), path)
	r.record(ctx, sess, sess.Dictionary.Name(), nil, activity.TypeDictionarySaved, msg, path)
	return msg, nil
}

func (r *Router) close(ctx context.Context, sess *session.Session, _ string) (string, error) {
	if sess.Dictionary == nil {
		return "No dictionary is open", nil
	}
	name := sess.Dictionary.Name()
	sess.Dictionary = nil
	msg := fmt.Sprintf("Closed \"%s\"", name)
	r.record(ctx, sess, name, nil, activity.TypeDictionaryClosed, msg, "")
	return msg, nil
}

func (r *Router) weakDefine(ctx context.Context, sess *session.Session, arg string) (string, error) {
	if sess.Dictionary == nil {
		return "", ErrNoOpenDictionary
	}
	def, err := parseDefine(arg, sess.DatesEnabled, r.now())
	if err != nil {
		return "", err
	}
	if !sess.Dictionary.WeakDefine(def.word, dictionary.NewDefinition(def.text, def.date)) {
		return fmt.Sprintf("A definition already exists for \"%s\"", def.word), nil
	}
	msg := fmt.Sprintf("Added a definition for \"%s\"", def.word)
	r.record(ctx, sess, sess.Dictionary.Name(), &def.word, activity.TypeDefinitionAdded, msg, def.text)
	return msg, nil
}

func (r *Router) strongDefine(ctx context.Context, sess *session.Session, arg string) (string, error) {
	if sess.Dictionary == nil {
		return "", ErrNoOpenDictionary
	}
	def, err := parseDefine(arg, sess.DatesEnabled, r.now())
	if err != nil {
		return "", err
	}
	existed := sess.Dictionary.StrongDefine(def.word, dictionary.NewDefinition(def.text, def.date))

	msg := fmt.Sprintf("Added a definition for \"%s\"", def.word)
	typ := activity.TypeDefinitionAdded
	if existed {
		msg = fmt.Sprintf("Updated the definition of \"%s\"", def.word)
		typ = activity.TypeDefinitionUpdated
	}
	r.record(ctx, sess, sess.Dictionary.Name(), &def.word, typ, msg, def.text)
	return msg, nil
}

func (r *Router) find(_ context.Context, sess *session.Session, arg string) (string, error) {
	if sess.Dictionary == nil {
		return "", ErrNoOpenDictionary
	}
	word := parseWord(arg)
	def, ok := sess.Dictionary.Lookup(word)
	if !ok {
		return "", &NotFoundError{Word: word}
	}
	return fmt.Sprintf("%s:\t%s\nEntered on %s", word, def.Read(), def.EntryDate().Format(stats.DateOutputLayout)), nil
}

func (r *Router) remove(ctx context.Context, sess *session.Session, arg string) (string, error) {
	if sess.Dictionary == nil {
		return "", ErrNoOpenDictionary
	}
	word := parseWord(arg)
	if !sess.Dictionary.Remove(word) {
		return fmt.Sprintf("No definition exists for \"%s\"", word), nil
	}
	msg := fmt.Sprintf("Removed \"%s\"", word)
	r.record(ctx, sess, sess.Dictionary.Name(), &word, activity.TypeDefinitionRemoved, msg, "")
	return msg, nil
}

func (r *Router) changeDate(ctx context.Context, sess *session.Session, arg string) (string, error) {
	if sess.Dictionary == nil {
		return "", ErrNoOpenDictionary
	}
	dateArg, wordArg, _ := strings.Cut(strings.TrimSpace(arg), " ")
	date, err := parseDate(dateArg)
	if err != nil {
		return "", err
	}
	word := parseWord(wordArg)
	if word == "" {
		return "", ErrMalformedArgument
	}

	old, err := sess.Dictionary.ChangeEntryDate(word, date)
	if errors.Is(err, dictionary.ErrNotFound) {
		return "", &NotFoundError{Word: word}
	}
	if err != nil {
		return "", err
	}

	msg := fmt.Sprintf("Changed the entry date of \"%s\" from %s to %s",
		word, old.Format(stats.DateOutputLayout), date.Format(stats.DateOutputLayout))
	r.record(ctx, sess, sess.Dictionary.Name(), &word, activity.TypeEntryDateChanged, msg, "")
	return msg, nil
}

func (r *Router) search(_ context.Context, sess *session.Session, arg string) (string, error) {
	if sess.Dictionary == nil {
		return "", ErrNoOpenDictionary
	}
	if arg == "" {
		return "", ErrMalformedArgument
	}
	results, err := sess.Dictionary.SearchAll(arg)
	if err != nil {
		return "", err
	}
	relevant := dictionary.Relevant(results)
	if len(relevant) == 0 {
		return "No results", nil
	}

	lines := make([]string, 0, len(relevant))
	for _, res := range relevant {
		lines = append(lines, fmt.Sprintf("[%d] %s", res.Score, res.Line))
	}
	return strings.Join(lines, "\n"), nil
}

func (r *Router) print(ctx context.Context, sess *session.Session, arg string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(arg)) {
	case "new":
		if sess.Dictionary == nil {
			return "", ErrNoOpenDictionary
		}
		printout := sess.Dictionary.Render()
		sess.Printout = &printout
		return printout, nil
	case "current":
		if sess.Printout != nil {
			return *sess.Printout, nil
		}
		return r.print(ctx, sess, "new")
	default:
		return "", ErrInvalidVersion
	}
}

func (r *Router) printTo(_ context.Context, sess *session.Session, arg string) (string, error) {
	if sess.Dictionary == nil {
		return "", ErrNoOpenDictionary
	}
	path := strings.TrimSpace(arg)
	if path == "" {
		return "", ErrNoPath
	}
	printout := sess.Dictionary.Render()
	if err := os.WriteFile(path, []byte(printout), 0o644); err != nil {
		r.logger.Error("failed to write printout", "path", path, "error", err)
		return "", &FileError{Op: "printing dictionary", Path: path, Err: err}
	}
	sess.Printout = &printout
	return fmt.Sprintf("Printed \"%s\" to \"%s\"", sess.Dictionary.Name(), path), nil
}

func (r *Router) printStats(ctx context.Context, sess *session.Session, arg string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(arg)) {
	case "new":
		if sess.Dictionary == nil {
			return "", ErrNoOpenDictionary
		}
		snapshot, err := stats.New(sess.Dictionary, r.now())
		if err != nil {
			return "", err
		}
		sess.Statistics = snapshot
		return snapshot.Summary(), nil
	case "current":
		if sess.Statistics != nil {
			return sess.Statistics.Summary(), nil
		}
		return r.printStats(ctx, sess, "new")
	default:
		return "", ErrInvalidVersion
	}
}

func (r *Router) statsDump(ctx context.Context, sess *session.Session, arg string) (string, error) {
	if sess.Dictionary == nil {
		return "", ErrNoOpenDictionary
	}
	dir := strings.TrimSpace(arg)
	if dir == "" {
		return "", ErrNoPath
	}
	snapshot, err := stats.New(sess.Dictionary, r.now())
	if err != nil {
		return "", err
	}
	if err := stats.Dump(dir, snapshot); err != nil {
		r.logger.Error("failed to dump statistics", "dir", dir, "error", err)
		return "", &FileError{Op: "dumping statistics", Path: dir, Err: err}
	}
	sess.Statistics = snapshot
	msg := fmt.Sprintf("Dumped statistics for \"%s\" to \"%s\"", snapshot.Name, dir)
	r.record(ctx, sess, snapshot.Name, nil, activity.TypeStatisticsDumped, msg, dir)
	return msg, nil
}

func (r *Router) enableDates(_ context.Context, sess *session.Session, _ string) (string, error) {
	sess.DatesEnabled = true
	return "Date arguments enabled", nil
}

func (r *Router) disableDates(_ context.Context, sess *session.Session, _ string) (string, error) {
	sess.DatesEnabled = false
	return "Date arguments disabled", nil
}

func (r *Router) history(ctx context.Context, sess *session.Session, arg string) (string, error) {
	if r.journal == nil {
		return "", ErrNoJournal
	}
	word, limit, err := parseHistory(arg)
	if err != nil {
		return "", err
	}

	opts := activity.ListActivityOptions{Limit: limit}
	if word != "" {
		opts.Word = &word
		opts.Dictionary = sess.DictionaryName()
	}
	entries, err := r.journal.GetRecentActivity(ctx, opts)
	if err != nil {
		r.logger.Warn("failed to read history", "error", err)
		return "", err
	}
	if len(entries) == 0 {
		return "No history", nil
	}

	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, fmt.Sprintf("%s  %-18s  %s",
			entry.CreatedAt.Format(stats.DateOutputLayout), entry.ActivityType, entry.Summary))
	}
	return strings.Join(lines, "\n"), nil
}

func (r *Router) help(_ context.Context, _ *session.Session, arg string) (string, error) {
	topic := strings.ToLower(strings.TrimSpace(arg))
	if topic == "" {
		return helpOverview(), nil
	}
	doc, ok := commandDocByName(topic)
	if !ok {
		return "", ErrInvalidCommand
	}
	return doc.Usage + "\n" + doc.Description, nil
}
