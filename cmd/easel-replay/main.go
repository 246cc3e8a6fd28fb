// Command easel-replay runs a recorded event stream through a fresh engine
// and prints what it ended up with: status, pending regions and the placed
// object's transform. Streams come from a JSON event log or from a session
// in a journal database; a JSON log can also be imported into a journal.
//
// Usage:
//
//	easel-replay -log session.json [-content art.png] [-v]
//	easel-replay -journal easel.db -list
//	easel-replay -journal easel.db -session <id>
//	easel-replay -journal easel.db -log session.json -import living-room
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/phanxgames/easel"
	"github.com/phanxgames/easel/journal"
)

func main() {
	var (
		logPath     = flag.String("log", "", "JSON event log to replay")
		journalPath = flag.String("journal", "", "journal database")
		sessionID   = flag.String("session", "", "journal session to replay")
		list        = flag.Bool("list", false, "list journal sessions and exit")
		importName  = flag.String("import", "", "import -log into -journal under this name")
		contentPath = flag.String("content", "", "image to place (default: a 2:1 placeholder)")
		verbose     = flag.Bool("v", false, "print engine debug lines")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	var store *journal.Store
	if *journalPath != "" {
		var err error
		store, err = journal.Open(ctx, *journalPath)
		if err != nil {
			log.Fatalf("open journal: %v", err)
		}
		defer store.Close()
	}

	if *list {
		if store == nil {
			log.Fatal("-list needs -journal")
		}
		if err := listSessions(ctx, os.Stdout, store); err != nil {
			log.Fatal(err)
		}
		return
	}

	events, err := loadEvents(ctx, store, *logPath, *sessionID)
	if err != nil {
		log.Fatal(err)
	}

	if *importName != "" {
		if store == nil || *logPath == "" {
			log.Fatal("-import needs -journal and -log")
		}
		id, err := store.StartSession(ctx, *importName)
		if err != nil {
			log.Fatal(err)
		}
		if err := store.Record(ctx, id, events...); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("imported %d events as session %s\n", len(events), id)
		return
	}

	content, err := loadContent(*contentPath)
	if err != nil {
		log.Fatal(err)
	}

	cfg := easel.LoadConfigFromEnv()
	cfg.Debug = cfg.Debug || *verbose
	engine := easel.NewEngine(cfg)
	engine.SetContent(content)

	counts := map[easel.NotificationType]int{}
	engine.SetEventSink(easel.EventSinkFunc(func(n easel.Notification) {
		counts[n.Type]++
	}))

	engine.ApplyAll(events)
	report(os.Stdout, engine, len(events), counts)
}

func loadEvents(ctx context.Context, store *journal.Store, logPath, session string) ([]easel.Event, error) {
	switch {
	case logPath != "":
		data, err := os.ReadFile(logPath)
		if err != nil {
			return nil, fmt.Errorf("read event log: %w", err)
		}
		return easel.LoadEventLog(data)
	case session != "":
		if store == nil {
			return nil, fmt.Errorf("-session needs -journal")
		}
		id, err := uuid.Parse(session)
		if err != nil {
			return nil, fmt.Errorf("parse session id: %w", err)
		}
		return store.Load(ctx, id)
	default:
		return nil, fmt.Errorf("nothing to replay: pass -log or -session")
	}
}

func loadContent(path string) (*easel.Content, error) {
	if path == "" {
		return easel.SizedContent("placeholder", 2000, 1000)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open content: %w", err)
	}
	defer f.Close()
	return easel.DecodeContent(path, f)
}

func listSessions(ctx context.Context, w io.Writer, store *journal.Store) error {
	sessions, err := store.Sessions(ctx)
	if err != nil {
		return err
	}
	for _, s := range sessions {
		fmt.Fprintf(w, "%s  %s  %5d events  %s\n", s.ID, s.CreatedAt.Format(time.RFC3339), s.Events, s.Name)
	}
	return nil
}

func report(w io.Writer, engine *easel.Engine, applied int, counts map[easel.NotificationType]int) {
	st := engine.Status()
	fmt.Fprintf(w, "applied %d events\n", applied)
	fmt.Fprintf(w, "status: %s (tracking %s)\n", st.Message, st.Tracking)
	fmt.Fprintf(w, "pending regions: %d\n", len(engine.Regions()))
	fmt.Fprintf(w, "notifications: placed=%d moved=%d scaled=%d rotated=%d cleared=%d\n",
		counts[easel.NotifyPlaced], counts[easel.NotifyMoved], counts[easel.NotifyScaled],
		counts[easel.NotifyRotated], counts[easel.NotifyCleared])

	obj := engine.Object()
	if obj == nil {
		fmt.Fprintln(w, "no object placed")
		return
	}
	p, s := obj.Position(), obj.Scale()
	fmt.Fprintf(w, "object %s\n", obj.ID)
	fmt.Fprintf(w, "  position (%.4f, %.4f, %.4f)\n", p.X, p.Y, p.Z)
	fmt.Fprintf(w, "  yaw %.4f rad, scale (%.3f, %.3f, %.3f)\n", obj.Yaw(), s.X, s.Y, s.Z)
	m, _ := engine.PlacedTransform()
	for r := 0; r < 4; r++ {
		fmt.Fprintf(w, "  [% .4f % .4f % .4f % .4f]\n", m[r*4], m[r*4+1], m[r*4+2], m[r*4+3])
	}
}
