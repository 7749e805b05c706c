package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ufccards/ufccards/internal/loader"
	"github.com/ufccards/ufccards/internal/output"
	"github.com/ufccards/ufccards/internal/paginate"
	"github.com/ufccards/ufccards/internal/roster"
)

const browseHelp = `Commands:
  /s TEXT     search by name or nickname (/s alone clears)
  /c CLASS    select a weight class (/c alone selects all)
  more        load the next batch
  show NAME   show a fighter card
  help        show this help
  quit        exit`

func newBrowseCmd(a *app) *cobra.Command {
	var (
		watch bool
		delay time.Duration
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Interactively search and page through fighters",
		Long: `Browse reads commands from standard input, one per line, and prints the
matching fighters as you refine the search. Type "help" for the command list.

With --watch the roster file is reloaded whenever it changes on disk.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, r, err := a.loadRoster(cmd.Context(), cmd)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("delay") {
				delay = a.cfg.UFCCards.AdvanceDelay
			}

			b := &browser{
				out:         cmd.OutOrStdout(),
				batchSize:   a.cfg.UFCCards.BatchSize,
				delay:       delay,
				logger:      a.logger,
				roster:      r,
				weightClass: a.cfg.WeightClass(),
			}
			return b.run(cmd.Context(), cmd.InOrStdin(), store, watch)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "reload the roster when the source file changes")
	cmd.Flags().DurationVar(&delay, "delay", 0, "delay before a \"more\" request reveals the next batch (default from config)")
	return cmd
}

// browser is the line-driven browse session. All output happens on the
// goroutine running run; timer and watcher callbacks hand their results
// over through channels.
type browser struct {
	out         io.Writer
	batchSize   int
	delay       time.Duration
	logger      *zap.Logger
	roster      *roster.Roster
	weightClass string

	session  *paginate.Session
	shown    int
	advanced chan advanceEvent
	done     chan struct{}
}

// advanceEvent is a delayed advance reported by a session's timer.
type advanceEvent struct {
	session *paginate.Session
	view    paginate.View
}

type reloadResult struct {
	roster *roster.Roster
	err    error
}

func (b *browser) run(ctx context.Context, in io.Reader, store *loader.Store, watch bool) error {
	b.advanced = make(chan advanceEvent, 1)
	b.done = make(chan struct{})

	var stopWatcher func()
	b.newSession(roster.Criteria{WeightClass: b.weightClass})
	defer func() {
		// done first so callbacks blocked on a send can return
		close(b.done)
		if stopWatcher != nil {
			stopWatcher()
		}
		b.session.Close()
	}()

	reloads := make(chan reloadResult)
	if watch {
		var err error
		stopWatcher, err = b.startWatcher(ctx, store, reloads)
		if err != nil {
			return NewExitError(ExitCodeFailure, err.Error())
		}
	}

	lines := b.readLines(in)

	b.printView()
	b.prompt()

	for {
		select {
		case <-ctx.Done():
			return nil

		case line, ok := <-lines:
			if !ok {
				b.drain(ctx)
				return nil
			}
			if quit := b.handle(line); quit {
				return nil
			}
			b.prompt()

		case ev := <-b.advanced:
			b.printAdvance(ev)
			b.prompt()

		case rl := <-reloads:
			b.applyReload(rl, store)
			b.prompt()
		}
	}
}

// readLines feeds input lines into a channel until EOF or run returns.
func (b *browser) readLines(in io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-b.done:
				return
			}
		}
		if err := scanner.Err(); err != nil {
			b.logger.Warn("Failed to read input", zap.Error(err))
		}
	}()
	return lines
}

func (b *browser) startWatcher(ctx context.Context, store *loader.Store, reloads chan<- reloadResult) (func(), error) {
	w, err := loader.NewWatcher(store, 0, func(r *roster.Roster, err error) {
		select {
		case reloads <- reloadResult{roster: r, err: err}:
		case <-b.done:
		}
	})
	if err != nil {
		return nil, err
	}

	watchCtx, cancel := context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(watchCtx)
	g.Go(func() error {
		return w.Run(gctx)
	})

	fmt.Fprintln(b.out, output.Color("Watching "+store.Source().String()+" for changes.", output.Dim))
	return func() {
		cancel()
		if err := g.Wait(); err != nil {
			b.logger.Warn("Watcher stopped", zap.Error(err))
		}
	}, nil
}

func (b *browser) newSession(c roster.Criteria) {
	if b.session != nil {
		b.session.Close()
	}
	var session *paginate.Session
	session = paginate.NewSession(b.roster.All(),
		paginate.WithBatchSize(b.batchSize),
		paginate.WithAdvanceDelay(b.delay),
		paginate.WithLogger(b.logger),
		paginate.WithOnAdvance(func(v paginate.View) {
			select {
			case b.advanced <- advanceEvent{session: session, view: v}:
			case <-b.done:
			}
		}))
	session.SetCriteria(c)
	b.session = session
}

// handle executes one input line. It reports whether the session should end.
func (b *browser) handle(line string) bool {
	line = strings.TrimSpace(line)
	verb, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(verb) {
	case "":
		return false
	case "quit", "q", "exit":
		return true
	case "help", "?":
		fmt.Fprintln(b.out, browseHelp)
	case "more", "m":
		b.requestMore()
	case "/s":
		if b.session.SetSearch(arg) {
			b.printView()
		}
	case "/c":
		b.selectClass(arg)
	case "show":
		b.showFighter(arg)
	default:
		fmt.Fprintf(b.out, "Unknown command %q. Type help for commands.\n", verb)
	}
	return false
}

func (b *browser) requestMore() {
	switch {
	case !b.session.HasMore():
		fmt.Fprintln(b.out, "No more fighters.")
	case b.session.RequestMore():
		fmt.Fprintln(b.out, output.Color("Loading more fighters...", output.Dim))
	default:
		fmt.Fprintln(b.out, output.Color("Already loading...", output.Dim))
	}
}

func (b *browser) selectClass(arg string) {
	wc, err := roster.ParseWeightClass(arg)
	if err != nil {
		fmt.Fprintln(b.out, output.Color(err.Error(), output.Red))
		return
	}
	changed, err := b.session.SetWeightClass(wc)
	if err != nil {
		fmt.Fprintln(b.out, output.Color(err.Error(), output.Red))
		return
	}
	if changed {
		b.printView()
	}
}

func (b *browser) showFighter(query string) {
	if query == "" {
		fmt.Fprintln(b.out, "Usage: show NAME")
		return
	}
	f, ok := b.roster.Lookup(query)
	if !ok {
		fmt.Fprintf(b.out, "No fighter matches %q.\n", query)
		return
	}
	renderCard(b.out, f)
}

// printView prints the whole current window.
func (b *browser) printView() {
	v := b.session.View()
	renderView(b.out, v)
	b.shown = v.Shown()
}

// printAdvance prints only the records revealed since the last print.
// Events from replaced sessions or older criteria are ignored.
func (b *browser) printAdvance(ev advanceEvent) {
	v := ev.view
	if ev.session != b.session || !v.Criteria.Equal(b.session.Criteria()) {
		return
	}
	if v.Shown() > b.shown {
		fmt.Fprint(b.out, renderTable(v.Fighters[b.shown:], v.Criteria.WeightClass))
	}
	b.shown = v.Shown()
	fmt.Fprintln(b.out, v.Summary())
}

func (b *browser) applyReload(rl reloadResult, store *loader.Store) {
	if rl.err != nil {
		fmt.Fprintln(b.out, output.Color(store.UserMessage(), output.Red))
		fmt.Fprintf(b.out, "Still showing the previous roster (%d fighters).\n", b.roster.Len())
		return
	}
	b.roster = rl.roster
	b.newSession(b.session.Criteria())
	fmt.Fprintf(b.out, "Roster reloaded: %d fighters.\n", b.roster.Len())
	b.printView()
}

// drain waits for a pending advance at end of input so its batch is shown.
// A trigger clears its pending flag only after the event is sent.
func (b *browser) drain(ctx context.Context) {
	if !b.session.Loading() {
		select {
		case ev := <-b.advanced:
			b.printAdvance(ev)
		default:
		}
		return
	}
	select {
	case ev := <-b.advanced:
		b.printAdvance(ev)
	case <-ctx.Done():
	case <-time.After(b.delay + 5*time.Second):
	}
}

func (b *browser) prompt() {
	fmt.Fprint(b.out, "> ")
}
