// Package dispatch runs one mobtimer command against the resolved config.
//
// Commands are single-shot: each Run loads the lineup, applies at most one
// mutation, and returns. The rotating commands persist the new order before
// notifying the timer service. A failed notification therefore leaves the
// rotation committed, and the error is still returned.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/roach88/mobtimer/internal/config"
	"github.com/roach88/mobtimer/internal/history"
	"github.com/roach88/mobtimer/internal/lineup"
	"github.com/roach88/mobtimer/internal/notify"
)

// Command names accepted by Run.
const (
	CmdConfig  = "config"
	CmdNext    = "next"
	CmdForward = "forward"
	CmdRestart = "restart"
	CmdBack    = "back"
	CmdShuffle = "shuffle"
	CmdHistory = "history"
)

// offsets maps each rotating command to its lineup shift.
var offsets = map[string]int{
	CmdNext:    1,
	CmdForward: 1,
	CmdRestart: 0,
	CmdBack:    -1,
}

// Commands lists every name Run accepts, in help order.
var Commands = []string{CmdConfig, CmdNext, CmdForward, CmdRestart, CmdBack, CmdShuffle, CmdHistory}

// ErrHistoryDisabled is returned by the history command when no log is open.
var ErrHistoryDisabled = errors.New("history is disabled; pass --history PATH")

// UnknownCommandError reports a command name Run does not handle.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command %q (want one of %s)", e.Name, strings.Join(Commands, ", "))
}

// HistoryLog records and lists sent assignments. *history.Store implements it.
type HistoryLog interface {
	Record(ctx context.Context, e history.Entry) (history.Entry, error)
	List(ctx context.Context, room string, limit int) ([]history.Entry, error)
}

// Dispatcher holds everything a command needs. Config must be fully
// resolved before Run is called.
type Dispatcher struct {
	Config     config.Config
	ConfigPath string

	Notifier notify.Notifier // nil uses an HTTP client with notify.DefaultTimeout
	Shuffler lineup.Shuffler // nil uses the global source

	// History is optional. When set, every successful notification is
	// recorded and the history command can list it.
	History      HistoryLog
	HistoryLimit int

	// HistoryRoomOnly limits the history command to the configured room.
	HistoryRoomOnly bool

	Logger *slog.Logger
}

// Result describes what a command did, for printing.
type Result struct {
	Command    string             `json:"command"`
	Config     config.Config      `json:"config"`
	RoomURL    string             `json:"room_url"`
	Lineup     lineup.Lineup      `json:"lineup,omitempty"`
	Assignment *lineup.Assignment `json:"assignment,omitempty"`
	Persisted  bool               `json:"persisted"`
	History    []history.Entry    `json:"history,omitempty"`
}

// String renders the human-readable status line(s).
func (r *Result) String() string {
	switch r.Command {
	case CmdConfig:
		return "room url: " + r.RoomURL
	case CmdShuffle:
		return "lineup: " + strings.Join(r.Lineup, ", ")
	case CmdHistory:
		if len(r.History) == 0 {
			return "no assignments recorded"
		}
		lines := make([]string, len(r.History))
		for i, e := range r.History {
			a := lineup.Assignment{Navigator: e.Navigator, Driver: e.Driver}
			lines[i] = fmt.Sprintf("%d\t%s\t%-7s\t%s\t%s (%d min)",
				e.ID, e.CreatedAt.Format("2006-01-02 15:04"), e.Command, e.Room, a.User(), e.Minutes)
		}
		return strings.Join(lines, "\n")
	}
	if r.Assignment != nil {
		return fmt.Sprintf("%s up for %d minutes", r.Assignment.User(), r.Config.Time)
	}
	return r.Command
}

// Run executes the named command. A non-nil Result may accompany an error
// when some effects were already committed.
func (d *Dispatcher) Run(ctx context.Context, name string) (*Result, error) {
	if offset, ok := offsets[name]; ok {
		return d.rotate(ctx, name, offset)
	}
	switch name {
	case CmdConfig:
		return d.saveConfig()
	case CmdShuffle:
		return d.shuffle()
	case CmdHistory:
		return d.listHistory(ctx)
	}
	return nil, &UnknownCommandError{Name: name}
}

func (d *Dispatcher) notifier() notify.Notifier {
	if d.Notifier != nil {
		return d.Notifier
	}
	return notify.NewClient(notify.DefaultTimeout)
}

func (d *Dispatcher) logger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.Default()
}

func (d *Dispatcher) newResult(name string) *Result {
	return &Result{
		Command: name,
		Config:  d.Config,
		RoomURL: notify.Endpoint(d.Config.Site, d.Config.Room),
	}
}

func (d *Dispatcher) saveConfig() (*Result, error) {
	if err := config.Save(d.ConfigPath, d.Config); err != nil {
		return nil, err
	}
	d.logger().Debug("config saved", "path", d.ConfigPath, "room", d.Config.Room)

	res := d.newResult(CmdConfig)
	res.Persisted = true
	return res, nil
}

// rotate shifts the lineup, persists it unless offset is 0, then notifies.
func (d *Dispatcher) rotate(ctx context.Context, name string, offset int) (*Result, error) {
	log := d.logger()

	current, err := lineup.Load(d.Config.Lineup)
	if err != nil {
		return nil, err
	}

	rotated := lineup.Rotate(current, offset)
	assignment, err := lineup.NextUp(rotated)
	if err != nil {
		return nil, err
	}

	res := d.newResult(name)
	res.Lineup = rotated
	res.Assignment = &assignment

	if offset != 0 {
		if err := lineup.Save(d.Config.Lineup, rotated); err != nil {
			return nil, err
		}
		res.Persisted = true
		log.Debug("lineup rotated", "path", d.Config.Lineup, "offset", offset, "size", len(rotated))
	}

	if err := d.notifier().Notify(ctx, res.RoomURL, assignment.User(), d.Config.Time); err != nil {
		return res, err
	}
	log.Debug("timer started", "endpoint", res.RoomURL, "minutes", d.Config.Time)

	if d.History != nil {
		if _, err := d.History.Record(ctx, history.Entry{
			Command:   name,
			Room:      d.Config.Room,
			Navigator: assignment.Navigator,
			Driver:    assignment.Driver,
			Minutes:   d.Config.Time,
		}); err != nil {
			return res, err
		}
	}

	return res, nil
}

func (d *Dispatcher) shuffle() (*Result, error) {
	current, err := lineup.Load(d.Config.Lineup)
	if err != nil {
		return nil, err
	}

	shuffled := lineup.Shuffle(current, d.Shuffler)
	if err := lineup.Save(d.Config.Lineup, shuffled); err != nil {
		return nil, err
	}
	d.logger().Debug("lineup shuffled", "path", d.Config.Lineup, "size", len(shuffled))

	res := d.newResult(CmdShuffle)
	res.Lineup = shuffled
	res.Persisted = true
	return res, nil
}

func (d *Dispatcher) listHistory(ctx context.Context) (*Result, error) {
	if d.History == nil {
		return nil, ErrHistoryDisabled
	}
	room := ""
	if d.HistoryRoomOnly {
		room = d.Config.Room
	}
	entries, err := d.History.List(ctx, room, d.HistoryLimit)
	if err != nil {
		return nil, err
	}

	res := d.newResult(CmdHistory)
	res.History = entries
	return res, nil
}
