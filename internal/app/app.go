package app

import (
	"fmt"
	"log/slog"

	"github.com/wailsapp/wails/v3/pkg/application"

	"go.aimuz.me/swatch/clipboard"
	"go.aimuz.me/swatch/config"
	"go.aimuz.me/swatch/dispatch"
	"go.aimuz.me/swatch/history"
	"go.aimuz.me/swatch/hotkey"
	"go.aimuz.me/swatch/internal/logging"
	"go.aimuz.me/swatch/internal/types"
	"go.aimuz.me/swatch/pixel"
)

// Service provides application functionality bound to Wails.
//
// Two producers feed it: the hotkey trigger (on the hook library's
// goroutine) and the live preview poller. Both only publish onto the
// dispatcher; the run loop is the single consumer that owns every
// mutation of the history log and all frontend notifications.
type Service struct {
	cfg      *config.Config
	store    *history.Store
	sampler  Sampler
	listener *hotkey.Listener
	bus      *dispatch.Dispatcher
	poller   *Poller

	// UI references - set via Init
	app    *application.App
	window application.Window

	done    chan struct{}
	version string
}

// New creates a new Service. Call Init() after the Wails app is created.
func New(version string) *Service {
	return &Service{version: version}
}

// GetVersion returns the application version.
func (s *Service) GetVersion() string {
	return s.version
}

// Init initializes the service with app and window references.
// Must be called after the Wails application is created.
func (s *Service) Init(app *application.App, window application.Window) {
	s.app = app
	s.window = window

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		cfg = &config.Config{Hotkey: config.DefaultHotkey}
	}
	logging.Setup(logging.ParseFormat(cfg.LogFormat), logging.ParseLevel(cfg.LogLevel))

	path, err := history.DefaultPath()
	if err != nil {
		slog.Error("resolve color log path", "error", err)
		path = history.LogFilename
	}

	granted := pixel.HasPermission()
	s.emit(EventDisplayPerm, granted)
	if !granted {
		slog.Warn("screen read permission not granted, requesting")
		pixel.RequestPermission()
	}
	if err := clipboard.Init(); err != nil {
		slog.Warn("init clipboard", "error", err)
	}

	s.initCore(cfg, history.NewStore(path), pixel.Default(), hotkey.NewGohookBackend())
}

// initCore wires the event pipeline. Split from Init so tests can run the
// pipeline with fake backends and no window system.
func (s *Service) initCore(cfg *config.Config, store *history.Store, sampler Sampler, backend hotkey.Backend) {
	s.cfg = cfg
	s.store = store
	s.sampler = sampler
	s.bus = dispatch.New(dispatch.DefaultBuffer)
	s.listener = hotkey.NewListener(backend, s.captureColor)

	if err := s.store.Load(); err != nil {
		slog.Warn("load color log, starting empty", "error", err)
	}
	slog.Info("color log loaded", "records", s.store.Len())

	s.done = make(chan struct{})
	go s.run()

	if err := s.listener.Start(cfg.Hotkey); err != nil {
		slog.Error("start hotkey", "spec", cfg.Hotkey, "error", err)
	} else {
		slog.Info("hotkey registered", "spec", cfg.Hotkey)
	}

	s.poller = NewPoller(sampler, s.bus, cfg.PollInterval())
	s.poller.Start()
}

// Shutdown cleans up resources. Producers stop before the dispatcher
// closes, and the run loop drains whatever is still queued.
func (s *Service) Shutdown() {
	if s.poller != nil {
		s.poller.Stop()
	}
	if s.listener != nil {
		s.listener.Stop()
	}
	if s.bus != nil {
		s.bus.Close()
	}
	if s.done != nil {
		<-s.done
	}
}

// captureColor is the hotkey trigger callback. It runs on the hook
// library's goroutine and therefore only samples and enqueues; a failed
// read drops the capture (the user can press again).
func (s *Service) captureColor() {
	sample, err := s.sampler.Sample()
	if err != nil {
		slog.Debug("capture skipped", "error", err)
		return
	}
	s.bus.Publish(dispatch.Event{Kind: dispatch.KindCapture, Sample: sample})
}

// run is the single consumer of the dispatcher. All history mutations
// and frontend notifications happen here, in arrival order.
func (s *Service) run() {
	defer close(s.done)

	for ev := range s.bus.Events() {
		switch ev.Kind {
		case dispatch.KindLive:
			s.emit(EventLiveColor, ev.Sample)
		case dispatch.KindCapture:
			if err := s.store.Append(ev.Sample); err != nil {
				slog.Error("persist capture", "hex", ev.Sample.Hex, "error", err)
				s.emit(EventPersistError, err.Error())
			}
			slog.Info("color captured",
				"hex", ev.Sample.Hex, "x", ev.Sample.X, "y", ev.Sample.Y,
				"records", s.store.Len())
			s.emit(EventHistoryUpdated, s.store.Records())
		}
	}
}

// emit is a safe wrapper around app.Event.Emit
func (s *Service) emit(name string, data any) {
	if s.app != nil {
		s.app.Event.Emit(name, data)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// History
// ─────────────────────────────────────────────────────────────────────────────

// GetHistory returns all captured samples, oldest first.
func (s *Service) GetHistory() []types.ColorSample {
	return s.store.Records()
}

// ClearHistory empties the capture history and persists the empty state.
// A persistence failure is reported but the in-memory log is cleared.
func (s *Service) ClearHistory() error {
	err := s.store.Clear()
	if err != nil {
		slog.Error("persist cleared log", "error", err)
		s.emit(EventPersistError, err.Error())
	}
	s.emit(EventHistoryUpdated, s.store.Records())
	return err
}

// CopyHex writes the hex code of the identified sample to the clipboard
// and returns it.
func (s *Service) CopyHex(id string) (string, error) {
	for _, sample := range s.store.Records() {
		if sample.ID != id {
			continue
		}
		if err := clipboard.WriteText(sample.Hex); err != nil {
			return "", fmt.Errorf("copy %s: %w", sample.Hex, err)
		}
		s.emit(EventHexCopied, sample.Hex)
		return sample.Hex, nil
	}
	return "", fmt.Errorf("no sample with id %s", id)
}

// ─────────────────────────────────────────────────────────────────────────────
// Hotkey
// ─────────────────────────────────────────────────────────────────────────────

// GetHotkey returns the active capture combo, or "" if none is registered.
func (s *Service) GetHotkey() string {
	return s.listener.Spec()
}

// ChangeHotkey swaps the capture combo. On failure no hotkey is active;
// the caller may retry, including with the previous spec.
func (s *Service) ChangeHotkey(spec string) error {
	if err := s.listener.ChangeSpec(spec); err != nil {
		slog.Error("change hotkey", "spec", spec, "error", err)
		return err
	}

	s.cfg.Hotkey = spec
	if err := s.cfg.Save(); err != nil {
		slog.Warn("save config", "error", err)
	}

	slog.Info("hotkey changed", "spec", spec)
	s.emit(EventHotkeyChanged, spec)
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Permissions & window
// ─────────────────────────────────────────────────────────────────────────────

// GetDisplayPermission returns whether screen pixel reads are permitted.
func (s *Service) GetDisplayPermission() bool {
	return pixel.HasPermission()
}

// RequestDisplayPermission asks the system to grant screen read access.
func (s *Service) RequestDisplayPermission() {
	pixel.RequestPermission()
	s.emit(EventDisplayPerm, pixel.HasPermission())
}

// ShowWindow brings the main window to the front.
func (s *Service) ShowWindow() {
	if s.window != nil {
		s.window.Show()
		s.window.Focus()
	}
}
