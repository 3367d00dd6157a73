package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"log/slog"

	"github.com/fsnotify/fsnotify"
	"github.com/gofrs/flock"

	"mediathek/internal/config"
	"mediathek/internal/logging"
	"mediathek/internal/pipeline"
	"mediathek/internal/placement"
)

// Placer consumes watch events by placing files into the library.
type Placer interface {
	PlaceFile(ctx context.Context, source string) (placement.Result, error)
}

// Service watches the incoming directory and places files as they settle.
type Service struct {
	cfg      *config.Config
	placer   Placer
	logger   *slog.Logger
	lockPath string
	lock     *flock.Flock

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	watcher *fsnotify.Watcher
	events  chan string

	pendingMu sync.Mutex
	pending   map[string]struct{}
}

// NewService constructs a watch service for the configured incoming directory.
func NewService(cfg *config.Config, placer Placer, logger *slog.Logger) *Service {
	lockPath := filepath.Join(cfg.Paths.LogDir, "mediathek-watch.lock")
	return &Service{
		cfg:      cfg,
		placer:   placer,
		logger:   logging.NewComponentLogger(logger, "watch"),
		lockPath: lockPath,
		lock:     flock.New(lockPath),
		pending:  make(map[string]struct{}),
	}
}

// Start acquires the instance lock, sweeps files already sitting in the
// incoming directory, and begins watching for new ones.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return errors.New("watch service already running")
	}

	ok, err := s.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return errors.New("another watch instance is already running")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		_ = s.lock.Unlock()
		return fmt.Errorf("create watcher: %w", err)
	}

	runCtx, cancel := context.WithCancel(ctx)
	s.watcher = watcher
	s.cancel = cancel
	s.events = make(chan string, s.queueSize())

	s.wg.Add(2)
	go s.produce(runCtx, watcher)
	go s.consume(runCtx)

	// fsnotify watches are not recursive; register every directory already
	// under the incoming root and queue the files found on the way. The
	// consumer is already draining, so a sweep larger than the queue just
	// pauses the walk instead of wedging it.
	if err := s.registerTree(runCtx, watcher, s.cfg.Paths.IncomingDir); err != nil {
		cancel()
		_ = watcher.Close()
		s.wg.Wait()
		_ = s.lock.Unlock()
		s.watcher = nil
		s.cancel = nil
		return err
	}

	s.running = true
	s.logger.Info("watch service started",
		logging.String("incoming_dir", s.cfg.Paths.IncomingDir),
		logging.String("lock", s.lockPath),
		logging.Int("queue_size", s.queueSize()),
	)
	return nil
}

// Stop terminates watching, waits for the consumer to drain its current item,
// and releases the instance lock.
func (s *Service) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	cancel := s.cancel
	watcher := s.watcher
	s.running = false
	s.cancel = nil
	s.watcher = nil
	s.mu.Unlock()

	cancel()
	_ = watcher.Close()
	s.wg.Wait()
	if err := s.lock.Unlock(); err != nil {
		s.logger.Warn("failed to release watch lock", logging.Error(err))
	}
	s.logger.Info("watch service stopped")
}

// Run starts the service and blocks until ctx is cancelled.
func (s *Service) Run(ctx context.Context) error {
	if err := s.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	s.Stop()
	return nil
}

func (s *Service) queueSize() int {
	if s.cfg.Watch.QueueSize > 0 {
		return s.cfg.Watch.QueueSize
	}
	return 1
}

func (s *Service) settleDelay() time.Duration {
	return time.Duration(s.cfg.Watch.SettleSeconds) * time.Second
}

// registerTree adds dir and every directory below it to the watcher and
// enqueues files that were dropped off while the service was not running.
func (s *Service) registerTree(ctx context.Context, watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scan incoming directory %q: %w", path, err)
		}
		if d.IsDir() {
			if err := watcher.Add(path); err != nil {
				return fmt.Errorf("watch %q: %w", path, err)
			}
			return nil
		}
		s.enqueue(ctx, path)
		return nil
	})
}

func (s *Service) produce(ctx context.Context, watcher *fsnotify.Watcher) {
	defer s.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			s.handleEvent(ctx, watcher, event)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			s.logger.Warn("watcher error", logging.Error(err))
		}
	}
}

func (s *Service) handleEvent(ctx context.Context, watcher *fsnotify.Watcher, event fsnotify.Event) {
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
		return
	}
	info, err := os.Stat(event.Name)
	if err != nil {
		// The path can be gone again by the time we look; renames during
		// copy tools' staging do this routinely.
		return
	}
	if info.IsDir() {
		if event.Op.Has(fsnotify.Create) {
			if err := s.registerTree(ctx, watcher, event.Name); err != nil {
				s.logger.Warn("failed to register new directory",
					logging.String("dir", event.Name),
					logging.Error(err),
				)
			}
		}
		return
	}
	s.enqueue(ctx, event.Name)
}

// enqueue queues path once; further events for a path already waiting are
// coalesced. A full queue blocks until the consumer drains an item, so a slow
// placement backlog pauses event intake instead of losing files. Shutdown
// releases a blocked enqueue.
func (s *Service) enqueue(ctx context.Context, path string) {
	if !s.cfg.WatchesExtension(filepath.Ext(path)) {
		return
	}

	s.pendingMu.Lock()
	if _, waiting := s.pending[path]; waiting {
		s.pendingMu.Unlock()
		return
	}
	s.pending[path] = struct{}{}
	s.pendingMu.Unlock()

	select {
	case s.events <- path:
	case <-ctx.Done():
		s.clearPending(path)
	}
}

func (s *Service) clearPending(path string) {
	s.pendingMu.Lock()
	delete(s.pending, path)
	s.pendingMu.Unlock()
}

func (s *Service) consume(ctx context.Context) {
	defer s.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case path, ok := <-s.events:
			if !ok {
				return
			}
			if !s.settle(ctx) {
				return
			}
			s.placeOne(ctx, path)
		}
	}
}

// settle waits the configured delay so half-copied files are not picked up.
// It reports false when the service is shutting down.
func (s *Service) settle(ctx context.Context) bool {
	delay := s.settleDelay()
	if delay <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func (s *Service) placeOne(ctx context.Context, path string) {
	defer s.clearPending(path)

	if _, err := os.Stat(path); err != nil {
		// Removed before its settle delay expired.
		return
	}
	result, err := s.placer.PlaceFile(ctx, path)
	if err != nil {
		s.logger.Error("placement failed",
			logging.String(logging.FieldSource, path),
			logging.String("kind", pipeline.Kind(err)),
			logging.Error(err),
		)
		return
	}
	s.logger.Info("file placed",
		logging.String(logging.FieldSource, path),
		logging.String(logging.FieldGroupID, result.GroupID),
		logging.String("final_file", result.FinalPath),
	)
}
