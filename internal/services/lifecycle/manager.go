package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// ShutdownFunc releases one component. It should return once ctx is done.
type ShutdownFunc func(ctx context.Context) error

type component struct {
	name string
	stop ShutdownFunc
}

// Manager stops the board's components in the reverse order they were started.
type Manager struct {
	grace  time.Duration
	logger *zap.Logger

	mu         sync.Mutex
	components []component
}

func New(grace time.Duration, logger *zap.Logger) *Manager {
	if grace <= 0 {
		grace = 15 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{grace: grace, logger: logger}
}

// Register records how to stop a component that has just been started.
func (m *Manager) Register(name string, stop ShutdownFunc) {
	if stop == nil {
		return
	}
	m.mu.Lock()
	m.components = append(m.components, component{name: name, stop: stop})
	m.mu.Unlock()
}

// Components lists registered names in start order.
func (m *Manager) Components() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	names := make([]string, len(m.components))
	for i, c := range m.components {
		names[i] = c.name
	}
	return names
}

// Shutdown stops every component, newest first, within the grace period.
// A failing component does not stop the rest; all failures are returned
// joined and prefixed with the component name. Registrations are consumed.
func (m *Manager) Shutdown(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithTimeout(parent, m.grace)
	defer cancel()

	m.mu.Lock()
	pending := m.components
	m.components = nil
	m.mu.Unlock()

	var errs []error
	for i := len(pending) - 1; i >= 0; i-- {
		if err := m.stop(ctx, pending[i]); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *Manager) stop(ctx context.Context, c component) error {
	started := time.Now()
	err := c.stop(ctx)
	took := time.Since(started)
	if err != nil {
		m.logger.Error("component failed to stop", zap.String("component", c.name), zap.Duration("took", took), zap.Error(err))
		return fmt.Errorf("%s: %w", c.name, err)
	}
	m.logger.Info("component stopped", zap.String("component", c.name), zap.Duration("took", took))
	return nil
}

// Listen calls cancel on the first SIGINT or SIGTERM.
func (m *Manager) Listen(cancel context.CancelFunc) {
	if cancel == nil {
		return
	}
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(signals)
		received := <-signals
		m.logger.Info("stopping on signal", zap.Stringer("signal", received))
		cancel()
	}()
}
