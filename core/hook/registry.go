package hook

import (
	"os"
	"os/signal"
	"sort"
	"sync"
	"syscall"
)

// Signals are the process signals that run the registered hooks.
var Signals = []os.Signal{os.Interrupt, syscall.SIGTERM}

// Default is the process-wide registry.
var Default = NewRegistry()

// Registry keeps hooks that run when the process is asked to terminate.
//
// The signal listener only exists while at least one hook is registered, so
// an idle registry leaves the process signal handling untouched.
type Registry struct {
	mu      sync.Mutex
	hooks   map[uint64]*Handle
	nextID  uint64
	added   int
	removed int

	sigCh chan os.Signal
	quit  chan struct{}

	notify func(c chan<- os.Signal, sig ...os.Signal)
	stop   func(c chan<- os.Signal)
	exit   func(code int)
}

// Handle identifies a registered hook.
type Handle struct {
	registry *Registry
	id       uint64
	name     string
	fn       func()
	removed  bool
}

// NewRegistry creates an empty registry bound to the OS signals.
func NewRegistry() *Registry {
	return &Registry{
		hooks:  make(map[uint64]*Handle),
		notify: signal.Notify,
		stop:   signal.Stop,
		exit:   os.Exit,
	}
}

// Register adds fn to the hooks run on termination.
func (r *Registry) Register(name string, fn func()) *Handle {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	h := &Handle{registry: r, id: r.nextID, name: name, fn: fn}
	r.hooks[h.id] = h
	r.added++

	if len(r.hooks) == 1 {
		r.listen()
	}
	return h
}

// Deregister removes the hook. It returns false when the hook was already
// removed, which makes repeated calls harmless.
func (h *Handle) Deregister() bool {
	if h == nil {
		return false
	}
	r := h.registry
	r.mu.Lock()
	defer r.mu.Unlock()

	if h.removed {
		return false
	}
	h.removed = true
	delete(r.hooks, h.id)
	r.removed++

	if len(r.hooks) == 0 {
		r.unlisten()
	}
	return true
}

// Name returns the name the hook was registered with.
func (h *Handle) Name() string {
	return h.name
}

// Len returns the number of registered hooks.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.hooks)
}

// Stats returns how many hooks were registered and deregistered so far.
func (r *Registry) Stats() (added, removed int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.added, r.removed
}

// Listening reports whether the signal listener is active.
func (r *Registry) Listening() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sigCh != nil
}

// listen must be called with r.mu held.
func (r *Registry) listen() {
	r.sigCh = make(chan os.Signal, 1)
	r.quit = make(chan struct{})
	r.notify(r.sigCh, Signals...)

	go func(sigCh chan os.Signal, quit chan struct{}) {
		select {
		case sig := <-sigCh:
			r.trigger(sig)
		case <-quit:
		}
	}(r.sigCh, r.quit)
}

// unlisten must be called with r.mu held.
func (r *Registry) unlisten() {
	if r.sigCh == nil {
		return
	}
	r.stop(r.sigCh)
	close(r.quit)
	r.sigCh = nil
	r.quit = nil
}

// trigger runs every hook, newest first, then exits the process.
func (r *Registry) trigger(sig os.Signal) {
	r.mu.Lock()
	pending := make([]*Handle, 0, len(r.hooks))
	for _, h := range r.hooks {
		pending = append(pending, h)
	}
	r.mu.Unlock()

	sort.Slice(pending, func(i, j int) bool { return pending[i].id > pending[j].id })

	var wg sync.WaitGroup
	for _, h := range pending {
		wg.Add(1)
		go func(h *Handle) {
			defer wg.Done()
			h.fn()
		}(h)
	}
	wg.Wait()

	code := 1
	if s, ok := sig.(syscall.Signal); ok {
		code = 128 + int(s)
	}
	r.exit(code)
}
