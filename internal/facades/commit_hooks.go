package facades

import (
	"context"
	"sync"
)

// CommitHooks holds work that may only run once the session transaction of
// a request has committed.
type CommitHooks struct {
	mu  sync.Mutex
	fns []func()
}

type commitHooksKey struct{}

// WithCommitHooks attaches an empty hook list to ctx.
func WithCommitHooks(ctx context.Context) (context.Context, *CommitHooks) {
	hooks := &CommitHooks{}
	return context.WithValue(ctx, commitHooksKey{}, hooks), hooks
}

// AfterCommit defers fn until the request's transaction commits. Without a
// transaction fn runs immediately.
func AfterCommit(ctx context.Context, fn func()) {
	hooks, ok := ctx.Value(commitHooksKey{}).(*CommitHooks)
	if !ok {
		fn()
		return
	}

	hooks.mu.Lock()
	hooks.fns = append(hooks.fns, fn)
	hooks.mu.Unlock()
}

// Run calls the hooks in registration order and clears them.
func (h *CommitHooks) Run() {
	for _, fn := range h.take() {
		fn()
	}
}

// Discard drops the hooks and returns how many there were.
func (h *CommitHooks) Discard() int {
	return len(h.take())
}

func (h *CommitHooks) take() []func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	fns := h.fns
	h.fns = nil
	return fns
}
