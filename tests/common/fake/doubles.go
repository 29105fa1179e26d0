//go:build unit || e2e

package fake

import (
	"context"
	"sync"

	"shuttlebook/internal/domain/user"
	"shuttlebook/internal/domain/waitlist"
	"shuttlebook/internal/infra"
	"shuttlebook/internal/infra/db"
	"shuttlebook/internal/usecase/queries"
)

// Notifier records every dispatched waitlist notification. Err, when set,
// is returned from each call so callers' swallow-and-log behavior can be
// observed.
type Notifier struct {
	mu      sync.Mutex
	Err     error
	entries []*waitlist.Entry
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

func (n *Notifier) NotifyWaitlist(_ context.Context, entry *waitlist.Entry) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.entries = append(n.entries, entry)
	return n.Err
}

func (n *Notifier) Notified() []*waitlist.Entry {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]*waitlist.Entry(nil), n.entries...)
}

// Cache is an in-memory queries.AvailabilityCache that tracks invalidated
// dates.
type Cache struct {
	mu          sync.Mutex
	views       map[string]*queries.AvailabilityView
	invalidated []string
}

func NewCache() *Cache {
	return &Cache{views: make(map[string]*queries.AvailabilityView)}
}

func (c *Cache) Get(_ context.Context, date string) (*queries.AvailabilityView, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.views[date]
	return v, ok
}

func (c *Cache) Set(_ context.Context, date string, view *queries.AvailabilityView) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.views[date] = view
}

func (c *Cache) Invalidate(_ context.Context, date string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.views, date)
	c.invalidated = append(c.invalidated, date)
}

func (c *Cache) Invalidated() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.invalidated...)
}

// UserStore adapts the shared state to shared.UserRepository, enforcing the
// email uniqueness constraint the way the users table does.
type UserStore struct {
	store *Store
}

func NewUserStore(store *Store) *UserStore {
	return &UserStore{store: store}
}

func (u *UserStore) Create(_ context.Context, _ db.DBTX, entity *user.User) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	for _, existing := range u.store.users {
		if existing.Email() == entity.Email() {
			return infra.RepositoryError{Kind: infra.KindConflict, Constraint: "users_email_unique"}
		}
	}
	u.store.users[entity.ID()] = entity
	return nil
}
