package community

import "sync"

// userGuard tracks users with an operation in flight.
type userGuard struct {
	mu    sync.Mutex
	users map[string]struct{}
}

func newUserGuard() *userGuard {
	return &userGuard{
		users: make(map[string]struct{}),
	}
}

// acquire marks userID as busy. It returns false if the user was already busy. The returned
// func releases the user and must be called exactly once.
func (g *userGuard) acquire(userID string) (func(), bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.users[userID]; ok {
		return nil, false
	}
	g.users[userID] = struct{}{}

	return func() {
		g.mu.Lock()
		delete(g.users, userID)
		g.mu.Unlock()
	}, true
}
