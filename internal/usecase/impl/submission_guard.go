package impl

import (
	"strings"
	"sync"

	domainerrors "churchadmin/internal/domain/errors"
)

// submissionGuard rejects a form submission while an identical one is still
// being processed.
type submissionGuard struct {
	mu       sync.Mutex
	inFlight map[string]struct{}
}

func newSubmissionGuard() *submissionGuard {
	return &submissionGuard{inFlight: make(map[string]struct{})}
}

// acquire marks key as in flight. The returned release must be called once
// the submission settles.
func (g *submissionGuard) acquire(key string) (release func(), err error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.inFlight[key]; busy {
		return nil, domainerrors.ErrSubmissionInFlight.WithDetails(key)
	}
	g.inFlight[key] = struct{}{}

	var once sync.Once

	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.inFlight, key)
			g.mu.Unlock()
		})
	}, nil
}

// createKey identifies a create form by its parent and the typed name.
func createKey(kind, parentID, name string) string {
	return kind + ":create:" + parentID + ":" + strings.ToLower(strings.TrimSpace(name))
}

// updateKey identifies an edit form by the entity being edited.
func updateKey(kind, id string) string {
	return kind + ":update:" + id
}

// submissionKey picks createKey or updateKey depending on whether id is set.
func submissionKey(kind, id, parentID, name string) string {
	if id == "" {
		return createKey(kind, parentID, name)
	}

	return updateKey(kind, id)
}
