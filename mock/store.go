package mock

import (
	"github.com/fwojciec/gitwebhl"
)

// Compile-time interface verification.
var (
	_ gitwebhl.PageViewLoader = (*PageViewLoader)(nil)
	_ gitwebhl.DecisionSaver  = (*DecisionSaver)(nil)
	_ gitwebhl.DecisionStore  = (*DecisionStore)(nil)
)

// PageViewLoader is a mock implementation of gitwebhl.PageViewLoader.
type PageViewLoader struct {
	LoadFn func(path string) ([]gitwebhl.Page, error)
}

func (l *PageViewLoader) Load(path string) ([]gitwebhl.Page, error) {
	return l.LoadFn(path)
}

// DecisionSaver is a mock implementation of gitwebhl.DecisionSaver.
type DecisionSaver struct {
	SaveFn func(path string, d gitwebhl.Decision) error
}

func (s *DecisionSaver) Save(path string, d gitwebhl.Decision) error {
	return s.SaveFn(path, d)
}

// DecisionStore is a mock implementation of gitwebhl.DecisionStore.
type DecisionStore struct {
	LoadFn func(path string) ([]gitwebhl.Decision, error)
	SaveFn func(path string, decisions []gitwebhl.Decision) error
}

func (s *DecisionStore) Load(path string) ([]gitwebhl.Decision, error) {
	return s.LoadFn(path)
}

func (s *DecisionStore) Save(path string, decisions []gitwebhl.Decision) error {
	return s.SaveFn(path, decisions)
}
