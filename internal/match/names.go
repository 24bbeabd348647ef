package match

import (
	"errors"
	"fmt"
)

// ErrNameTaken reports an attempt to register a name that already belongs to
// the opposite side. A name can belong to at most one side at a time.
var ErrNameTaken = errors.New("name already registered for the opposite side")

// ledger is one side's bijection between names and indices.
type ledger[K Kind] struct {
	byName  map[string]Index[K]
	byIndex []string
}

func (l *ledger[K]) insert(name string) Index[K] {
	if idx, ok := l.byName[name]; ok {
		return idx
	}

	if l.byName == nil {
		l.byName = make(map[string]Index[K])
	}

	idx := NewIndex[K](uint32(len(l.byIndex)))
	l.byName[name] = idx
	l.byIndex = append(l.byIndex, name)

	return idx
}

// Names holds the name/index bijections for both sides. The zero value is
// ready to use. Names is built once by the loader and treated as read-only
// during matching and reporting.
type Names struct {
	big    ledger[Big]
	little ledger[Little]
}

// Roster is a view of one side's bijection paired with the opposite side's,
// so the cross-side exclusivity check resolves to direct field access with
// no runtime kind dispatch. Rosters are only constructible through
// Names.Bigs and Names.Littles, which pin the Big/Little pairing.
type Roster[K, O Kind] struct {
	self  *ledger[K]
	other *ledger[O]
}

// Bigs returns the Big-side roster.
func (n *Names) Bigs() Roster[Big, Little] {
	return Roster[Big, Little]{self: &n.big, other: &n.little}
}

// Littles returns the Little-side roster.
func (n *Names) Littles() Roster[Little, Big] {
	return Roster[Little, Big]{self: &n.little, other: &n.big}
}

// Insert registers name on side K and returns its index. Re-inserting a name
// already present on side K is idempotent and returns the existing index.
// Inserting a name registered on the opposite side fails with ErrNameTaken
// and leaves both bijections unchanged.
func (r Roster[K, O]) Insert(name string) (Index[K], error) {
	if _, taken := r.other.byName[name]; taken {
		return Index[K]{}, fmt.Errorf("insert %s name %q: %w", KindOf[K]().Label(), name, ErrNameTaken)
	}

	return r.self.insert(name), nil
}

// IndexOf returns the index registered for name.
func (r Roster[K, O]) IndexOf(name string) (Index[K], bool) {
	idx, ok := r.self.byName[name]
	return idx, ok
}

// NameOf returns the name registered at idx.
func (r Roster[K, O]) NameOf(idx Index[K]) (string, bool) {
	if idx.Position() >= len(r.self.byIndex) {
		return "", false
	}

	return r.self.byIndex[idx.Position()], true
}

// Len returns the number of names registered on side K.
func (r Roster[K, O]) Len() int {
	return len(r.self.byIndex)
}
