package libpour

import (
	"encoding/binary"

	"github.com/2x3systems/go2pour/go2pour"
	"github.com/dgraph-io/badger/v3"
	"github.com/pkg/errors"
)

// NewClosedSet returns an empty closed set.
//
// If lsm is set, the set is backed by an in-memory badger db, which keeps the Go heap small for
// instances whose closed set grows into the millions.  Otherwise a map is used.
func NewClosedSet(lsm bool) go2pour.ClosedSet {
	if lsm {
		return &lsmClosedSet{}
	}
	return &mapClosedSet{
		costs: make(map[string]int),
	}
}

type mapClosedSet struct {
	costs  map[string]int
	keyBuf []byte
}

func (set *mapClosedSet) key(S go2pour.State) []byte {
	set.keyBuf = S.AppendEncoding(set.keyBuf[:0])
	return set.keyBuf
}

func (set *mapClosedSet) Cost(S go2pour.State) (int, bool) {
	cost, found := set.costs[string(set.key(S))]
	return cost, found
}

func (set *mapClosedSet) Put(S go2pour.State, cost int) {
	set.costs[string(set.key(S))] = cost
}

func (set *mapClosedSet) Remove(S go2pour.State) {
	delete(set.costs, string(set.key(S)))
}

func (set *mapClosedSet) Len() int {
	return len(set.costs)
}

func (set *mapClosedSet) Close() {
	set.costs = nil
}

// lsmClosedSet keys each state by its canonic encoding; the value is the varint estimated cost.
type lsmClosedSet struct {
	db     *badger.DB
	count  int
	keyBuf []byte
}

func (set *lsmClosedSet) autoOpen() {
	if set.db == nil {
		dbOpts := badger.DefaultOptions("").WithInMemory(true)
		dbOpts.Logger = nil
		dbOpts.MetricsEnabled = false

		var err error
		set.db, err = badger.Open(dbOpts)
		if err != nil {
			panic(errors.Wrap(go2pour.ErrClosedSet, err.Error()))
		}
	}
}

func (set *lsmClosedSet) key(S go2pour.State) []byte {
	set.keyBuf = S.AppendEncoding(set.keyBuf[:0])
	return set.keyBuf
}

func (set *lsmClosedSet) Cost(S go2pour.State) (int, bool) {
	set.autoOpen()

	cost, found := 0, false
	err := set.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(set.key(S))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			c, n := binary.Varint(val)
			if n <= 0 {
				return errors.New("bad closed set entry")
			}
			cost, found = int(c), true
			return nil
		})
	})
	if err != nil {
		panic(errors.Wrap(go2pour.ErrClosedSet, err.Error()))
	}
	return cost, found
}

func (set *lsmClosedSet) Put(S go2pour.State, cost int) {
	set.autoOpen()

	var valBuf [binary.MaxVarintLen64]byte
	val := binary.AppendVarint(valBuf[:0], int64(cost))

	err := set.db.Update(func(txn *badger.Txn) error {
		key := set.key(S)
		_, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			set.count++
		} else if err != nil {
			return err
		}
		return txn.Set(append([]byte(nil), key...), val)
	})
	if err != nil {
		panic(errors.Wrap(go2pour.ErrClosedSet, err.Error()))
	}
}

func (set *lsmClosedSet) Remove(S go2pour.State) {
	if set.db == nil {
		return
	}

	err := set.db.Update(func(txn *badger.Txn) error {
		key := set.key(S)
		_, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		set.count--
		return txn.Delete(append([]byte(nil), key...))
	})
	if err != nil {
		panic(errors.Wrap(go2pour.ErrClosedSet, err.Error()))
	}
}

func (set *lsmClosedSet) Len() int {
	return set.count
}

func (set *lsmClosedSet) Close() {
	if set.db != nil {
		set.db.Close()
		set.db = nil
		set.count = 0
	}
}
