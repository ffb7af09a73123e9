package store

import (
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"ftl/db"
	"ftl/events"
	"ftl/jsonx"
	"ftl/logx"
	"ftl/utils"
)

// EventRecord is the persisted form of one ledger event. From is empty
// only for the minting Transfer.
type EventRecord struct {
	Seq       uint64    `json:"seq"`
	Type      string    `json:"type"`
	From      string    `json:"from,omitempty"`
	To        string    `json:"to"`
	Value     string    `json:"value"`
	Timestamp time.Time `json:"timestamp"`
}

// EventStore persists the append-only observation log. The ledger only
// writes it; reads serve external observers (the `events` command).
type EventStore interface {
	Append(record *EventRecord) error
	List(limit, offset uint32) ([]*EventRecord, error)
	MustClose()
}

type GenericEventStore struct {
	mu         sync.Mutex
	dbProvider db.IterableProvider
}

func NewGenericEventStore(dbProvider db.IterableProvider) (*GenericEventStore, error) {
	if dbProvider == nil {
		return nil, fmt.Errorf("provider cannot be nil")
	}

	return &GenericEventStore{
		dbProvider: dbProvider,
	}, nil
}

// Append assigns the next sequence number and commits the record
// together with the advanced counter.
func (es *GenericEventStore) Append(record *EventRecord) error {
	es.mu.Lock()
	defer es.mu.Unlock()

	seq, err := es.nextSeq()
	if err != nil {
		return err
	}
	record.Seq = seq

	data, err := jsonx.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal event record: %w", err)
	}

	batch := es.dbProvider.Batch()
	batch.Put(es.getDbKey(seq), data)
	batch.Put([]byte(MetaKeyEventSeq), []byte(strconv.FormatUint(seq+1, 10)))
	if err := batch.Write(); err != nil {
		return fmt.Errorf("failed to append event to db: %w", err)
	}
	return nil
}

// List returns up to limit records starting at offset, in append order
func (es *GenericEventStore) List(limit, offset uint32) ([]*EventRecord, error) {
	es.mu.Lock()
	defer es.mu.Unlock()

	var records []*EventRecord
	var iterErr error
	err := es.dbProvider.IteratePrefix([]byte(PrefixEvent), func(key, value []byte) bool {
		var record EventRecord
		if iterErr = jsonx.Unmarshal(value, &record); iterErr != nil {
			return false
		}
		records = append(records, &record)
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}
	if iterErr != nil {
		return nil, fmt.Errorf("failed to decode event record: %w", iterErr)
	}

	// Not every provider iterates in key order (Redis SCAN is
	// unordered), so append order is restored from the sequence.
	sort.Slice(records, func(i, j int) bool {
		return records[i].Seq < records[j].Seq
	})

	if offset >= uint32(len(records)) {
		return []*EventRecord{}, nil
	}
	records = records[offset:]
	if limit > 0 && uint32(len(records)) > limit {
		records = records[:limit]
	}
	return records, nil
}

func (es *GenericEventStore) MustClose() {
	if err := es.dbProvider.Close(); err != nil {
		logx.Error("EVENT_STORE", "Failed to close db provider:", err.Error())
	}
}

func (es *GenericEventStore) nextSeq() (uint64, error) {
	data, err := es.dbProvider.Get([]byte(MetaKeyEventSeq))
	if err != nil {
		return 0, fmt.Errorf("could not get event sequence from db: %w", err)
	}
	if data == nil {
		return 0, nil
	}
	seq, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt event sequence %q: %w", data, err)
	}
	return seq, nil
}

// Zero-padded decimal keeps keys in append order under lexicographic
// iteration and human-readable in Redis.
func (es *GenericEventStore) getDbKey(seq uint64) []byte {
	return []byte(fmt.Sprintf("%s%020d", PrefixEvent, seq))
}

// EventSink adapts an EventStore to the events.Sink interface. Append
// failures are logged and swallowed: the observation log must never
// fail a committed ledger operation.
type EventSink struct {
	store EventStore
}

func NewEventSink(store EventStore) *EventSink {
	return &EventSink{store: store}
}

func (s *EventSink) Record(event events.LedgerEvent) {
	record := &EventRecord{
		Type:      string(event.Type()),
		Value:     utils.AmountToString(event.Value()),
		Timestamp: event.Timestamp(),
	}

	switch e := event.(type) {
	case *events.TransferEvent:
		if e.From() != nil {
			record.From = e.From().String()
		}
		if e.To() != nil {
			record.To = e.To().String()
		}
	case *events.ApprovalEvent:
		record.From = e.Owner().String()
		record.To = e.Spender().String()
	}

	if err := s.store.Append(record); err != nil {
		logx.Error("EVENT_STORE", "Failed to persist event:", err.Error())
	}
}
