package record

import (
	"fmt"

	"github.com/go-chip/tlv/element"
	"github.com/go-chip/tlv/errs"
)

// entryIterator walks a sequence of same-kind container entries inside a
// payload slice, decoding one sub-record per call to next. Both
// RecordIterator and ListIterator wrap one of these; they differ only in
// which field type constructs them and which entry kind they expect.
//
// Each call advances the cursor past the entry's full on-wire extent,
// including its trailing end-of-container byte, so a sequence of N entries
// yields exactly N items.
type entryIterator struct {
	schema    *Schema
	entryKind element.Kind
	buf       []byte
	cursor    int
}

func newEntryIterator(sch *Schema, entryKind element.Kind, buf []byte) *entryIterator {
	return &entryIterator{schema: sch, entryKind: entryKind, buf: buf}
}

func (it *entryIterator) next() (*Record, bool, error) {
	if it.cursor >= len(it.buf) {
		return nil, false, nil
	}

	h, err := element.DecodeHeader(it.buf, it.cursor)
	if err != nil {
		return nil, false, err
	}
	if h.Kind != it.entryKind {
		return nil, false, fmt.Errorf("record: expected %s entry, found %s: %w", it.entryKind, h.Kind, errs.ErrInternalInvariant)
	}

	valueOffset, valueLength, next, err := element.ValueSpan(it.buf, it.cursor, h)
	if err != nil {
		return nil, false, err
	}

	sub := FromBuffer(it.schema, it.buf[valueOffset:valueOffset+valueLength])
	it.cursor = next

	return sub, true, nil
}

// RecordIterator yields one sub-record per array entry. Returned by
// ArrayField's DecodeValue.
type RecordIterator struct {
	inner *entryIterator
}

// Next returns the array's next entry, or ok=false once exhausted.
func (it *RecordIterator) Next() (*Record, bool, error) {
	return it.inner.next()
}

// ListIterator yields one sub-record per list entry, with the same
// advancing semantics as RecordIterator. Returned by ListField's
// DecodeValue.
type ListIterator struct {
	inner *entryIterator
}

// Next returns the list's next entry, or ok=false once exhausted.
func (it *ListIterator) Next() (*Record, bool, error) {
	return it.inner.next()
}
