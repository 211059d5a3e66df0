// Package diary holds the state of a logged-in user's diary screen: the
// current listing with its display index, the selected entry and the
// editor buffer, together with the add/edit/delete actions.
//
// Positions are 1-based and only meaningful for the listing they came
// from. Every successful mutation reloads the listing, which replaces the
// display index wholesale and clears the selection.
package diary

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophdiary/internal/client/models"
	"github.com/dmitrijs2005/gophdiary/internal/common"
)

// RecordStore is the part of the persistence layer the diary view needs.
// *storage.Store satisfies it.
type RecordStore interface {
	CreateRecord(ctx context.Context, userID int64, content string) (int64, error)
	ListRecords(ctx context.Context, userID int64) ([]models.Record, error)
	UpdateOwnedRecord(ctx context.Context, userID, recordID int64, content string) error
	DeleteOwnedRecord(ctx context.Context, userID, recordID int64) error
}

// Row is one line of the listing.
type Row struct {
	Position int
	RecordID int64
	Title    string
}

func (r Row) String() string {
	return fmt.Sprintf("%d: %s", r.Position, r.Title)
}

// listing is an immutable snapshot of one load.
type listing struct {
	rows    []Row
	index   map[int]int64    // position -> record id
	content map[int64]string // record id -> full content
}

func newListing(records []models.Record) listing {
	l := listing{
		rows:    make([]Row, 0, len(records)),
		index:   make(map[int]int64, len(records)),
		content: make(map[int64]string, len(records)),
	}
	for i, rec := range records {
		pos := i + 1
		l.rows = append(l.rows, Row{Position: pos, RecordID: rec.ID, Title: rec.Title()})
		l.index[pos] = rec.ID
		l.content[rec.ID] = rec.Content
	}
	return l
}

type View struct {
	store  RecordStore
	userID int64

	list     listing
	selected int // position, 0 when nothing is selected
	editor   string
}

// NewView returns an empty view for userID. Call Refresh to load entries.
func NewView(store RecordStore, userID int64) *View {
	return &View{store: store, userID: userID, list: newListing(nil)}
}

func (v *View) UserID() int64 { return v.userID }

// Rows returns the current listing in display order.
func (v *View) Rows() []Row {
	out := make([]Row, len(v.list.rows))
	copy(out, v.list.rows)
	return out
}

// Selected returns the selected position, or 0.
func (v *View) Selected() int { return v.selected }

func (v *View) Editor() string { return v.editor }

func (v *View) SetEditor(text string) { v.editor = text }

// Refresh reloads the user's entries and rebuilds the display index.
// On error the previous listing is kept.
func (v *View) Refresh(ctx context.Context) error {
	records, err := v.store.ListRecords(ctx, v.userID)
	if err != nil {
		return fmt.Errorf("list records: %w", err)
	}
	v.list = newListing(records)
	v.selected = 0
	return nil
}

// Select marks the entry at position as selected and loads its full
// content into the editor.
func (v *View) Select(position int) error {
	id, ok := v.list.index[position]
	if !ok {
		return common.ErrNoSelection
	}
	v.selected = position
	v.editor = v.list.content[id]
	return nil
}

// selectedID resolves the current selection against the display index.
func (v *View) selectedID() (int64, bool) {
	if v.selected == 0 {
		return 0, false
	}
	id, ok := v.list.index[v.selected]
	return id, ok
}

// Add stores content as a new entry, clears the editor and reloads.
func (v *View) Add(ctx context.Context, content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return common.ErrEmptyContent
	}
	if _, err := v.store.CreateRecord(ctx, v.userID, content); err != nil {
		return fmt.Errorf("create record: %w", err)
	}
	v.editor = ""
	return v.Refresh(ctx)
}

// Edit replaces the content of the selected entry and reloads.
func (v *View) Edit(ctx context.Context, content string) error {
	id, ok := v.selectedID()
	if !ok {
		return common.ErrNoSelection
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return common.ErrEmptyContent
	}
	if err := v.store.UpdateOwnedRecord(ctx, v.userID, id, content); err != nil {
		return fmt.Errorf("update record %d: %w", id, err)
	}
	v.editor = content
	return v.Refresh(ctx)
}

// Delete removes the selected entry, reloads and clears the editor.
func (v *View) Delete(ctx context.Context) error {
	id, ok := v.selectedID()
	if !ok {
		return common.ErrNoSelection
	}
	if err := v.store.DeleteOwnedRecord(ctx, v.userID, id); err != nil {
		return fmt.Errorf("delete record %d: %w", id, err)
	}
	v.editor = ""
	return v.Refresh(ctx)
}
