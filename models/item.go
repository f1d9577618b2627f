package models

import "fmt"

// Item is a single to-do entry.
type Item struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Text string `gorm:"type:text;not null" json:"text"`
}

// ItemCreate request payload for creating an item. API clients send text;
// HomePage fills it from the item_text form field.
// Text is stored verbatim: no trimming, empty is allowed.
type ItemCreate struct {
	Text string `json:"text"`
}

// ItemRow is one rendered line of the list table.
type ItemRow struct {
	Number int
	Text   string
}

// String renders the row the way the list table shows it.
func (r ItemRow) String() string {
	return fmt.Sprintf("%d: %s", r.Number, r.Text)
}

// Rows numbers items by display position, starting at 1.
func Rows(items []Item) []ItemRow {
	rows := make([]ItemRow, 0, len(items))
	for i, item := range items {
		rows = append(rows, ItemRow{Number: i + 1, Text: item.Text})
	}
	return rows
}
