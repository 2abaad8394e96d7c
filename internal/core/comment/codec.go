package comment

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/samber/lo"
)

// TimestampLayout is the ISO-8601 form used on the wire, always in UTC with
// millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Record is the persisted form of a Comment.
type Record struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	IsNew     bool   `json:"isNew"`
}

// ToRecord converts c to its wire form. IsNew is always false.
func ToRecord(c Comment) Record {
	return Record{
		ID:        c.ID,
		Name:      c.Author,
		Message:   c.Message,
		Timestamp: FormatTimestamp(c.CreatedAt),
		IsNew:     false,
	}
}

// FromRecord revives a Comment from its wire form.
func FromRecord(r Record) (Comment, error) {
	ts, err := time.Parse(time.RFC3339Nano, r.Timestamp)
	if err != nil {
		return Comment{}, fmt.Errorf("comment %d: parse timestamp: %w", r.ID, err)
	}

	return Comment{
		ID:        r.ID,
		Author:    r.Name,
		Message:   r.Message,
		CreatedAt: ts,
	}, nil
}

// FormatTimestamp renders t in the wire timestamp layout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// Records converts a list to wire records, preserving order.
func Records(list []Comment) []Record {
	return lo.Map(list, func(c Comment, _ int) Record {
		return ToRecord(c)
	})
}

// Serialize encodes list as a JSON array of records.
func Serialize(list []Comment) ([]byte, error) {
	data, err := json.Marshal(Records(list))
	if err != nil {
		return nil, fmt.Errorf("marshal comments: %w", err)
	}
	return data, nil
}

// Deserialize decodes a JSON array of records. A single bad record fails the
// whole list.
func Deserialize(data []byte) ([]Comment, error) {
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("unmarshal comments: %w", err)
	}

	list := make([]Comment, 0, len(records))
	for _, r := range records {
		c, err := FromRecord(r)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}

	return list, nil
}
