package doctor

import (
	"context"
	"errors"
	"fmt"

	"github.com/smart-events/board/internal/core/comment"
)

// StorageCheck verifies the persisted comment list can be read and decoded.
// Fix removes stored data that cannot be decoded; the board ignores it anyway.
type StorageCheck struct {
	storage comment.Storage
	key     string
}

// NewStorageCheck creates a check of the list stored under key.
func NewStorageCheck(storage comment.Storage, key string) *StorageCheck {
	return &StorageCheck{storage: storage, key: key}
}

func (c *StorageCheck) Name() string {
	return "Storage"
}

func (c *StorageCheck) Run(ctx context.Context) Result {
	return c.check(ctx, false)
}

func (c *StorageCheck) Fix(ctx context.Context) Result {
	return c.check(ctx, true)
}

func (c *StorageCheck) check(ctx context.Context, fix bool) Result {
	result := Result{Name: c.Name()}

	raw, err := c.storage.Get(ctx, c.key)
	switch {
	case errors.Is(err, comment.ErrKeyNotFound):
		result.Items = append(result.Items, CheckItem{
			Label:  "Comments",
			Status: StatusPass,
			Detail: "nothing stored yet",
		})
		return result
	case err != nil:
		result.Items = append(result.Items, CheckItem{
			Label:  "Read",
			Status: StatusFail,
			Detail: err.Error(),
		})
		return result
	}

	if raw == "" {
		result.Items = append(result.Items, CheckItem{
			Label:  "Comments",
			Status: StatusPass,
			Detail: "empty",
		})
		return result
	}

	list, err := comment.Deserialize([]byte(raw))
	if err != nil {
		result.Items = append(result.Items, c.unreadable(ctx, err, fix))
		return result
	}

	result.Items = append(result.Items, CheckItem{
		Label:  "Comments",
		Status: StatusPass,
		Detail: fmt.Sprintf("%d stored", len(list)),
	})
	return result
}

func (c *StorageCheck) unreadable(ctx context.Context, decodeErr error, fix bool) CheckItem {
	if !fix {
		return CheckItem{
			Label:   "Decode",
			Status:  StatusWarn,
			Detail:  fmt.Sprintf("stored data is unreadable and will be ignored: %v", decodeErr),
			Fixable: true,
		}
	}

	if err := c.storage.Remove(ctx, c.key); err != nil {
		return CheckItem{
			Label:  "Decode",
			Status: StatusFail,
			Detail: fmt.Sprintf("failed to remove unreadable data: %v", err),
		}
	}

	return CheckItem{
		Label:  "Decode",
		Status: StatusPass,
		Detail: "removed unreadable data",
	}
}
