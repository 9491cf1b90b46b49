package repository

import (
	"encoding/json"
	"fmt"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// snapshotItem is the wire shape of one cart entry: {"name", "price", "img"}.
// Price stays a JSON number so snapshots written by other clients keep loading.
type snapshotItem struct {
	Name  string      `json:"name"`
	Price json.Number `json:"price"`
	Img   string      `json:"img"`
}

func encodeSnapshot(items []domain.CartItem) ([]byte, error) {
	wire := make([]snapshotItem, 0, len(items))
	for _, item := range items {
		wire = append(wire, snapshotItem{
			Name:  item.Name,
			Price: json.Number(item.Price.String()),
			Img:   item.Img,
		})
	}

	payload, err := json.Marshal(wire)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	return payload, nil
}

func decodeSnapshot(payload []byte) ([]domain.CartItem, error) {
	var wire []snapshotItem
	if err := json.Unmarshal(payload, &wire); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrSnapshotCorrupt, err)
	}

	items := make([]domain.CartItem, 0, len(wire))
	for i, w := range wire {
		price, err := decimal.NewFromString(w.Price.String())
		if err != nil {
			return nil, fmt.Errorf("%w: item[%d] price[%s]: %w", domain.ErrSnapshotCorrupt, i, w.Price, err)
		}

		items = append(items, domain.CartItem{
			Name:  w.Name,
			Price: price,
			Img:   w.Img,
		})
	}

	return items, nil
}

func validateKey(key string) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	return nil
}
