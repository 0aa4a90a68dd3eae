package application

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"slices"

	"github.com/Apurer/go-gin-shop-api/internal/domains/store/domain"
)

type normalizedPlacement struct {
	ClientID   int64   `json:"clientId"`
	ProductIDs []int64 `json:"productIds"`
}

// FingerprintPlacement builds a deterministic hash of a normalized placement,
// excluding the idempotency key and timestamp. Product order does not matter.
func FingerprintPlacement(placement domain.Placement) (string, error) {
	ids := slices.Clone(placement.ProductIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)
	payload, err := json.Marshal(normalizedPlacement{ClientID: placement.ClientID, ProductIDs: ids})
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}
