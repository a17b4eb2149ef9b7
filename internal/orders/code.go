package orders

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	orderCodePrefix = "GP"
	codeAttempts    = 5
)

var codeSpace = big.NewInt(1_000_000)

func newOrderCode() (string, error) {
	n, err := rand.Int(rand.Reader, codeSpace)
	if err != nil {
		return "", fmt.Errorf("order code: %w", err)
	}
	return fmt.Sprintf("%s%06d", orderCodePrefix, n), nil
}

// uniqueOrderCode draws random codes until one is free in the store.
// The unique index on order_code is the backstop for the race between
// the check and the insert.
func (s *Service) uniqueOrderCode(ctx context.Context) (string, error) {
	for i := 0; i < codeAttempts; i++ {
		code, err := newOrderCode()
		if err != nil {
			return "", err
		}
		exists, err := s.Repo.OrderCodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", fmt.Errorf("order code: no free code after %d attempts", codeAttempts)
}
