package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/farmaon/farmaclass/internal/model"
)

func validateContext(ctx context.Context) error {
	if ctx == nil {
		return fmt.Errorf("context cannot be nil")
	}
	return ctx.Err()
}

func validateString(value, name string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s cannot be empty", name)
	}
	return nil
}

func validateProducts(products []model.Product) error {
	if len(products) == 0 {
		return fmt.Errorf("products cannot be empty")
	}
	for i, p := range products {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("product at index %d has no name", i)
		}
	}
	return nil
}
