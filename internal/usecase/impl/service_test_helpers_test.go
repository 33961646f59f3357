package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"chow/config"
	"chow/internal/domain/repository"
	mockRepo "chow/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(courierFee int64) *config.Config {
	return &config.Config{
		Pricing: &config.PricingConfig{
			CourierFee: courierFee,
		},
	}
}

// expectTransaction makes the transaction manager run the unit of work
// against the given repository factory, passing the business error through
// the way the real manager does.
func expectTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager, factory *mockRepo.MockRepositoryFactory) {
	t.Helper()
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
