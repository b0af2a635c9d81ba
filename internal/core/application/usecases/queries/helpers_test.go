package queries_test

import (
	"testing"
	"time"

	"drivethrough/internal/adapters/out/memory/sessionrepo"
	"drivethrough/internal/core/domain/model/intent"
	"drivethrough/internal/core/domain/model/kernel"
	"drivethrough/internal/core/domain/model/menu"
	"drivethrough/internal/core/domain/model/session"
	"drivethrough/internal/core/domain/services"

	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newCatalog(t *testing.T) *menu.Catalog {
	t.Helper()
	var items []menu.Item
	for _, spec := range []struct{ name, price, category string }{
		{"Big Mac", "5.00", "burger"},
		{"Large Fry", "3.00", "side"},
		{"Coke", "2.00", "drink"},
	} {
		item, err := menu.NewItem(spec.name, kernel.MustMoney(spec.price), spec.category)
		require.NoError(t, err)
		items = append(items, item)
	}
	catalog, err := menu.NewCatalog(items...)
	require.NoError(t, err)
	return catalog
}

// seedSession stores a session with every batch applied and recorded.
func seedSession(t *testing.T, repo *sessionrepo.Repository, batches ...intent.Batch) kernel.UUID {
	t.Helper()

	machine, err := services.NewOrderStateMachine(newCatalog(t))
	require.NoError(t, err)

	s, err := session.NewSession(kernel.NewUUID(), func() time.Time { return testNow })
	require.NoError(t, err)

	for _, batch := range batches {
		next, _, applyErr := machine.Apply(s.Order(), batch)
		require.NoError(t, applyErr)
		_, err = s.Commit(batch, next)
		require.NoError(t, err)
	}

	require.NoError(t, repo.Add(t.Context(), s))
	return s.ID()
}
