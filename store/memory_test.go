package store

import (
	"context"
	"testing"

	"event-ease/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_AccountRoundTrip(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	// Absent before any save.
	account, err := st.GetAccount(ctx)
	require.NoError(t, err)
	assert.Nil(t, account)

	saved := models.NewAccount("alice@example.com")
	require.NoError(t, st.SaveAccount(ctx, saved))

	got, err := st.GetAccount(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, saved, *got)

	// Overwrite replaces the single stored record.
	replacement := models.NewAccount("bob@example.com")
	require.NoError(t, st.SaveAccount(ctx, replacement))
	got, err = st.GetAccount(ctx)
	require.NoError(t, err)
	assert.Equal(t, replacement.ID, got.ID)

	// Clear is idempotent.
	require.NoError(t, st.ClearAccount(ctx))
	require.NoError(t, st.ClearAccount(ctx))
	got, err = st.GetAccount(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStore_TicketsOrderAndFilter(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	tickets, err := st.ListTickets(ctx)
	require.NoError(t, err)
	assert.Empty(t, tickets)

	mine := []models.Ticket{
		{ID: "t1", AccountID: "acct-1", Price: decimal.NewFromInt(100)},
		{ID: "t3", AccountID: "acct-1", Price: decimal.NewFromInt(300)},
	}
	require.NoError(t, st.AppendTicket(ctx, mine[0]))
	require.NoError(t, st.AppendTicket(ctx, models.Ticket{ID: "t2", AccountID: "acct-2"}))
	require.NoError(t, st.AppendTicket(ctx, mine[1]))

	all, err := st.ListTickets(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "t1", all[0].ID)
	assert.Equal(t, "t2", all[1].ID)
	assert.Equal(t, "t3", all[2].ID)

	owned, err := st.ListTicketsForAccount(ctx, "acct-1")
	require.NoError(t, err)
	require.Len(t, owned, 2)
	assert.Equal(t, "t1", owned[0].ID)
	assert.Equal(t, "t3", owned[1].ID)

	none, err := st.ListTicketsForAccount(ctx, "acct-9")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemoryStore_SeedCatalogIfAbsent_Idempotent(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	first := []models.Concert{{ID: "1", Title: "First"}}
	second := []models.Concert{{ID: "2", Title: "Second"}}

	require.NoError(t, st.SeedCatalogIfAbsent(ctx, first))
	require.NoError(t, st.SeedCatalogIfAbsent(ctx, second))

	catalog, err := st.GetCatalog(ctx)
	require.NoError(t, err)
	require.Len(t, catalog, 1)
	assert.Equal(t, "First", catalog[0].Title)
}

func TestMemoryStore_ListReturnsCopy(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, st.AppendTicket(ctx, models.Ticket{ID: "t1", AccountID: "acct-1"}))

	tickets, err := st.ListTickets(ctx)
	require.NoError(t, err)
	tickets[0].ID = "mutated"

	again, err := st.ListTickets(ctx)
	require.NoError(t, err)
	assert.Equal(t, "t1", again[0].ID)
}
