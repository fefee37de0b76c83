package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/invoiceloop/roisim/internal/clock"
	leaddomain "github.com/invoiceloop/roisim/internal/lead/domain"
	leadrepository "github.com/invoiceloop/roisim/internal/lead/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T, fake *clock.FakeClock) leaddomain.Service {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&leaddomain.Lead{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(Params{
		DB:    conn,
		Log:   zap.NewNop(),
		GenID: node,
		Clock: fake,
		Repo:  leadrepository.Provide(),
	})
}

func TestCreate_CapturesLead(t *testing.T) {
	fake := clock.NewFakeClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	svc := newTestService(t, fake)

	resp, err := svc.Create(context.Background(), leaddomain.CreateRequest{Email: "cfo@example.com"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "cfo@example.com", resp.Email)
	assert.Empty(t, resp.ScenarioID)
	assert.Equal(t, fake.Now(), resp.CreatedAt)
}

func TestCreate_TrimsEmail(t *testing.T) {
	fake := clock.NewFakeClock(time.Now())
	svc := newTestService(t, fake)

	resp, err := svc.Create(context.Background(), leaddomain.CreateRequest{Email: "  cfo@example.com  "})
	require.NoError(t, err)
	assert.Equal(t, "cfo@example.com", resp.Email)
}

func TestCreate_EmptyEmailRejected(t *testing.T) {
	fake := clock.NewFakeClock(time.Now())
	svc := newTestService(t, fake)

	_, err := svc.Create(context.Background(), leaddomain.CreateRequest{Email: "   "})
	assert.ErrorIs(t, err, leaddomain.ErrInvalidEmail)
}

func TestCreate_WithScenarioReference(t *testing.T) {
	fake := clock.NewFakeClock(time.Now())
	svc := newTestService(t, fake)

	resp, err := svc.Create(context.Background(), leaddomain.CreateRequest{
		Email:      "cfo@example.com",
		ScenarioID: "1234567890123456789",
	})
	require.NoError(t, err)
	assert.Equal(t, "1234567890123456789", resp.ScenarioID)
}

func TestCreate_MalformedScenarioReference(t *testing.T) {
	fake := clock.NewFakeClock(time.Now())
	svc := newTestService(t, fake)

	_, err := svc.Create(context.Background(), leaddomain.CreateRequest{
		Email:      "cfo@example.com",
		ScenarioID: "not-an-id",
	})
	assert.ErrorIs(t, err, leaddomain.ErrInvalidScenarioID)
}

func TestCreate_DuplicateEmailAllowed(t *testing.T) {
	fake := clock.NewFakeClock(time.Now())
	svc := newTestService(t, fake)

	ctx := context.Background()
	first, err := svc.Create(ctx, leaddomain.CreateRequest{Email: "cfo@example.com"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, leaddomain.CreateRequest{Email: "cfo@example.com"})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestList_NewestFirst(t *testing.T) {
	fake := clock.NewFakeClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	svc := newTestService(t, fake)

	ctx := context.Background()
	_, err := svc.Create(ctx, leaddomain.CreateRequest{Email: "older@example.com"})
	require.NoError(t, err)

	fake.Advance(time.Minute)
	_, err = svc.Create(ctx, leaddomain.CreateRequest{Email: "newer@example.com"})
	require.NoError(t, err)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "newer@example.com", items[0].Email)
	assert.Equal(t, "older@example.com", items[1].Email)
}
