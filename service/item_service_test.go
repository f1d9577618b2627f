package service

import (
	"context"
	"path/filepath"
	"testing"
	"todolist/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestItemService(t *testing.T) *ItemService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "items.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Item{}))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return NewItemService(db)
}

func TestItemService_ListEmpty(t *testing.T) {
	svc := newTestItemService(t)

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestItemService_CreateThenListInInsertionOrder(t *testing.T) {
	svc := newTestItemService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, models.ItemCreate{Text: "Buy dorayaki"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, models.ItemCreate{Text: "Demand payment for the dorayaki"})
	require.NoError(t, err)
	assert.Less(t, first.ID, second.ID)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Buy dorayaki", items[0].Text)
	assert.Equal(t, "Demand payment for the dorayaki", items[1].Text)

	total, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
}

func TestItemService_AcceptsEmptyAndDuplicateText(t *testing.T) {
	svc := newTestItemService(t)
	ctx := context.Background()

	for _, text := range []string{"", "  padded  ", "  padded  "} {
		_, err := svc.Create(ctx, models.ItemCreate{Text: text})
		require.NoError(t, err)
	}

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "", items[0].Text)
	assert.Equal(t, "  padded  ", items[1].Text)
	assert.Equal(t, "  padded  ", items[2].Text)
}

func TestInitServices(t *testing.T) {
	old := GlobalServices
	t.Cleanup(func() { GlobalServices = old })

	InitServices(&gorm.DB{})
	require.NotNil(t, GlobalServices)
	assert.NotNil(t, GlobalServices.Items)
}
