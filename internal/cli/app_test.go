package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/avoronov/itemkeeper/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSyncer struct {
	itemMsg   string
	itemErr   error
	itemID    int64
	itemDelay bool

	allCount int
	allErr   error
	allBatch int
	allCalls int
}

func (f *fakeSyncer) SyncItemByID(ctx context.Context, id int64, simulateDelay bool) (string, error) {
	f.itemID = id
	f.itemDelay = simulateDelay
	return f.itemMsg, f.itemErr
}

func (f *fakeSyncer) SyncAll(ctx context.Context, batchSize int) (int, error) {
	f.allCalls++
	f.allBatch = batchSize
	return f.allCount, f.allErr
}

type fakeGenerator struct {
	count    int
	err      error
	reqCount int
}

func (f *fakeGenerator) Generate(ctx context.Context, count int) (int, error) {
	f.reqCount = count
	return f.count, f.err
}

func newTestApp(s Syncer, g Generator) (*App, *bytes.Buffer) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	out := &bytes.Buffer{}
	return &App{config: cfg, syncer: s, generator: g, out: out}, out
}

func TestRun_NoCommand(t *testing.T) {
	app, _ := newTestApp(&fakeSyncer{}, &fakeGenerator{})

	err := app.Run(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "usage")
}

func TestRun_UnknownCommand(t *testing.T) {
	app, _ := newTestApp(&fakeSyncer{}, &fakeGenerator{})

	err := app.Run(context.Background(), []string{"frobnicate"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "frobnicate")
}

func TestSync_SingleItem(t *testing.T) {
	s := &fakeSyncer{itemMsg: `external price for "Widget" updated to 16.40`}
	app, out := newTestApp(s, &fakeGenerator{})

	err := app.Run(context.Background(), []string{"sync", "-item", "42"})
	require.NoError(t, err)

	assert.Equal(t, int64(42), s.itemID)
	assert.False(t, s.itemDelay, "management sync must not simulate provider delay")
	assert.Contains(t, out.String(), "Widget")
	assert.Zero(t, s.allCalls, "full sync must not run when -i is given")
}

func TestSync_SingleItemMissingIsSoft(t *testing.T) {
	s := &fakeSyncer{itemMsg: "item with ID 404 does not exist"}
	app, out := newTestApp(s, &fakeGenerator{})

	err := app.Run(context.Background(), []string{"sync", "-item", "404"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "does not exist")
}

func TestSync_AllItems(t *testing.T) {
	s := &fakeSyncer{allCount: 7}
	app, out := newTestApp(s, &fakeGenerator{})

	err := app.Run(context.Background(), []string{"sync"})
	require.NoError(t, err)

	assert.Equal(t, 1, s.allCalls)
	assert.Equal(t, 500, s.allBatch, "default batch size comes from config")
	assert.Contains(t, out.String(), "synced 7 items")
}

func TestSync_AllItemsCustomBatch(t *testing.T) {
	s := &fakeSyncer{allCount: 7}
	app, _ := newTestApp(s, &fakeGenerator{})

	err := app.Run(context.Background(), []string{"sync", "-batch", "100"})
	require.NoError(t, err)
	assert.Equal(t, 100, s.allBatch)
}

func TestSync_ErrorPropagates(t *testing.T) {
	s := &fakeSyncer{allErr: errors.New("db is down")}
	app, _ := newTestApp(s, &fakeGenerator{})

	err := app.Run(context.Background(), []string{"sync"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is down")
}

func TestGenerate_Defaults(t *testing.T) {
	g := &fakeGenerator{count: 100000}
	app, out := newTestApp(&fakeSyncer{}, g)

	err := app.Run(context.Background(), []string{"generate"})
	require.NoError(t, err)

	assert.Equal(t, 100000, g.reqCount)
	assert.Contains(t, out.String(), "generated 100000 items")
}

func TestGenerate_CustomCount(t *testing.T) {
	g := &fakeGenerator{count: 250}
	app, out := newTestApp(&fakeSyncer{}, g)

	err := app.Run(context.Background(), []string{"generate", "-count", "250"})
	require.NoError(t, err)

	assert.Equal(t, 250, g.reqCount)
	assert.Contains(t, out.String(), "generated 250 items")
}

func TestGenerate_ErrorPropagates(t *testing.T) {
	g := &fakeGenerator{err: errors.New("db is down")}
	app, _ := newTestApp(&fakeSyncer{}, g)

	err := app.Run(context.Background(), []string{"generate"})
	require.Error(t, err)
}
