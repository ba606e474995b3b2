//go:build unit

package commands_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	reqdto "room-booking/internal/handler/dto/request"
	"room-booking/internal/infra/memstore"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/queries"
	"room-booking/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roomFixture struct {
	ctx    context.Context
	rooms  commands.RoomCommands
	reads  queries.RoomQueries
	images *fakeImageStore
	cache  *recordingCache
}

func newRoomFixture() *roomFixture {
	store := memstore.New()
	f := &roomFixture{
		ctx:    context.Background(),
		images: newFakeImageStore(),
		cache:  &recordingCache{},
	}
	f.rooms = commands.NewRoomCommands(store, f.images, f.cache, clock.NewRealClock())
	f.reads = queries.NewRoomQueries(memstore.NewRoomReadStore(store))
	return f
}

func png(body string) *commands.ImageUpload {
	return &commands.ImageUpload{Filename: "photo.png", Content: strings.NewReader(body)}
}

func TestRoomCommands_NumbersAreMaxPlusOne(t *testing.T) {
	f := newRoomFixture()

	for want := 1; want <= 3; want++ {
		view, err := f.rooms.Create(f.ctx, reqdto.CreateRoomRequest{Title: "Room"}, nil)
		require.NoError(t, err)
		assert.Equal(t, want, view.RoomNumber)
		assert.False(t, view.IsOpen)
		assert.True(t, view.IsActive)
	}

	require.NoError(t, f.rooms.Delete(f.ctx, 1))
	view, err := f.rooms.Create(f.ctx, reqdto.CreateRoomRequest{Title: "Room"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, view.RoomNumber)

	require.NoError(t, f.rooms.Delete(f.ctx, 4))
	view, err = f.rooms.Create(f.ctx, reqdto.CreateRoomRequest{Title: "Room"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, view.RoomNumber)
}

func TestRoomCommands_ConcurrentCreatesGetDistinctNumbers(t *testing.T) {
	f := newRoomFixture()
	const workers = 10

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		numbers = map[int]bool{}
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			view, err := f.rooms.Create(f.ctx, reqdto.CreateRoomRequest{Title: "Room"}, nil)
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			numbers[view.RoomNumber] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, numbers, workers)
	for n := 1; n <= workers; n++ {
		assert.True(t, numbers[n], "missing room %d", n)
	}
}

func TestRoomCommands_Create(t *testing.T) {
	tests := []struct {
		name  string
		req   reqdto.CreateRoomRequest
		image *commands.ImageUpload
		errIs error
	}{
		{
			name:  "blank title",
			req:   reqdto.CreateRoomRequest{Title: "   "},
			image: png("x"),
			errIs: shared.ErrValidation,
		},
		{
			name:  "unsupported image",
			req:   reqdto.CreateRoomRequest{Title: "Board room"},
			image: &commands.ImageUpload{Filename: "notes.txt", Content: strings.NewReader("x")},
			errIs: shared.ErrValidation,
		},
		{
			name:  "with image",
			req:   reqdto.CreateRoomRequest{Title: " Board room ", Address: "2F"},
			image: png("x"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRoomFixture()

			view, err := f.rooms.Create(f.ctx, tt.req, tt.image)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				assert.Empty(t, f.images.saved, "stored image must be cleaned up")
				list, listErr := f.reads.List(f.ctx)
				require.NoError(t, listErr)
				assert.Empty(t, list)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "Board room", view.Title)
			assert.Equal(t, "2F", view.Address)
			require.NotNil(t, view.Image)
			assert.Contains(t, f.images.saved, *view.Image)
			assert.Equal(t, []int{1}, f.cache.invalidated)
		})
	}
}

func TestRoomCommands_UpdateReplacesImage(t *testing.T) {
	f := newRoomFixture()
	created, err := f.rooms.Create(f.ctx, reqdto.CreateRoomRequest{Title: "Board room", Description: "Large"}, png("old"))
	require.NoError(t, err)
	oldImage := *created.Image

	title := "Huddle"
	inactive := false
	updated, err := f.rooms.Update(f.ctx, created.RoomNumber, reqdto.UpdateRoomRequest{
		Title:    &title,
		IsActive: &inactive,
	}, png("new"))
	require.NoError(t, err)

	assert.Equal(t, "Huddle", updated.Title)
	assert.Equal(t, "Large", updated.Description)
	assert.False(t, updated.IsActive)
	require.NotNil(t, updated.Image)
	assert.NotEqual(t, oldImage, *updated.Image)
	assert.Equal(t, []string{oldImage}, f.images.removed)
}

func TestRoomCommands_UpdateMissingRoomDiscardsUpload(t *testing.T) {
	f := newRoomFixture()

	_, err := f.rooms.Update(f.ctx, 7, reqdto.UpdateRoomRequest{}, png("x"))

	require.ErrorIs(t, err, shared.ErrRoomNotFound)
	assert.Empty(t, f.images.saved)
}

func TestRoomCommands_SetOpen(t *testing.T) {
	f := newRoomFixture()
	_, err := f.rooms.Create(f.ctx, reqdto.CreateRoomRequest{Title: "A"}, nil)
	require.NoError(t, err)
	_, err = f.rooms.Create(f.ctx, reqdto.CreateRoomRequest{Title: "B"}, nil)
	require.NoError(t, err)

	opened, err := f.rooms.SetOpen(f.ctx, 2, true)
	require.NoError(t, err)
	assert.True(t, opened.IsOpen)

	open, err := f.reads.ListOpen(f.ctx)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, 2, open[0].RoomNumber)

	closed, err := f.rooms.SetOpen(f.ctx, 2, false)
	require.NoError(t, err)
	assert.False(t, closed.IsOpen)

	_, err = f.rooms.SetOpen(f.ctx, 9, true)
	assert.ErrorIs(t, err, shared.ErrRoomNotFound)
}

func TestRoomCommands_DeleteRemovesImage(t *testing.T) {
	f := newRoomFixture()
	created, err := f.rooms.Create(f.ctx, reqdto.CreateRoomRequest{Title: "A"}, png("x"))
	require.NoError(t, err)

	require.NoError(t, f.rooms.Delete(f.ctx, created.RoomNumber))

	assert.Equal(t, []string{*created.Image}, f.images.removed)
	_, err = f.reads.Get(f.ctx, created.RoomNumber)
	assert.ErrorIs(t, err, shared.ErrRoomNotFound)

	err = f.rooms.Delete(f.ctx, created.RoomNumber)
	assert.ErrorIs(t, err, shared.ErrRoomNotFound)
}
