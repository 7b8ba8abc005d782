package view

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"optica-vista-me/models"
	"optica-vista-me/query"
	"optica-vista-me/store"
)

// fakeStore is an in-memory CatalogMutator that counts reads, so tests
// can tell a mirror resync apart from a refetch.
type fakeStore struct {
	mu           sync.Mutex
	frames       []models.Frame
	sunglasses   []models.Sunglasses
	company      *models.CompanyProfile
	nextID       int
	frameFetches int
	onGetFrames  func()
}

func (s *fakeStore) GetFrames(ctx context.Context) []models.Frame {
	s.mu.Lock()
	s.frameFetches++
	hook := s.onGetFrames
	out := make([]models.Frame, len(s.frames))
	copy(out, s.frames)
	s.mu.Unlock()
	if hook != nil {
		hook()
	}
	return out
}

func (s *fakeStore) GetSunglasses(ctx context.Context) []models.Sunglasses {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Sunglasses, len(s.sunglasses))
	copy(out, s.sunglasses)
	return out
}

func (s *fakeStore) GetCompany(ctx context.Context) *models.CompanyProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.company
}

func (s *fakeStore) CreateFrame(ctx context.Context, frame models.Frame) *models.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	frame.ID = fmt.Sprintf("f-%d", s.nextID)
	frame.NormalizeImages()
	s.frames = append(s.frames, frame)
	return &frame
}

func (s *fakeStore) UpdateFrame(ctx context.Context, id string, req models.FrameUpdateRequest) store.MutationResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.frames {
		if s.frames[i].ID == id {
			req.ApplyTo(&s.frames[i])
			return store.MutationResult{PrimaryOK: true, Outcome: store.SavePersisted}
		}
	}
	return store.MutationResult{PrimaryOK: false, Outcome: store.SaveFailed}
}

func (s *fakeStore) DeleteFrame(ctx context.Context, id string) store.MutationResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.frames {
		if s.frames[i].ID == id {
			s.frames = append(s.frames[:i], s.frames[i+1:]...)
			return store.MutationResult{PrimaryOK: true, Outcome: store.SavePersisted}
		}
	}
	return store.MutationResult{PrimaryOK: false, Outcome: store.SaveFailed}
}

func (s *fakeStore) CreateSunglasses(ctx context.Context, item models.Sunglasses) *models.Sunglasses {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	item.ID = fmt.Sprintf("s-%d", s.nextID)
	item.NormalizeImages()
	s.sunglasses = append(s.sunglasses, item)
	return &item
}

func (s *fakeStore) UpdateSunglasses(ctx context.Context, id string, req models.SunglassesUpdateRequest) store.MutationResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.sunglasses {
		if s.sunglasses[i].ID == id {
			req.ApplyTo(&s.sunglasses[i])
			return store.MutationResult{PrimaryOK: true, Outcome: store.SavePersisted}
		}
	}
	return store.MutationResult{PrimaryOK: false, Outcome: store.SaveFailed}
}

func (s *fakeStore) DeleteSunglasses(ctx context.Context, id string) store.MutationResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.sunglasses {
		if s.sunglasses[i].ID == id {
			s.sunglasses = append(s.sunglasses[:i], s.sunglasses[i+1:]...)
			return store.MutationResult{PrimaryOK: true, Outcome: store.SavePersisted}
		}
	}
	return store.MutationResult{PrimaryOK: false, Outcome: store.SaveFailed}
}

func (s *fakeStore) SaveCompany(ctx context.Context, profile models.CompanyProfile) store.SaveOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.company = &profile
	return store.SavePersisted
}

func (s *fakeStore) fetchCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frameFetches
}

func seedFrames(n int) []models.Frame {
	frames := make([]models.Frame, 0, n)
	for i := 1; i <= n; i++ {
		frames = append(frames, models.Frame{
			ID:    fmt.Sprintf("f-%d", i),
			Name:  fmt.Sprintf("Frame %02d", i),
			Brand: "Lumen",
			Price: float64(100 + i),
		})
	}
	return frames
}

func TestPublicViewResyncsFromMirrorWithoutRefetch(t *testing.T) {
	fake := &fakeStore{frames: seedFrames(2), nextID: 2}
	bus := NewBus()
	ctx := context.Background()

	public := NewPublicCatalogView(fake, bus)
	defer public.Close()
	public.Load(ctx)
	require.Len(t, public.Frames(), 2)
	fetchesAfterLoad := fake.fetchCount()

	admin := NewAdminCatalogView(fake, bus)
	admin.Load(ctx)

	created := admin.CreateFrame(ctx, models.Frame{Name: "Nuevo", Brand: "Vista"})
	require.NotNil(t, created)

	// The admin mutation refetched once; the public view picked the new
	// collection up from the mirror with no fetch of its own.
	assert.Len(t, public.Frames(), 3)
	assert.Equal(t, fetchesAfterLoad+2, fake.fetchCount(), "only the admin load and post-mutation refetch hit the store")

	_, found := public.FrameByID(created.ID)
	assert.True(t, found)
}

func TestPublicViewStateMachine(t *testing.T) {
	fake := &fakeStore{frames: seedFrames(1)}
	bus := NewBus()
	public := NewPublicCatalogView(fake, bus)
	defer public.Close()

	state, err := public.State()
	assert.Equal(t, StateIdle, state)
	assert.NoError(t, err)

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	public.Load(cancelled)
	state, err = public.State()
	assert.Equal(t, StateError, state)
	assert.Error(t, err)
	assert.Empty(t, public.Frames(), "a cancelled load is never applied")

	// Error is retryable.
	public.Load(context.Background())
	state, err = public.State()
	assert.Equal(t, StateReady, state)
	assert.NoError(t, err)
	assert.Len(t, public.Frames(), 1)
}

func TestPublicViewDiscardsSupersededLoad(t *testing.T) {
	fake := &fakeStore{frames: seedFrames(1)}
	bus := NewBus()
	public := NewPublicCatalogView(fake, bus)
	defer public.Close()

	// The first load is superseded mid-flight by a second one that sees
	// three frames; the first response must not overwrite it.
	reentered := false
	fake.onGetFrames = func() {
		if reentered {
			return
		}
		reentered = true
		fake.mu.Lock()
		fake.frames = seedFrames(3)
		fake.mu.Unlock()
		public.Load(context.Background())
	}

	public.Load(context.Background())
	state, _ := public.State()
	assert.Equal(t, StateReady, state)
	assert.Len(t, public.Frames(), 3, "the newer load's result wins")
}

func TestAdminViewReclampsPageAfterDeletion(t *testing.T) {
	fake := &fakeStore{frames: seedFrames(21), nextID: 21}
	bus := NewBus()
	ctx := context.Background()

	admin := NewAdminCatalogView(fake, bus)
	admin.Load(ctx)
	admin.SetFramePage(3)

	page := admin.VisibleFrames()
	require.Equal(t, 3, page.Page)
	require.Equal(t, 1, len(page.Items))

	result := admin.DeleteFrame(ctx, "f-21")
	require.True(t, result.PrimaryOK)

	page = admin.VisibleFrames()
	assert.Equal(t, 2, page.Page, "page 3 no longer exists after the shrink")
	assert.Equal(t, 2, page.TotalPages)
	assert.Len(t, page.Items, 10)
}

func TestAdminViewFilterAndSearchResetToPageOne(t *testing.T) {
	fake := &fakeStore{frames: seedFrames(30), nextID: 30}
	bus := NewBus()
	admin := NewAdminCatalogView(fake, bus)
	admin.Load(context.Background())

	admin.SetFramePage(3)
	admin.SetFrameCriteria(query.FrameCriteria{Brand: strp("Lumen")})
	assert.Equal(t, 1, admin.VisibleFrames().Page)

	admin.SetFramePage(2)
	admin.SetFrameSearch("Frame")
	assert.Equal(t, 1, admin.VisibleFrames().Page)
}

func TestAdminViewSortSelection(t *testing.T) {
	fake := &fakeStore{frames: seedFrames(3), nextID: 3}
	bus := NewBus()
	admin := NewAdminCatalogView(fake, bus)
	admin.Load(context.Background())

	admin.SelectFrameSort("price")
	assert.Equal(t, query.SortState{Key: "price", Direction: query.Asc}, admin.FrameSort())

	page := admin.VisibleFrames()
	require.Len(t, page.Items, 3)
	assert.Equal(t, "Frame 01", page.Items[0].Name)

	admin.SelectFrameSort("price")
	assert.Equal(t, query.Desc, admin.FrameSort().Direction)
	page = admin.VisibleFrames()
	assert.Equal(t, "Frame 03", page.Items[0].Name)

	admin.SelectFrameSort("name")
	assert.Equal(t, query.SortState{Key: "name", Direction: query.Asc}, admin.FrameSort())
}

func TestAdminViewPageSizeChangeKeepsFirstVisibleItem(t *testing.T) {
	fake := &fakeStore{frames: seedFrames(30), nextID: 30}
	bus := NewBus()
	admin := NewAdminCatalogView(fake, bus)
	admin.Load(context.Background())

	admin.SelectFrameSort("name")
	admin.SetFramePage(3)
	require.Equal(t, "Frame 21", admin.VisibleFrames().Items[0].Name)

	admin.SetFramePageSize(25)
	page := admin.VisibleFrames()
	assert.Equal(t, 1, page.Page)
	names := make(map[string]bool, len(page.Items))
	for _, f := range page.Items {
		names[f.Name] = true
	}
	assert.True(t, names["Frame 21"], "the old page's first item stays visible")
}

func TestReadHelpersMatchAcrossVariants(t *testing.T) {
	fake := &fakeStore{
		frames: []models.Frame{
			{ID: "f-1", Name: "Atlas", Brand: "Lumen", Category: "optical", Material: "acetate", Shape: "round", Color: "tortoise"},
			{ID: "f-2", Name: "Borealis", Brand: "Vista", Category: "optical", Material: "titanium", Shape: "square", Color: "black"},
		},
		sunglasses: []models.Sunglasses{
			{Frame: models.Frame{ID: "s-1", Name: "Solar", Brand: "Helio", Category: "sun", Material: "nylon", Shape: "aviator", Color: "gold"}},
		},
	}
	bus := NewBus()
	ctx := context.Background()

	public := NewPublicCatalogView(fake, bus)
	defer public.Close()
	public.Load(ctx)
	admin := NewAdminCatalogView(fake, bus)
	admin.Load(ctx)

	// The two variants present the same derived lists, so either can back
	// the same dropdown components.
	assert.Equal(t, public.Brands(), admin.Brands())
	assert.Equal(t, public.Categories(), admin.Categories())
	assert.Equal(t, public.Materials(), admin.Materials())
	assert.Equal(t, public.Shapes(), admin.Shapes())
	assert.Equal(t, public.Colors(), admin.Colors())
	assert.Equal(t, []string{"Lumen", "Vista"}, admin.Brands())
	assert.Equal(t, []string{"optical"}, admin.Categories())

	// Sunglasses dropdowns come from the sunglasses collection only.
	assert.Equal(t, []string{"Helio"}, public.SunglassesBrands())
	assert.Equal(t, []string{"sun"}, admin.SunglassesCategories())
	assert.Equal(t, []string{"gold"}, admin.SunglassesColors())

	// Filter, search and lookup carry over to the admin variant too.
	assert.Len(t, admin.FilterFrames(query.FrameCriteria{Brand: strp("vista")}), 1)
	assert.Len(t, admin.SearchFrames("atlas"), 1)
	assert.Len(t, admin.FilterSunglasses(query.SunglassesCriteria{}), 1)

	frame, found := admin.FrameByID("f-1")
	require.True(t, found)
	assert.Equal(t, "Atlas", frame.Name)
	_, found = admin.SunglassesByID("s-1")
	assert.True(t, found)
}

func TestBusUnsubscribeStopsDelivery(t *testing.T) {
	bus := NewBus()
	calls := 0
	unsubscribe := bus.Subscribe(func(collection string) { calls++ })

	bus.Publish(store.CollectionFrames)
	assert.Equal(t, 1, calls)

	unsubscribe()
	bus.Publish(store.CollectionFrames)
	assert.Equal(t, 1, calls)
}

func TestAdminSaveCompanyMirrorsForPublicView(t *testing.T) {
	fake := &fakeStore{}
	bus := NewBus()
	ctx := context.Background()

	public := NewPublicCatalogView(fake, bus)
	defer public.Close()
	public.Load(ctx)
	require.Nil(t, public.Company())

	admin := NewAdminCatalogView(fake, bus)
	outcome := admin.SaveCompany(ctx, models.CompanyProfile{Name: "Óptica Vista"})
	require.Equal(t, store.SavePersisted, outcome)

	profile := public.Company()
	require.NotNil(t, profile)
	assert.Equal(t, "Óptica Vista", profile.Name)
}

func strp(s string) *string { return &s }
