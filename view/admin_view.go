package view

import (
	"context"
	"log"
	"sync"

	"optica-vista-me/models"
	"optica-vista-me/query"
	"optica-vista-me/store"
)

// defaultPageSize is the admin listing's initial page size
const defaultPageSize = 10

// AdminCatalogView backs the admin screens. It owns the mutation flow:
// after every successful create, update or delete it refetches the full
// collection, writes it into the bus mirror and publishes the update
// signal, so mounted public views resync without their own fetch. It
// also owns the listing controls (sort, page, filter, search) and the
// visible-page pipeline they feed.
type AdminCatalogView struct {
	store CatalogMutator
	bus   *Bus

	mu         sync.Mutex
	generation uint64
	state      LoadState
	loadErr    error
	frames     []models.Frame
	sunglasses []models.Sunglasses

	frameSort     query.SortState
	framePage     query.PageState
	frameCriteria query.FrameCriteria
	frameSearch   string

	sunglassesSort     query.SortState
	sunglassesPage     query.PageState
	sunglassesCriteria query.SunglassesCriteria
	sunglassesSearch   string
}

func NewAdminCatalogView(mutator CatalogMutator, bus *Bus) *AdminCatalogView {
	return &AdminCatalogView{
		store:          mutator,
		bus:            bus,
		state:          StateIdle,
		framePage:      query.PageState{Page: 1, PageSize: defaultPageSize},
		sunglassesPage: query.PageState{Page: 1, PageSize: defaultPageSize},
	}
}

// Load fetches both catalog collections. Superseded or cancelled loads
// are discarded, never applied.
func (v *AdminCatalogView) Load(ctx context.Context) {
	v.mu.Lock()
	v.generation++
	gen := v.generation
	v.state = StateLoading
	v.loadErr = nil
	v.mu.Unlock()

	frames := v.store.GetFrames(ctx)
	sunglasses := v.store.GetSunglasses(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.generation {
		log.Printf("🕐 Discarding stale admin load (generation %d)", gen)
		return
	}
	if err := ctx.Err(); err != nil {
		v.state = StateError
		v.loadErr = err
		return
	}
	v.frames = frames
	v.sunglasses = sunglasses
	v.state = StateReady
}

func (v *AdminCatalogView) State() (LoadState, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state, v.loadErr
}

func (v *AdminCatalogView) Frames() []models.Frame {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]models.Frame, len(v.frames))
	copy(out, v.frames)
	return out
}

func (v *AdminCatalogView) Sunglasses() []models.Sunglasses {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]models.Sunglasses, len(v.sunglasses))
	copy(out, v.sunglasses)
	return out
}

func (v *AdminCatalogView) FrameByID(id string) (*models.Frame, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.frames {
		if v.frames[i].ID == id {
			frame := v.frames[i]
			return &frame, true
		}
	}
	return nil, false
}

func (v *AdminCatalogView) SunglassesByID(id string) (*models.Sunglasses, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.sunglasses {
		if v.sunglasses[i].ID == id {
			item := v.sunglasses[i]
			return &item, true
		}
	}
	return nil, false
}

// FilterFrames and the helpers below mirror the public view's read-side
// surface, so admin screens can reuse the storefront's presentation
// components unchanged.
func (v *AdminCatalogView) FilterFrames(c query.FrameCriteria) []models.Frame {
	return query.FilterFrames(v.Frames(), c)
}

func (v *AdminCatalogView) SearchFrames(q string) []models.Frame {
	return query.SearchFrames(v.Frames(), q)
}

func (v *AdminCatalogView) FilterSunglasses(c query.SunglassesCriteria) []models.Sunglasses {
	return query.FilterSunglasses(v.Sunglasses(), c)
}

func (v *AdminCatalogView) Brands() []string {
	return query.DistinctBrands(v.Frames())
}

func (v *AdminCatalogView) Categories() []string {
	return query.DistinctCategories(v.Frames())
}

func (v *AdminCatalogView) Materials() []string {
	return query.DistinctMaterials(v.Frames())
}

func (v *AdminCatalogView) Shapes() []string {
	return query.DistinctShapes(v.Frames())
}

func (v *AdminCatalogView) Colors() []string {
	return query.DistinctColors(v.Frames())
}

func (v *AdminCatalogView) SunglassesBrands() []string {
	return query.DistinctBrands(framesOf(v.Sunglasses()))
}

func (v *AdminCatalogView) SunglassesCategories() []string {
	return query.DistinctCategories(framesOf(v.Sunglasses()))
}

func (v *AdminCatalogView) SunglassesMaterials() []string {
	return query.DistinctMaterials(framesOf(v.Sunglasses()))
}

func (v *AdminCatalogView) SunglassesShapes() []string {
	return query.DistinctShapes(framesOf(v.Sunglasses()))
}

func (v *AdminCatalogView) SunglassesColors() []string {
	return query.DistinctColors(framesOf(v.Sunglasses()))
}

// syncFrames refetches the collection after a mutation, mirrors it and
// signals subscribed views. The refetch picks up store-assigned fields
// and ordering rather than trusting the local copy.
func (v *AdminCatalogView) syncFrames(ctx context.Context) {
	frames := v.store.GetFrames(ctx)
	v.mu.Lock()
	v.frames = frames
	v.state = StateReady
	v.mu.Unlock()

	v.bus.SetMirror(store.CollectionFrames, frames)
	v.bus.Publish(store.CollectionFrames)
}

func (v *AdminCatalogView) syncSunglasses(ctx context.Context) {
	items := v.store.GetSunglasses(ctx)
	v.mu.Lock()
	v.sunglasses = items
	v.state = StateReady
	v.mu.Unlock()

	v.bus.SetMirror(store.CollectionSunglasses, items)
	v.bus.Publish(store.CollectionSunglasses)
}

// CreateFrame persists a new frame. Returns nil when no durable save
// path was reached.
func (v *AdminCatalogView) CreateFrame(ctx context.Context, frame models.Frame) *models.Frame {
	created := v.store.CreateFrame(ctx, frame)
	if created == nil {
		v.mu.Lock()
		v.state = StateError
		v.mu.Unlock()
		return nil
	}
	v.syncFrames(ctx)
	return created
}

func (v *AdminCatalogView) UpdateFrame(ctx context.Context, id string, req models.FrameUpdateRequest) store.MutationResult {
	result := v.store.UpdateFrame(ctx, id, req)
	if result.PrimaryOK {
		v.syncFrames(ctx)
	}
	return result
}

func (v *AdminCatalogView) DeleteFrame(ctx context.Context, id string) store.MutationResult {
	result := v.store.DeleteFrame(ctx, id)
	if result.PrimaryOK {
		v.syncFrames(ctx)
	}
	return result
}

func (v *AdminCatalogView) CreateSunglasses(ctx context.Context, item models.Sunglasses) *models.Sunglasses {
	created := v.store.CreateSunglasses(ctx, item)
	if created == nil {
		v.mu.Lock()
		v.state = StateError
		v.mu.Unlock()
		return nil
	}
	v.syncSunglasses(ctx)
	return created
}

func (v *AdminCatalogView) UpdateSunglasses(ctx context.Context, id string, req models.SunglassesUpdateRequest) store.MutationResult {
	result := v.store.UpdateSunglasses(ctx, id, req)
	if result.PrimaryOK {
		v.syncSunglasses(ctx)
	}
	return result
}

func (v *AdminCatalogView) DeleteSunglasses(ctx context.Context, id string) store.MutationResult {
	result := v.store.DeleteSunglasses(ctx, id)
	if result.PrimaryOK {
		v.syncSunglasses(ctx)
	}
	return result
}

// SaveCompany persists the profile and mirrors it for the public pages
func (v *AdminCatalogView) SaveCompany(ctx context.Context, profile models.CompanyProfile) store.SaveOutcome {
	outcome := v.store.SaveCompany(ctx, profile)
	if outcome.Durable() {
		fresh := v.store.GetCompany(ctx)
		v.bus.SetMirror(store.CollectionCompany, fresh)
		v.bus.Publish(store.CollectionCompany)
	}
	return outcome
}

// SelectFrameSort applies the column-header rule: same key toggles the
// direction, a new key starts ascending.
func (v *AdminCatalogView) SelectFrameSort(key string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.frameSort.Select(key)
}

func (v *AdminCatalogView) FrameSort() query.SortState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.frameSort
}

func (v *AdminCatalogView) SetFramePage(page int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.framePage.Page = page
}

// SetFramePageSize changes the page size while keeping the first item of
// the old page visible.
func (v *AdminCatalogView) SetFramePageSize(size int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.framePage.SetPageSize(size)
}

// SetFrameCriteria replaces the filter and resets to page 1
func (v *AdminCatalogView) SetFrameCriteria(c query.FrameCriteria) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.frameCriteria = c
	v.framePage.Reset()
}

// SetFrameSearch replaces the search text and resets to page 1
func (v *AdminCatalogView) SetFrameSearch(q string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.frameSearch = q
	v.framePage.Reset()
}

// VisibleFrames runs the listing pipeline: filter, search, sort, then
// paginate. The page returned is clamped to the collection's extent and
// adopted as the current page, so a shrink (say a deletion emptying the
// last page) lands the admin on the last real page instead of an empty
// one.
func (v *AdminCatalogView) VisibleFrames() query.Page[models.Frame] {
	v.mu.Lock()
	items := make([]models.Frame, len(v.frames))
	copy(items, v.frames)
	criteria := v.frameCriteria
	search := v.frameSearch
	sortState := v.frameSort
	pageState := v.framePage
	v.mu.Unlock()

	items = query.FilterFrames(items, criteria)
	items = query.SearchFrames(items, search)
	items = query.Apply(sortState, items, query.FrameSortOptions())
	page := query.Paginate(items, pageState.Page, pageState.PageSize)

	v.mu.Lock()
	v.framePage.Page = page.Page
	v.mu.Unlock()
	return page
}

func (v *AdminCatalogView) SelectSunglassesSort(key string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.sunglassesSort.Select(key)
}

func (v *AdminCatalogView) SetSunglassesPage(page int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.sunglassesPage.Page = page
}

func (v *AdminCatalogView) SetSunglassesPageSize(size int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.sunglassesPage.SetPageSize(size)
}

func (v *AdminCatalogView) SetSunglassesCriteria(c query.SunglassesCriteria) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.sunglassesCriteria = c
	v.sunglassesPage.Reset()
}

func (v *AdminCatalogView) SetSunglassesSearch(q string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.sunglassesSearch = q
	v.sunglassesPage.Reset()
}

// VisibleSunglasses mirrors VisibleFrames for the sunglasses listing
func (v *AdminCatalogView) VisibleSunglasses() query.Page[models.Sunglasses] {
	v.mu.Lock()
	items := make([]models.Sunglasses, len(v.sunglasses))
	copy(items, v.sunglasses)
	criteria := v.sunglassesCriteria
	search := v.sunglassesSearch
	sortState := v.sunglassesSort
	pageState := v.sunglassesPage
	v.mu.Unlock()

	items = query.FilterSunglasses(items, criteria)
	if search != "" {
		filtered := items[:0:0]
		for _, item := range items {
			if query.MatchesQuery(item.Frame, search) {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}
	items = query.Apply(sortState, items, query.SunglassesSortOptions())
	page := query.Paginate(items, pageState.Page, pageState.PageSize)

	v.mu.Lock()
	v.sunglassesPage.Page = page.Page
	v.mu.Unlock()
	return page
}
