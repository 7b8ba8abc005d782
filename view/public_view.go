package view

import (
	"context"
	"log"
	"sync"

	"optica-vista-me/models"
	"optica-vista-me/query"
	"optica-vista-me/store"
)

// PublicCatalogView backs the storefront pages. It loads each collection
// once, answers lookups and filters from the loaded snapshot, and keeps
// itself current by resyncing from the bus mirror whenever an admin view
// publishes a change, without refetching.
type PublicCatalogView struct {
	reader      CatalogReader
	bus         *Bus
	unsubscribe func()

	mu         sync.Mutex
	generation uint64
	state      LoadState
	loadErr    error
	frames     []models.Frame
	sunglasses []models.Sunglasses
	company    *models.CompanyProfile
}

func NewPublicCatalogView(reader CatalogReader, bus *Bus) *PublicCatalogView {
	v := &PublicCatalogView{
		reader: reader,
		bus:    bus,
		state:  StateIdle,
	}
	v.unsubscribe = bus.Subscribe(v.onUpdate)
	return v
}

// Close detaches the view from the bus. Call it when the view unmounts.
func (v *PublicCatalogView) Close() {
	if v.unsubscribe != nil {
		v.unsubscribe()
	}
}

// Load fetches all collections. A Load superseded by a newer Load, or
// whose context was cancelled, has its result discarded and never
// applied.
func (v *PublicCatalogView) Load(ctx context.Context) {
	v.mu.Lock()
	v.generation++
	gen := v.generation
	v.state = StateLoading
	v.loadErr = nil
	v.mu.Unlock()

	frames := v.reader.GetFrames(ctx)
	sunglasses := v.reader.GetSunglasses(ctx)
	company := v.reader.GetCompany(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.generation {
		log.Printf("🕐 Discarding stale catalog load (generation %d)", gen)
		return
	}
	if err := ctx.Err(); err != nil {
		v.state = StateError
		v.loadErr = err
		return
	}
	v.frames = frames
	v.sunglasses = sunglasses
	v.company = company
	v.state = StateReady
}

// State reports the current loading state and, in the error state, the
// failure that caused it.
func (v *PublicCatalogView) State() (LoadState, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state, v.loadErr
}

// onUpdate resyncs the named collection from the bus mirror. Collections
// without a mirror snapshot are left untouched.
func (v *PublicCatalogView) onUpdate(collection string) {
	snapshot, ok := v.bus.Mirror(collection)
	if !ok {
		return
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	switch collection {
	case store.CollectionFrames:
		if frames, ok := snapshot.([]models.Frame); ok {
			v.frames = frames
			v.state = StateReady
		}
	case store.CollectionSunglasses:
		if items, ok := snapshot.([]models.Sunglasses); ok {
			v.sunglasses = items
			v.state = StateReady
		}
	case store.CollectionCompany:
		if profile, ok := snapshot.(*models.CompanyProfile); ok {
			v.company = profile
		}
	}
}

func (v *PublicCatalogView) Frames() []models.Frame {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]models.Frame, len(v.frames))
	copy(out, v.frames)
	return out
}

func (v *PublicCatalogView) Sunglasses() []models.Sunglasses {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]models.Sunglasses, len(v.sunglasses))
	copy(out, v.sunglasses)
	return out
}

func (v *PublicCatalogView) Company() *models.CompanyProfile {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.company
}

func (v *PublicCatalogView) FrameByID(id string) (*models.Frame, bool) {
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

func (v *PublicCatalogView) SunglassesByID(id string) (*models.Sunglasses, bool) {
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

func (v *PublicCatalogView) FilterFrames(c query.FrameCriteria) []models.Frame {
	return query.FilterFrames(v.Frames(), c)
}

func (v *PublicCatalogView) SearchFrames(q string) []models.Frame {
	return query.SearchFrames(v.Frames(), q)
}

func (v *PublicCatalogView) FilterSunglasses(c query.SunglassesCriteria) []models.Sunglasses {
	return query.FilterSunglasses(v.Sunglasses(), c)
}

// Brands lists the distinct frame brands for the storefront filter menus
func (v *PublicCatalogView) Brands() []string {
	return query.DistinctBrands(v.Frames())
}

func (v *PublicCatalogView) Categories() []string {
	return query.DistinctCategories(v.Frames())
}

func (v *PublicCatalogView) Materials() []string {
	return query.DistinctMaterials(v.Frames())
}

func (v *PublicCatalogView) Shapes() []string {
	return query.DistinctShapes(v.Frames())
}

func (v *PublicCatalogView) Colors() []string {
	return query.DistinctColors(v.Frames())
}

// SunglassesBrands and friends feed the sunglasses catalog's own filter
// dropdowns, derived from that collection rather than the frames one.
func (v *PublicCatalogView) SunglassesBrands() []string {
	return query.DistinctBrands(framesOf(v.Sunglasses()))
}

func (v *PublicCatalogView) SunglassesCategories() []string {
	return query.DistinctCategories(framesOf(v.Sunglasses()))
}

func (v *PublicCatalogView) SunglassesMaterials() []string {
	return query.DistinctMaterials(framesOf(v.Sunglasses()))
}

func (v *PublicCatalogView) SunglassesShapes() []string {
	return query.DistinctShapes(framesOf(v.Sunglasses()))
}

func (v *PublicCatalogView) SunglassesColors() []string {
	return query.DistinctColors(framesOf(v.Sunglasses()))
}

// framesOf projects sunglasses onto their embedded frame records so the
// frame-based helpers serve both catalogs.
func framesOf(items []models.Sunglasses) []models.Frame {
	frames := make([]models.Frame, len(items))
	for i := range items {
		frames[i] = items[i].Frame
	}
	return frames
}
