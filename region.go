package easel

import (
	"bytes"
	"slices"

	"github.com/google/uuid"
)

// TrackedRegion is a vertical plane below the commit threshold, shown to the
// user as a grid while it grows.
type TrackedRegion struct {
	ID        uuid.UUID
	Extent    Extent
	Alignment Alignment
	Transform Mat4
	Grid      *Node
}

// Surface is a known vertical plane available to plane hit-tests. Unlike
// regions, surfaces outlive the commit: the object is dragged across them.
type Surface struct {
	ID        uuid.UUID
	Extent    Extent
	Transform Mat4
}

// RegionAggregator maps anchor events onto TrackedRegions and their grid
// visualizations, and forwards regions that grow past the commit threshold
// to the CommitDecider.
type RegionAggregator struct {
	commitArea float64
	decider    *CommitDecider
	layer      *Node
	notify     *notifier

	regions   map[uuid.UUID]*TrackedRegion
	forwarded map[uuid.UUID]bool
	surfaces  map[uuid.UUID]Surface

	// onGrid is called for every freshly built grid. prev is the grid it
	// replaces, or nil for a new region.
	onGrid func(prev, grid *Node)
}

// NewRegionAggregator creates an aggregator that parents its grids under
// layer and forwards large regions to decider.
func NewRegionAggregator(commitArea float64, decider *CommitDecider, layer *Node) *RegionAggregator {
	return &RegionAggregator{
		commitArea: commitArea,
		decider:    decider,
		layer:      layer,
		regions:    make(map[uuid.UUID]*TrackedRegion),
		forwarded:  make(map[uuid.UUID]bool),
		surfaces:   make(map[uuid.UUID]Surface),
	}
}

// AnchorAdded handles a new anchor. Returns the PlacementAnchor if this
// event committed the placement.
func (r *RegionAggregator) AnchorAdded(a Anchor) *PlacementAnchor {
	if !a.IsVerticalPlane() {
		return nil
	}
	return r.track(a)
}

// AnchorUpdated handles a refined anchor. Updates may omit the plane
// alignment for anchors already known as vertical.
func (r *RegionAggregator) AnchorUpdated(a Anchor) *PlacementAnchor {
	if !a.IsVerticalPlane() {
		s, known := r.surfaces[a.ID]
		if !known || a.Kind == AnchorGeneric {
			return nil
		}
		if a.Plane.Extent == (Extent{}) {
			a.Plane.Extent = s.Extent
		}
		a.Plane.Alignment = AlignmentVertical
	}
	return r.track(a)
}

// AnchorRemoved deletes the region, its grid and its surface.
func (r *RegionAggregator) AnchorRemoved(id uuid.UUID) {
	delete(r.surfaces, id)
	delete(r.forwarded, id)
	r.drop(id)
}

func (r *RegionAggregator) track(a Anchor) *PlacementAnchor {
	extent := a.Plane.Extent
	r.surfaces[a.ID] = Surface{ID: a.ID, Extent: extent, Transform: a.Transform}

	if extent.Area() > r.commitArea {
		if !r.forwarded[a.ID] {
			r.forwarded[a.ID] = true
			r.drop(a.ID)
		}
		return r.decider.TryCommit(a.ID, a.Transform)
	}
	if r.forwarded[a.ID] {
		// Already handed to the decider; never show it as pending again.
		return nil
	}

	region, ok := r.regions[a.ID]
	if !ok {
		region = &TrackedRegion{ID: a.ID, Alignment: AlignmentVertical}
		r.regions[a.ID] = region
	}
	region.Extent = extent
	region.Transform = a.Transform

	// Plane shape can change non-trivially between updates: rebuild the grid
	// and put the new node where the old one was.
	index := -1
	prev := region.Grid
	if prev != nil {
		index = r.layer.ChildIndex(prev)
		prev.Dispose()
	}
	region.Grid = newRegionGrid(a.ID, extent, a.Transform)
	if index >= 0 {
		r.layer.AddChildAt(region.Grid, index)
	} else {
		r.layer.AddChild(region.Grid)
	}
	if r.onGrid != nil {
		r.onGrid(prev, region.Grid)
	}

	typ := NotifyRegionUpdated
	if !ok {
		typ = NotifyRegionAdded
		debugf("region: added %s extent %.3fx%.3f", a.ID, extent.Width, extent.Depth)
	}
	r.notify.emit(Notification{Type: typ, RegionID: a.ID, Transform: a.Transform, Extent: extent})
	return nil
}

// drop removes the region and disposes its grid.
func (r *RegionAggregator) drop(id uuid.UUID) {
	region, ok := r.regions[id]
	if !ok {
		return
	}
	if region.Grid != nil {
		region.Grid.Dispose()
		region.Grid = nil
	}
	delete(r.regions, id)
	r.notify.emit(Notification{Type: NotifyRegionRemoved, RegionID: id, Extent: region.Extent})
}

// ClearGrids removes every pending region and its grid. Surfaces are kept.
func (r *RegionAggregator) ClearGrids() {
	for _, id := range r.regionIDs() {
		r.drop(id)
	}
}

// Reset forgets every region, surface and forwarded id.
func (r *RegionAggregator) Reset() {
	r.ClearGrids()
	clear(r.surfaces)
	clear(r.forwarded)
}

// Region returns a copy of the tracked region with the given id.
func (r *RegionAggregator) Region(id uuid.UUID) (TrackedRegion, bool) {
	region, ok := r.regions[id]
	if !ok {
		return TrackedRegion{}, false
	}
	return *region, true
}

// Regions returns copies of all pending regions ordered by id.
func (r *RegionAggregator) Regions() []TrackedRegion {
	out := make([]TrackedRegion, 0, len(r.regions))
	for _, id := range r.regionIDs() {
		out = append(out, *r.regions[id])
	}
	return out
}

// NumRegions returns the number of pending regions.
func (r *RegionAggregator) NumRegions() int {
	return len(r.regions)
}

// Surfaces returns every known vertical plane ordered by id.
func (r *RegionAggregator) Surfaces() []Surface {
	out := make([]Surface, 0, len(r.surfaces))
	for _, s := range r.surfaces {
		out = append(out, s)
	}
	slices.SortFunc(out, func(a, b Surface) int { return bytes.Compare(a.ID[:], b.ID[:]) })
	return out
}

func (r *RegionAggregator) regionIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(r.regions))
	for id := range r.regions {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b uuid.UUID) int { return bytes.Compare(a[:], b[:]) })
	return ids
}

// newRegionGrid builds the visualization for one region, posed by the
// anchor transform.
func newRegionGrid(id uuid.UUID, extent Extent, transform Mat4) *Node {
	g := NewGrid("grid-"+id.String()[:8], extent)
	g.Position = transform.Translation()
	g.Euler = eulerFromMat4(transform)
	g.UserData = id
	return g
}
