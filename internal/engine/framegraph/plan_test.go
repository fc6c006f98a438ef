package framegraph_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/framegraph/internal/adapters/headless"
	"go.trai.ch/framegraph/internal/core/domain"
	"go.trai.ch/framegraph/internal/engine/framegraph"
)

var screen = domain.Extent2D{Width: 1280, Height: 720}

func newGraph(t *testing.T) (*framegraph.Graph, *headless.Device, *headless.Surface) {
	t.Helper()
	device := headless.New()
	surface, err := headless.NewSurface(device, screen, 2)
	require.NoError(t, err)
	g, err := framegraph.New(device, surface, 2)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, g.Close())
		require.NoError(t, surface.Close())
	})
	return g, device, surface
}

func resource(t *testing.T, g *framegraph.Graph, name string, desc framegraph.ResourceDesc) *framegraph.Resource {
	t.Helper()
	r, err := g.CreateResource(name, desc)
	require.NoError(t, err)
	return r
}

func pass(t *testing.T, g *framegraph.Graph, name string) *framegraph.Pass {
	t.Helper()
	p, err := g.CreatePass(name, nil)
	require.NoError(t, err)
	return p
}

func color() framegraph.ResourceDesc {
	return framegraph.ResourceDesc{Format: domain.FormatRGBA8}
}

func fixed(w, h uint32) framegraph.ResourceDesc {
	return framegraph.ResourceDesc{Format: domain.FormatRGBA16F, Size: domain.SizeAbsolute, Extent: domain.Extent2D{Width: w, Height: h}}
}

func depth() framegraph.ResourceDesc {
	return framegraph.ResourceDesc{Format: domain.FormatD32}
}

func TestPlan_SingleOutputPass(t *testing.T) {
	g, _, _ := newGraph(t)
	out := resource(t, g, "backbuffer", color())
	p := pass(t, g, "main")
	p.Color(out, domain.AccessWrite)
	p.Output()

	plan, err := g.Plan()
	require.NoError(t, err)
	require.Len(t, plan, 1)
	assert.Equal(t, []string{"main"}, plan[0].Subpasses)
	assert.Equal(t, screen, plan[0].Extent)
	assert.Empty(t, plan[0].Dependencies)
	assert.Equal(t, []string{"backbuffer"}, plan[0].Attachments)
}

func TestPlan_DifferentExtentsAreNotMerged(t *testing.T) {
	g, _, _ := newGraph(t)
	shadow := resource(t, g, "shadow", fixed(256, 256))
	out := resource(t, g, "backbuffer", color())

	a := pass(t, g, "A")
	a.Color(shadow, domain.AccessWrite)
	b := pass(t, g, "B")
	b.Input(shadow)
	b.Color(out, domain.AccessWrite)
	b.Output()

	plan, err := g.Plan()
	require.NoError(t, err)
	require.Len(t, plan, 2)
	assert.Equal(t, []string{"A"}, plan[0].Subpasses)
	assert.Equal(t, domain.Extent2D{Width: 256, Height: 256}, plan[0].Extent)
	assert.Equal(t, []string{"B"}, plan[1].Subpasses)
	assert.Equal(t, []int{0}, plan[1].Dependencies)
	assert.Equal(t, []string{"backbuffer"}, plan[1].Attachments, "inputs from another physical pass are sampled")
}

func TestPlan_EqualExtentsAreMerged(t *testing.T) {
	g, _, _ := newGraph(t)
	gbuf := resource(t, g, "gbuffer", color())
	out := resource(t, g, "backbuffer", color())

	a := pass(t, g, "A")
	a.Color(gbuf, domain.AccessWrite)
	b := pass(t, g, "B")
	b.Input(gbuf)
	b.Color(out, domain.AccessWrite)
	b.Output()

	plan, err := g.Plan()
	require.NoError(t, err)
	require.Len(t, plan, 1)
	assert.Equal(t, []string{"A", "B"}, plan[0].Subpasses)
	assert.Equal(t, []string{"gbuffer", "backbuffer"}, plan[0].Attachments)
}

func TestPlan_ReadOfUnwrittenResource(t *testing.T) {
	g, _, _ := newGraph(t)
	r := resource(t, g, "R", color())
	p := pass(t, g, "main")
	p.Input(r)
	p.Color(r, domain.AccessWrite)
	p.Output()

	_, err := g.Plan()
	require.ErrorContains(t, err, "is not write-only but no previous pass writes to it")
}

func TestPlan_WriteOnlyAfterWriter(t *testing.T) {
	g, _, _ := newGraph(t)
	r := resource(t, g, "R", color())
	a := pass(t, g, "A")
	a.Color(r, domain.AccessWrite)
	b := pass(t, g, "B")
	b.Color(r, domain.AccessWrite)
	b.Output()

	_, err := g.Plan()
	assert.ErrorContains(t, err, domain.ErrWriteOnlyOverwrite.Error())
}

func TestPlan_UnreachablePassesAreCulled(t *testing.T) {
	g, _, _ := newGraph(t)
	out := resource(t, g, "backbuffer", color())
	debug := resource(t, g, "debug", color())
	orphan := resource(t, g, "orphan", color())

	unused := pass(t, g, "debug")
	unused.Color(debug, domain.AccessWrite)
	broken := pass(t, g, "broken")
	broken.Input(orphan)
	broken.Color(orphan, domain.AccessReadWrite)
	main := pass(t, g, "main")
	main.Color(out, domain.AccessWrite)
	main.Output()
	pass(t, g, "empty")

	plan, err := g.Plan()
	require.NoError(t, err, "errors in culled passes are not reported")
	require.Len(t, plan, 1)
	assert.Equal(t, []string{"main"}, plan[0].Subpasses)
}

func TestPlan_DepthConflictSplits(t *testing.T) {
	g, _, _ := newGraph(t)
	gbuf := resource(t, g, "gbuffer", color())
	out := resource(t, g, "backbuffer", color())
	sceneDepth := resource(t, g, "scene_depth", depth())
	overlayDepth := resource(t, g, "overlay_depth", depth())

	a := pass(t, g, "scene")
	a.Color(gbuf, domain.AccessWrite)
	require.NoError(t, a.Depth(sceneDepth, domain.AccessWrite))
	b := pass(t, g, "overlay")
	b.Input(gbuf)
	b.Color(out, domain.AccessWrite)
	require.NoError(t, b.Depth(overlayDepth, domain.AccessWrite))
	b.Output()

	plan, err := g.Plan()
	require.NoError(t, err)
	require.Len(t, plan, 2)
	assert.Equal(t, "scene_depth", plan[0].Depth)
	assert.Equal(t, "overlay_depth", plan[1].Depth)
}

func TestPlan_SharedDepthMerges(t *testing.T) {
	g, _, _ := newGraph(t)
	gbuf := resource(t, g, "gbuffer", color())
	out := resource(t, g, "backbuffer", color())
	z := resource(t, g, "depth", depth())

	a := pass(t, g, "scene")
	a.Color(gbuf, domain.AccessWrite)
	require.NoError(t, a.Depth(z, domain.AccessWrite))
	b := pass(t, g, "lighting")
	b.Input(gbuf)
	b.Color(out, domain.AccessWrite)
	require.NoError(t, b.Depth(z, domain.AccessRead))
	b.Output()

	plan, err := g.Plan()
	require.NoError(t, err)
	require.Len(t, plan, 1)
	assert.Equal(t, "depth", plan[0].Depth)
	assert.Equal(t, []string{"scene", "lighting"}, plan[0].Subpasses)
}

func TestPlan_MergeSkipsUnrelatedPass(t *testing.T) {
	g, _, _ := newGraph(t)
	gbuf := resource(t, g, "gbuffer", color())
	bloom := resource(t, g, "bloom", framegraph.ResourceDesc{Format: domain.FormatRGBA16F, Scale: mgl32.Vec2{0.5, 0.5}})
	tonemapped := resource(t, g, "tonemapped", color())
	out := resource(t, g, "backbuffer", color())

	geometry := pass(t, g, "geometry")
	geometry.Color(gbuf, domain.AccessWrite)
	blur := pass(t, g, "blur")
	blur.Color(bloom, domain.AccessWrite)
	tonemap := pass(t, g, "tonemap")
	tonemap.Input(gbuf)
	tonemap.Color(tonemapped, domain.AccessWrite)
	final := pass(t, g, "composite")
	final.Input(tonemapped)
	final.Input(bloom)
	final.Color(out, domain.AccessWrite)
	final.Output()

	plan, err := g.Plan()
	require.NoError(t, err)
	require.Len(t, plan, 3)
	assert.Equal(t, []string{"geometry", "tonemap"}, plan[0].Subpasses)
	assert.Equal(t, []string{"blur"}, plan[1].Subpasses)
	assert.Equal(t, domain.Extent2D{Width: 640, Height: 360}, plan[1].Extent)
	assert.Equal(t, []string{"composite"}, plan[2].Subpasses)
	assert.Equal(t, []int{0, 1}, plan[2].Dependencies)
}

func TestPlan_TopologicalOrder(t *testing.T) {
	g, _, _ := newGraph(t)
	res := make([]*framegraph.Resource, 4)
	for i, name := range []string{"a", "b", "c", "out"} {
		// Distinct extents keep every pass in its own physical pass.
		res[i] = resource(t, g, name, fixed(uint32(100+i), 100))
	}
	pa := pass(t, g, "pa")
	pa.Color(res[0], domain.AccessWrite)
	pb := pass(t, g, "pb")
	pb.Input(res[0])
	pb.Color(res[1], domain.AccessWrite)
	pc := pass(t, g, "pc")
	pc.Input(res[0])
	pc.Color(res[2], domain.AccessWrite)
	out := pass(t, g, "out")
	out.Input(res[1])
	out.Input(res[2])
	out.Input(res[0])
	out.Color(res[3], domain.AccessWrite)
	out.Output()

	plan, err := g.Plan()
	require.NoError(t, err)
	require.Len(t, plan, 4)

	position := make(map[string]int)
	for i, e := range plan {
		position[e.Subpasses[0]] = i
		for _, dep := range e.Dependencies {
			assert.Less(t, dep, i, "dependency of %s runs after it", e.Subpasses[0])
		}
	}
	assert.Equal(t, 0, position["pa"])
	assert.Equal(t, 3, position["out"])
	assert.ElementsMatch(t, []int{0, 1, 2}, plan[3].Dependencies)
}
