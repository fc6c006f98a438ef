package framegraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/framegraph/internal/core/domain"
	"go.trai.ch/framegraph/internal/engine/framegraph"
)

func TestDeclarationErrors(t *testing.T) {
	g, _, _ := newGraph(t)
	r := resource(t, g, "color", color())
	z := resource(t, g, "depth", depth())

	_, err := g.CreateResource("color", color())
	require.ErrorContains(t, err, domain.ErrDuplicateResource.Error())

	p := pass(t, g, "main")
	_, err = g.CreatePass("main", nil)
	require.ErrorContains(t, err, domain.ErrDuplicatePass.Error())

	require.NoError(t, p.Depth(z, domain.AccessWrite))
	require.ErrorContains(t, p.Depth(z, domain.AccessWrite), domain.ErrMultipleDepthAttachments.Error())

	found, ok := g.Resource("color")
	require.True(t, ok)
	assert.Same(t, r, found)
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name    string
		declare func(t *testing.T, g *framegraph.Graph)
		want    error
	}{
		{
			name: "no output pass",
			declare: func(t *testing.T, g *framegraph.Graph) {
				pass(t, g, "main").Color(resource(t, g, "c", color()), domain.AccessWrite)
			},
			want: domain.ErrNoOutputPass,
		},
		{
			name: "two output passes",
			declare: func(t *testing.T, g *framegraph.Graph) {
				for _, name := range []string{"a", "b"} {
					p := pass(t, g, name)
					p.Color(resource(t, g, name, color()), domain.AccessWrite)
					p.Output()
				}
			},
			want: domain.ErrMultipleOutputPasses,
		},
		{
			name: "output without color",
			declare: func(t *testing.T, g *framegraph.Graph) {
				p := pass(t, g, "main")
				require.NoError(t, p.Depth(resource(t, g, "z", depth()), domain.AccessWrite))
				p.Output()
			},
			want: domain.ErrOutputWithoutColor,
		},
		{
			name: "attachment extents differ",
			declare: func(t *testing.T, g *framegraph.Graph) {
				p := pass(t, g, "main")
				p.Color(resource(t, g, "full", color()), domain.AccessWrite)
				p.Color(resource(t, g, "small", fixed(64, 64)), domain.AccessWrite)
				p.Output()
			},
			want: domain.ErrExtentMismatch,
		},
		{
			name: "color format as depth",
			declare: func(t *testing.T, g *framegraph.Graph) {
				p := pass(t, g, "main")
				p.Color(resource(t, g, "c", color()), domain.AccessWrite)
				require.NoError(t, p.Depth(resource(t, g, "z", color()), domain.AccessWrite))
				p.Output()
			},
			want: domain.ErrDepthFormatMismatch,
		},
		{
			name: "resource of another graph",
			declare: func(t *testing.T, g *framegraph.Graph) {
				other, _, _ := newGraph(t)
				p := pass(t, g, "main")
				p.Color(resource(t, other, "c", color()), domain.AccessWrite)
				p.Output()
			},
			want: domain.ErrForeignResource,
		},
		{
			name: "zero absolute extent",
			declare: func(t *testing.T, g *framegraph.Graph) {
				p := pass(t, g, "main")
				p.Color(resource(t, g, "c", fixed(0, 16)), domain.AccessWrite)
				p.Output()
			},
			want: domain.ErrInvalidExtent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _, _ := newGraph(t)
			tt.declare(t, g)

			_, err := g.Plan()
			require.ErrorContains(t, err, tt.want.Error())
		})
	}
}

func TestValidation_InputsMayHaveOtherExtents(t *testing.T) {
	g, _, _ := newGraph(t)
	small := resource(t, g, "small", fixed(64, 64))
	out := resource(t, g, "out", color())

	pass(t, g, "small").Color(small, domain.AccessWrite)
	p := pass(t, g, "main")
	p.Input(small)
	p.Color(out, domain.AccessWrite)
	p.Output()

	_, err := g.Plan()
	require.NoError(t, err)
}
