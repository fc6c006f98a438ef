package recorder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/framegraph/internal/core/domain"
	"go.trai.ch/framegraph/internal/core/ports/mocks"
	"go.trai.ch/framegraph/internal/engine/pool"
	"go.trai.ch/framegraph/internal/engine/recorder"
	"go.uber.org/mock/gomock"
)

var (
	renderPass     = domain.Handle{Kind: domain.KindRenderPass, Index: 1, Generation: 1}
	pipelineLayout = domain.Handle{Kind: domain.KindPipelineLayout, Index: 1, Generation: 1}
	uniforms       = domain.Handle{Kind: domain.KindBuffer, Index: 1, Generation: 1}
	descPool       = domain.Handle{Kind: domain.KindDescriptorPool, Index: 1, Generation: 1}
)

type fixture struct {
	device    *mocks.MockDevice
	cmd       *mocks.MockCommandBuffer
	program   *mocks.MockShaderProgram
	pipelines *pool.PipelineCache
	rec       *recorder.Recorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()

	f := &fixture{
		device:  mocks.NewMockDevice(ctrl),
		cmd:     mocks.NewMockCommandBuffer(ctrl),
		program: mocks.NewMockShaderProgram(ctrl),
	}

	layout := domain.NewSetLayout(domain.Handle{Kind: domain.KindSetLayout, Index: 1, Generation: 1}, []domain.LayoutBinding{
		{Binding: 0, Type: domain.DescriptorUniformBuffer, Count: 1},
	})
	f.program.EXPECT().ID().Return(uint64(7)).AnyTimes()
	f.program.EXPECT().PipelineLayout().Return(pipelineLayout).AnyTimes()
	f.program.EXPECT().ActiveSets().Return([]uint32{0}).AnyTimes()
	f.program.EXPECT().SetLayout(uint32(0)).Return(layout, true).AnyTimes()
	f.device.EXPECT().CreateDescriptorPool(gomock.Any()).Return(descPool, nil).AnyTimes()

	f.pipelines = pool.NewPipelineCache(f.device, logger)
	sets := pool.NewDescriptorSetCache(pool.NewDescriptorPoolCache(f.device, logger, 0))
	f.rec = recorder.New(f.device, f.cmd, f.pipelines, sets)
	return f
}

func handle(kind domain.ObjectKind, index uint32) domain.Handle {
	return domain.Handle{Kind: kind, Index: index, Generation: 1}
}

func TestRecorder_IdenticalDrawsDoNotChurn(t *testing.T) {
	f := newFixture(t)
	pipe := handle(domain.KindPipeline, 1)
	set := handle(domain.KindDescriptorSet, 1)

	f.device.EXPECT().CreatePipeline(gomock.Any()).Return(pipe, nil).Times(1)
	f.device.EXPECT().AllocateDescriptorSet(descPool, gomock.Any()).Return(set, nil).Times(1)
	f.device.EXPECT().UpdateDescriptorSet(set, gomock.Len(1)).Return(nil).Times(1)
	f.cmd.EXPECT().BindPipeline(pipe).Times(1)
	f.cmd.EXPECT().BindDescriptorSet(pipelineLayout, uint32(0), set, gomock.Nil()).Times(1)
	f.cmd.EXPECT().Draw(uint32(3), uint32(1), uint32(0), uint32(0)).Times(2)

	f.rec.Begin(renderPass, 0)
	f.rec.SetProgram(f.program)
	require.NoError(t, f.rec.BindBuffer(0, 0, uniforms, 0, 64))
	require.NoError(t, f.rec.Draw(3, 1, 0, 0))

	require.NoError(t, f.rec.BindBuffer(0, 0, uniforms, 0, 64))
	require.NoError(t, f.rec.Draw(3, 1, 0, 0))

	assert.Equal(t, recorder.Stats{Draws: 2, PipelineBinds: 1, SetBinds: 1, DescriptorWrites: 1}, f.rec.Stats())
}

func TestRecorder_ChangesRebind(t *testing.T) {
	f := newFixture(t)
	first, second := handle(domain.KindPipeline, 1), handle(domain.KindPipeline, 2)
	setA, setB := handle(domain.KindDescriptorSet, 1), handle(domain.KindDescriptorSet, 2)

	gomock.InOrder(
		f.device.EXPECT().CreatePipeline(gomock.Any()).Return(first, nil),
		f.device.EXPECT().CreatePipeline(gomock.Any()).Return(second, nil),
	)
	gomock.InOrder(
		f.device.EXPECT().AllocateDescriptorSet(descPool, gomock.Any()).Return(setA, nil),
		f.device.EXPECT().AllocateDescriptorSet(descPool, gomock.Any()).Return(setB, nil),
	)
	f.device.EXPECT().UpdateDescriptorSet(gomock.Any(), gomock.Len(1)).Return(nil).Times(2)
	f.cmd.EXPECT().BindPipeline(gomock.Any()).Times(2)
	f.cmd.EXPECT().BindDescriptorSet(pipelineLayout, uint32(0), gomock.Any(), gomock.Any()).Times(2)
	f.cmd.EXPECT().DrawIndexed(uint32(6), uint32(1), uint32(0), int32(0), uint32(0)).Times(3)

	f.rec.Begin(renderPass, 0)
	f.rec.SetProgram(f.program)
	require.NoError(t, f.rec.BindDynamicBuffer(0, 0, uniforms, 64, 0))
	require.NoError(t, f.rec.DrawIndexed(6, 1, 0, 0, 0))

	f.rec.Graphics().SetTopology(domain.TopologyLineList)
	require.NoError(t, f.rec.DrawIndexed(6, 1, 0, 0, 0))

	require.NoError(t, f.rec.BindDynamicBuffer(0, 0, uniforms, 64, 256))
	require.NoError(t, f.rec.DrawIndexed(6, 1, 0, 0, 0))

	stats := f.rec.Stats()
	assert.Equal(t, 2, stats.PipelineBinds)
	assert.Equal(t, 2, stats.SetBinds)
}

func TestRecorder_NewSubpassRebinds(t *testing.T) {
	f := newFixture(t)
	f.device.EXPECT().CreatePipeline(gomock.Any()).DoAndReturn(func(desc domain.PipelineDesc) (domain.Handle, error) {
		return handle(domain.KindPipeline, desc.Subpass+1), nil
	}).Times(2)
	f.device.EXPECT().AllocateDescriptorSet(gomock.Any(), gomock.Any()).Return(handle(domain.KindDescriptorSet, 1), nil)
	f.device.EXPECT().AllocateDescriptorSet(gomock.Any(), gomock.Any()).Return(handle(domain.KindDescriptorSet, 2), nil)
	f.device.EXPECT().UpdateDescriptorSet(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	f.cmd.EXPECT().BindPipeline(gomock.Any()).Times(2)
	f.cmd.EXPECT().BindDescriptorSet(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(2)
	f.cmd.EXPECT().Draw(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(2)

	f.rec.SetProgram(f.program)
	require.NoError(t, f.rec.BindBuffer(0, 0, uniforms, 0, 64))
	for subpass := range uint32(2) {
		f.rec.Begin(renderPass, subpass)
		require.NoError(t, f.rec.Draw(3, 1, 0, 0))
		f.rec.End()
	}
}

func TestRecorder_ResetReleasesPipelines(t *testing.T) {
	f := newFixture(t)
	pipe := handle(domain.KindPipeline, 1)
	f.device.EXPECT().CreatePipeline(gomock.Any()).Return(pipe, nil).Times(1)
	f.device.EXPECT().AllocateDescriptorSet(gomock.Any(), gomock.Any()).Return(handle(domain.KindDescriptorSet, 1), nil).Times(1)
	f.cmd.EXPECT().BindPipeline(pipe).Times(2)
	f.cmd.EXPECT().BindDescriptorSet(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(2)
	f.cmd.EXPECT().Draw(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(2)

	f.rec.SetProgram(f.program)
	f.rec.Begin(renderPass, 0)
	require.NoError(t, f.rec.Draw(3, 1, 0, 0))
	assert.True(t, f.pipelines.InUse(pipe))

	require.NoError(t, f.rec.Reset())
	assert.False(t, f.pipelines.InUse(pipe))

	f.rec.Begin(renderPass, 0)
	require.NoError(t, f.rec.Draw(3, 1, 0, 0))
	assert.Equal(t, recorder.Stats{Draws: 1, PipelineBinds: 1, SetBinds: 1}, f.rec.Stats())
}

func TestRecorder_Errors(t *testing.T) {
	f := newFixture(t)

	f.rec.Begin(renderPass, 0)
	require.ErrorIs(t, f.rec.Draw(3, 1, 0, 0), domain.ErrNoProgram)

	f.rec.End()
	f.rec.SetProgram(f.program)
	require.ErrorIs(t, f.rec.Draw(3, 1, 0, 0), domain.ErrNotInRenderPass)

	err := f.rec.BindImage(domain.MaxDescriptorSets, 0, handle(domain.KindImage, 1), domain.FilterLinear)
	require.ErrorContains(t, err, domain.ErrInvalidDescriptorSet.Error())
}
