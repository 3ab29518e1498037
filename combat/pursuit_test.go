package combat_test

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/firefight/combat"
	"github.com/milk9111/firefight/combat/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	agentID  combat.EntityID = 10
	playerID combat.EntityID = 1
)

func TestPursuerUnplacedWhenNoSurfaceInRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	nav := mocks.NewMockNavigator(ctrl)
	roles := mocks.NewMockRoleLookup(ctrl)
	positions := mocks.NewMockPositions(ctrl)

	spawn := mgl64.Vec3{10, 0, 0}
	nav.EXPECT().SampleNearestSurfacePoint(spawn, 3.0).Return(mgl64.Vec3{}, false)
	nav.EXPECT().Warp(gomock.Any(), gomock.Any()).Times(0)
	nav.EXPECT().SetDestination(gomock.Any(), gomock.Any()).Times(0)
	roles.EXPECT().FindEntityByRole(gomock.Any()).Times(0)

	p := combat.NewPursuer(agentID, combat.DefaultPursuitConfig())
	err := p.Place(nav, spawn)
	require.Error(t, err)
	assert.True(t, errors.Is(err, combat.ErrNoNavSurface))

	for i := 0; i < 100; i++ {
		p.Update(time.Duration(i)*50*time.Millisecond, nav, roles, positions)
	}
	assert.Equal(t, combat.Unplaced, p.State())
	assert.Zero(t, p.Requests())
}

func TestPursuerTracksAndRepaths(t *testing.T) {
	ctrl := gomock.NewController(t)
	nav := mocks.NewMockNavigator(ctrl)
	roles := mocks.NewMockRoleLookup(ctrl)
	positions := mocks.NewMockPositions(ctrl)

	spawn := mgl64.Vec3{1, 0, 1}
	target := mgl64.Vec3{20, 0, 5}
	snapped := mgl64.Vec3{19.5, 0, 5}

	nav.EXPECT().SampleNearestSurfacePoint(spawn, 3.0).Return(spawn, true)
	nav.EXPECT().Warp(agentID, spawn).Return(true)
	roles.EXPECT().FindEntityByRole("Player").Return(playerID, true)
	positions.EXPECT().Position(playerID).Return(target, true).AnyTimes()
	nav.EXPECT().IsOnSurface(agentID).Return(true).AnyTimes()
	nav.EXPECT().SampleNearestSurfacePoint(target, 2.0).Return(snapped, true).AnyTimes()

	var requestedAt []time.Duration
	now := time.Duration(0)
	nav.EXPECT().SetDestination(agentID, snapped).DoAndReturn(func(combat.EntityID, mgl64.Vec3) bool {
		requestedAt = append(requestedAt, now)
		return true
	}).AnyTimes()

	p := combat.NewPursuer(agentID, combat.DefaultPursuitConfig())
	require.NoError(t, p.Place(nav, spawn))
	assert.Equal(t, combat.PlacedNoTarget, p.State())

	for ; now <= time.Second; now += 50 * time.Millisecond {
		p.Update(now, nav, roles, positions)
	}
	assert.Equal(t, combat.Tracking, p.State())
	require.Len(t, requestedAt, 6)
	for i, at := range requestedAt {
		assert.Equal(t, time.Duration(i)*200*time.Millisecond, at)
	}
	dest, ok := p.Destination()
	assert.True(t, ok)
	assert.Equal(t, snapped, dest)
}

func TestPursuerFallsBackToLowercaseRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	nav := mocks.NewMockNavigator(ctrl)
	roles := mocks.NewMockRoleLookup(ctrl)
	positions := mocks.NewMockPositions(ctrl)

	nav.EXPECT().SampleNearestSurfacePoint(gomock.Any(), gomock.Any()).Return(mgl64.Vec3{}, true).AnyTimes()
	nav.EXPECT().Warp(agentID, gomock.Any()).Return(true)
	gomock.InOrder(
		roles.EXPECT().FindEntityByRole("Player").Return(combat.EntityID(0), false),
		roles.EXPECT().FindEntityByRole("player").Return(playerID, true),
	)
	positions.EXPECT().Position(playerID).Return(mgl64.Vec3{5, 0, 5}, true)
	nav.EXPECT().IsOnSurface(agentID).Return(true)
	nav.EXPECT().SetDestination(agentID, gomock.Any()).Return(true)

	p := combat.NewPursuer(agentID, combat.DefaultPursuitConfig())
	require.NoError(t, p.Place(nav, mgl64.Vec3{}))
	p.Update(0, nav, roles, positions)

	got, ok := p.Target()
	require.True(t, ok)
	assert.Equal(t, playerID, got)
}

func TestPursuerDropsDestroyedTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	nav := mocks.NewMockNavigator(ctrl)
	roles := mocks.NewMockRoleLookup(ctrl)
	positions := mocks.NewMockPositions(ctrl)

	nav.EXPECT().SampleNearestSurfacePoint(gomock.Any(), gomock.Any()).Return(mgl64.Vec3{}, true).AnyTimes()
	nav.EXPECT().Warp(agentID, gomock.Any()).Return(true)
	nav.EXPECT().IsOnSurface(agentID).Return(true).AnyTimes()
	nav.EXPECT().SetDestination(agentID, gomock.Any()).Return(true).Times(1)

	gomock.InOrder(
		positions.EXPECT().Position(playerID).Return(mgl64.Vec3{3, 0, 3}, true),
		positions.EXPECT().Position(playerID).Return(mgl64.Vec3{}, false),
	)
	roles.EXPECT().FindEntityByRole(gomock.Any()).Return(combat.EntityID(0), false).AnyTimes()

	p := combat.NewPursuer(agentID, combat.DefaultPursuitConfig())
	require.NoError(t, p.Place(nav, mgl64.Vec3{}))
	p.SetTarget(playerID, 0)

	p.Update(0, nav, roles, positions)
	assert.Equal(t, combat.Tracking, p.State())

	p.Update(time.Second, nav, roles, positions)
	assert.Equal(t, combat.PlacedNoTarget, p.State())

	for i := 2; i < 10; i++ {
		p.Update(time.Duration(i)*time.Second, nav, roles, positions)
	}
	assert.Equal(t, combat.PlacedNoTarget, p.State())
	_, ok := p.Target()
	assert.False(t, ok)
}

func TestPursuerWaitsWhileOffSurface(t *testing.T) {
	ctrl := gomock.NewController(t)
	nav := mocks.NewMockNavigator(ctrl)
	positions := mocks.NewMockPositions(ctrl)

	nav.EXPECT().SampleNearestSurfacePoint(gomock.Any(), gomock.Any()).Return(mgl64.Vec3{}, true).AnyTimes()
	nav.EXPECT().Warp(agentID, gomock.Any()).Return(true)
	nav.EXPECT().IsOnSurface(agentID).Return(false).AnyTimes()
	nav.EXPECT().SetDestination(gomock.Any(), gomock.Any()).Times(0)
	positions.EXPECT().Position(playerID).Return(mgl64.Vec3{3, 0, 3}, true).AnyTimes()

	p := combat.NewPursuer(agentID, combat.DefaultPursuitConfig())
	require.NoError(t, p.Place(nav, mgl64.Vec3{}))
	p.SetTarget(playerID, 0)
	for i := 0; i < 10; i++ {
		p.Update(time.Duration(i)*100*time.Millisecond, nav, nil, positions)
	}
	assert.Zero(t, p.Requests())
}
