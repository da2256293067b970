// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package session

import (
	"testing"

	"github.com/H0llyW00dzZ/mcp-client-session/src/protocol"

	"github.com/stretchr/testify/require"
)

func TestCorrelatorResolveDeliversToRegisteredId(t *testing.T) {
	c := NewCorrelator(0)
	id := c.NextID()
	ch := c.Register(id, "ping")

	ok := c.Resolve(id, []byte(`{}`), nil, nil)
	require.True(t, ok)

	comp := <-ch
	require.Nil(t, comp.localErr)
	require.Nil(t, comp.mcpErr)
}

func TestCorrelatorResolveUnknownIdStashesOrphan(t *testing.T) {
	c := NewCorrelator(0)
	ok := c.Resolve(int64(404), []byte(`{}`), nil, nil)
	require.False(t, ok)
	require.Equal(t, 1, c.Orphaned())
}

func TestCorrelatorIdKeyMatchesAcrossNumericTypes(t *testing.T) {
	c := NewCorrelator(0)
	ch := c.Register(int64(3), "ping")

	// A response decoded off the wire carries id as float64, not int64;
	// the correlator must still match it to the int64-registered request.
	ok := c.Resolve(float64(3), []byte(`{}`), nil, nil)
	require.True(t, ok)
	<-ch
}

func TestCorrelatorForgetReportsWhetherStillPending(t *testing.T) {
	c := NewCorrelator(0)
	id := c.NextID()
	c.Register(id, "ping")

	require.True(t, c.Forget(id))
	require.False(t, c.Forget(id))
}

func TestCorrelatorOrphanCapacityEvictsOldest(t *testing.T) {
	c := NewCorrelator(2)
	c.Resolve(int64(1), []byte(`{}`), nil, nil)
	c.Resolve(int64(2), []byte(`{}`), nil, nil)
	c.Resolve(int64(3), []byte(`{}`), nil, nil)

	require.Equal(t, 2, c.Orphaned())
}

func TestCorrelatorShutdownCompletesAllPendingWithShutdownError(t *testing.T) {
	c := NewCorrelator(0)
	id1, id2 := c.NextID(), c.NextID()
	ch1 := c.Register(id1, "ping")
	ch2 := c.Register(id2, "tools/list")

	c.Shutdown("test teardown")

	comp1 := <-ch1
	comp2 := <-ch2
	require.Error(t, comp1.localErr)
	require.Error(t, comp2.localErr)
	require.ErrorIs(t, comp1.localErr, ErrShutdown)
}

func TestCorrelatorResolveWithProtocolError(t *testing.T) {
	c := NewCorrelator(0)
	id := c.NextID()
	ch := c.Register(id, "tools/call")

	mcpErr := protocol.NewError(protocol.CodeInvalidParams, "bad arguments")
	ok := c.Resolve(id, nil, mcpErr, nil)
	require.True(t, ok)

	comp := <-ch
	require.Nil(t, comp.localErr)
	require.Equal(t, protocol.CodeInvalidParams, comp.mcpErr.Code)
}

func TestCorrelatorNextIDMonotonic(t *testing.T) {
	c := NewCorrelator(0)
	a := c.NextID().(int64)
	b := c.NextID().(int64)
	require.Greater(t, b, a)
}
