package emit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/terrane-gis/streamnet/emit"
	"github.com/terrane-gis/streamnet/network"
)

type spyReporter struct {
	emit.NoopReporter
	kinds []string
}

func (s *spyReporter) ReturnRecord(kind string, data interface{}) {
	s.kinds = append(s.kinds, kind)
}

func TestEmitLinks_SkipsUnmappedAndRounds(t *testing.T) {
	dem := 1.0 // distMult placeholder, unused here
	_ = dem
	g := network.NewGraph(1, 1)
	g.Links = []network.Link{
		{ID: 0, IsFeatureMapped: true, Outlet: -1, TUCL: 1.23456, ShreveOrder: 0.33333},
		{ID: 1, IsFeatureMapped: false},
		{ID: 2, IsFeatureMapped: true, Outlet: 3, IsMainstem: true, TribID: 7},
	}

	spy := &spyReporter{}
	records := emit.EmitLinks(g, spy)

	require.Len(t, records, 2)
	require.Equal(t, 0, records[0].FID)
	require.Equal(t, 1, records[0].Discontinuous)
	require.InDelta(t, 1.235, records[0].TUCL, 1e-9)
	require.InDelta(t, 0.333, records[0].Shreve, 1e-9)

	require.Equal(t, 1, records[1].FID)
	require.Equal(t, 0, records[1].Discontinuous)
	require.Equal(t, 1, records[1].Mainstem)
	require.Equal(t, 7, records[1].TribID)

	require.Equal(t, []string{"link", "link"}, spy.kinds)
}

func TestEmitNodes_SequentialFID(t *testing.T) {
	events := []emit.NodeEvent{
		{NodeID: 5, Type: emit.NodeTypeOutlet},
		{NodeID: 2, Type: emit.NodeTypeDiffluence},
		{NodeID: 9, Type: emit.NodeTypeJoinedHead},
	}
	records := emit.EmitNodes(events, nil)
	require.Len(t, records, 3)
	for i, r := range records {
		require.Equal(t, i, r.FID)
	}
	require.Equal(t, emit.NodeTypeJoinedHead, records[2].Type)
}
