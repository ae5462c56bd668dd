package export

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"label-bot/internal/domain/entity"
	apperr "label-bot/internal/errors"
)

func TestPolygonToExport(t *testing.T) {
	points := []entity.PathPoint2D{
		entity.NewPathPoint2D(0, 0, entity.PathPointLine),
		entity.NewPathPoint2D(5, 1, entity.PathPointCurve),
		entity.NewPathPoint2D(6, 2, entity.PathPointCurve),
		entity.NewPathPoint2D(10, 10, entity.PathPointLine),
	}

	tests := []struct {
		name      string
		labelType string
		closed    bool
	}{
		{name: "polygon is closed", labelType: "polygon2d", closed: true},
		{name: "polyline is open", labelType: "polyline2d", closed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			poly, err := PolygonToExport(points, tt.labelType)
			require.NoError(t, err)
			require.Len(t, poly, 1)
			require.Equal(t, "LCCL", poly[0].Types)
			require.Equal(t, tt.closed, poly[0].Closed)
			require.Equal(t, [][2]float64{{0, 0}, {5, 1}, {6, 2}, {10, 10}}, poly[0].Vertices)

			back, labelType := PolygonFromExport(poly[0])
			require.Equal(t, points, back)
			require.Equal(t, entity.LabelTypeName(tt.labelType), labelType)
		})
	}
}

func TestPolygonToExport_UnknownVertexTypeBecomesLine(t *testing.T) {
	points := []entity.PathPoint2D{
		entity.NewPathPoint2D(0, 0, entity.PathPointUnknown),
		entity.NewPathPoint2D(3, 4, entity.PathPointCurve),
	}

	poly, err := PolygonToExport(points, "polyline2d")
	require.NoError(t, err)
	require.Equal(t, "LC", poly[0].Types)

	back, _ := PolygonFromExport(poly[0])
	require.Equal(t, entity.PathPointLine, back[0].PointType)
	require.Equal(t, entity.PathPointCurve, back[1].PointType)
}

func TestPolygonToExport_UnknownLabelType(t *testing.T) {
	_, err := PolygonToExport([]entity.PathPoint2D{{X: 1, Y: 1}}, "box2d")
	require.Error(t, err)
	require.True(t, apperr.Is(err, apperr.UnknownLabelType))
}

func TestIntrinsicsExport(t *testing.T) {
	in := entity.Intrinsics{
		FocalLength: entity.Vector2{X: 721.5, Y: 721.5},
		FocalCenter: entity.Vector2{X: 609.5, Y: 172.8},
	}
	out := IntrinsicsToExport(in)
	require.Equal(t, [2]float64{721.5, 721.5}, out.Focal)
	require.Equal(t, [2]float64{609.5, 172.8}, out.Center)
	require.Equal(t, in, IntrinsicsFromExport(out))
}

func TestItemExport_OmitsMissingIntrinsics(t *testing.T) {
	raw, err := json.Marshal(NewItemExport("proj1", "http://img/1.jpg"))
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &fields))
	require.NotContains(t, fields, "intrinsics")
	require.JSONEq(t, `[]`, string(fields["labels"]))
	require.JSONEq(t, `-1`, string(fields["sensor"]))
}

func TestLabelExport_OnlyOneGeometry(t *testing.T) {
	raw, err := json.Marshal(NewBox2DLabel(entity.Rect{X1: 1, Y1: 2, X2: 3, Y2: 4}))
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &fields))
	require.JSONEq(t, `{"x1":1,"y1":2,"x2":3,"y2":4}`, string(fields["box2d"]))
	require.NotContains(t, fields, "poly2d")
}
