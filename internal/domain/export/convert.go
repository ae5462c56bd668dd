package export

import (
	"strings"

	"label-bot/internal/domain/entity"
	apperr "label-bot/internal/errors"
)

const (
	typeLine  = 'L'
	typeCurve = 'C'
)

// PolygonToExport переводит вершины в формат обмена.
// labelType определяет замкнутость: polygon2d или polyline2d.
// В формате обмена только коды 'L' и 'C', поэтому вершина типа null
// экспортируется как 'L' и читается обратно как line.
func PolygonToExport(points []entity.PathPoint2D, labelType string) ([]PolygonExport, error) {
	var closed bool
	switch entity.LabelTypeName(labelType) {
	case entity.LabelPolygon2D:
		closed = true
	case entity.LabelPolyline2D:
		closed = false
	default:
		return nil, apperr.Newf(apperr.UnknownLabelType, "cannot export polygon with label type %q", labelType)
	}

	vertices := make([][2]float64, 0, len(points))
	var types strings.Builder
	for _, p := range points {
		vertices = append(vertices, [2]float64{p.X, p.Y})
		if p.PointType == entity.PathPointCurve {
			types.WriteByte(typeCurve)
		} else {
			types.WriteByte(typeLine)
		}
	}

	return []PolygonExport{{
		Vertices: vertices,
		Types:    types.String(),
		Closed:   closed,
	}}, nil
}

// PolygonFromExport восстанавливает вершины и тип метки из полигона
func PolygonFromExport(poly PolygonExport) ([]entity.PathPoint2D, entity.LabelTypeName) {
	points := make([]entity.PathPoint2D, 0, len(poly.Vertices))
	for i, v := range poly.Vertices {
		pointType := entity.PathPointLine
		if i < len(poly.Types) && poly.Types[i] == typeCurve {
			pointType = entity.PathPointCurve
		}
		points = append(points, entity.NewPathPoint2D(v[0], v[1], pointType))
	}

	labelType := entity.LabelPolyline2D
	if poly.Closed {
		labelType = entity.LabelPolygon2D
	}
	return points, labelType
}

// IntrinsicsToExport переводит параметры камеры в формат обмена
func IntrinsicsToExport(in entity.Intrinsics) IntrinsicsExport {
	return IntrinsicsExport{
		Focal:  [2]float64{in.FocalLength.X, in.FocalLength.Y},
		Center: [2]float64{in.FocalCenter.X, in.FocalCenter.Y},
	}
}

// IntrinsicsFromExport обратное преобразование к IntrinsicsToExport
func IntrinsicsFromExport(in IntrinsicsExport) entity.Intrinsics {
	return entity.Intrinsics{
		FocalLength: entity.Vector2{X: in.Focal[0], Y: in.Focal[1]},
		FocalCenter: entity.Vector2{X: in.Center[0], Y: in.Center[1]},
	}
}
