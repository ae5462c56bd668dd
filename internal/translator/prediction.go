package translator

import (
	"label-bot/internal/domain/entity"
	apperr "label-bot/internal/errors"
)

const (
	boxLen   = 4
	pointLen = 2
	box3DLen = 9
)

// BoxPrediction прямоугольник модели: [x1, y1, x2, y2]
type BoxPrediction [boxLen]float64

// Rect прямоугольник в состоянии интерфейса
func (b BoxPrediction) Rect() entity.Rect {
	return entity.Rect{X1: b[0], Y1: b[1], X2: b[2], Y2: b[3]}
}

// PointPrediction вершина полигона модели: [x, y]
type PointPrediction [pointLen]float64

// Box3DPrediction бокс модели: [W, L, H, x, y, z, rot_y, alpha, _]
type Box3DPrediction [box3DLen]float64

// Size размеры бокса
func (b Box3DPrediction) Size() entity.Vector3D { return entity.NewVector3D(b[0], b[1], b[2]) }

// Center центр бокса
func (b Box3DPrediction) Center() entity.Vector3D { return entity.NewVector3D(b[3], b[4], b[5]) }

// Orientation ориентация бокса
func (b Box3DPrediction) Orientation() entity.Vector3D { return entity.NewVector3D(b[6], b[7], b[8]) }

// DecodeBox проверяет длину и раскладывает массив в прямоугольник
func DecodeBox(values []float64) (BoxPrediction, error) {
	var b BoxPrediction
	if len(values) != boxLen {
		return b, lengthError("box", boxLen, len(values))
	}
	copy(b[:], values)
	return b, nil
}

// DecodePolygon раскладывает пары координат в вершины
func DecodePolygon(values [][]float64) ([]PointPrediction, error) {
	if len(values) == 0 {
		return nil, apperr.New(apperr.MalformedPrediction, "polygon has no vertices")
	}
	points := make([]PointPrediction, len(values))
	for i, v := range values {
		if len(v) != pointLen {
			return nil, apperr.Newf(apperr.MalformedPrediction,
				"polygon vertex %d: expected %d values, got %d", i, pointLen, len(v))
		}
		copy(points[i][:], v)
	}
	return points, nil
}

// DecodeBox3D проверяет длину и раскладывает массив в трёхмерный бокс
func DecodeBox3D(values []float64) (Box3DPrediction, error) {
	var b Box3DPrediction
	if len(values) != box3DLen {
		return b, lengthError("box3d", box3DLen, len(values))
	}
	copy(b[:], values)
	return b, nil
}

func lengthError(kind string, want, got int) error {
	return apperr.Newf(apperr.MalformedPrediction, "%s: expected %d values, got %d", kind, want, got)
}
