package translator

import (
	"label-bot/internal/domain/entity"
)

// RectAction переводит прямоугольник модели в действие добавления метки
func (t *Translator) RectAction(predictedBox []float64, itemIndex int) (*entity.AddLabelsAction, error) {
	box, err := DecodeBox(predictedBox)
	if err != nil {
		return nil, err
	}
	return t.actions.AddBox2DLabel(
		itemIndex,
		entity.NoParent,
		[]int{entity.DefaultCategory},
		map[int][]int{},
		box.Rect(),
		false,
	), nil
}

// PolyAction переводит вершины модели в замкнутый полигон.
// Модель возвращает только ломаные, поэтому все вершины типа line.
func (t *Translator) PolyAction(polyPoints [][]float64, itemIndex int) (*entity.AddLabelsAction, error) {
	decoded, err := DecodePolygon(polyPoints)
	if err != nil {
		return nil, err
	}
	points := make([]entity.PathPoint2D, 0, len(decoded))
	for _, p := range decoded {
		points = append(points, entity.NewPathPoint2D(p[0], p[1], entity.PathPointLine))
	}
	return t.actions.AddPolygon2DLabel(
		itemIndex,
		entity.NoParent,
		[]int{entity.DefaultCategory},
		points,
		true,
		false,
	), nil
}

// Box3DAction переводит бокс модели в действие добавления трёхмерной метки
func (t *Translator) Box3DAction(box3d []float64, itemIndex int) (*entity.AddLabelsAction, error) {
	box, err := DecodeBox3D(box3d)
	if err != nil {
		return nil, err
	}
	return t.actions.AddBox3DLabel(
		itemIndex,
		[]int{entity.NoParent},
		[]int{entity.DefaultCategory},
		box.Center().ToState(),
		box.Size().ToState(),
		box.Orientation().ToState(),
		false,
	), nil
}

// Actions переводит весь ответ модели в действия для одного элемента.
// Порядок: прямоугольники, полигоны, трёхмерные боксы.
func (t *Translator) Actions(pred *entity.Prediction, itemIndex int) ([]entity.Action, error) {
	if pred.Empty() {
		return nil, nil
	}
	actions := make([]entity.Action, 0, len(pred.Boxes)+len(pred.Polygons)+len(pred.Boxes3D))
	for _, b := range pred.Boxes {
		a, err := t.RectAction(b, itemIndex)
		if err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}
	for _, p := range pred.Polygons {
		a, err := t.PolyAction(p, itemIndex)
		if err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}
	for _, b := range pred.Boxes3D {
		a, err := t.Box3DAction(b, itemIndex)
		if err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}
	return actions, nil
}
