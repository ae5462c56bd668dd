// Package action создаёт действия добавления меток.
//
// Сессия задаётся при создании Factory, поэтому каждое действие подписано
// с момента создания. Одна фабрика обслуживает и ручную разметку, и модель:
// различаются только флаг manual и идентификатор сессии.
package action

import (
	"time"

	"github.com/google/uuid"

	"label-bot/internal/domain/entity"
)

// Factory создаёт действия от имени одной сессии
type Factory struct {
	SessionID string
	UserID    string
	NewID     func() string    // генератор идентификаторов меток и фигур
	Now       func() time.Time // часы для отметки времени действия
}

// NewFactory создаёт фабрику со стандартными генератором и часами
func NewFactory(sessionID, userID string) *Factory {
	return &Factory{
		SessionID: sessionID,
		UserID:    userID,
		NewID:     uuid.NewString,
		Now:       time.Now,
	}
}

// AddBox2DLabel действие добавления прямоугольника
func (f *Factory) AddBox2DLabel(
	itemIndex, sensor int,
	category []int,
	attributes map[int][]int,
	rect entity.Rect,
	manual bool,
) *entity.AddLabelsAction {
	shape := &entity.RectShape{ShapeBase: f.shapeBase(entity.ShapeRect), Rect: rect}
	label := f.label(itemIndex, entity.LabelBox2D, []int{sensor}, category, attributes, manual)
	return f.addLabel(itemIndex, label, []entity.Shape{shape})
}

// AddPolygon2DLabel действие добавления полигона или ломаной
func (f *Factory) AddPolygon2DLabel(
	itemIndex, sensor int,
	category []int,
	points []entity.PathPoint2D,
	closed, manual bool,
) *entity.AddLabelsAction {
	labelType := entity.LabelPolyline2D
	if closed {
		labelType = entity.LabelPolygon2D
	}

	shapes := make([]entity.Shape, 0, len(points))
	for _, p := range points {
		shapes = append(shapes, &entity.PathPointShape{ShapeBase: f.shapeBase(entity.ShapePathPoint2D), PathPoint2D: p})
	}
	label := f.label(itemIndex, labelType, []int{sensor}, category, nil, manual)
	return f.addLabel(itemIndex, label, shapes)
}

// AddBox3DLabel действие добавления трёхмерного бокса
func (f *Factory) AddBox3DLabel(
	itemIndex int,
	sensors []int,
	category []int,
	center, size, orientation entity.Vector3,
	manual bool,
) *entity.AddLabelsAction {
	shape := &entity.CubeShape{
		ShapeBase:   f.shapeBase(entity.ShapeCube),
		Center:      center,
		Size:        size,
		Orientation: orientation,
	}
	label := f.label(itemIndex, entity.LabelBox3D, sensors, category, nil, manual)
	return f.addLabel(itemIndex, label, []entity.Shape{shape})
}

func (f *Factory) label(
	itemIndex int,
	labelType entity.LabelTypeName,
	sensors, category []int,
	attributes map[int][]int,
	manual bool,
) entity.Label {
	if attributes == nil {
		attributes = map[int][]int{}
	}
	return entity.Label{
		ID:         f.NewID(),
		Item:       itemIndex,
		Sensors:    append([]int(nil), sensors...),
		Type:       labelType,
		Category:   append([]int(nil), category...),
		Attributes: attributes,
		Children:   []string{},
		Shapes:     []string{},
		Manual:     manual,
		Changed:    true,
	}
}

func (f *Factory) shapeBase(shapeType entity.ShapeTypeName) entity.ShapeBase {
	return entity.ShapeBase{ID: f.NewID(), Label: []string{}, ShapeType: shapeType}
}

// addLabel связывает метку с фигурами и оборачивает в действие
func (f *Factory) addLabel(itemIndex int, label entity.Label, shapes []entity.Shape) *entity.AddLabelsAction {
	for _, s := range shapes {
		label.Shapes = append(label.Shapes, s.ShapeID())
		switch shape := s.(type) {
		case *entity.RectShape:
			shape.Label = append(shape.Label, label.ID)
		case *entity.PathPointShape:
			shape.Label = append(shape.Label, label.ID)
		case *entity.CubeShape:
			shape.Label = append(shape.Label, label.ID)
		}
	}

	return &entity.AddLabelsAction{
		BaseAction: entity.BaseAction{
			ActionID:  f.NewID(),
			Type:      entity.ActionAddLabels,
			SessionID: f.SessionID,
			UserID:    f.UserID,
			Timestamp: f.Now().UnixMilli(),
		},
		ItemIndices: []int{itemIndex},
		Labels:      [][]entity.Label{{label}},
		Shapes:      [][]entity.Shape{shapes},
	}
}
