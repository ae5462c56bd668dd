// Package export описывает формат обмена элементами и метками с сервисом моделей.
package export

import "label-bot/internal/domain/entity"

// ItemExport элемент (изображение или кадр) с метками
type ItemExport struct {
	Name       string            `json:"name"`
	URL        string            `json:"url"`
	VideoName  string            `json:"videoName"`
	Timestamp  int64             `json:"timestamp"`
	Attributes map[string]string `json:"attributes"`
	Labels     []LabelExport     `json:"labels"`
	Sensor     int               `json:"sensor"`
	// nil означает, что параметры камеры не переданы; поле тогда не сериализуется
	Intrinsics *IntrinsicsExport `json:"intrinsics,omitempty"`
}

// NewItemExport создаёт элемент без меток
func NewItemExport(name, url string, labels ...LabelExport) ItemExport {
	if labels == nil {
		labels = []LabelExport{}
	}
	return ItemExport{
		Name:       name,
		URL:        url,
		Timestamp:  -1,
		Attributes: map[string]string{},
		Labels:     labels,
		Sensor:     -1,
	}
}

// LabelExport метка; заполнено ровно одно поле геометрии
type LabelExport struct {
	ID          string            `json:"id"`
	Category    string            `json:"category"`
	Attributes  map[string]string `json:"attributes"`
	ManualShape bool              `json:"manualShape"`
	Box2D       *entity.Rect      `json:"box2d,omitempty"`
	Poly2D      []PolygonExport   `json:"poly2d,omitempty"`
}

// NewBox2DLabel метка-прямоугольник
func NewBox2DLabel(rect entity.Rect) LabelExport {
	l := newLabel()
	l.Box2D = &rect
	return l
}

// NewPoly2DLabel метка-полигон
func NewPoly2DLabel(poly []PolygonExport) LabelExport {
	l := newLabel()
	l.Poly2D = poly
	return l
}

func newLabel() LabelExport {
	return LabelExport{
		Attributes:  map[string]string{},
		ManualShape: true,
	}
}

// PolygonExport полигон: вершины и строка типов ("L" или "C" на вершину)
type PolygonExport struct {
	Vertices [][2]float64 `json:"vertices"`
	Types    string       `json:"types"`
	Closed   bool         `json:"closed"`
}

// IntrinsicsExport параметры камеры в формате обмена
type IntrinsicsExport struct {
	Focal  [2]float64 `json:"focal"`
	Center [2]float64 `json:"center"`
}
