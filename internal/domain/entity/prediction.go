package entity

// Prediction ответ сервиса инференса. Все массивы позиционные.
type Prediction struct {
	Boxes    [][]float64   `json:"boxes"`    // [x1, y1, x2, y2]
	Polygons [][][]float64 `json:"polygons"` // список вершин [x, y]
	Boxes3D  [][]float64   `json:"boxes3d"`  // [W, L, H, x, y, z, rot_y, alpha, _]
}

// Empty сообщает, что модель ничего не нашла
func (p *Prediction) Empty() bool {
	return p == nil || len(p.Boxes)+len(p.Polygons)+len(p.Boxes3D) == 0
}
