package entity

// Rect прямоугольник, заданный двумя углами
type Rect struct {
	X1 float64 `json:"x1"` // левый верхний угол
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"` // правый нижний угол
	Y2 float64 `json:"y2"`
}

// PathPointType тип вершины полигона
type PathPointType string

const (
	PathPointUnknown PathPointType = "null"
	PathPointLine    PathPointType = "line"   // вершина ломаной
	PathPointCurve   PathPointType = "bezier" // контрольная точка кривой
)

// PathPoint2D вершина полигона в координатах изображения
type PathPoint2D struct {
	X         float64       `json:"x"`
	Y         float64       `json:"y"`
	PointType PathPointType `json:"pointType"`
}

// NewPathPoint2D создаёт вершину заданного типа
func NewPathPoint2D(x, y float64, pointType PathPointType) PathPoint2D {
	return PathPoint2D{X: x, Y: y, PointType: pointType}
}

// Vector2 двумерный вектор в состоянии интерфейса
type Vector2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Vector3 трёхмерный вектор в состоянии интерфейса
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Vector3D вектор из трёх чисел для вычислений
type Vector3D [3]float64

// NewVector3D собирает вектор из трёх компонент
func NewVector3D(x, y, z float64) Vector3D {
	return Vector3D{x, y, z}
}

// Vector3DFromState обратное преобразование к ToState
func Vector3DFromState(v Vector3) Vector3D {
	return Vector3D{v.X, v.Y, v.Z}
}

// ToState переводит вектор в представление состояния интерфейса
func (v Vector3D) ToState() Vector3 {
	return Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// Intrinsics внутренние параметры камеры
type Intrinsics struct {
	FocalLength Vector2 `json:"focalLength"`
	FocalCenter Vector2 `json:"focalCenter"`
}
