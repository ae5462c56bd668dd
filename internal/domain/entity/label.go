package entity

// LabelTypeName тип метки
type LabelTypeName string

const (
	LabelBox2D      LabelTypeName = "box2d"
	LabelPolygon2D  LabelTypeName = "polygon2d"  // замкнутый полигон
	LabelPolyline2D LabelTypeName = "polyline2d" // незамкнутая ломаная
	LabelBox3D      LabelTypeName = "box3d"
)

const (
	// NoParent метка не привязана к существующей группе (треку или сенсору)
	NoParent = -1
	// DefaultCategory индекс первой категории проекта
	DefaultCategory = 0
)

// Label метка в состоянии интерфейса
type Label struct {
	ID         string        `json:"id"`
	Item       int           `json:"item"`
	Sensors    []int         `json:"sensors"`
	Type       LabelTypeName `json:"type"`
	Category   []int         `json:"category"`
	Attributes map[int][]int `json:"attributes"`
	Parent     string        `json:"parent"`
	Children   []string      `json:"children"`
	Shapes     []string      `json:"shapes"`
	Track      string        `json:"track"`
	Order      int           `json:"order"`
	Manual     bool          `json:"manual"` // нарисована человеком, а не моделью
	Changed    bool          `json:"changed"`
}

// ShapeTypeName тип фигуры
type ShapeTypeName string

const (
	ShapeRect        ShapeTypeName = "rect"
	ShapePathPoint2D ShapeTypeName = "path_point_2d"
	ShapeCube        ShapeTypeName = "cube"
)

// Shape фигура, на которую ссылается метка
type Shape interface {
	ShapeID() string
	Kind() ShapeTypeName
}

// ShapeBase общие поля фигур
type ShapeBase struct {
	ID        string        `json:"id"`
	Label     []string      `json:"label"`
	ShapeType ShapeTypeName `json:"shapeType"`
}

func (s ShapeBase) ShapeID() string     { return s.ID }
func (s ShapeBase) Kind() ShapeTypeName { return s.ShapeType }

// RectShape прямоугольник как фигура
type RectShape struct {
	ShapeBase
	Rect
}

// PathPointShape вершина полигона как фигура
type PathPointShape struct {
	ShapeBase
	PathPoint2D
}

// CubeShape трёхмерный бокс
type CubeShape struct {
	ShapeBase
	Center      Vector3 `json:"center"`
	Size        Vector3 `json:"size"`
	Orientation Vector3 `json:"orientation"`
	AnchorIndex int     `json:"anchorIndex"`
}
