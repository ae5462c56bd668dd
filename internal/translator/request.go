package translator

import (
	"label-bot/internal/domain/entity"
	"label-bot/internal/domain/export"
	"label-bot/internal/domain/message"
)

// RectRequest запрос на сегментацию прямоугольника в полигон
func (t *Translator) RectRequest(rect entity.Rect, url string, itemIndex int) message.ModelRequest {
	item := export.NewItemExport(t.projectName, url, export.NewBox2DLabel(rect))
	return message.ModelRequest{
		Data:      item,
		ItemIndex: itemIndex,
	}
}

// PolyQuery запрос на уточнение полигона.
// Возвращает ошибку UnknownLabelType, если labelType не polygon2d и не polyline2d.
func (t *Translator) PolyQuery(points []entity.PathPoint2D, url string, itemIndex int, labelType string) (message.ModelQuery, error) {
	poly, err := export.PolygonToExport(points, labelType)
	if err != nil {
		return message.ModelQuery{}, err
	}
	item := export.NewItemExport(t.projectName, url, export.NewPoly2DLabel(poly))
	return message.ModelQuery{
		Data:      item,
		Endpoint:  message.EndpointRefinePoly,
		ItemIndex: itemIndex,
	}, nil
}

// ImageRequest запрос на предсказание по всему изображению.
// Если intrinsics == nil, поле параметров камеры в запросе отсутствует.
func (t *Translator) ImageRequest(url string, itemIndex int, intrinsics *entity.Intrinsics) message.ModelRequest {
	item := export.NewItemExport(t.projectName, url)
	if intrinsics != nil {
		in := export.IntrinsicsToExport(*intrinsics)
		item.Intrinsics = &in
	}
	return message.ModelRequest{
		Data:      item,
		ItemIndex: itemIndex,
	}
}

// BatchRequest объединяет одиночные запросы в пакетный с сохранением порядка
func (t *Translator) BatchRequest(reqs ...message.ModelRequest) message.ModelBatchRequest {
	batch := message.ModelBatchRequest{
		Data:        make([]export.ItemExport, 0, len(reqs)),
		ItemIndices: make([]int, 0, len(reqs)),
	}
	for _, r := range reqs {
		batch.Data = append(batch.Data, r.Data)
		batch.ItemIndices = append(batch.ItemIndices, r.ItemIndex)
	}
	return batch
}
