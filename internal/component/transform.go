// internal/component/transform.go
package component

// Transform — визуальное преобразование элемента.
// Смещения в пикселях, углы в градусах, Z — глубина "к зрителю".
type Transform struct {
	X, Y       float64
	Z          float64
	Rotation   float64 // поворот в плоскости экрана
	RotationY  float64 // поворот вокруг вертикальной оси
	Scale      float64
	Opacity    float64
	Preserve3D bool // элемент рисуется как 3D-поверхность
}

// NewTransform возвращает единичное преобразование.
func NewTransform() *Transform {
	return &Transform{Scale: 1, Opacity: 1}
}
