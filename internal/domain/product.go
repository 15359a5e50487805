package domain

import "time"

// Product описывает товар каталога
type Product struct {
	ID          int64
	Name        string
	Price       int64 // Цена хранится в копейках
	Description string
	ImageURL    string
	CategoryID  int64
	Featured    bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	IsArchived  bool
}

func NewProduct(name string, price int64, description, imageURL string, categoryID int64, featured bool) *Product {
	return &Product{
		Name:        name,
		Price:       price,
		Description: description,
		ImageURL:    imageURL,
		CategoryID:  categoryID,
		Featured:    featured,
	}
}

// Available сообщает, доступен ли товар для добавления в корзину и оформления заказа.
// Архивные товары остаются видимыми в существующих корзинах, но недоступны для покупки.
func (p *Product) Available() bool {
	return !p.IsArchived
}
