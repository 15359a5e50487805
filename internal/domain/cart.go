package domain

import "time"

// Cart принадлежит ровно одному пользователю: на пользователя существует
// не более одной корзины, а на товар — не более одной строки.
type Cart struct {
	ID        int64
	UserID    int64
	Lines     []CartLine
	UpdatedAt time.Time
}

// CartLine — одна позиция корзины (товар и количество).
// Количество всегда положительное: ноль или меньше означает удаление строки.
type CartLine struct {
	ProductID int64
	Quantity  int64
}

// NewEmptyCart возвращает пустую корзину пользователя.
// Используется, когда запись корзины ещё не создана: чтение корзины
// никогда не создаёт запись в хранилище.
func NewEmptyCart(userID int64) *Cart {
	return &Cart{
		UserID:    userID,
		Lines:     []CartLine{},
		UpdatedAt: time.Now(),
	}
}

// Line возвращает строку корзины для товара, если она есть.
func (c *Cart) Line(productID int64) (CartLine, bool) {
	for _, line := range c.Lines {
		if line.ProductID == productID {
			return line, true
		}
	}

	return CartLine{}, false
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}
